package client

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

// NotesAPI — операции с заметками на сервере, нужные рабочей области.
type NotesAPI interface {
	ListNotes(ctx context.Context) ([]Note, error)
	CreateNote(ctx context.Context, title, content string) (*Note, error)
	UpdateNote(ctx context.Context, id, title, content string) (*Note, error)
	DeleteNote(ctx context.Context, id string) error
}

// Workspace — клиентская копия коллекции заметок плюс выбор и строка поиска.
// Кэш меняется только после подтверждения операции сервером, поэтому порядок
// в нем всегда отражает последний ответ сервера. Не потокобезопасна:
// все обращения идут из одной командной горутины.
type Workspace struct {
	api        NotesAPI
	log        *slog.Logger
	notes      []Note
	selectedID string
	query      string
}

func NewWorkspace(api NotesAPI, log *slog.Logger) *Workspace {
	return &Workspace{
		api: api,
		log: log,
	}
}

// Refresh перечитывает коллекцию с сервера. Выбор сохраняется, если заметка
// еще существует; если выбора не было и коллекция непуста, выбирается первая.
func (w *Workspace) Refresh(ctx context.Context) error {
	notes, err := w.api.ListNotes(ctx)
	if err != nil {
		return fmt.Errorf("обновление списка заметок: %w", err)
	}

	w.notes = notes

	if w.selectedID != "" && w.indexOf(w.selectedID) < 0 {
		w.selectedID = ""
	}
	if w.selectedID == "" && len(w.notes) > 0 {
		w.selectedID = w.notes[0].ID
	}

	return nil
}

// Notes возвращает всю коллекцию в серверном порядке
func (w *Workspace) Notes() []Note {
	return w.notes
}

// Query возвращает текущую строку поиска
func (w *Workspace) Query() string {
	return w.query
}

// SetQuery задает строку поиска. Фильтр live: применяется при каждом Filtered.
// SetQuery устанавливает строку поиска. Пробелы по краям отбрасываются,
// чтобы запрос из одних пробелов не фильтровал коллекцию.
func (w *Workspace) SetQuery(query string) {
	w.query = strings.TrimSpace(query)
}

// Filtered возвращает заметки, подходящие под строку поиска.
// Пустая строка возвращает коллекцию как есть.
func (w *Workspace) Filtered() []Note {
	if w.query == "" {
		return w.notes
	}

	needle := strings.ToLower(w.query)
	var matched []Note
	for _, n := range w.notes {
		if strings.Contains(strings.ToLower(n.Title), needle) ||
			strings.Contains(strings.ToLower(n.Content), needle) {
			matched = append(matched, n)
		}
	}

	return matched
}

// Select делает заметку текущей. Неизвестный id игнорируется.
func (w *Workspace) Select(id string) bool {
	if w.indexOf(id) < 0 {
		return false
	}
	w.selectedID = id
	return true
}

// Selected возвращает копию текущей заметки или nil
func (w *Workspace) Selected() *Note {
	idx := w.indexOf(w.selectedID)
	if idx < 0 {
		return nil
	}

	n := w.notes[idx]
	return &n
}

// StartNew убирает выбор: пользователь начинает новую заметку
func (w *Workspace) StartNew() {
	w.selectedID = ""
}

// Create создает заметку на сервере, ставит ее в начало списка и выбирает.
// При ошибке сервера кэш не меняется.
func (w *Workspace) Create(ctx context.Context, title, content string) (*Note, error) {
	created, err := w.api.CreateNote(ctx, title, content)
	if err != nil {
		return nil, err
	}

	w.notes = append([]Note{*created}, w.notes...)
	w.selectedID = created.ID

	w.log.Debug("заметка создана", "note_id", created.ID)
	return created, nil
}

// Update заменяет заметку в кэше подтвержденной серверной версией.
// Позиция в списке не меняется до следующего Refresh.
func (w *Workspace) Update(ctx context.Context, id, title, content string) (*Note, error) {
	updated, err := w.api.UpdateNote(ctx, id, title, content)
	if err != nil {
		return nil, err
	}

	if idx := w.indexOf(id); idx >= 0 {
		w.notes[idx] = *updated
	}

	w.log.Debug("заметка обновлена", "note_id", id)
	return updated, nil
}

// Delete удаляет заметку. Если она была выбрана, выбирается следующая за ней,
// иначе предыдущая, иначе выбор пуст.
func (w *Workspace) Delete(ctx context.Context, id string) error {
	if err := w.api.DeleteNote(ctx, id); err != nil {
		return err
	}

	idx := w.indexOf(id)
	if idx < 0 {
		return nil
	}

	w.notes = append(w.notes[:idx], w.notes[idx+1:]...)

	if w.selectedID == id {
		switch {
		case idx < len(w.notes):
			w.selectedID = w.notes[idx].ID
		case len(w.notes) > 0:
			w.selectedID = w.notes[len(w.notes)-1].ID
		default:
			w.selectedID = ""
		}
	}

	w.log.Debug("заметка удалена", "note_id", id)
	return nil
}

// Clear сбрасывает кэш при завершении или смене сеанса
func (w *Workspace) Clear() {
	w.notes = nil
	w.selectedID = ""
	w.query = ""
}

func (w *Workspace) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, n := range w.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
