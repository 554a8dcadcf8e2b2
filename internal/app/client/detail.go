package client

import "context"

// DetailForm — редактируемые поля одной заметки. Форма помнит, от какой
// версии она отталкивалась, и считается грязной при любом отличии от нее.
type DetailForm struct {
	noteID      string
	title       string
	content     string
	baseTitle   string
	baseContent string
	isNew       bool
}

// NewDetailForm создает пустую форму для новой заметки
func NewDetailForm() *DetailForm {
	return &DetailForm{isNew: true}
}

// Load переключает форму на другую заметку, сбрасывая несохраненные правки.
// nil переводит форму в режим новой заметки.
func (f *DetailForm) Load(n *Note) {
	if n == nil {
		*f = DetailForm{isNew: true}
		return
	}

	*f = DetailForm{
		noteID:      n.ID,
		title:       n.Title,
		content:     n.Content,
		baseTitle:   n.Title,
		baseContent: n.Content,
	}
}

func (f *DetailForm) NoteID() string  { return f.noteID }
func (f *DetailForm) Title() string   { return f.title }
func (f *DetailForm) Content() string { return f.content }
func (f *DetailForm) IsNew() bool     { return f.isNew }

func (f *DetailForm) SetTitle(title string) {
	f.title = title
}

func (f *DetailForm) SetContent(content string) {
	f.content = content
}

// Dirty сообщает, отличаются ли поля от последней сохраненной версии
func (f *DetailForm) Dirty() bool {
	return f.title != f.baseTitle || f.content != f.baseContent
}

// CanSave — кнопка сохранения активна только при наличии правок
func (f *DetailForm) CanSave() bool {
	return f.Dirty()
}

// Save отправляет правки через рабочую область: создание для новой заметки,
// обновление для существующей. После успеха форма перечитывает серверную версию.
func (f *DetailForm) Save(ctx context.Context, ws *Workspace) (*Note, error) {
	var (
		saved *Note
		err   error
	)

	if f.isNew {
		saved, err = ws.Create(ctx, f.title, f.content)
	} else {
		saved, err = ws.Update(ctx, f.noteID, f.title, f.content)
	}
	if err != nil {
		return nil, err
	}

	f.Load(saved)
	return saved, nil
}
