package note

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gophnotes/cmd/client/cmd/types"
	"gophnotes/internal/app/client"
)

// NoteCmd - родительская команда для всех операций с заметками
var NoteCmd = &cobra.Command{
	Use:   "note",
	Short: "Управление заметками",
	Long:  `Просмотр, поиск, создание, редактирование и удаление заметок.`,
}

const noTitle = "Без названия"

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}

	if !app.IsAuthenticated() {
		return nil, fmt.Errorf("требуется вход в систему: gophnotes auth login")
	}

	return app, nil
}

// displayTitle подставляет заглушку вместо пустого заголовка
func displayTitle(n client.Note) string {
	if strings.TrimSpace(n.Title) == "" {
		return noTitle
	}
	return n.Title
}

// displayTime показывает время изменения, а для заметок без него — время создания
func displayTime(n client.Note) time.Time {
	if n.UpdatedAt.IsZero() {
		return n.CreatedAt
	}
	return n.UpdatedAt
}

// resolveNote находит заметку по номеру в списке или по префиксу идентификатора
func resolveNote(ws *client.Workspace, arg string) (*client.Note, error) {
	notes := ws.Filtered()

	if idx, err := strconv.Atoi(arg); err == nil {
		if idx < 1 || idx > len(notes) {
			return nil, fmt.Errorf("нет заметки с номером %d", idx)
		}
		n := notes[idx-1]
		return &n, nil
	}

	var found *client.Note
	for i := range notes {
		if strings.HasPrefix(notes[i].ID, arg) {
			if found != nil {
				return nil, fmt.Errorf("неоднозначный идентификатор %q", arg)
			}
			n := notes[i]
			found = &n
		}
	}

	if found == nil {
		return nil, fmt.Errorf("заметка %q не найдена", arg)
	}
	return found, nil
}
