// cmd/client/cmd/note/show.go
package note

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var ShowCmd = &cobra.Command{
	Use:   "show [id|номер]",
	Short: "Просмотреть заметку",
	Long:  `Просмотр заметки по номеру из списка или по префиксу идентификатора.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ws := app.Workspace()
		if err := ws.Refresh(cmd.Context()); err != nil {
			return fmt.Errorf("ошибка получения списка заметок: %w", err)
		}

		n, err := resolveNote(ws, args[0])
		if err != nil {
			return err
		}
		ws.Select(n.ID)

		color.New(color.FgCyan, color.Bold).Println(displayTitle(*n))
		fmt.Printf("ID:        %s\n", n.ID)
		fmt.Printf("Создано:   %s\n", n.CreatedAt.Local().Format("02.01.2006 15:04"))
		fmt.Printf("Обновлено: %s\n", n.UpdatedAt.Local().Format("02.01.2006 15:04"))
		fmt.Println()
		fmt.Println(n.Content)

		return nil
	},
}
