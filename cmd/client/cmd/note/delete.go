// cmd/client/cmd/note/delete.go
package note

import (
	"fmt"

	"github.com/spf13/cobra"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete [id|номер]",
	Short: "Удалить заметку",
	Long:  `Удаление заметки без возможности восстановления.`,
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

		if err := ws.Delete(cmd.Context(), n.ID); err != nil {
			return fmt.Errorf("ошибка удаления заметки: %w", err)
		}

		fmt.Printf("Заметка %q удалена\n", displayTitle(*n))
		if sel := ws.Selected(); sel != nil {
			fmt.Printf("Текущая заметка: %s\n", displayTitle(*sel))
		}

		return nil
	},
}
