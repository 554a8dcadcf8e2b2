// cmd/client/cmd/init.go
package cmd

import (
	"fmt"

	"gophnotes/cmd/client/cmd/auth"
	"gophnotes/cmd/client/cmd/note"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Проверить соединение с сервером",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Println("Проверка соединения с сервером...")
		if err := app.CheckConnection(); err != nil {
			return fmt.Errorf("сервер недоступен: %w", err)
		}

		fmt.Println("Сервер доступен.")
		if app.IsAuthenticated() {
			if email := app.UserEmail(); email != "" {
				fmt.Printf("Текущий пользователь: %s\n", email)
			} else {
				fmt.Println("Вы вошли в систему.")
			}
		} else {
			fmt.Println("Вы не вошли в систему: gophnotes auth login")
		}

		return nil
	},
}

func init() {
	// Добавляем команды аутентификации
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.WhoamiCmd)

	// Добавляем команды работы с заметками
	rootCmd.AddCommand(note.NoteCmd)
	note.NoteCmd.AddCommand(note.ListCmd)
	note.NoteCmd.AddCommand(note.CreateCmd)
	note.NoteCmd.AddCommand(note.ShowCmd)
	note.NoteCmd.AddCommand(note.EditCmd)
	note.NoteCmd.AddCommand(note.DeleteCmd)

	rootCmd.AddCommand(workspaceCmd)
	rootCmd.AddCommand(statusCmd)
}
