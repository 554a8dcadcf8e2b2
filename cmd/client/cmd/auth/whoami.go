// cmd/client/cmd/auth/whoami.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gophnotes/cmd/client/cmd/types"
	"gophnotes/internal/app/client"
)

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Показать текущего пользователя",
	Long:  `Проверяет сеанс на сервере и выводит профиль пользователя.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		account, err := app.Resolve(ctx)
		if err != nil {
			if errors.Is(err, client.ErrUnauthorized) {
				fmt.Println("Вы не вошли в систему. Выполните: gophnotes auth login")
				return nil
			}
			return fmt.Errorf("ошибка проверки сеанса: %w", err)
		}

		fmt.Printf("Email:           %s\n", account.Email)
		fmt.Printf("ID:              %s\n", account.ID)
		fmt.Printf("Зарегистрирован: %s\n", account.CreatedAt.Local().Format("02.01.2006"))

		return nil
	},
}
