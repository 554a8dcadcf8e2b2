package auth

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// AuthCmd - родительская команда для всех операций с авторизацей пользователя
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление пользователем",
	Long:  `Авторизация, регистрация, выход из системы.`,
}

// validateCredentials проверяет, что оба поля заполнены, до обращения к серверу
func validateCredentials(email string, password []byte) error {
	if strings.TrimSpace(email) == "" || len(password) == 0 {
		return fmt.Errorf("email и пароль обязательны")
	}
	return nil
}
