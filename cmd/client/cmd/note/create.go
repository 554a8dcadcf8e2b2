// cmd/client/cmd/note/create.go
package note

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	createTitle   string
	createContent string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать заметку",
	Long: `Создание новой заметки.

Без флагов заголовок и текст запрашиваются интерактивно.
Ввод текста завершается строкой с одной точкой.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		title := createTitle
		content := createContent

		if title == "" && content == "" {
			reader := bufio.NewReader(os.Stdin)

			fmt.Print("Заголовок: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("ошибка чтения заголовка: %w", err)
			}
			title = strings.TrimSpace(line)

			fmt.Println("Текст (завершите строкой с одной точкой):")
			content, err = readBody(reader)
			if err != nil {
				return err
			}
		}

		n, err := app.Workspace().Create(cmd.Context(), title, content)
		if err != nil {
			return fmt.Errorf("ошибка создания заметки: %w", err)
		}

		fmt.Printf("Заметка %q создана (id %s)\n", displayTitle(*n), n.ID[:8])
		return nil
	},
}

func readBody(reader *bufio.Reader) (string, error) {
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			// EOF тоже завершает ввод
			if len(line) > 0 {
				lines = append(lines, strings.TrimRight(line, "\n"))
			}
			break
		}

		trimmed := strings.TrimRight(line, "\n")
		if trimmed == "." {
			break
		}
		lines = append(lines, trimmed)
	}

	return strings.Join(lines, "\n"), nil
}

func init() {
	CreateCmd.Flags().StringVarP(&createTitle, "title", "t", "", "заголовок заметки")
	CreateCmd.Flags().StringVarP(&createContent, "message", "m", "", "текст заметки")
}
