// cmd/client/cmd/note/edit.go
package note

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gophnotes/internal/app/client"
)

var (
	editTitle   string
	editContent string
)

var EditCmd = &cobra.Command{
	Use:   "edit [id|номер]",
	Short: "Редактировать заметку",
	Long: `Редактирование заголовка и текста заметки.

Без флагов новые значения запрашиваются интерактивно;
пустой ввод оставляет поле без изменений.`,
	Args: cobra.ExactArgs(1),
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

		form := client.NewDetailForm()
		form.Load(n)

		if cmd.Flags().Changed("title") {
			form.SetTitle(editTitle)
		}
		if cmd.Flags().Changed("message") {
			form.SetContent(editContent)
		}

		// Интерактивный режим, если ничего не передано флагами
		if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("message") {
			reader := bufio.NewReader(os.Stdin)

			fmt.Printf("Заголовок [%s]: ", displayTitle(*n))
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("ошибка чтения заголовка: %w", err)
			}
			if title := strings.TrimSpace(line); title != "" {
				form.SetTitle(title)
			}

			fmt.Println("Новый текст (завершите строкой с одной точкой, пустой ввод оставит прежний):")
			body, err := readBody(reader)
			if err != nil {
				return err
			}
			if body != "" {
				form.SetContent(body)
			}
		}

		if !form.CanSave() {
			fmt.Println("Изменений нет.")
			return nil
		}

		saved, err := form.Save(cmd.Context(), ws)
		if err != nil {
			return fmt.Errorf("не удалось сохранить заметку: %w", err)
		}

		fmt.Printf("Заметка %q сохранена\n", displayTitle(*saved))
		return nil
	},
}

func init() {
	EditCmd.Flags().StringVarP(&editTitle, "title", "t", "", "новый заголовок")
	EditCmd.Flags().StringVarP(&editContent, "message", "m", "", "новый текст")
}
