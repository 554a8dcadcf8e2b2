// cmd/client/cmd/note/list.go
package note

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gophnotes/internal/app/client"
)

var (
	listSearch string
	listFormat string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список заметок",
	Long: `Просмотр заметок, отсортированных по времени изменения (новые первыми).

Флаг --search фильтрует по подстроке в заголовке или тексте без учета регистра.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ws := app.Workspace()
		if err := ws.Refresh(cmd.Context()); err != nil {
			return fmt.Errorf("ошибка получения списка заметок: %w", err)
		}

		ws.SetQuery(listSearch)
		notes := ws.Filtered()

		// Выводим результат
		switch listFormat {
		case "json":
			return printNotesJSON(notes)
		case "table":
			return printNotesTable(notes)
		default:
			return printNotesSimple(notes, ws)
		}
	},
}

func printNotesSimple(notes []client.Note, ws *client.Workspace) error {
	if len(notes) == 0 {
		if ws.Query() != "" {
			fmt.Printf("По запросу %q ничего не найдено\n", ws.Query())
		} else {
			fmt.Println("Заметок пока нет")
		}
		return nil
	}

	titleColor := color.New(color.FgCyan, color.Bold)
	selected := ws.Selected()

	for i, n := range notes {
		marker := "  "
		if selected != nil && n.ID == selected.ID {
			marker = "> "
		}

		fmt.Printf("%s%d. ", marker, i+1)
		titleColor.Print(displayTitle(n))
		fmt.Printf("  (%s)\n", displayTime(n).Local().Format("02.01.2006 15:04"))
	}

	fmt.Printf("\nВсего заметок: %d\n", len(notes))
	return nil
}

func printNotesTable(notes []client.Note) error {
	if len(notes) == 0 {
		fmt.Println("Заметки не найдены")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "#\tID\tНазвание\tСоздано\tОбновлено\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t\n")

	for i, n := range notes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n",
			i+1,
			n.ID[:8],
			truncate(displayTitle(n), 30),
			n.CreatedAt.Local().Format("02.01.2006"),
			n.UpdatedAt.Local().Format("02.01.2006 15:04"),
		)
	}

	w.Flush()
	fmt.Printf("\nВсего заметок: %d\n", len(notes))
	return nil
}

func printNotesJSON(notes []client.Note) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(notes)
}

func truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length-3]) + "..."
}

func init() {
	ListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "поиск по заголовку и тексту")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "формат вывода (simple, table, json)")
}
