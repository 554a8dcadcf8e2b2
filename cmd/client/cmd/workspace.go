// cmd/client/cmd/workspace.go
package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gophnotes/internal/app/client"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Интерактивная работа с заметками",
	Long: `Интерактивный режим: список заметок слева, выбранная заметка справа.

Команды:
  <номер>     выбрать заметку
  /<текст>    поиск (пустой /: сбросить)
  n           новая заметка
  e           редактировать выбранную
  d           удалить выбранную
  r           обновить список с сервера
  q           выход`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !app.IsAuthenticated() {
			return fmt.Errorf("требуется вход в систему: gophnotes auth login")
		}

		ctx := cmd.Context()

		// Проверяем сеанс до входа в цикл
		account, err := app.Resolve(ctx)
		if err != nil {
			if errors.Is(err, client.ErrUnauthorized) {
				return fmt.Errorf("сеанс истек, выполните вход: gophnotes auth login")
			}
			return err
		}

		ws := app.Workspace()
		if err := ws.Refresh(ctx); err != nil {
			return fmt.Errorf("ошибка получения списка заметок: %w", err)
		}

		fmt.Printf("Gophnotes — %s\n", account.Email)

		reader := bufio.NewReader(os.Stdin)
		for {
			renderWorkspace(ws)

			fmt.Print("> ")
			line, err := reader.ReadString('\n')
			if err != nil {
				fmt.Println()
				return nil
			}
			input := strings.TrimSpace(line)

			done, err := handleWorkspaceInput(ctx, ws, reader, input)
			if err != nil {
				if errors.Is(err, client.ErrUnauthorized) {
					return fmt.Errorf("сеанс истек, выполните вход: gophnotes auth login")
				}
				// Ошибка одной операции не валит весь сеанс
				color.Red("Ошибка: %v", err)
				continue
			}
			if done {
				return nil
			}
		}
	},
}

func renderWorkspace(ws *client.Workspace) {
	fmt.Println()

	notes := ws.Filtered()
	selected := ws.Selected()

	if ws.Query() != "" {
		fmt.Printf("Поиск: %q\n", ws.Query())
	}

	if len(notes) == 0 {
		if ws.Query() != "" {
			fmt.Println("Ничего не найдено.")
		} else {
			fmt.Println("Заметок пока нет. Введите n, чтобы создать первую.")
		}
	}

	titleColor := color.New(color.FgCyan, color.Bold)
	for i, n := range notes {
		marker := "  "
		if selected != nil && n.ID == selected.ID {
			marker = "> "
		}
		fmt.Printf("%s%d. ", marker, i+1)
		titleColor.Print(workspaceTitle(n))
		fmt.Printf("  (%s)\n", workspaceTime(n).Local().Format("02.01 15:04"))
	}

	if selected != nil {
		fmt.Println()
		fmt.Println(strings.Repeat("-", 40))
		titleColor.Println(workspaceTitle(*selected))
		fmt.Println(selected.Content)
		fmt.Println(strings.Repeat("-", 40))
	}
}

func handleWorkspaceInput(ctx context.Context, ws *client.Workspace, reader *bufio.Reader, input string) (bool, error) {
	switch {
	case input == "q":
		return true, nil

	case input == "r":
		return false, ws.Refresh(ctx)

	case strings.HasPrefix(input, "/"):
		ws.SetQuery(strings.TrimSpace(strings.TrimPrefix(input, "/")))
		return false, nil

	case input == "n":
		ws.StartNew()
		form := client.NewDetailForm()
		if err := fillForm(form, reader, nil); err != nil {
			return false, err
		}
		if !form.CanSave() {
			fmt.Println("Пустая заметка не сохранена.")
			return false, nil
		}
		_, err := form.Save(ctx, ws)
		return false, err

	case input == "e":
		selected := ws.Selected()
		if selected == nil {
			fmt.Println("Сначала выберите заметку.")
			return false, nil
		}
		form := client.NewDetailForm()
		form.Load(selected)
		if err := fillForm(form, reader, selected); err != nil {
			return false, err
		}
		if !form.CanSave() {
			fmt.Println("Изменений нет.")
			return false, nil
		}
		_, err := form.Save(ctx, ws)
		return false, err

	case input == "d":
		selected := ws.Selected()
		if selected == nil {
			fmt.Println("Сначала выберите заметку.")
			return false, nil
		}
		// Удаление без подтверждения, как и выбор заметки
		return false, ws.Delete(ctx, selected.ID)

	default:
		if idx, err := strconv.Atoi(input); err == nil {
			notes := ws.Filtered()
			if idx < 1 || idx > len(notes) {
				fmt.Printf("Нет заметки с номером %d\n", idx)
				return false, nil
			}
			ws.Select(notes[idx-1].ID)
			return false, nil
		}
		if input != "" {
			fmt.Println("Неизвестная команда. Доступно: номер, /поиск, n, e, d, r, q")
		}
		return false, nil
	}
}

// fillForm читает новые значения полей; пустой ввод оставляет прежнее
func fillForm(form *client.DetailForm, reader *bufio.Reader, current *client.Note) error {
	prompt := "Заголовок: "
	if current != nil {
		prompt = fmt.Sprintf("Заголовок [%s]: ", workspaceTitle(*current))
	}

	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("ошибка чтения заголовка: %w", err)
	}
	if title := strings.TrimSpace(line); title != "" {
		form.SetTitle(title)
	}

	fmt.Println("Текст (завершите строкой с одной точкой):")
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		trimmed := strings.TrimRight(line, "\n")
		if trimmed == "." {
			break
		}
		lines = append(lines, trimmed)
	}
	if body := strings.Join(lines, "\n"); body != "" {
		form.SetContent(body)
	}

	return nil
}

func workspaceTitle(n client.Note) string {
	if strings.TrimSpace(n.Title) == "" {
		return "Без названия"
	}
	return n.Title
}

// workspaceTime показывает время изменения, а для заметок без него — время создания
func workspaceTime(n client.Note) time.Time {
	if n.UpdatedAt.IsZero() {
		return n.CreatedAt
	}
	return n.UpdatedAt
}
