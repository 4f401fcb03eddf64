// Package cmdutil - общие помощники команд: приложение в контексте,
// форматы вывода, фильтры списка и подтверждения.
package cmdutil

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"receivecopy/internal/app/client"
	"receivecopy/internal/domain/receive"
)

type appKey struct{}

var ErrNoApp = errors.New("приложение не инициализировано")

// WithApp кладет приложение в контекст команды
func WithApp(ctx context.Context, app *client.App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

// App достает приложение из контекста команды
func App(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(appKey{}).(*client.App)
	if !ok || app == nil {
		return nil, ErrNoApp
	}
	return app, nil
}

// JSONOutput - включен ли глобальный флаг --json
func JSONOutput(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool("json")
	return err == nil && v
}

func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintYAML выводит значение в YAML с теми же именами полей, что и в JSON
func PrintYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	resetStyle(&node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return err
	}
	return enc.Close()
}

// resetStyle убирает JSON-стиль, оставшийся после разбора
func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		resetStyle(c)
	}
}

// DescribeError переводит доменные ошибки в сообщения для пользователя
func DescribeError(err error) error {
	var verr *receive.ValidationError
	switch {
	case errors.As(err, &verr):
		if verr.Reason != "" {
			return fmt.Errorf("неверные данные: %s", verr.Reason)
		}
		return fmt.Errorf("не заполнены обязательные поля: %s", strings.Join(verr.Fields, ", "))
	case errors.Is(err, receive.ErrNotFound):
		return fmt.Errorf("запись не найдена")
	case errors.Is(err, receive.ErrMalformedData):
		return fmt.Errorf("файл не является JSON-массивом записей: %w", err)
	}
	return err
}

// IsTerminal - подключен ли stdin к терминалу. Подменяется в тестах.
var IsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Prompt спрашивает значение; пустой ответ дает def
func Prompt(r *bufio.Reader, w io.Writer, label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(w, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(w, "%s: ", label)
	}

	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Confirm задает вопрос да/нет, по умолчанию нет
func Confirm(r *bufio.Reader, w io.Writer, question string) (bool, error) {
	answer, err := Prompt(r, w, question+" [y/N]", "")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "д", "да":
		return true, nil
	}
	return false, nil
}
