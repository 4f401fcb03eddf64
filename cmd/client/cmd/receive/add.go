package receive

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"receivecopy/cmd/client/cmd/cmdutil"
	"receivecopy/internal/domain/receive"
)

func newAddCmd() *cobra.Command {
	var (
		rec     receive.Record
		action  string
		useNext bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Добавить запись",
		Long: `Добавление новой записи в журнал.

Обязательные поля: порядковый номер, дата, кому адресовано, краткое содержание.
Если команда запущена в терминале, недостающие поля будут запрошены.
Порядковый номер предлагается автоматически (максимальный номер + 1).`,
		Example: `  receivecopy receive add --no 101 --date 2024-03-01 --to "Director" --subject "Budget"
  receivecopy receive add --next --date 2024-03-01 --to HR --subject "Leave policy"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := cmdutil.App(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			svc := app.Service()

			next := svc.NextNumber(ctx)
			if useNext && strings.TrimSpace(rec.ConsecutiveNo) == "" {
				rec.ConsecutiveNo = next
			}

			if cmdutil.IsTerminal() {
				if err := promptMissing(bufio.NewReader(cmd.InOrStdin()), cmd, &rec, next); err != nil {
					return fmt.Errorf("ошибка ввода: %w", err)
				}
			}
			rec.Action = receive.Action(action)

			resp, err := svc.Create(ctx, rec)
			if err != nil {
				return cmdutil.DescribeError(err)
			}

			out := cmd.OutOrStdout()
			if cmdutil.JSONOutput(cmd) {
				return cmdutil.PrintJSON(out, resp.Record)
			}
			fmt.Fprintf(out, "Запись добавлена: №%s (ID %s)\n", resp.Record.ConsecutiveNo, resp.Record.ID)
			fmt.Fprintf(out, "Страница %d из %d\n", resp.Page.Page, resp.Page.PageCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&rec.ConsecutiveNo, "no", "", "порядковый номер")
	cmd.Flags().BoolVar(&useNext, "next", false, "взять предложенный порядковый номер")
	cmd.Flags().StringVar(&action, "action", string(receive.ActionPending), "статус: pending или success")
	bindFields(cmd, &rec)

	return cmd
}

func promptMissing(r *bufio.Reader, cmd *cobra.Command, rec *receive.Record, next string) error {
	w := cmd.OutOrStdout()
	prompts := []struct {
		label string
		value *string
		def   string
	}{
		{label: "Порядковый номер", value: &rec.ConsecutiveNo, def: next},
		{label: "Дата (YYYY-MM-DD)", value: &rec.Date},
		{label: "Кому адресовано", value: &rec.ToWhomAddressed},
		{label: "Краткое содержание", value: &rec.ShortSubject},
	}

	for _, p := range prompts {
		if strings.TrimSpace(*p.value) != "" {
			continue
		}
		v, err := cmdutil.Prompt(r, w, p.label, p.def)
		if err != nil {
			return err
		}
		*p.value = v
	}
	return nil
}
