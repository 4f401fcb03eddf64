// cmd/client/cmd/receive/list.go
package receive

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"receivecopy/cmd/client/cmd/cmdutil"
	"receivecopy/internal/domain/receive"
	"receivecopy/internal/export"
)

func newListCmd() *cobra.Command {
	var (
		filter     cmdutil.ListFlags
		listFormat string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Список записей",
		Long: `Постраничный просмотр журнала с поиском и фильтром по датам.

Поиск без учета регистра по номеру, теме, адресату, статусу, делу и коллекции.
Диапазон дат включает обе границы. --page-size 0 показывает все записи.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := cmdutil.App(cmd)
			if err != nil {
				return err
			}

			params, err := filter.Params()
			if err != nil {
				return err
			}

			resp, err := app.Service().List(cmd.Context(), params)
			if err != nil {
				return cmdutil.DescribeError(err)
			}

			out := cmd.OutOrStdout()
			if cmdutil.JSONOutput(cmd) {
				listFormat = "json"
			}
			switch listFormat {
			case "json":
				return cmdutil.PrintJSON(out, resp)
			case "yaml":
				return cmdutil.PrintYAML(out, resp)
			case "csv":
				return printRecordsCSV(out, resp.Records)
			case "table":
				printRecordsTable(out, resp)
			default:
				printRecordsSimple(out, resp)
			}
			return nil
		},
	}

	filter.Bind(cmd)
	cmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "формат вывода (simple, table, json, yaml, csv)")
	return cmd
}

func printRecordsSimple(w io.Writer, resp receive.ListResponse) {
	if len(resp.Records) == 0 {
		fmt.Fprintln(w, emptyMessage(resp))
		return
	}

	for _, rec := range resp.Records {
		fmt.Fprintf(w, "№%s  %s  [%s]\n", rec.ConsecutiveNo, receive.FormatDate(rec.Date, receive.ShortDateLayout), rec.Action)
		fmt.Fprintf(w, "   %s -> %s\n", rec.ShortSubject, rec.ToWhomAddressed)
		fmt.Fprintf(w, "   ID: %s\n", rec.ID)
		fmt.Fprintln(w)
	}
	printFooter(w, resp)
}

func printRecordsTable(w io.Writer, resp receive.ListResponse) {
	if len(resp.Records) == 0 {
		fmt.Fprintln(w, emptyMessage(resp))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "№\tДата\tКому\tСодержание\tДело\tОтвет\tСтатус\tID\t\n")
	fmt.Fprintf(tw, "---\t---\t---\t---\t---\t---\t---\t---\t\n")
	for _, rec := range resp.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			rec.ConsecutiveNo,
			receive.FormatDate(rec.Date, receive.ShortDateLayout),
			truncate(rec.ToWhomAddressed, 24),
			truncate(rec.ShortSubject, 40),
			truncate(rec.FileAndSerial(), 20),
			replyCell(rec),
			rec.Action,
			rec.ID,
		)
	}
	tw.Flush()

	fmt.Fprintln(w)
	printFooter(w, resp)
}

func printRecordsCSV(w io.Writer, records []receive.Record) error {
	data, err := export.CSV(records)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printFooter - сводка и полоса страниц под списком
func printFooter(w io.Writer, resp receive.ListResponse) {
	fmt.Fprintln(w, resp.Summary.String())
	if len(resp.Strip) > 0 {
		items := make([]string, len(resp.Strip))
		for i, it := range resp.Strip {
			items[i] = it.String()
		}
		fmt.Fprintf(w, "Страницы: %s\n", strings.Join(items, " "))
	}
}

func emptyMessage(resp receive.ListResponse) string {
	if resp.Filtered {
		return "По запросу ничего не найдено"
	}
	return "Журнал пуст"
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
