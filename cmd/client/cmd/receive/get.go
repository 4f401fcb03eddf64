// cmd/client/cmd/receive/get.go
package receive

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"receivecopy/cmd/client/cmd/cmdutil"
	"receivecopy/internal/domain/receive"
)

func newGetCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Просмотреть запись",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cmdutil.App(cmd)
			if err != nil {
				return err
			}

			rec, err := app.Service().Find(cmd.Context(), args[0])
			if err != nil {
				return cmdutil.DescribeError(err)
			}

			out := cmd.OutOrStdout()
			if cmdutil.JSONOutput(cmd) {
				outputFormat = "json"
			}
			switch outputFormat {
			case "json":
				return cmdutil.PrintJSON(out, rec)
			case "yaml":
				return cmdutil.PrintYAML(out, rec)
			default:
				printRecordHuman(out, rec)
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "формат вывода (text, json, yaml)")
	return cmd
}

func printRecordHuman(w io.Writer, rec receive.Record) {
	fmt.Fprintf(w, "ID:                  %s\n", rec.ID)
	fmt.Fprintf(w, "Порядковый номер:    %s\n", rec.ConsecutiveNo)
	fmt.Fprintf(w, "Дата:                %s\n", receive.FormatDate(rec.Date, receive.LongDateLayout))
	fmt.Fprintf(w, "Кому адресовано:     %s\n", rec.ToWhomAddressed)
	fmt.Fprintf(w, "Краткое содержание:  %s\n", rec.ShortSubject)
	fmt.Fprintf(w, "Статус:              %s\n", rec.Action)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Где находится черновик ===")
	fmt.Fprintf(w, "Дело и номер письма: %s\n", rec.FileAndSerial())
	fmt.Fprintf(w, "Коллекция:           %s\n", rec.CollectionNoTitle)
	fmt.Fprintf(w, "Дело в коллекции:    %s\n", rec.FileNoInCollection)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Ответ:               %s\n", replyCell(rec))
	fmt.Fprintf(w, "Напоминание:         %s %s\n", rec.ReminderNo, receive.FormatDate(rec.ReminderDate, receive.LongDateLayout))
	fmt.Fprintf(w, "Марка:               Rs. %s  P. %s\n", rec.StampRs, rec.StampP)
	if rec.Remarks != "" {
		fmt.Fprintf(w, "Примечания:          %s\n", rec.Remarks)
	}
}

// replyCell - номер и дата ответа в одной колонке
func replyCell(rec receive.Record) string {
	date := receive.FormatDate(rec.ReplyDate, receive.ShortDateLayout)
	switch {
	case rec.ReplyNo != "" && date != "":
		return rec.ReplyNo + " (" + date + ")"
	case rec.ReplyNo != "":
		return rec.ReplyNo
	default:
		return date
	}
}
