package data

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"receivecopy/cmd/client/cmd/cmdutil"
	"receivecopy/internal/domain/receive"
	"receivecopy/internal/export"
)

func newPrintCmd() *cobra.Command {
	var (
		filter cmdutil.ListFlags
		format string
		all    bool
		out    string
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Печатная форма журнала (HTML или PDF)",
		Long: `Строит печатную форму текущей страницы или, с --all, всех отобранных записей.
Фильтры те же, что у "receive list".`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := cmdutil.App(cmd)
			if err != nil {
				return err
			}

			params, err := filter.Params()
			if err != nil {
				return err
			}
			if all {
				size := receive.Unbounded
				params.PageSize = &size
				params.Page = 0
				params.LastPage = false
			}

			resp, err := app.Service().List(cmd.Context(), params)
			if err != nil {
				return cmdutil.DescribeError(err)
			}

			var data []byte
			switch format {
			case "html":
				data, err = export.HTML(resp.Records, export.PrintOptions{})
			case "pdf":
				if out == "" {
					out = "receives.pdf"
				}
				data, err = export.PDF(resp.Records, export.PrintOptions{})
			default:
				return fmt.Errorf("неизвестный формат %q (html, pdf)", format)
			}
			if errors.Is(err, export.ErrEmpty) {
				return errors.New("нет записей для печати")
			}
			if err != nil {
				return err
			}

			return writeOutput(cmd, out, data)
		},
	}

	filter.Bind(cmd)
	cmd.Flags().StringVar(&format, "format", "html", "формат (html, pdf)")
	cmd.Flags().BoolVar(&all, "all", false, "все отобранные записи, а не текущая страница")
	cmd.Flags().StringVarP(&out, "out", "o", "", "файл для сохранения (для pdf по умолчанию receives.pdf)")
	return cmd
}
