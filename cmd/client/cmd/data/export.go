package data

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"receivecopy/cmd/client/cmd/cmdutil"
	"receivecopy/internal/export"
)

func newExportCmd() *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Выгрузить журнал в CSV или JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := cmdutil.App(cmd)
			if err != nil {
				return err
			}

			records := app.Service().All(cmd.Context())

			var data []byte
			switch format {
			case "json":
				data, err = export.JSON(records)
			case "csv":
				data, err = export.CSV(records)
			default:
				return fmt.Errorf("неизвестный формат %q (csv, json)", format)
			}
			if errors.Is(err, export.ErrEmpty) {
				return errors.New("нет данных для выгрузки")
			}
			if err != nil {
				return err
			}

			return writeOutput(cmd, out, data)
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "формат (csv, json)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "файл для сохранения (по умолчанию stdout)")
	return cmd
}
