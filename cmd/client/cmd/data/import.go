package data

import (
	"fmt"

	"github.com/spf13/cobra"

	"receivecopy/cmd/client/cmd/cmdutil"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Загрузить журнал из JSON",
		Long: `Заменяет весь журнал содержимым JSON-файла (массив записей).
Поддерживаются устаревшие поля slNo и subject. "-" читает stdin.
Если файл не является массивом, журнал не меняется.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cmdutil.App(cmd)
			if err != nil {
				return err
			}

			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			n, err := app.Service().Import(cmd.Context(), data)
			if err != nil {
				return cmdutil.DescribeError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Загружено записей: %d\n", n)
			return nil
		},
	}
}
