package receive

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"receivecopy/cmd/client/cmd/cmdutil"
	"receivecopy/internal/domain/receive"
)

func newUpdateCmd() *cobra.Command {
	var (
		rec    receive.Record
		action string
	)

	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Изменить запись",
		Long: `Меняет только поля, переданные флагами. Порядковый номер не редактируется.
Пустое значение флага очищает поле.`,
		Example: `  receivecopy receive update 3f2a... --action success --reply-no R-7 --reply-date 2024-04-02`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cmdutil.App(cmd)
			if err != nil {
				return err
			}

			patch := patchFromFlags(cmd, &rec, action)
			if patch.Empty() {
				return errors.New("не задано ни одного поля для изменения")
			}

			updated, err := app.Service().Update(cmd.Context(), args[0], patch)
			if err != nil {
				return cmdutil.DescribeError(err)
			}

			if cmdutil.JSONOutput(cmd) {
				return cmdutil.PrintJSON(cmd.OutOrStdout(), updated)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Запись №%s обновлена\n", updated.ConsecutiveNo)
			return nil
		},
	}

	cmd.Flags().StringVar(&action, "action", "", "статус: pending или success")
	bindFields(cmd, &rec)

	return cmd
}
