package data

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"receivecopy/cmd/client/cmd/cmdutil"
)

func newClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Удалить все записи",
		Long:  `Удаляет все записи журнала. Без --yes спрашивает подтверждение (только в терминале).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := cmdutil.App(cmd)
			if err != nil {
				return err
			}

			if !yes {
				if !cmdutil.IsTerminal() {
					return errors.New("подтвердите удаление флагом --yes")
				}
				ok, err := cmdutil.Confirm(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout(), "Удалить все записи?")
				if err != nil {
					return fmt.Errorf("ошибка ввода: %w", err)
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Отменено")
					return nil
				}
			}

			if err := app.Service().Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Все записи удалены")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "не спрашивать подтверждение")
	return cmd
}
