package receive

import (
	"fmt"

	"github.com/spf13/cobra"

	"receivecopy/cmd/client/cmd/cmdutil"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Счетчики по статусам",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := cmdutil.App(cmd)
			if err != nil {
				return err
			}

			stats := app.Service().Stats(cmd.Context())
			if cmdutil.JSONOutput(cmd) {
				return cmdutil.PrintJSON(cmd.OutOrStdout(), stats)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Всего: %d\nВ работе: %d\nИсполнено: %d\n", stats.Total, stats.Pending, stats.Success)
			return nil
		},
	}
}

func newNextNumberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next-number",
		Short: "Предложить следующий порядковый номер",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := cmdutil.App(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.Service().NextNumber(cmd.Context()))
			return nil
		},
	}
}
