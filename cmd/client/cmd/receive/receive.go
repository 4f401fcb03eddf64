package receive

import (
	"github.com/spf13/cobra"
)

// NewCmd - родительская команда для операций с записями журнала
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receive",
		Short: "Управление записями журнала",
		Long:  `Добавление, правка, просмотр и поиск записей входящей корреспонденции.`,
	}

	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newUpdateCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newNextNumberCmd())

	return cmd
}
