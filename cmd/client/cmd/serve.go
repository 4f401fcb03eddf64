package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"receivecopy/cmd/client/cmd/cmdutil"
	"receivecopy/internal/app/server"
)

func newServeCmd() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP API",
		Long:  `Запускает HTTP API журнала поверх того же хранилища. Ctrl+C останавливает сервер.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := cmdutil.App(cmd)
			if err != nil {
				return err
			}

			if address == "" {
				address = app.Config().Server.Address
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(address, app.Service(), app.Logger()).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "адрес сервера (по умолчанию SERVER_ADDRESS)")
	return cmd
}
