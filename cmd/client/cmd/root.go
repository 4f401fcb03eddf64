// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"receivecopy/cmd/client/cmd/cmdutil"
	"receivecopy/cmd/client/cmd/data"
	"receivecopy/cmd/client/cmd/receive"
	"receivecopy/internal/app/client"
	"receivecopy/internal/config"
	"receivecopy/internal/utils/logger"
)

type rootOptions struct {
	cfgFile string
	debug   bool
	json    bool
}

// NewRootCmd собирает дерево команд
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	var app *client.App

	rootCmd := &cobra.Command{
		Use:   "receivecopy",
		Short: "Receive Copy - журнал входящей корреспонденции",
		Long: `Receive Copy ведет журнал входящих писем: добавление и правка записей,
поиск и фильтр по датам, постраничный просмотр, импорт и выгрузка, печать.

Данные хранятся локально (SQLite по умолчанию) и переживают перезапуск.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			app, err = setupApp(cmd, opts)
			if err != nil {
				return err
			}
			cmd.SetContext(cmdutil.WithApp(cmd.Context(), app))
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "вывод в формате JSON")

	rootCmd.AddCommand(receive.NewCmd())
	rootCmd.AddCommand(data.NewCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", cmdutil.DescribeError(err))
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, opts *rootOptions) (*client.App, error) {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	level := cfg.Logger.LogLevel
	if opts.debug {
		level = "debug"
	}
	// Логи идут в stderr, чтобы не смешиваться с выводом команд
	log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Env, level)

	app, err := client.New(cmd.Context(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	if notice := app.Loaded().Notice; notice != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), notice)
	}
	return app, nil
}
