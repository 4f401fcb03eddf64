package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"receivecopy/internal/app/client"
	"receivecopy/internal/app/server"
	"receivecopy/internal/config"
	"receivecopy/internal/utils/logger"
)

func main() {
	conf := config.MustLoad(os.Getenv("CONFIG_FILE"))
	log := logger.NewWithWriter(os.Stdout, conf.Env, conf.Logger.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app, err := client.New(ctx, conf, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	if notice := app.Loaded().Notice; notice != "" {
		log.Warn(notice)
	}

	if err := server.New(conf.Server.Address, app.Service(), log).Run(ctx); err != nil {
		log.Error("Сервер завершился с ошибкой", "error", err)
		app.Close()
		os.Exit(1)
	}
}
