package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"gocalc/internal/app"
	"gocalc/internal/config"
	"gocalc/internal/transports/cli"
	"gocalc/pkg/logger"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	cfg := config.FromEnv()
	lg, closeLog, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	lg.Info("calculator application started")

	a := app.NewApp(cfg, lg)
	root := cli.New(a.Registry, lg, buildVersion())
	if err := root.ExecuteContext(ctx); err != nil {
		lg.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func buildVersion() string {
	v := version
	if commit != "" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " " + date
	}
	return v
}
