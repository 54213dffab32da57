package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"roulette_tracker/internal/app"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type CLI struct {
	EnvFile  string `kong:"default='.env',help='Path to the .env file'"`
	Config   string `kong:"short='c',default='config.yaml',help='Path to the table config (payouts, history page size)'"`
	LogLevel string `kong:"help='Log level override (debug, info, warn, error)'"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("roulette-tracker"),
		kong.Description("Roulette outcome tracker: spin log, croupier sessions and bet recommendations"),
		kong.UsageOnError(),
	)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.NewApp(app.Options{
		EnvFile:    cli.EnvFile,
		ConfigPath: cli.Config,
		LogLevel:   cli.LogLevel,
	})
	if err := a.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
