package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/anorb/embedo"
)

func main() {
	configPath := pflag.StringP("config", "c", "./config.toml", "path to the TOML config file")
	pflag.Parse()

	if !embedo.ConfigExists(*configPath) {
		log.Warn().Str("path", *configPath).Msg("config not detected, using defaults and environment")
	}

	cfg, err := embedo.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}

	logger, closer, err := embedo.NewLogger(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating logger")
	}
	defer closer.Close()

	bot, err := embedo.NewBot(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error creating bot")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bot.Start(ctx); err != nil {
		logger.Error().Err(err).Msg("bot stopped with error")
		os.Exit(1)
	}
}
