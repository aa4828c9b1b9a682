package main

import (
	"hotelier/config"
	"hotelier/di"
	"hotelier/helper"
	"hotelier/shared/logger"

	"github.com/rs/zerolog/log"
	_ "go.uber.org/automaxprocs"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if sink := logger.AttachFileSink(cfg); sink != nil {
		defer sink.Close()
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to apply database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
