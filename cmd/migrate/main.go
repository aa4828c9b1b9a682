package main

import (
	"hotelier/config"
	"hotelier/helper"
	"hotelier/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up, down, drop, step-up or version) is required")
	}

	direction, err := helper.ParseDirection(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid direction. Use up, down, drop, step-up or version")
	}

	if err = helper.Runner(config.Get(), direction); err != nil {
		log.Fatal().Err(err).Str("direction", string(direction)).Msg("migration failed")
	}
}
