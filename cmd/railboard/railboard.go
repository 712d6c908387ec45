package main

import (
	"os"
	"time"

	"github.com/railboard/railboard/pkg/api"
	"github.com/railboard/railboard/pkg/fetcher"
	"github.com/railboard/railboard/pkg/timeline"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("RAILBOARD_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("RAILBOARD_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "railboard",
		Description: "Single binary of truth for Railboard - runs all the services",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			fetcher.RegisterCLI(),
			timeline.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
