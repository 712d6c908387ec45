package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kr/pretty"
	"github.com/railboard/railboard/pkg/amtraker"
	"github.com/railboard/railboard/pkg/timetable"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "Fetch trains connecting stations and write an interchange document",
		ArgsUsage: "<station> <station> [station...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "output",
				Usage: "output file, defaults to trains_<stations>.json",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "dump the fetched document to stdout",
			},
		},
		Action: func(c *cli.Context) error {
			stations := timetable.NormaliseStationCodes(c.Args().Slice())
			if len(stations) < 2 {
				return fmt.Errorf("need at least two station codes, got %d", len(stations))
			}

			document, err := amtraker.NewClient().FindConnectingTrains(context.Background(), stations)
			if err != nil {
				return err
			}

			if c.Bool("pretty") {
				pretty.Println(document)
			}

			printSummary(document)

			outputPath := c.String("output")
			if outputPath == "" {
				outputPath = fmt.Sprintf("trains_%s.json", strings.Join(stations, "_"))
			}

			encoded, err := json.MarshalIndent(document, "", "  ")
			if err != nil {
				return err
			}

			if err := os.WriteFile(outputPath, encoded, 0644); err != nil {
				return err
			}

			log.Info().Str("file", outputPath).Int("trains", len(document.Trains)).Msg("Wrote train document")

			return nil
		},
	}
}

func printSummary(document *timetable.Document) {
	if len(document.Trains) == 0 {
		fmt.Println("No trains connect the requested stations")

		return
	}

	for _, train := range document.Trains {
		var stops []string

		for index, segment := range train.Segments {
			if index == 0 {
				stops = append(stops, formatStop(segment.From))
			}

			stops = append(stops, formatStop(segment.To))
		}

		fmt.Printf("%s %s [%s] %s\n", train.TrainNum, train.RouteName, train.Status, strings.Join(stops, " > "))
	}
}

func formatStop(stop timetable.StationStop) string {
	return fmt.Sprintf("%s %s", stop.StationCode, stop.EffectiveTime().Format("15:04"))
}
