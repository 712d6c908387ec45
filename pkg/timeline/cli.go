package timeline

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/railboard/railboard/pkg/bitmapfont"
	"github.com/railboard/railboard/pkg/timetable"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Render a fetched train document as a PNG timeline",
		ArgsUsage: "<document.json> [output.png]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "buffer-before",
				Usage: "minutes of checkerboard slack before each train bar",
			},
			&cli.IntFlag{
				Name:  "buffer-after",
				Usage: "minutes of checkerboard slack after each train bar",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 1 {
				return fmt.Errorf("usage: render <document.json> [output.png]")
			}

			if err := bitmapfont.Setup(); err != nil {
				log.Fatal().Err(err).Msg("Failed to load font table")
			}

			documentPath := c.Args().Get(0)

			outputPath := c.Args().Get(1)
			if outputPath == "" {
				outputPath = strings.TrimSuffix(documentPath, ".json") + ".png"
			}

			documentFile, err := os.Open(documentPath)
			if err != nil {
				return err
			}
			defer documentFile.Close()

			document, err := timetable.ParseDocument(documentFile)
			if err != nil {
				return fmt.Errorf("parsing train document: %w", err)
			}

			canvas, err := Render(Request{
				Trains:       document.Trains,
				Stations:     document.Stations,
				Now:          time.Now(),
				BufferBefore: time.Duration(c.Int("buffer-before")) * time.Minute,
				BufferAfter:  time.Duration(c.Int("buffer-after")) * time.Minute,
			})
			if err != nil {
				return err
			}

			outputFile, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			defer outputFile.Close()

			if err := canvas.EncodePNG(outputFile); err != nil {
				return err
			}

			log.Info().Str("output", outputPath).Int("trains", len(document.Trains)).Msg("Rendered timeline")

			return nil
		},
	}
}
