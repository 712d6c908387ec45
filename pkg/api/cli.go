package api

import (
	"context"

	"github.com/railboard/railboard/pkg/amtraker"
	"github.com/railboard/railboard/pkg/bitmapfont"
	"github.com/railboard/railboard/pkg/redis_client"
	"github.com/railboard/railboard/pkg/refresher"
	"github.com/railboard/railboard/pkg/traincache"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the timeline web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
					&cli.StringFlag{
						Name:  "routes",
						Usage: "YAML file of station corridors to keep warm",
					},
				},
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						return err
					}
					if err := bitmapfont.Setup(); err != nil {
						return err
					}

					trainCache := traincache.Setup(amtraker.NewClient())

					if routesPath := c.String("routes"); routesPath != "" {
						warmRoutes, err := refresher.LoadRoutes(routesPath)
						if err != nil {
							return err
						}

						for _, stations := range warmRoutes {
							trainCache.RegisterRoute(stations)
						}
					}

					refreshCtx, stopRefresh := context.WithCancel(context.Background())
					defer stopRefresh()

					go refresher.New(trainCache).Run(refreshCtx)

					return SetupServer(trainCache).Listen(c.String("listen"))
				},
			},
		},
	}
}
