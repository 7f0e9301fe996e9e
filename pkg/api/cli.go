package api

import (
	"github.com/urfave/cli/v2"

	"github.com/linertrack/linertrack/pkg/aggregator"
	"github.com/linertrack/linertrack/pkg/carrier_client"
	"github.com/linertrack/linertrack/pkg/carrierconfig"
	"github.com/linertrack/linertrack/pkg/credentials"
	"github.com/linertrack/linertrack/pkg/redis_client"
	"github.com/linertrack/linertrack/pkg/util"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the carrier gateway web API",
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
				},
				Action: func(c *cli.Context) error {
					config, err := carrierconfig.Load()
					if err != nil {
						return err
					}

					if err := redis_client.Connect(false); err != nil {
						return err
					}

					credentialManager := credentials.NewManager(util.GetEnvironmentVariables())
					client := carrier_client.NewClient(config, credentialManager)
					registry := aggregator.NewRegistry(config, client)

					return SetupServer(c.String("listen"), aggregator.New(registry))
				},
			},
		},
	}
}
