package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/linertrack/linertrack/pkg/aggregator"
	"github.com/linertrack/linertrack/pkg/api/routes"
)

func SetupServer(listen string, carrierAggregator *aggregator.Aggregator) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	resultsCache := routes.NewResultsCache()

	group := webApp.Group("/v1")

	group.Get("version", routes.APIVersion)

	routes.SchedulesRouter{
		Aggregator: carrierAggregator,
		Cache:      resultsCache,
	}.Register(group.Group("/schedules"))

	routes.TrackingRouter{
		Aggregator: carrierAggregator,
		Cache:      resultsCache,
	}.Register(group.Group("/tracking"))

	return webApp.Listen(listen)
}
