package routes

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"

	"github.com/linertrack/linertrack/pkg/aggregator"
	"github.com/linertrack/linertrack/pkg/aggregator/query"
)

type SchedulesRouter struct {
	Aggregator *aggregator.Aggregator
	Cache      *ResultsCache
}

func (r SchedulesRouter) Register(router fiber.Router) {
	router.Get("/", r.list)
}

func (r SchedulesRouter) list(c *fiber.Ctx) error {
	carriers, err := parseCarriers(c.Query("carriers"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	cacheKey := c.OriginalURL()
	if cached, ok := r.Cache.Get(c.UserContext(), cacheKey); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	scheduleQuery := query.Schedule{
		VesselIMONumber:     c.Query("vesselIMONumber"),
		CarrierServiceCode:  c.Query("carrierServiceCode"),
		CarrierVoyageNumber: c.Query("carrierVoyageNumber"),
		UNLocationCode:      c.Query("UNLocationCode"),
		StartDate:           c.Query("startDate"),
		EndDate:             c.Query("endDate"),
		Limit:               c.QueryInt("limit"),
		Cursor:              c.Query("cursor"),

		PlaceOfLoading:           c.Query("placeOfLoading"),
		UNLocodePlaceOfLoading:   c.Query("UNLocodePlaceOfLoading"),
		PlaceOfDischarge:         c.Query("placeOfDischarge"),
		UNLocodePlaceOfDischarge: c.Query("UNLocodePlaceOfDischarge"),
		VoyageCode:               c.Query("voyageCode"),
		ServiceCode:              c.Query("serviceCode"),
		LineCode:                 c.Query("lineCode"),
		ZoneFromCode:             c.Query("zoneFromCode"),
		ZoneToCode:               c.Query("zoneToCode"),
		PortCode:                 c.Query("portCode"),
		CountryCode:              c.Query("countryCode"),

		FromLocationCode: c.Query("fromLocationCode"),
		ToLocationCode:   c.Query("toLocationCode"),
		PeriodDate:       c.Query("periodDate"),

		PlaceOfReceipt:  c.Query("placeOfReceipt"),
		PlaceOfDelivery: c.Query("placeOfDelivery"),

		OriginCode:      c.Query("originCode"),
		DestinationCode: c.Query("destinationCode"),
	}

	result, err := r.Aggregator.ScheduleLookup(c.UserContext(), carriers, scheduleQuery)
	if err != nil && !errors.Is(err, aggregator.ErrAllCarriersFailed) {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resultReduced, marshalErr := sheriff.Marshal(&sheriff.Options{
		Groups: marshalGroups(c),
	}, result)
	if marshalErr != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce ScheduleResult",
		})
	}

	if errors.Is(err, aggregator.ErrAllCarriersFailed) {
		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(resultReduced)
	}

	body, marshalErr := json.Marshal(resultReduced)
	if marshalErr != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": marshalErr.Error(),
		})
	}

	r.Cache.Set(c.UserContext(), cacheKey, string(body))

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(string(body))
}

func marshalGroups(c *fiber.Ctx) []string {
	if c.Query("detailed") == "true" {
		return []string{"basic", "detailed"}
	}

	return []string{"basic"}
}
