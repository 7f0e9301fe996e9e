package routes

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"

	"github.com/linertrack/linertrack/pkg/aggregator"
	"github.com/linertrack/linertrack/pkg/aggregator/query"
)

type TrackingRouter struct {
	Aggregator *aggregator.Aggregator
	Cache      *ResultsCache
}

func (r TrackingRouter) Register(router fiber.Router) {
	router.Get("/", r.list)
}

func (r TrackingRouter) list(c *fiber.Ctx) error {
	carriers, err := parseCarriers(c.Query("carriers"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	trackingQuery := query.Tracking{
		CarrierBookingReference:    c.Query("carrierBookingReference"),
		TransportDocumentReference: c.Query("transportDocumentReference"),
		EquipmentReference:         c.Query("equipmentReference"),

		EventCreatedDateTimeGte: c.Query("eventCreatedDateTime:gte"),
		EventCreatedDateTimeLte: c.Query("eventCreatedDateTime:lte"),

		Limit:  c.QueryInt("limit"),
		Cursor: c.Query("cursor"),
	}

	if eventType := c.Query("eventType"); eventType != "" {
		trackingQuery.EventType = strings.Split(eventType, ",")
	}

	if trackingQuery.CarrierBookingReference == "" &&
		trackingQuery.TransportDocumentReference == "" &&
		trackingQuery.EquipmentReference == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "One of carrierBookingReference, transportDocumentReference or equipmentReference must be provided",
		})
	}

	cacheKey := c.OriginalURL()
	if cached, ok := r.Cache.Get(c.UserContext(), cacheKey); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	result, err := r.Aggregator.TrackingLookup(c.UserContext(), carriers, trackingQuery)
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
			"error": "Sheriff could not reduce TrackingResult",
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
