package maersk

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/linertrack/linertrack/pkg/aggregator/query"
	"github.com/linertrack/linertrack/pkg/aggregator/source"
	"github.com/linertrack/linertrack/pkg/carrier_client"
	"github.com/linertrack/linertrack/pkg/dcsa"
)

type Source struct {
	Client *carrier_client.Client

	// Now is the clock used for the vessel schedule date window check.
	// Defaults to time.Now.
	Now func() time.Time
}

func (s Source) GetName() string {
	return "Maersk API"
}

func (s Source) Carrier() source.Carrier {
	return source.CarrierMaersk
}

// ScheduleQuery prefers point-to-point when a full lane is given, then the
// port schedule when a location and date are given without any vessel, voyage
// or service scoping, and defaults to the vessel schedule otherwise.
func (s Source) ScheduleQuery(ctx context.Context, q query.Schedule) ([]*dcsa.ServiceSchedule, error) {
	switch {
	case q.PlaceOfReceipt != "" && q.PlaceOfDelivery != "":
		s.logRouting("point-to-point")
		return s.PointToPointQuery(ctx, q)

	case q.UNLocationCode != "" && (q.StartDate != "" || q.EndDate != "") &&
		q.VesselIMONumber == "" && q.CarrierVoyageNumber == "" && q.CarrierServiceCode == "":
		s.logRouting("port-schedule")
		return s.PortScheduleQuery(ctx, q)

	default:
		s.logRouting("vessel-schedule")
		return s.VesselScheduleQuery(ctx, q)
	}
}

func (s Source) logRouting(subAPI string) {
	log.Debug().
		Str("carrier", string(source.CarrierMaersk)).
		Str("subapi", subAPI).
		Msg("Routing schedule query")
}

func (s Source) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}

	return time.Now()
}
