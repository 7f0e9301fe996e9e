package hmm

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/linertrack/linertrack/pkg/aggregator/query"
	"github.com/linertrack/linertrack/pkg/aggregator/source"
	"github.com/linertrack/linertrack/pkg/carrier_client"
	"github.com/linertrack/linertrack/pkg/dcsa"
)

type Source struct {
	Client *carrier_client.Client
}

func (s Source) GetName() string {
	return "HMM Gateway API"
}

func (s Source) Carrier() source.Carrier {
	return source.CarrierHMM
}

// ScheduleQuery routes to the vessel schedule when a voyage number is given,
// then point-to-point, then port schedule. When nothing matches it falls back
// to the vessel schedule, which then fails on its own missing-voyage check.
// That fallback-then-fail shape is the established behaviour of this surface;
// callers depend on the error naming carrierVoyageNumber.
func (s Source) ScheduleQuery(ctx context.Context, q query.Schedule) ([]*dcsa.ServiceSchedule, error) {
	switch {
	case q.CarrierVoyageNumber != "":
		s.logRouting("vessel-schedule")
		return s.VesselScheduleQuery(ctx, q)

	case q.FromLocationCode != "" && q.ToLocationCode != "" && q.PeriodDate != "":
		s.logRouting("point-to-point")
		return s.PointToPointQuery(ctx, q)

	case q.UNLocationCode != "" && q.StartDate != "" && q.EndDate != "":
		s.logRouting("port-schedule")
		return s.PortScheduleQuery(ctx, q)

	default:
		s.logRouting("vessel-schedule")
		return s.VesselScheduleQuery(ctx, q)
	}
}

func (s Source) logRouting(subAPI string) {
	log.Debug().
		Str("carrier", string(source.CarrierHMM)).
		Str("subapi", subAPI).
		Msg("Routing schedule query")
}
