package zim

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
	return "ZIM API"
}

func (s Source) Carrier() source.Carrier {
	return source.CarrierZIM
}

// ScheduleQuery has a single sub-API: point-to-point. A query without both an
// origin and a destination is a hard error, not a fallback.
func (s Source) ScheduleQuery(ctx context.Context, q query.Schedule) ([]*dcsa.ServiceSchedule, error) {
	if q.OriginCode == "" {
		return nil, &source.MissingParameterError{
			Carrier:   s.Carrier(),
			SubAPI:    "point-to-point",
			Parameter: "originCode",
		}
	}
	if q.DestinationCode == "" {
		return nil, &source.MissingParameterError{
			Carrier:   s.Carrier(),
			SubAPI:    "point-to-point",
			Parameter: "destinationCode",
		}
	}

	log.Debug().
		Str("carrier", string(source.CarrierZIM)).
		Str("subapi", "point-to-point").
		Msg("Routing schedule query")

	return s.PointToPointQuery(ctx, q)
}
