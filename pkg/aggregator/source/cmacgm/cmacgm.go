package cmacgm

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
	return "CMA CGM API"
}

func (s Source) Carrier() source.Carrier {
	return source.CarrierCMACGM
}

// ScheduleQuery picks the sub-API in fixed priority order: Route, then
// Proforma, then Voyage, then the default DCSA commercial schedule. Route and
// Proforma win ties against Voyage even when Voyage's own triggers are also
// satisfied.
func (s Source) ScheduleQuery(ctx context.Context, q query.Schedule) ([]*dcsa.ServiceSchedule, error) {
	switch {
	case hasLoadingLocation(q) && hasDischargeLocation(q):
		s.logRouting("route")
		return s.RouteQuery(ctx, q)

	case q.ServiceCode != "" || q.LineCode != "" || (q.ZoneFromCode != "" && q.ZoneToCode != ""):
		s.logRouting("proforma")
		return s.ProformaQuery(ctx, q)

	case q.VoyageCode != "" || q.VesselIMONumber != "" || q.StartDate != "" || q.EndDate != "" ||
		q.PortCode != "" || q.CountryCode != "":
		s.logRouting("voyage")
		return s.VoyageQuery(ctx, q)

	default:
		s.logRouting("commercial")
		return s.CommercialScheduleQuery(ctx, q)
	}
}

func hasLoadingLocation(q query.Schedule) bool {
	return q.PlaceOfLoading != "" || q.UNLocodePlaceOfLoading != ""
}

func hasDischargeLocation(q query.Schedule) bool {
	return q.PlaceOfDischarge != "" || q.UNLocodePlaceOfDischarge != ""
}

func (s Source) logRouting(subAPI string) {
	log.Debug().
		Str("carrier", string(source.CarrierCMACGM)).
		Str("subapi", subAPI).
		Msg("Routing schedule query")
}
