package cmacgm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/linertrack/linertrack/pkg/aggregator/query"
	"github.com/linertrack/linertrack/pkg/aggregator/source"
	"github.com/linertrack/linertrack/pkg/carrier_client"
	"github.com/linertrack/linertrack/pkg/carrierconfig"
	"github.com/linertrack/linertrack/pkg/dcsa"
)

// RouteQuery answers lane-scoped (loading + discharge) schedule queries. Both
// sides of the lane are required, in either vendor-code or UN/LOCODE form.
func (s Source) RouteQuery(ctx context.Context, q query.Schedule) ([]*dcsa.ServiceSchedule, error) {
	if !hasLoadingLocation(q) {
		return nil, &source.MissingParameterError{
			Carrier:   s.Carrier(),
			SubAPI:    "route",
			Parameter: "placeOfLoading or unLocodePlaceOfLoading",
		}
	}
	if !hasDischargeLocation(q) {
		return nil, &source.MissingParameterError{
			Carrier:   s.Carrier(),
			SubAPI:    "route",
			Parameter: "placeOfDischarge or unLocodePlaceOfDischarge",
		}
	}

	params := url.Values{}

	if q.PlaceOfLoading != "" {
		params.Set("placeOfLoading", q.PlaceOfLoading)
	} else {
		params.Set("placeOfLoadingUnLocode", q.UNLocodePlaceOfLoading)
	}
	if q.PlaceOfDischarge != "" {
		params.Set("placeOfDischarge", q.PlaceOfDischarge)
	} else {
		params.Set("placeOfDischargeUnLocode", q.UNLocodePlaceOfDischarge)
	}
	if q.StartDate != "" {
		params.Set("departureDate", q.StartDate)
	}

	body, err := s.Client.Do(ctx, carrier_client.Call{
		Carrier:      string(s.Carrier()),
		EndpointType: carrierconfig.EndpointScheduleRoute,
		Query:        params,
	})
	if err != nil {
		return nil, err
	}

	var routings []cmacgmRouting
	if err := json.Unmarshal(body, &routings); err != nil {
		return nil, fmt.Errorf("decode cmacgm routing payload: %w", err)
	}

	return mapRoutings(routings)
}
