package cmacgm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/linertrack/linertrack/pkg/aggregator/query"
	"github.com/linertrack/linertrack/pkg/carrier_client"
	"github.com/linertrack/linertrack/pkg/carrierconfig"
	"github.com/linertrack/linertrack/pkg/dcsa"
)

// VoyageQuery answers vessel/voyage-scoped schedule queries.
func (s Source) VoyageQuery(ctx context.Context, q query.Schedule) ([]*dcsa.ServiceSchedule, error) {
	params := url.Values{}

	if q.VoyageCode != "" {
		params.Set("voyageCode", q.VoyageCode)
	}
	if q.VesselIMONumber != "" {
		params.Set("vesselIMONumber", q.VesselIMONumber)
	}
	if q.StartDate != "" {
		params.Set("fromDate", q.StartDate)
	}
	if q.EndDate != "" {
		params.Set("toDate", q.EndDate)
	}
	if q.PortCode != "" {
		params.Set("portCode", q.PortCode)
	}
	if q.CountryCode != "" {
		params.Set("countryCode", q.CountryCode)
	}

	body, err := s.Client.Do(ctx, carrier_client.Call{
		Carrier:      string(s.Carrier()),
		EndpointType: carrierconfig.EndpointScheduleVoyage,
		Query:        params,
	})
	if err != nil {
		return nil, err
	}

	var voyageSchedules []cmacgmVoyageSchedule
	if err := json.Unmarshal(body, &voyageSchedules); err != nil {
		return nil, fmt.Errorf("decode cmacgm voyage payload: %w", err)
	}

	return mapVoyageSchedules(voyageSchedules)
}
