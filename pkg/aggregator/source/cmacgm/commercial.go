package cmacgm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/linertrack/linertrack/pkg/aggregator/query"
	"github.com/linertrack/linertrack/pkg/carrier_client"
	"github.com/linertrack/linertrack/pkg/carrierconfig"
	"github.com/linertrack/linertrack/pkg/dcsa"
)

// CommercialScheduleQuery is the default sub-API: the DCSA-compliant
// commercial schedules surface. It has no trigger parameters of its own.
func (s Source) CommercialScheduleQuery(ctx context.Context, q query.Schedule) ([]*dcsa.ServiceSchedule, error) {
	params := url.Values{}

	if q.CarrierServiceCode != "" {
		params.Set("carrierServiceCode", q.CarrierServiceCode)
	}
	if q.UNLocationCode != "" {
		params.Set("UNLocationCode", q.UNLocationCode)
	}
	if q.StartDate != "" {
		params.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		params.Set("endDate", q.EndDate)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Cursor != "" {
		params.Set("cursor", q.Cursor)
	}

	body, err := s.Client.Do(ctx, carrier_client.Call{
		Carrier:      string(s.Carrier()),
		EndpointType: carrierconfig.EndpointSchedule,
		Query:        params,
	})
	if err != nil {
		return nil, err
	}

	var schedules []cmacgmCommercialSchedule
	if err := json.Unmarshal(body, &schedules); err != nil {
		return nil, fmt.Errorf("decode cmacgm commercial schedule payload: %w", err)
	}

	return mapCommercialSchedules(schedules)
}
