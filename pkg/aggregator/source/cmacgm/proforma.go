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

// ProformaQuery answers service/line/zone-scoped long-term schedule queries.
// Proforma schedules are planning data with no vessel assignment.
func (s Source) ProformaQuery(ctx context.Context, q query.Schedule) ([]*dcsa.ServiceSchedule, error) {
	params := url.Values{}

	if q.ServiceCode != "" {
		params.Set("serviceCode", q.ServiceCode)
	}
	if q.LineCode != "" {
		params.Set("lineCode", q.LineCode)
	}
	if q.ZoneFromCode != "" && q.ZoneToCode != "" {
		params.Set("zoneFromCode", q.ZoneFromCode)
		params.Set("zoneToCode", q.ZoneToCode)
	}

	body, err := s.Client.Do(ctx, carrier_client.Call{
		Carrier:      string(s.Carrier()),
		EndpointType: carrierconfig.EndpointScheduleProforma,
		Query:        params,
	})
	if err != nil {
		return nil, err
	}

	var proformas []cmacgmProforma
	if err := json.Unmarshal(body, &proformas); err != nil {
		return nil, fmt.Errorf("decode cmacgm proforma payload: %w", err)
	}

	return mapProformas(proformas)
}
