package maersk

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/linertrack/linertrack/pkg/aggregator/query"
	"github.com/linertrack/linertrack/pkg/aggregator/source"
	"github.com/linertrack/linertrack/pkg/carrier_client"
	"github.com/linertrack/linertrack/pkg/carrierconfig"
	"github.com/linertrack/linertrack/pkg/dcsa"
)

func (s Source) TrackingQuery(ctx context.Context, q query.Tracking) ([]dcsa.TrackingEvent, error) {
	body, err := s.Client.Do(ctx, carrier_client.Call{
		Carrier:      string(s.Carrier()),
		EndpointType: carrierconfig.EndpointTracking,
		Query:        source.TrackingParams(q),
	})
	if err != nil {
		return nil, err
	}

	// Maersk wraps the DCSA event list in an envelope.
	var response struct {
		Events json.RawMessage `json:"events"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decode maersk tracking payload: %w", err)
	}

	events, err := dcsa.DecodeTrackingEvents(response.Events)
	if err != nil {
		return nil, fmt.Errorf("maersk tracking: %w", err)
	}

	return events, nil
}
