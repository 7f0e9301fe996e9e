package hmm

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

// VesselScheduleQuery answers voyage-scoped queries. The voyage number is the
// one hard requirement of this sub-API.
func (s Source) VesselScheduleQuery(ctx context.Context, q query.Schedule) ([]*dcsa.ServiceSchedule, error) {
	if q.CarrierVoyageNumber == "" {
		return nil, &source.MissingParameterError{
			Carrier:   s.Carrier(),
			SubAPI:    "vessel-schedule",
			Parameter: "carrierVoyageNumber",
		}
	}

	return s.scheduleCall(ctx, carrierconfig.EndpointScheduleVessel, map[string]string{
		"vvdCode": q.CarrierVoyageNumber,
	})
}

func (s Source) PointToPointQuery(ctx context.Context, q query.Schedule) ([]*dcsa.ServiceSchedule, error) {
	if q.FromLocationCode == "" || q.ToLocationCode == "" || q.PeriodDate == "" {
		return nil, &source.MissingParameterError{
			Carrier:   s.Carrier(),
			SubAPI:    "point-to-point",
			Parameter: "fromLocationCode, toLocationCode and periodDate",
		}
	}

	return s.scheduleCall(ctx, carrierconfig.EndpointSchedulePointToPoint, map[string]string{
		"fromLocationCode": q.FromLocationCode,
		"toLocationCode":   q.ToLocationCode,
		"periodDate":       q.PeriodDate,
	})
}

func (s Source) PortScheduleQuery(ctx context.Context, q query.Schedule) ([]*dcsa.ServiceSchedule, error) {
	if q.UNLocationCode == "" || q.StartDate == "" || q.EndDate == "" {
		return nil, &source.MissingParameterError{
			Carrier:   s.Carrier(),
			SubAPI:    "port-schedule",
			Parameter: "UNLocationCode, startDate and endDate",
		}
	}

	return s.scheduleCall(ctx, carrierconfig.EndpointSchedulePort, map[string]string{
		"portCode":  q.UNLocationCode,
		"startDate": q.StartDate,
		"endDate":   q.EndDate,
	})
}

func (s Source) scheduleCall(ctx context.Context, endpointType carrierconfig.EndpointType, requestBody map[string]string) ([]*dcsa.ServiceSchedule, error) {
	body, err := s.Client.Do(ctx, carrier_client.Call{
		Carrier:      string(s.Carrier()),
		EndpointType: endpointType,
		Body:         requestBody,
	})
	if err != nil {
		return nil, err
	}

	var response hmmScheduleResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decode hmm schedule payload: %w", err)
	}

	if response.ResultCode != "" && response.ResultCode != "Success" {
		return nil, fmt.Errorf("hmm %s returned result code %s: %s", endpointType, response.ResultCode, response.ResultMessage)
	}

	return mapScheduleItems(response.ResultData)
}
