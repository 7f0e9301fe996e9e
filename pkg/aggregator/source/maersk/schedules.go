package maersk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/linertrack/linertrack/pkg/aggregator/query"
	"github.com/linertrack/linertrack/pkg/aggregator/source"
	"github.com/linertrack/linertrack/pkg/carrier_client"
	"github.com/linertrack/linertrack/pkg/carrierconfig"
	"github.com/linertrack/linertrack/pkg/dcsa"
)

func (s Source) PointToPointQuery(ctx context.Context, q query.Schedule) ([]*dcsa.ServiceSchedule, error) {
	if q.PlaceOfReceipt == "" || q.PlaceOfDelivery == "" {
		return nil, &source.MissingParameterError{
			Carrier:   s.Carrier(),
			SubAPI:    "point-to-point",
			Parameter: "placeOfReceipt and placeOfDelivery",
		}
	}

	params := url.Values{}
	params.Set("collectionOriginUNLocationCode", q.PlaceOfReceipt)
	params.Set("deliveryDestinationUNLocationCode", q.PlaceOfDelivery)
	if q.StartDate != "" {
		params.Set("startDate", q.StartDate)
	}

	body, err := s.Client.Do(ctx, carrier_client.Call{
		Carrier:      string(s.Carrier()),
		EndpointType: carrierconfig.EndpointSchedulePointToPoint,
		Query:        params,
	})
	if err != nil {
		return nil, err
	}

	var response maerskOceanProductsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decode maersk ocean products payload: %w", err)
	}

	return mapOceanProducts(response.OceanProducts)
}

func (s Source) PortScheduleQuery(ctx context.Context, q query.Schedule) ([]*dcsa.ServiceSchedule, error) {
	if q.UNLocationCode == "" {
		return nil, &source.MissingParameterError{
			Carrier:   s.Carrier(),
			SubAPI:    "port-schedule",
			Parameter: "UNLocationCode",
		}
	}

	params := url.Values{}
	params.Set("UNLocationCode", q.UNLocationCode)
	if q.StartDate != "" {
		params.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		params.Set("endDate", q.EndDate)
	}

	body, err := s.Client.Do(ctx, carrier_client.Call{
		Carrier:      string(s.Carrier()),
		EndpointType: carrierconfig.EndpointSchedulePort,
		Query:        params,
	})
	if err != nil {
		return nil, err
	}

	var response maerskPortCallsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decode maersk port calls payload: %w", err)
	}

	return mapPortCalls(response.PortCalls)
}

// maerskDateWindow is the vendor's hard limit on schedule date parameters.
const (
	maerskDateWindowPast   = 90
	maerskDateWindowFuture = 180
)

// VesselScheduleQuery is the default sub-API. Any supplied start or end date
// must fall within the vendor's accepted window of [today-90d, today+180d].
func (s Source) VesselScheduleQuery(ctx context.Context, q query.Schedule) ([]*dcsa.ServiceSchedule, error) {
	for _, dateParameter := range []struct {
		name  string
		value string
	}{
		{"startDate", q.StartDate},
		{"endDate", q.EndDate},
	} {
		if dateParameter.value == "" {
			continue
		}

		if err := s.checkDateWindow(dateParameter.name, dateParameter.value); err != nil {
			return nil, err
		}
	}

	params := url.Values{}
	if q.VesselIMONumber != "" {
		params.Set("vesselIMONumber", q.VesselIMONumber)
	}
	if q.CarrierVoyageNumber != "" {
		params.Set("carrierVoyageNumber", q.CarrierVoyageNumber)
	}
	if q.CarrierServiceCode != "" {
		params.Set("carrierServiceCode", q.CarrierServiceCode)
	}
	if q.StartDate != "" {
		params.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		params.Set("endDate", q.EndDate)
	}

	body, err := s.Client.Do(ctx, carrier_client.Call{
		Carrier:      string(s.Carrier()),
		EndpointType: carrierconfig.EndpointScheduleVessel,
		Query:        params,
	})
	if err != nil {
		return nil, err
	}

	var vesselSchedules []maerskVesselSchedule
	if err := json.Unmarshal(body, &vesselSchedules); err != nil {
		return nil, fmt.Errorf("decode maersk vessel schedules payload: %w", err)
	}

	return mapVesselSchedules(vesselSchedules)
}

func (s Source) checkDateWindow(name string, value string) error {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return fmt.Errorf("maersk: %s %q is not a valid ISO date", name, value)
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	earliest := today.AddDate(0, 0, -maerskDateWindowPast)
	latest := today.AddDate(0, 0, maerskDateWindowFuture)

	if date.Before(earliest) || date.After(latest) {
		return &source.OutOfRangeDateError{
			Carrier:   s.Carrier(),
			Parameter: name,
			Value:     value,
			Window:    fmt.Sprintf("[today-%dd, today+%dd]", maerskDateWindowPast, maerskDateWindowFuture),
		}
	}

	return nil
}
