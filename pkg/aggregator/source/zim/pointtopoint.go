package zim

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

type zimRoutesResponse struct {
	Routes []zimRoute `json:"routes"`
}

type zimRoute struct {
	TransitTime int      `json:"transitTime"`
	Legs        []zimLeg `json:"routeLegs"`
}

type zimLeg struct {
	Line       string `json:"line"`
	LineName   string `json:"lineName"`
	VoyageCode string `json:"voyage"`
	Direction  string `json:"leg"`

	VesselName string `json:"vesselName"`
	VesselIMO  string `json:"lloydsCode"`
	CallSign   string `json:"callSign"`

	DeparturePort     string `json:"departurePort"`
	DeparturePortName string `json:"departurePortName"`
	DepartureDate     string `json:"departureDate"`

	ArrivalPort     string `json:"arrivalPort"`
	ArrivalPortName string `json:"arrivalPortName"`
	ArrivalDate     string `json:"arrivalDate"`
}

func (s Source) PointToPointQuery(ctx context.Context, q query.Schedule) ([]*dcsa.ServiceSchedule, error) {
	params := url.Values{}
	params.Set("originCode", q.OriginCode)
	params.Set("destCode", q.DestinationCode)
	if q.StartDate != "" {
		params.Set("fromDate", q.StartDate)
	}
	if q.EndDate != "" {
		params.Set("toDate", q.EndDate)
	}

	body, err := s.Client.Do(ctx, carrier_client.Call{
		Carrier:      string(s.Carrier()),
		EndpointType: carrierconfig.EndpointSchedulePointToPoint,
		Query:        params,
	})
	if err != nil {
		return nil, err
	}

	var response zimRoutesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decode zim routes payload: %w", err)
	}

	return mapRoutes(response.Routes)
}

// mapRoutes groups route legs by line code, then by vessel within each line.
func mapRoutes(routes []zimRoute) ([]*dcsa.ServiceSchedule, error) {
	var lineCodes []string
	services := map[string]*dcsa.ServiceSchedule{}
	vessels := map[string]*dcsa.VesselSchedule{}

	for _, route := range routes {
		for _, leg := range route.Legs {
			serviceSchedule := services[leg.Line]
			if serviceSchedule == nil {
				serviceSchedule = &dcsa.ServiceSchedule{
					CarrierServiceCode: leg.Line,
					CarrierServiceName: leg.LineName,
				}
				services[leg.Line] = serviceSchedule
				lineCodes = append(lineCodes, leg.Line)
			}

			vessel, dummy := mapLegVessel(leg)

			vesselKey := fmt.Sprintf("%s/%s", leg.Line, vessel.VesselIMONumber)
			vesselSchedule := vessels[vesselKey]
			if vesselSchedule == nil {
				vesselSchedule = &dcsa.VesselSchedule{
					Vessel:        vessel,
					IsDummyVessel: dummy,
				}
				vessels[vesselKey] = vesselSchedule
				serviceSchedule.VesselSchedules = append(serviceSchedule.VesselSchedules, vesselSchedule)
			}

			departureCall, err := mapLegCall(leg, leg.DeparturePort, leg.DeparturePortName, dcsa.EventTypeDeparture, leg.DepartureDate)
			if err != nil {
				return nil, err
			}
			arrivalCall, err := mapLegCall(leg, leg.ArrivalPort, leg.ArrivalPortName, dcsa.EventTypeArrival, leg.ArrivalDate)
			if err != nil {
				return nil, err
			}

			vesselSchedule.TransportCalls = append(vesselSchedule.TransportCalls, departureCall, arrivalCall)
		}
	}

	var schedules []*dcsa.ServiceSchedule
	for _, lineCode := range lineCodes {
		schedules = append(schedules, services[lineCode])
	}

	return dcsa.FilterEmptySchedules(schedules), nil
}

func mapLegVessel(leg zimLeg) (*dcsa.Vessel, bool) {
	if leg.VesselIMO == "" {
		return &dcsa.Vessel{
			VesselIMONumber: dcsa.DummyIMONumber,
			VesselName:      leg.VesselName,
		}, true
	}

	return &dcsa.Vessel{
		VesselIMONumber: leg.VesselIMO,
		VesselName:      leg.VesselName,
		VesselCallSign:  leg.CallSign,
	}, false
}

func mapLegCall(leg zimLeg, portCode string, portName string, eventType dcsa.EventTypeCode, dateTime string) (*dcsa.TransportCall, error) {
	var timestamps []*dcsa.Timestamp

	if dateTime != "" {
		normalized, err := dcsa.NormalizeDateTime(dateTime)
		if err != nil {
			return nil, &source.MalformedTimestampError{
				Carrier: source.CarrierZIM,
				Field:   "route leg datetime",
				Value:   dateTime,
			}
		}

		timestamps = append(timestamps, &dcsa.Timestamp{
			EventTypeCode:       eventType,
			EventClassifierCode: dcsa.EventClassifierEstimated,
			EventDateTime:       normalized,
		})
	}

	return &dcsa.TransportCall{
		TransportCallReference:    fmt.Sprintf("%s-%s-%s", leg.VoyageCode, portCode, eventType),
		CarrierImportVoyageNumber: leg.VoyageCode,
		Location: &dcsa.Location{
			LocationName:   portName,
			UNLocationCode: portCode,
		},
		Timestamps: timestamps,
	}, nil
}
