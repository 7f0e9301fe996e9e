package hmm

import (
	"fmt"
	"strings"
	"time"

	"github.com/linertrack/linertrack/pkg/aggregator/source"
	"github.com/linertrack/linertrack/pkg/dcsa"
	"github.com/linertrack/linertrack/pkg/util"
)

// mapScheduleItems groups schedule rows first by voyage code into service
// schedules, then by vessel name into vessel schedules within each.
func mapScheduleItems(items []hmmScheduleItem) ([]*dcsa.ServiceSchedule, error) {
	var voyageCodes []string
	services := map[string]*dcsa.ServiceSchedule{}
	vessels := map[string]*dcsa.VesselSchedule{}

	for _, item := range items {
		serviceSchedule := services[item.VVDCode]
		if serviceSchedule == nil {
			serviceSchedule = &dcsa.ServiceSchedule{
				CarrierServiceCode: util.TrimString(item.VVDCode, 11),
				CarrierServiceName: item.ServiceLaneName,
			}
			services[item.VVDCode] = serviceSchedule
			voyageCodes = append(voyageCodes, item.VVDCode)
		}

		vesselKey := fmt.Sprintf("%s/%s", item.VVDCode, item.VesselName)
		vesselSchedule := vessels[vesselKey]
		if vesselSchedule == nil {
			vesselSchedule = &dcsa.VesselSchedule{
				Vessel:        mapVessel(item),
				IsDummyVessel: item.VesselIMONumber == "",
			}
			vessels[vesselKey] = vesselSchedule
			serviceSchedule.VesselSchedules = append(serviceSchedule.VesselSchedules, vesselSchedule)
		}

		transportCall, err := mapScheduleItemCall(item)
		if err != nil {
			return nil, err
		}

		vesselSchedule.TransportCalls = append(vesselSchedule.TransportCalls, transportCall)
	}

	var schedules []*dcsa.ServiceSchedule
	for _, voyageCode := range voyageCodes {
		schedules = append(schedules, services[voyageCode])
	}

	return dcsa.FilterEmptySchedules(schedules), nil
}

func mapVessel(item hmmScheduleItem) *dcsa.Vessel {
	imoNumber := item.VesselIMONumber
	if imoNumber == "" {
		imoNumber = dcsa.DummyIMONumber
	}

	return &dcsa.Vessel{
		VesselIMONumber: imoNumber,
		VesselName:      item.VesselName,
		VesselCallSign:  item.VesselCallSign,
	}
}

func mapScheduleItemCall(item hmmScheduleItem) (*dcsa.TransportCall, error) {
	var timestamps []*dcsa.Timestamp

	if item.Arrival != nil && item.Arrival.ArrivalDate != "" {
		eventDateTime, err := composeDateTime(item.Arrival.ArrivalDate, item.Arrival.ArrivalTime)
		if err != nil {
			return nil, &source.MalformedTimestampError{
				Carrier: source.CarrierHMM,
				Field:   "arrival",
				Value:   fmt.Sprintf("%s %s", item.Arrival.ArrivalDate, item.Arrival.ArrivalTime),
			}
		}

		timestamps = append(timestamps, &dcsa.Timestamp{
			EventTypeCode:       dcsa.EventTypeArrival,
			EventClassifierCode: mapStatusClassifier(item.Arrival.Status),
			EventDateTime:       eventDateTime,
		})
	}

	if item.Departure != nil && item.Departure.DepartureDate != "" {
		eventDateTime, err := composeDateTime(item.Departure.DepartureDate, item.Departure.DepartureTime)
		if err != nil {
			return nil, &source.MalformedTimestampError{
				Carrier: source.CarrierHMM,
				Field:   "departure",
				Value:   fmt.Sprintf("%s %s", item.Departure.DepartureDate, item.Departure.DepartureTime),
			}
		}

		timestamps = append(timestamps, &dcsa.Timestamp{
			EventTypeCode:       dcsa.EventTypeDeparture,
			EventClassifierCode: mapStatusClassifier(item.Departure.Status),
			EventDateTime:       eventDateTime,
		})
	}

	return &dcsa.TransportCall{
		TransportCallReference:    fmt.Sprintf("%s-%s-%d", item.VVDCode, item.PortCode, item.PortSequence),
		CarrierImportVoyageNumber: item.VVDCode,
		Location: &dcsa.Location{
			LocationName:     item.PortName,
			UNLocationCode:   item.PortCode,
			FacilitySMDGCode: item.TerminalCode,
		},
		Timestamps: timestamps,
	}, nil
}

// composeDateTime converts the vendor's split YYYYMMDD + HHMM pair into the
// canonical UTC form. No timezone is inferred; the vendor publishes these as
// UTC. A value already containing "T" goes through the shared normalizer.
func composeDateTime(date string, timeOfDay string) (string, error) {
	if strings.Contains(date, "T") {
		return dcsa.NormalizeDateTime(date)
	}

	if _, err := time.Parse("20060102", date); err != nil {
		return "", err
	}

	if timeOfDay == "" {
		timeOfDay = "0000"
	}
	if _, err := time.Parse("1504", timeOfDay); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%s-%sT%s:%s:00Z",
		date[0:4], date[4:6], date[6:8],
		timeOfDay[0:2], timeOfDay[2:4],
	), nil
}

// mapStatusClassifier maps the vendor's status letters onto DCSA event
// classifiers. Unknown statuses count as estimates.
func mapStatusClassifier(status string) dcsa.EventClassifierCode {
	switch strings.ToUpper(status) {
	case "A", "ACTUAL":
		return dcsa.EventClassifierActual
	case "E", "ESTIMATED":
		return dcsa.EventClassifierEstimated
	case "L", "LONG-TERM", "PLANNED":
		return dcsa.EventClassifierPlanned
	default:
		return dcsa.EventClassifierEstimated
	}
}
