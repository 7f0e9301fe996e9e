package cmacgm

import (
	"fmt"

	"github.com/linertrack/linertrack/pkg/aggregator/source"
	"github.com/linertrack/linertrack/pkg/dcsa"
)

// Mappers are pure: vendor payload in, canonical records out, no I/O.
// Grouping preserves first-seen order so the same payload always maps to the
// same output.

func mapVoyageSchedules(voyageSchedules []cmacgmVoyageSchedule) ([]*dcsa.ServiceSchedule, error) {
	var serviceCodes []string
	services := map[string]*dcsa.ServiceSchedule{}
	vessels := map[string]*dcsa.VesselSchedule{}

	for _, voyageSchedule := range voyageSchedules {
		serviceCode := voyageSchedule.Service.Code

		serviceSchedule := services[serviceCode]
		if serviceSchedule == nil {
			serviceSchedule = &dcsa.ServiceSchedule{
				CarrierServiceCode: serviceCode,
				CarrierServiceName: voyageSchedule.Service.Name,
			}
			services[serviceCode] = serviceSchedule
			serviceCodes = append(serviceCodes, serviceCode)
		}

		vessel, dummy := mapVessel(voyageSchedule.Vessel)

		vesselKey := fmt.Sprintf("%s/%s", serviceCode, vessel.VesselIMONumber)
		vesselSchedule := vessels[vesselKey]
		if vesselSchedule == nil {
			vesselSchedule = &dcsa.VesselSchedule{
				Vessel:        vessel,
				IsDummyVessel: dummy,
			}
			vessels[vesselKey] = vesselSchedule
			serviceSchedule.VesselSchedules = append(serviceSchedule.VesselSchedules, vesselSchedule)
		}

		for _, portCall := range voyageSchedule.PortCalls {
			transportCall, err := mapPortCall(voyageSchedule.Voyage.Code, portCall)
			if err != nil {
				return nil, err
			}

			vesselSchedule.TransportCalls = append(vesselSchedule.TransportCalls, transportCall)
		}
	}

	var schedules []*dcsa.ServiceSchedule
	for _, serviceCode := range serviceCodes {
		schedules = append(schedules, services[serviceCode])
	}

	return dcsa.FilterEmptySchedules(schedules), nil
}

func mapPortCall(voyageCode string, portCall cmacgmPortCall) (*dcsa.TransportCall, error) {
	var timestamps []*dcsa.Timestamp

	arrivals, err := callTimeTimestamps(dcsa.EventTypeArrival, "arrival", portCall.Arrival)
	if err != nil {
		return nil, err
	}
	departures, err := callTimeTimestamps(dcsa.EventTypeDeparture, "departure", portCall.Departure)
	if err != nil {
		return nil, err
	}
	timestamps = append(timestamps, arrivals...)
	timestamps = append(timestamps, departures...)

	reference := portCall.CallReference
	if reference == "" {
		reference = fmt.Sprintf("%s-%s-%d", voyageCode, portCall.Port.Locode, portCall.SequenceNumber)
	}

	return &dcsa.TransportCall{
		TransportCallReference:    reference,
		CarrierImportVoyageNumber: voyageCode,
		Location: &dcsa.Location{
			LocationName:     portCall.Port.Name,
			UNLocationCode:   portCall.Port.Locode,
			FacilitySMDGCode: portCall.Port.FacilityCode,
		},
		Timestamps: timestamps,
	}, nil
}

func callTimeTimestamps(eventType dcsa.EventTypeCode, field string, callTime *cmacgmCallTime) ([]*dcsa.Timestamp, error) {
	if callTime == nil {
		return nil, nil
	}

	var timestamps []*dcsa.Timestamp

	values := []struct {
		classifier dcsa.EventClassifierCode
		value      string
		name       string
	}{
		{dcsa.EventClassifierActual, callTime.Actual, "actual"},
		{dcsa.EventClassifierEstimated, callTime.Estimated, "estimated"},
		{dcsa.EventClassifierPlanned, callTime.Planned, "planned"},
	}

	for _, entry := range values {
		if entry.value == "" {
			continue
		}

		normalized, err := dcsa.NormalizeDateTime(entry.value)
		if err != nil {
			return nil, &source.MalformedTimestampError{
				Carrier: source.CarrierCMACGM,
				Field:   fmt.Sprintf("%s.%s", field, entry.name),
				Value:   entry.value,
			}
		}

		timestamps = append(timestamps, &dcsa.Timestamp{
			EventTypeCode:       eventType,
			EventClassifierCode: entry.classifier,
			EventDateTime:       normalized,
		})
	}

	return timestamps, nil
}

func mapVessel(vessel *cmacgmVessel) (*dcsa.Vessel, bool) {
	if vessel == nil || vessel.IMONumber == "" {
		name := ""
		if vessel != nil {
			name = vessel.Name
		}

		return &dcsa.Vessel{
			VesselIMONumber: dcsa.DummyIMONumber,
			VesselName:      name,
		}, true
	}

	return &dcsa.Vessel{
		VesselIMONumber: vessel.IMONumber,
		VesselName:      vessel.Name,
		VesselFlag:      vessel.Flag,
		VesselCallSign:  vessel.CallSign,
	}, false
}

func mapRoutings(routings []cmacgmRouting) ([]*dcsa.ServiceSchedule, error) {
	var serviceCodes []string
	services := map[string]*dcsa.ServiceSchedule{}
	vessels := map[string]*dcsa.VesselSchedule{}

	for _, routing := range routings {
		for _, leg := range routing.RoutingDetails {
			serviceCode := leg.Service.Code

			serviceSchedule := services[serviceCode]
			if serviceSchedule == nil {
				serviceSchedule = &dcsa.ServiceSchedule{
					CarrierServiceCode: serviceCode,
					CarrierServiceName: leg.Service.Name,
				}
				services[serviceCode] = serviceSchedule
				serviceCodes = append(serviceCodes, serviceCode)
			}

			vessel, dummy := mapVessel(leg.Vessel)

			vesselKey := fmt.Sprintf("%s/%s", serviceCode, vessel.VesselIMONumber)
			vesselSchedule := vessels[vesselKey]
			if vesselSchedule == nil {
				vesselSchedule = &dcsa.VesselSchedule{
					Vessel:        vessel,
					IsDummyVessel: dummy,
				}
				vessels[vesselKey] = vesselSchedule
				serviceSchedule.VesselSchedules = append(serviceSchedule.VesselSchedules, vesselSchedule)
			}

			departureCall, err := mapRoutingPoint(leg, leg.PointFrom, dcsa.EventTypeDeparture, leg.PointFrom.Departure)
			if err != nil {
				return nil, err
			}
			arrivalCall, err := mapRoutingPoint(leg, leg.PointTo, dcsa.EventTypeArrival, leg.PointTo.Arrival)
			if err != nil {
				return nil, err
			}

			vesselSchedule.TransportCalls = append(vesselSchedule.TransportCalls, departureCall, arrivalCall)
		}
	}

	var schedules []*dcsa.ServiceSchedule
	for _, serviceCode := range serviceCodes {
		schedules = append(schedules, services[serviceCode])
	}

	return dcsa.FilterEmptySchedules(schedules), nil
}

func mapRoutingPoint(leg cmacgmRoutingLeg, point cmacgmRoutingPoint, eventType dcsa.EventTypeCode, dateTime string) (*dcsa.TransportCall, error) {
	var timestamps []*dcsa.Timestamp

	if dateTime != "" {
		normalized, err := dcsa.NormalizeDateTime(dateTime)
		if err != nil {
			return nil, &source.MalformedTimestampError{
				Carrier: source.CarrierCMACGM,
				Field:   "routing point datetime",
				Value:   dateTime,
			}
		}

		// Routing points carry no explicit classifier.
		timestamps = append(timestamps, &dcsa.Timestamp{
			EventTypeCode:       eventType,
			EventClassifierCode: dcsa.EventClassifierEstimated,
			EventDateTime:       normalized,
		})
	}

	reference := point.CallReference
	if reference == "" {
		reference = fmt.Sprintf("%s-%s-%s", leg.Voyage.Code, point.Location.Locode, eventType)
	}

	return &dcsa.TransportCall{
		TransportCallReference:    reference,
		CarrierImportVoyageNumber: leg.Voyage.Code,
		Location: &dcsa.Location{
			LocationName:     point.Location.Name,
			UNLocationCode:   point.Location.Locode,
			FacilitySMDGCode: point.Location.FacilityCode,
		},
		Timestamps: timestamps,
	}, nil
}

func mapProformas(proformas []cmacgmProforma) ([]*dcsa.ServiceSchedule, error) {
	var schedules []*dcsa.ServiceSchedule

	for _, proforma := range proformas {
		vesselSchedule := &dcsa.VesselSchedule{
			Vessel:        &dcsa.Vessel{VesselIMONumber: dcsa.DummyIMONumber},
			IsDummyVessel: true,
		}

		for _, call := range proforma.Calls {
			var timestamps []*dcsa.Timestamp

			for _, entry := range []struct {
				eventType dcsa.EventTypeCode
				value     string
			}{
				{dcsa.EventTypeArrival, call.Arrival},
				{dcsa.EventTypeDeparture, call.Departure},
			} {
				if entry.value == "" {
					continue
				}

				normalized, err := dcsa.NormalizeDateTime(entry.value)
				if err != nil {
					return nil, &source.MalformedTimestampError{
						Carrier: source.CarrierCMACGM,
						Field:   "proforma call datetime",
						Value:   entry.value,
					}
				}

				// Proforma data is planning only.
				timestamps = append(timestamps, &dcsa.Timestamp{
					EventTypeCode:       entry.eventType,
					EventClassifierCode: dcsa.EventClassifierPlanned,
					EventDateTime:       normalized,
				})
			}

			vesselSchedule.TransportCalls = append(vesselSchedule.TransportCalls, &dcsa.TransportCall{
				TransportCallReference:    fmt.Sprintf("%s-%s-%d", proforma.Voyage.Code, call.Port.Locode, call.SequenceNumber),
				CarrierImportVoyageNumber: proforma.Voyage.Code,
				Location: &dcsa.Location{
					LocationName:     call.Port.Name,
					UNLocationCode:   call.Port.Locode,
					FacilitySMDGCode: call.Port.FacilityCode,
				},
				Timestamps: timestamps,
			})
		}

		schedules = append(schedules, &dcsa.ServiceSchedule{
			CarrierServiceCode: proforma.Service.Code,
			CarrierServiceName: proforma.Service.Name,
			VesselSchedules:    []*dcsa.VesselSchedule{vesselSchedule},
		})
	}

	return dcsa.FilterEmptySchedules(schedules), nil
}

func mapCommercialSchedules(commercialSchedules []cmacgmCommercialSchedule) ([]*dcsa.ServiceSchedule, error) {
	var schedules []*dcsa.ServiceSchedule

	for _, commercialSchedule := range commercialSchedules {
		schedule := &dcsa.ServiceSchedule{
			CarrierServiceCode:        commercialSchedule.CarrierServiceCode,
			CarrierServiceName:        commercialSchedule.CarrierServiceName,
			UniversalServiceReference: commercialSchedule.UniversalServiceReference,
		}

		for _, vendorVesselSchedule := range commercialSchedule.VesselSchedules {
			vesselSchedule := &dcsa.VesselSchedule{
				IsDummyVessel: vendorVesselSchedule.IsDummyVessel,
			}

			if vendorVesselSchedule.Vessel != nil && vendorVesselSchedule.Vessel.VesselIMONumber != "" {
				vesselSchedule.Vessel = &dcsa.Vessel{
					VesselIMONumber: vendorVesselSchedule.Vessel.VesselIMONumber,
					VesselName:      vendorVesselSchedule.Vessel.VesselName,
					VesselFlag:      vendorVesselSchedule.Vessel.VesselFlag,
					VesselCallSign:  vendorVesselSchedule.Vessel.VesselCallSign,
				}
			} else {
				name := ""
				if vendorVesselSchedule.Vessel != nil {
					name = vendorVesselSchedule.Vessel.VesselName
				}
				vesselSchedule.Vessel = &dcsa.Vessel{
					VesselIMONumber: dcsa.DummyIMONumber,
					VesselName:      name,
				}
				vesselSchedule.IsDummyVessel = true
			}

			for _, vendorTransportCall := range vendorVesselSchedule.TransportCalls {
				transportCall := &dcsa.TransportCall{
					TransportCallReference:    vendorTransportCall.TransportCallReference,
					CarrierImportVoyageNumber: vendorTransportCall.CarrierImportVoyageNumber,
					CarrierExportVoyageNumber: vendorTransportCall.CarrierExportVoyageNumber,
					Location: &dcsa.Location{
						LocationName:     vendorTransportCall.Location.LocationName,
						UNLocationCode:   vendorTransportCall.Location.UNLocationCode,
						FacilitySMDGCode: vendorTransportCall.Location.FacilitySMDGCode,
					},
				}

				for _, vendorTimestamp := range vendorTransportCall.Timestamps {
					normalized, err := dcsa.NormalizeDateTime(vendorTimestamp.EventDateTime)
					if err != nil {
						return nil, &source.MalformedTimestampError{
							Carrier: source.CarrierCMACGM,
							Field:   "eventDateTime",
							Value:   vendorTimestamp.EventDateTime,
						}
					}

					classifier := dcsa.EventClassifierCode(vendorTimestamp.EventClassifierCode)
					if classifier == "" {
						classifier = dcsa.EventClassifierEstimated
					}

					transportCall.Timestamps = append(transportCall.Timestamps, &dcsa.Timestamp{
						EventTypeCode:       dcsa.EventTypeCode(vendorTimestamp.EventTypeCode),
						EventClassifierCode: classifier,
						EventDateTime:       normalized,
					})
				}

				for _, vendorCutOff := range vendorTransportCall.CutOffTimes {
					transportCall.CutOffTimes = append(transportCall.CutOffTimes, &dcsa.CutOffTime{
						CutOffDateTimeCode: vendorCutOff.CutOffDateTimeCode,
						CutOffDateTime:     vendorCutOff.CutOffDateTime,
					})
				}

				vesselSchedule.TransportCalls = append(vesselSchedule.TransportCalls, transportCall)
			}

			schedule.VesselSchedules = append(schedule.VesselSchedules, vesselSchedule)
		}

		schedules = append(schedules, schedule)
	}

	return dcsa.FilterEmptySchedules(schedules), nil
}
