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

func (s Source) TrackingQuery(ctx context.Context, q query.Tracking) ([]dcsa.TrackingEvent, error) {
	requestBody := map[string]string{}
	if q.CarrierBookingReference != "" {
		requestBody["bookingNo"] = q.CarrierBookingReference
	}
	if q.TransportDocumentReference != "" {
		requestBody["blNo"] = q.TransportDocumentReference
	}
	if q.EquipmentReference != "" {
		requestBody["containerNo"] = q.EquipmentReference
	}

	body, err := s.Client.Do(ctx, carrier_client.Call{
		Carrier:      string(s.Carrier()),
		EndpointType: carrierconfig.EndpointTracking,
		Body:         requestBody,
	})
	if err != nil {
		return nil, err
	}

	var response hmmTrackingResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decode hmm tracking payload: %w", err)
	}

	if response.ResultCode != "" && response.ResultCode != "Success" {
		return nil, fmt.Errorf("hmm tracking returned result code %s: %s", response.ResultCode, response.ResultMessage)
	}

	return mapTrackingItems(response.ResultData)
}

// mapTrackingItems maps the proprietary event rows onto the DCSA union. A row
// naming a document is a shipment event, a row naming a container is an
// equipment event, anything else is a transport movement.
func mapTrackingItems(items []hmmTrackingItem) ([]dcsa.TrackingEvent, error) {
	var events []dcsa.TrackingEvent

	for _, item := range items {
		eventDateTime, err := composeDateTime(item.EventDate, item.EventTime)
		if err != nil {
			return nil, &source.MalformedTimestampError{
				Carrier: source.CarrierHMM,
				Field:   "event",
				Value:   fmt.Sprintf("%s %s", item.EventDate, item.EventTime),
			}
		}

		createdDate := item.IssueDate
		createdTime := item.IssueTime
		if createdDate == "" {
			createdDate = item.EventDate
			createdTime = item.EventTime
		}
		createdDateTime, err := composeDateTime(createdDate, createdTime)
		if err != nil {
			return nil, &source.MalformedTimestampError{
				Carrier: source.CarrierHMM,
				Field:   "issue",
				Value:   fmt.Sprintf("%s %s", createdDate, createdTime),
			}
		}

		base := dcsa.EventBase{
			EventCreatedDateTime: createdDateTime,
			EventDateTime:        eventDateTime,
			EventClassifierCode:  mapStatusClassifier(item.StatusCode),
		}

		switch {
		case item.DocumentNumber != "":
			base.EventType = dcsa.TrackingEventTypeShipment
			events = append(events, &dcsa.ShipmentEvent{
				EventBase:             base,
				ShipmentEventTypeCode: item.EventName,
				DocumentID:            item.DocumentNumber,
				DocumentTypeCode:      item.DocumentType,
			})

		case item.ContainerNumber != "":
			base.EventType = dcsa.TrackingEventTypeEquipment

			emptyIndicator := dcsa.EmptyIndicatorLaden
			if item.FullEmpty == "E" || item.FullEmpty == "EMPTY" {
				emptyIndicator = dcsa.EmptyIndicatorEmpty
			}

			equipmentEvent := &dcsa.EquipmentEvent{
				EventBase:              base,
				EquipmentEventTypeCode: item.EventName,
				EquipmentReference:     item.ContainerNumber,
				EmptyIndicatorCode:     emptyIndicator,
			}
			if item.SealNumber != "" {
				equipmentEvent.Seals = []*dcsa.Seal{{SealNumber: item.SealNumber}}
			}

			events = append(events, equipmentEvent)

		default:
			base.EventType = dcsa.TrackingEventTypeTransport

			transportCall := &dcsa.TrackingTransportCall{
				ModeOfTransport: "VESSEL",
				Location: &dcsa.Location{
					LocationName:   item.PortName,
					UNLocationCode: item.PortCode,
				},
			}
			if item.VesselName != "" {
				transportCall.Vessel = &dcsa.Vessel{
					VesselIMONumber: dcsa.DummyIMONumber,
					VesselName:      item.VesselName,
				}
			}
			if item.VVDCode != "" {
				transportCall.TransportCallID = fmt.Sprintf("%s-%s", item.VVDCode, item.PortCode)
			}

			events = append(events, &dcsa.TransportEvent{
				EventBase:              base,
				TransportEventTypeCode: item.EventName,
				TransportCall:          transportCall,
			})
		}
	}

	return events, nil
}
