package dcsa

import (
	"encoding/json"
	"fmt"
)

// trackingEventEnvelope is the superset of fields a DCSA Track & Trace event
// can carry; the eventType discriminator decides which of them matter.
type trackingEventEnvelope struct {
	EventID              string `json:"eventID"`
	EventType            string `json:"eventType"`
	EventCreatedDateTime string `json:"eventCreatedDateTime"`
	EventDateTime        string `json:"eventDateTime"`
	EventClassifierCode  string `json:"eventClassifierCode"`

	ShipmentEventTypeCode string `json:"shipmentEventTypeCode"`
	DocumentID            string `json:"documentID"`
	DocumentTypeCode      string `json:"documentTypeCode"`
	Reason                string `json:"reason"`

	TransportEventTypeCode string                 `json:"transportEventTypeCode"`
	TransportCall          *TrackingTransportCall `json:"transportCall"`

	EquipmentEventTypeCode string  `json:"equipmentEventTypeCode"`
	EquipmentReference     string  `json:"equipmentReference"`
	EmptyIndicatorCode     string  `json:"emptyIndicatorCode"`
	Seals                  []*Seal `json:"seals"`
}

// DecodeTrackingEvents parses a DCSA-native Track & Trace payload into the
// canonical event union. Carriers whose tracking surface already follows the
// DCSA standard share this decoder; proprietary payloads get their own mapper.
func DecodeTrackingEvents(data []byte) ([]TrackingEvent, error) {
	var envelopes []trackingEventEnvelope
	if err := json.Unmarshal(data, &envelopes); err != nil {
		return nil, fmt.Errorf("decode tracking events: %w", err)
	}

	var events []TrackingEvent

	for _, envelope := range envelopes {
		createdDateTime, err := NormalizeDateTime(envelope.EventCreatedDateTime)
		if err != nil {
			return nil, fmt.Errorf("eventCreatedDateTime %q: %w", envelope.EventCreatedDateTime, err)
		}
		eventDateTime, err := NormalizeDateTime(envelope.EventDateTime)
		if err != nil {
			return nil, fmt.Errorf("eventDateTime %q: %w", envelope.EventDateTime, err)
		}

		classifier := EventClassifierCode(envelope.EventClassifierCode)
		if classifier == "" {
			classifier = EventClassifierEstimated
		}

		base := EventBase{
			EventID:              envelope.EventID,
			EventType:            TrackingEventType(envelope.EventType),
			EventCreatedDateTime: createdDateTime,
			EventDateTime:        eventDateTime,
			EventClassifierCode:  classifier,
		}

		switch TrackingEventType(envelope.EventType) {
		case TrackingEventTypeShipment:
			events = append(events, &ShipmentEvent{
				EventBase:             base,
				ShipmentEventTypeCode: envelope.ShipmentEventTypeCode,
				DocumentID:            envelope.DocumentID,
				DocumentTypeCode:      envelope.DocumentTypeCode,
				Reason:                envelope.Reason,
			})

		case TrackingEventTypeTransport:
			events = append(events, &TransportEvent{
				EventBase:              base,
				TransportEventTypeCode: envelope.TransportEventTypeCode,
				TransportCall:          envelope.TransportCall,
			})

		case TrackingEventTypeEquipment:
			events = append(events, &EquipmentEvent{
				EventBase:              base,
				EquipmentEventTypeCode: envelope.EquipmentEventTypeCode,
				EquipmentReference:     envelope.EquipmentReference,
				EmptyIndicatorCode:     EmptyIndicatorCode(envelope.EmptyIndicatorCode),
				Seals:                  envelope.Seals,
			})

		default:
			return nil, fmt.Errorf("unknown tracking event type %q", envelope.EventType)
		}
	}

	return events, nil
}
