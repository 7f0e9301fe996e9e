package dcsa

// TrackingEvent is the discriminated union over the DCSA Track & Trace event
// types. The concrete shape of an event is fully determined by its EventType.
type TrackingEvent interface {
	GetEventType() TrackingEventType
	GetEventBase() *EventBase
}

type TrackingEventType string

const (
	TrackingEventTypeShipment  TrackingEventType = "SHIPMENT"
	TrackingEventTypeTransport TrackingEventType = "TRANSPORT"
	TrackingEventTypeEquipment TrackingEventType = "EQUIPMENT"
)

// EventBase carries the fields common to every tracking event.
type EventBase struct {
	EventID              string            `json:"eventID,omitempty" groups:"basic,detailed"`
	EventType            TrackingEventType `json:"eventType" groups:"basic,detailed"`
	EventCreatedDateTime string            `json:"eventCreatedDateTime" groups:"basic,detailed"`
	EventDateTime        string            `json:"eventDateTime" groups:"basic,detailed"`

	EventClassifierCode EventClassifierCode `json:"eventClassifierCode,omitempty" groups:"basic,detailed"`
}

type ShipmentEvent struct {
	EventBase `groups:"basic,detailed"`

	ShipmentEventTypeCode string `json:"shipmentEventTypeCode" groups:"basic,detailed"`
	DocumentID            string `json:"documentID" groups:"basic,detailed"`
	DocumentTypeCode      string `json:"documentTypeCode" groups:"basic,detailed"`
	Reason                string `json:"reason,omitempty" groups:"detailed"`
}

type TransportEvent struct {
	EventBase `groups:"basic,detailed"`

	TransportEventTypeCode string                 `json:"transportEventTypeCode" groups:"basic,detailed"`
	TransportCall          *TrackingTransportCall `json:"transportCall,omitempty" groups:"basic,detailed"`
}

// TrackingTransportCall is the Track & Trace variant of a transport call. It
// references a call by ID rather than embedding the full schedule shape.
type TrackingTransportCall struct {
	TransportCallID string    `json:"transportCallID,omitempty" groups:"basic,detailed"`
	ModeOfTransport string    `json:"modeOfTransport,omitempty" groups:"basic,detailed"`
	Vessel          *Vessel   `json:"vessel,omitempty" groups:"basic,detailed"`
	Location        *Location `json:"location,omitempty" groups:"basic,detailed"`
}

type EquipmentEvent struct {
	EventBase `groups:"basic,detailed"`

	EquipmentEventTypeCode string             `json:"equipmentEventTypeCode" groups:"basic,detailed"`
	EquipmentReference     string             `json:"equipmentReference" groups:"basic,detailed"`
	EmptyIndicatorCode     EmptyIndicatorCode `json:"emptyIndicatorCode" groups:"basic,detailed"`
	Seals                  []*Seal            `json:"seals,omitempty" groups:"detailed"`
}

type EmptyIndicatorCode string

const (
	EmptyIndicatorEmpty EmptyIndicatorCode = "EMPTY"
	EmptyIndicatorLaden EmptyIndicatorCode = "LADEN"
)

type Seal struct {
	SealNumber string `json:"sealNumber" groups:"detailed"`
	SealSource string `json:"sealSource,omitempty" groups:"detailed"`
	SealType   string `json:"sealType,omitempty" groups:"detailed"`
}

func (e *ShipmentEvent) GetEventType() TrackingEventType { return TrackingEventTypeShipment }
func (e *ShipmentEvent) GetEventBase() *EventBase        { return &e.EventBase }

func (e *TransportEvent) GetEventType() TrackingEventType { return TrackingEventTypeTransport }
func (e *TransportEvent) GetEventBase() *EventBase        { return &e.EventBase }

func (e *EquipmentEvent) GetEventType() TrackingEventType { return TrackingEventTypeEquipment }
func (e *EquipmentEvent) GetEventBase() *EventBase        { return &e.EventBase }
