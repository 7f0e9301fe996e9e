package source

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/linertrack/linertrack/pkg/aggregator/query"
)

// TrackingParams builds the query string for a DCSA-native Track & Trace
// endpoint. The parameter names are shared across every carrier that follows
// the standard.
func TrackingParams(q query.Tracking) url.Values {
	params := url.Values{}

	if q.CarrierBookingReference != "" {
		params.Set("carrierBookingReference", q.CarrierBookingReference)
	}
	if q.TransportDocumentReference != "" {
		params.Set("transportDocumentReference", q.TransportDocumentReference)
	}
	if q.EquipmentReference != "" {
		params.Set("equipmentReference", q.EquipmentReference)
	}
	if len(q.EventType) > 0 {
		params.Set("eventType", strings.Join(q.EventType, ","))
	}
	if q.EventCreatedDateTimeGte != "" {
		params.Set("eventCreatedDateTime:gte", q.EventCreatedDateTimeGte)
	}
	if q.EventCreatedDateTimeLte != "" {
		params.Set("eventCreatedDateTime:lte", q.EventCreatedDateTimeLte)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Cursor != "" {
		params.Set("cursor", q.Cursor)
	}

	return params
}
