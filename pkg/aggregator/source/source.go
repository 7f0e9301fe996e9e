package source

import (
	"context"

	"github.com/linertrack/linertrack/pkg/aggregator/query"
	"github.com/linertrack/linertrack/pkg/dcsa"
)

type Carrier string

const (
	CarrierCMACGM Carrier = "cmacgm"
	CarrierHMM    Carrier = "hmm"
	CarrierMaersk Carrier = "maersk"
	CarrierZIM    Carrier = "zim"
)

// AllCarriers lists every carrier a source implementation exists for, in no
// particular order of preference.
var AllCarriers = []Carrier{CarrierCMACGM, CarrierHMM, CarrierMaersk, CarrierZIM}

// CarrierSource is one carrier's normalized query surface. Each implementation
// routes a canonical query to the vendor sub-API that can answer it and maps
// the vendor payload into the canonical model.
type CarrierSource interface {
	GetName() string
	Carrier() Carrier

	ScheduleQuery(ctx context.Context, q query.Schedule) ([]*dcsa.ServiceSchedule, error)
	TrackingQuery(ctx context.Context, q query.Tracking) ([]dcsa.TrackingEvent, error)
}
