package aggregator

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/linertrack/linertrack/pkg/aggregator/query"
	"github.com/linertrack/linertrack/pkg/dcsa"
)

// ErrAllCarriersFailed is returned when every requested carrier failed. The
// per-carrier errors are still populated on the result.
var ErrAllCarriersFailed = errors.New("all carriers failed")

// Aggregator fans a canonical query out to N carriers in parallel and merges
// the outcomes. One carrier's failure never aborts or blocks its siblings.
type Aggregator struct {
	registry *Registry
}

func New(registry *Registry) *Aggregator {
	return &Aggregator{registry: registry}
}

type CarrierError struct {
	Carrier string `json:"carrier" groups:"basic,detailed"`
	Error   string `json:"error" groups:"basic,detailed"`
}

type Meta struct {
	Total             int `json:"total" groups:"basic,detailed"`
	CarriersQueried   int `json:"carriersQueried" groups:"basic,detailed"`
	CarriersSucceeded int `json:"carriersSucceeded" groups:"basic,detailed"`
	CarriersFailed    int `json:"carriersFailed" groups:"basic,detailed"`
}

type CarrierScheduleRecord struct {
	Carrier  string                `json:"carrier" groups:"basic,detailed"`
	Schedule *dcsa.ServiceSchedule `json:"schedule" groups:"basic,detailed"`
}

type ScheduleResult struct {
	Records []CarrierScheduleRecord `json:"data" groups:"basic,detailed"`
	Errors  []CarrierError          `json:"errors,omitempty" groups:"basic,detailed"`
	Meta    Meta                    `json:"meta" groups:"basic,detailed"`
}

type CarrierTrackingRecord struct {
	Carrier string             `json:"carrier" groups:"basic,detailed"`
	Event   dcsa.TrackingEvent `json:"event" groups:"basic,detailed"`
}

type TrackingResult struct {
	Records []CarrierTrackingRecord `json:"data" groups:"basic,detailed"`
	Errors  []CarrierError          `json:"errors,omitempty" groups:"basic,detailed"`
	Meta    Meta                    `json:"meta" groups:"basic,detailed"`
}

type scheduleOutcome struct {
	carrier   string
	schedules []*dcsa.ServiceSchedule
	err       error
}

// ScheduleLookup queries every named carrier concurrently and merges the
// successful carriers' schedules. No cross-carrier ordering is imposed on
// the merged list.
func (a *Aggregator) ScheduleLookup(ctx context.Context, carriers []string, q query.Schedule) (*ScheduleResult, error) {
	p := pool.NewWithResults[scheduleOutcome]()

	for _, carrier := range carriers {
		p.Go(func() scheduleOutcome {
			carrierSource, err := a.registry.Get(carrier)
			if err != nil {
				return scheduleOutcome{carrier: carrier, err: err}
			}

			schedules, err := carrierSource.ScheduleQuery(ctx, q)

			return scheduleOutcome{carrier: carrier, schedules: schedules, err: err}
		})
	}

	result := &ScheduleResult{
		Meta: Meta{CarriersQueried: len(carriers)},
	}

	for _, outcome := range p.Wait() {
		if outcome.err != nil {
			log.Warn().
				Str("carrier", outcome.carrier).
				Err(outcome.err).
				Msg("Carrier schedule query failed")

			result.Errors = append(result.Errors, CarrierError{
				Carrier: outcome.carrier,
				Error:   outcome.err.Error(),
			})
			result.Meta.CarriersFailed++

			continue
		}

		result.Meta.CarriersSucceeded++

		for _, schedule := range outcome.schedules {
			result.Records = append(result.Records, CarrierScheduleRecord{
				Carrier:  outcome.carrier,
				Schedule: schedule,
			})
		}
	}

	result.Meta.Total = len(result.Records)

	if len(carriers) > 0 && result.Meta.CarriersSucceeded == 0 {
		return result, ErrAllCarriersFailed
	}

	return result, nil
}

type trackingOutcome struct {
	carrier string
	events  []dcsa.TrackingEvent
	err     error
}

// TrackingLookup is the Track & Trace counterpart of ScheduleLookup.
func (a *Aggregator) TrackingLookup(ctx context.Context, carriers []string, q query.Tracking) (*TrackingResult, error) {
	p := pool.NewWithResults[trackingOutcome]()

	for _, carrier := range carriers {
		p.Go(func() trackingOutcome {
			carrierSource, err := a.registry.Get(carrier)
			if err != nil {
				return trackingOutcome{carrier: carrier, err: err}
			}

			events, err := carrierSource.TrackingQuery(ctx, q)

			return trackingOutcome{carrier: carrier, events: events, err: err}
		})
	}

	result := &TrackingResult{
		Meta: Meta{CarriersQueried: len(carriers)},
	}

	for _, outcome := range p.Wait() {
		if outcome.err != nil {
			log.Warn().
				Str("carrier", outcome.carrier).
				Err(outcome.err).
				Msg("Carrier tracking query failed")

			result.Errors = append(result.Errors, CarrierError{
				Carrier: outcome.carrier,
				Error:   outcome.err.Error(),
			})
			result.Meta.CarriersFailed++

			continue
		}

		result.Meta.CarriersSucceeded++

		for _, event := range outcome.events {
			result.Records = append(result.Records, CarrierTrackingRecord{
				Carrier: outcome.carrier,
				Event:   event,
			})
		}
	}

	result.Meta.Total = len(result.Records)

	if len(carriers) > 0 && result.Meta.CarriersSucceeded == 0 {
		return result, ErrAllCarriersFailed
	}

	return result, nil
}
