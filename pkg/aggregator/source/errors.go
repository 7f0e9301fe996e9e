package source

import (
	"errors"
	"fmt"
)

// UnsupportedSourceError is returned when a source is asked a query kind it
// has no sub-API for.
var UnsupportedSourceError = errors.New("source cannot answer this query")

// MissingParameterError is raised by a carrier router or sub-API adapter
// before any network call when the chosen sub-API's minimum parameters are
// not satisfied.
type MissingParameterError struct {
	Carrier   Carrier
	SubAPI    string
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s %s: missing required parameter %s", e.Carrier, e.SubAPI, e.Parameter)
}

// OutOfRangeDateError is raised by date-window-validating adapters before any
// network call.
type OutOfRangeDateError struct {
	Carrier   Carrier
	Parameter string
	Value     string
	Window    string
}

func (e *OutOfRangeDateError) Error() string {
	return fmt.Sprintf("%s: %s %q is outside the allowed window %s", e.Carrier, e.Parameter, e.Value, e.Window)
}

// MalformedTimestampError is raised by a mapper when a vendor date or time
// field cannot be parsed. Mappers fail loudly rather than fabricating a
// timestamp.
type MalformedTimestampError struct {
	Carrier Carrier
	Field   string
	Value   string
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("%s: malformed %s %q", e.Carrier, e.Field, e.Value)
}
