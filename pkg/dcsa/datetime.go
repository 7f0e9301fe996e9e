package dcsa

import (
	"errors"
	"strings"
	"time"
)

var ErrUnparsableDateTime = errors.New("unparsable datetime")

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05.000",
}

// NormalizeDateTime brings a vendor datetime into the canonical ISO-8601-with-
// offset form. A value already carrying an offset passes through unchanged; a
// value with a time but no offset gets "Z" appended. No timezone is ever
// inferred. Anything unparsable is an error, never a fabricated timestamp.
func NormalizeDateTime(value string) (string, error) {
	if !strings.Contains(value, "T") {
		return "", ErrUnparsableDateTime
	}

	if hasOffset(value) {
		if _, err := time.Parse(time.RFC3339, value); err != nil {
			return "", ErrUnparsableDateTime
		}
		return value, nil
	}

	for _, layout := range dateTimeLayouts[1:] {
		if _, err := time.Parse(layout, value); err == nil {
			return value + "Z", nil
		}
	}

	return "", ErrUnparsableDateTime
}

func hasOffset(value string) bool {
	if strings.HasSuffix(value, "Z") {
		return true
	}

	// An offset sign can only appear after the "T"; "-" before it is a date
	// separator.
	timePart := value[strings.Index(value, "T")+1:]

	return strings.ContainsAny(timePart, "+-")
}
