package timeutil

import (
	"bytes"
	"time"
)

// RFC3339Millis is RFC 3339 UTC with fixed millisecond precision.
// All card timestamps on the wire use this format.
const RFC3339Millis = "2006-01-02T15:04:05.000Z"

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision,
// used for log timestamps.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

var jsonNull = []byte("null")

// Time wraps time.Time so JSON output always carries fixed millisecond
// precision, e.g. "2024-01-15T10:30:00.000Z". The original data set was
// written with ISO-8601 strings, so reads must accept RFC 3339 variants.
//
// JSON null preserves the existing value rather than zeroing it,
// matching time.Time stdlib behavior.
type Time struct {
	time.Time
}

// MarshalJSON implements json.Marshaler with fixed millisecond precision.
func (t Time) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, len(RFC3339Millis)+2)
	b = append(b, '"')
	b = t.UTC().AppendFormat(b, RFC3339Millis)
	return append(b, '"'), nil
}

// UnmarshalJSON implements json.Unmarshaler, accepting RFC 3339 variants.
func (t *Time) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if parsed, err = time.Parse(time.RFC3339, s); err != nil {
			return err
		}
	}
	t.Time = parsed
	return nil
}

// NewTime creates a Time from a standard time.Time.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// Now returns the current time as a Time.
func Now() Time {
	return Time{Time: time.Now()}
}
