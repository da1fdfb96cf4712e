package pagination

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrInvalidCursor indicates the cursor could not be decoded.
var ErrInvalidCursor = errors.New("invalid cursor format")

// Cursor marks a position in a paginated listing. The encoded form is
// opaque to clients; they only hand it back via the cursor parameter.
type Cursor struct {
	Type  string // resource type identifier
	Value string // last seen value (ID, timestamp, etc.)
}

// Encode returns the URL-safe opaque form.
func (c Cursor) Encode() string {
	raw := c.Type + ":" + c.Value
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses an encoded cursor. An empty string decodes to the
// zero cursor, meaning "start from the beginning".
func DecodeCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	typ, value, found := strings.Cut(string(raw), ":")
	if !found {
		return Cursor{}, ErrInvalidCursor
	}
	return Cursor{Type: typ, Value: value}, nil
}
