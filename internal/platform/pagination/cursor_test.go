package pagination

import (
	"errors"
	"testing"
)

func TestCursorRoundTrip(t *testing.T) {
	c := Cursor{Type: "card", Value: "8FkzX2hYwBPaL0daJqkR"}
	decoded, err := DecodeCursor(c.Encode())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != c {
		t.Fatalf("expected %+v, got %+v", c, decoded)
	}
}

func TestDecodeCursorEmpty(t *testing.T) {
	decoded, err := DecodeCursor("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != (Cursor{}) {
		t.Fatalf("expected zero cursor, got %+v", decoded)
	}
}

func TestDecodeCursorInvalidBase64(t *testing.T) {
	if _, err := DecodeCursor("!!!not-base64!!!"); !errors.Is(err, ErrInvalidCursor) {
		t.Fatalf("expected ErrInvalidCursor, got %v", err)
	}
}

func TestDecodeCursorMissingSeparator(t *testing.T) {
	// Valid base64 but no "type:value" shape inside.
	if _, err := DecodeCursor("bm9zZXBhcmF0b3I"); !errors.Is(err, ErrInvalidCursor) {
		t.Fatalf("expected ErrInvalidCursor, got %v", err)
	}
}

func TestCursorValueMayContainSeparator(t *testing.T) {
	c := Cursor{Type: "card", Value: "a:b:c"}
	decoded, err := DecodeCursor(c.Encode())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Value != "a:b:c" {
		t.Fatalf("expected value a:b:c, got %s", decoded.Value)
	}
}
