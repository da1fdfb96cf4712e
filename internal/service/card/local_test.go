package card

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newLocalStore(t *testing.T) *LocalStore {
	t.Helper()
	return NewLocalStore(filepath.Join(t.TempDir(), "cards.json"))
}

func TestLocalCreateAndGet(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()

	c, err := store.Create(ctx, "", CreateParams{Name: "Guest", Email: "guest@x.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(c.ID, "temp_") {
		t.Errorf("expected time-based temp identifier, got %s", c.ID)
	}
	if c.Owner != "" {
		t.Errorf("expected no owner on anonymous card, got %s", c.Owner)
	}
	if !c.CreatedAt.Equal(c.UpdatedAt) {
		t.Error("expected createdAt == updatedAt")
	}

	got, err := store.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Guest" {
		t.Errorf("expected name Guest, got %s", got.Name)
	}
}

func TestLocalCreateUniqueIDs(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for range 5 {
		c, err := store.Create(ctx, "", CreateParams{Name: "Guest", Email: "guest@x.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[c.ID] {
			t.Fatalf("duplicate identifier %s", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestLocalUpdateAndDelete(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()

	c, err := store.Create(ctx, "", CreateParams{Name: "Guest", Email: "guest@x.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name := "Visitor"
	updated, err := store.Update(ctx, c.ID, "", UpdateParams{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Visitor" {
		t.Errorf("expected name Visitor, got %s", updated.Name)
	}

	if err := store.Delete(ctx, c.ID, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, c.ID, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat delete, got %v", err)
	}
}

func TestLocalListReturnsWholeSet(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()

	if _, err := store.Create(ctx, "", CreateParams{Name: "One", Email: "one@x.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Create(ctx, "", CreateParams{Name: "Two", Email: "two@x.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The local store has no owner concept: any owner value lists all.
	cards, err := store.ListByOwner(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
}

func TestLocalCorruptFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}
	store := NewLocalStore(path)

	cards, err := store.ListByOwner(context.Background(), "")
	if err != nil {
		t.Fatalf("expected silent degradation, got %v", err)
	}
	if len(cards) != 0 {
		t.Fatalf("expected empty set from corrupt storage, got %d", len(cards))
	}
}

func TestLocalMissingFileDegradesToEmpty(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "does-not-exist.json"))

	cards, err := store.ListByOwner(context.Background(), "ignored")
	if err != nil {
		t.Fatalf("expected silent degradation, got %v", err)
	}
	if len(cards) != 0 {
		t.Fatalf("expected empty set, got %d", len(cards))
	}
}

func TestLocalStoresAreIsolated(t *testing.T) {
	ctx := context.Background()
	first := newLocalStore(t)
	second := newLocalStore(t)

	c, err := first.Create(ctx, "", CreateParams{Name: "Guest", Email: "guest@x.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A different storage session has no access to the card.
	if _, err := second.Get(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound in second session, got %v", err)
	}
}

func TestLocalRecordShapeOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	store := NewLocalStore(path)
	ctx := context.Background()

	if _, err := store.Create(ctx, "", CreateParams{Name: "Guest", Email: "GUEST@X.COM"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected file to be written: %v", err)
	}
	body := string(data)
	if !strings.HasPrefix(body, "[") {
		t.Errorf("expected a JSON array on disk, got %s", body)
	}
	if !strings.Contains(body, `"guest@x.com"`) {
		t.Errorf("expected normalized email on disk, got %s", body)
	}
	if !strings.Contains(body, `"createdAt"`) || !strings.Contains(body, `"updatedAt"`) {
		t.Errorf("expected timestamps on disk, got %s", body)
	}
}
