package card

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	applog "github.com/cardfolio/api/internal/platform/logging"
	"github.com/cardfolio/api/internal/platform/timeutil"
)

// LocalStore is the anonymous fallback: the full card set lives as one JSON
// array in a single file, rewritten wholesale on every mutation. There is
// exactly one implicit owner, so no ownership checks apply and ListByOwner
// ignores its argument.
//
// A missing, corrupt, or unreadable file degrades silently to an empty set;
// callers cannot distinguish "no data" from "no storage", which is the
// contract. Records carry the same external shape (identifier, timestamps)
// as the durable store, with time-based "temp_" identifiers.
type LocalStore struct {
	mu   sync.Mutex
	path string
}

// localCard is the on-disk JSON shape, kept compatible with the arrays the
// web client wrote to browser storage.
type localCard struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Title           string        `json:"title,omitempty"`
	Company         string        `json:"company,omitempty"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone,omitempty"`
	Website         string        `json:"website,omitempty"`
	Address         string        `json:"address,omitempty"`
	Bio             string        `json:"bio,omitempty"`
	LinkedIn        string        `json:"linkedin,omitempty"`
	GitHub          string        `json:"github,omitempty"`
	Twitter         string        `json:"twitter,omitempty"`
	AvatarImage     string        `json:"avatarImage,omitempty"`
	BackgroundImage string        `json:"backgroundImage,omitempty"`
	Language        string        `json:"language,omitempty"`
	CreatedAt       timeutil.Time `json:"createdAt"`
	UpdatedAt       timeutil.Time `json:"updatedAt"`
}

// NewLocalStore creates a store backed by the JSON file at path. The file
// is created lazily on first write.
func NewLocalStore(path string) *LocalStore {
	return &LocalStore{path: path}
}

// load reads the entire card array. Every failure mode yields an empty set.
func (s *LocalStore) load() []localCard {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var cards []localCard
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil
	}
	return cards
}

// save rewrites the whole array. Failures are logged, not surfaced: the
// next load degrades to whatever state the file is in.
func (s *LocalStore) save(ctx context.Context, cards []localCard) {
	data, err := json.Marshal(cards)
	if err != nil {
		applog.LogWarn(ctx, "local card store: marshal failed")
		return
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		applog.LogWarn(ctx, "local card store: write failed")
	}
}

// nextID generates a time-based locally-unique identifier.
func nextID(cards []localCard) string {
	id := fmt.Sprintf("temp_%d", time.Now().UnixMilli())
	for attempt := 1; ; attempt++ {
		taken := false
		for _, c := range cards {
			if c.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
		id = fmt.Sprintf("temp_%d_%d", time.Now().UnixMilli(), attempt)
	}
}

// Create appends a card to the local array. The owner argument is ignored;
// anonymous records have no owning-user identifier and no cross-device
// durability guarantee.
func (s *LocalStore) Create(ctx context.Context, _ string, params CreateParams) (*Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := s.load()
	now := time.Now().UTC()
	lc := localCard{
		ID:              nextID(cards),
		Name:            strings.TrimSpace(params.Name),
		Title:           params.Title,
		Company:         params.Company,
		Email:           strings.ToLower(strings.TrimSpace(params.Email)),
		Phone:           strings.TrimSpace(params.Phone),
		Website:         params.Website,
		Address:         params.Address,
		Bio:             params.Bio,
		LinkedIn:        params.LinkedIn,
		GitHub:          params.GitHub,
		Twitter:         params.Twitter,
		AvatarImage:     params.AvatarImage,
		BackgroundImage: params.BackgroundImage,
		Language:        normalizeLanguage(params.Language),
		CreatedAt:       timeutil.NewTime(now),
		UpdatedAt:       timeutil.NewTime(now),
	}
	s.save(ctx, append(cards, lc))
	return lc.toCard(), nil
}

// Get returns the card with the given identifier.
func (s *LocalStore) Get(_ context.Context, id string) (*Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, lc := range s.load() {
		if lc.ID == id {
			return lc.toCard(), nil
		}
	}
	return nil, ErrNotFound
}

// ListByOwner returns the entire local array; the local store has no owner
// concept.
func (s *LocalStore) ListByOwner(_ context.Context, _ string) ([]*Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	local := s.load()
	cards := make([]*Card, 0, len(local))
	for _, lc := range local {
		cards = append(cards, lc.toCard())
	}
	return cards, nil
}

// Update merges the provided fields into the matching card and rewrites
// the array. No ownership check: the browser is the only owner.
func (s *LocalStore) Update(ctx context.Context, id, _ string, params UpdateParams) (*Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := s.load()
	for i := range cards {
		if cards[i].ID != id {
			continue
		}
		cards[i].merge(params)
		cards[i].UpdatedAt = timeutil.NewTime(time.Now().UTC())
		s.save(ctx, cards)
		return cards[i].toCard(), nil
	}
	return nil, ErrNotFound
}

// Delete filters the card out of the array and rewrites it.
func (s *LocalStore) Delete(ctx context.Context, id, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := s.load()
	kept := cards[:0]
	found := false
	for _, lc := range cards {
		if lc.ID == id {
			found = true
			continue
		}
		kept = append(kept, lc)
	}
	if !found {
		return ErrNotFound
	}
	s.save(ctx, kept)
	return nil
}

func (lc *localCard) merge(params UpdateParams) {
	if params.Name != nil {
		lc.Name = strings.TrimSpace(*params.Name)
	}
	if params.Title != nil {
		lc.Title = *params.Title
	}
	if params.Company != nil {
		lc.Company = *params.Company
	}
	if params.Email != nil {
		lc.Email = strings.ToLower(strings.TrimSpace(*params.Email))
	}
	if params.Phone != nil {
		lc.Phone = strings.TrimSpace(*params.Phone)
	}
	if params.Website != nil {
		lc.Website = *params.Website
	}
	if params.Address != nil {
		lc.Address = *params.Address
	}
	if params.Bio != nil {
		lc.Bio = *params.Bio
	}
	if params.LinkedIn != nil {
		lc.LinkedIn = *params.LinkedIn
	}
	if params.GitHub != nil {
		lc.GitHub = *params.GitHub
	}
	if params.Twitter != nil {
		lc.Twitter = *params.Twitter
	}
	if params.AvatarImage != nil {
		lc.AvatarImage = *params.AvatarImage
	}
	if params.BackgroundImage != nil {
		lc.BackgroundImage = *params.BackgroundImage
	}
	if params.Language != nil {
		lc.Language = normalizeLanguage(*params.Language)
	}
}

func (lc *localCard) toCard() *Card {
	return &Card{
		ID:              lc.ID,
		Name:            lc.Name,
		Title:           lc.Title,
		Company:         lc.Company,
		Email:           lc.Email,
		Phone:           lc.Phone,
		Website:         lc.Website,
		Address:         lc.Address,
		Bio:             lc.Bio,
		LinkedIn:        lc.LinkedIn,
		GitHub:          lc.GitHub,
		Twitter:         lc.Twitter,
		AvatarImage:     lc.AvatarImage,
		BackgroundImage: lc.BackgroundImage,
		Language:        normalizeLanguage(lc.Language),
		CreatedAt:       lc.CreatedAt.Time,
		UpdatedAt:       lc.UpdatedAt.Time,
	}
}

// Compile-time interface check
var _ Service = (*LocalStore)(nil)
