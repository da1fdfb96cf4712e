package card

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// MockService implements Service in memory with durable-store semantics
// (ownership checks included). For unit tests.
type MockService struct {
	mu     sync.RWMutex
	nextID int
	cards  map[string]*Card
}

// NewMockService creates a new mock service.
func NewMockService() *MockService {
	return &MockService{cards: make(map[string]*Card)}
}

func (m *MockService) Create(_ context.Context, owner string, params CreateParams) (*Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if owner == "" {
		return nil, ErrUnauthenticated
	}

	m.nextID++
	now := time.Now().UTC()
	c := &Card{
		ID:              fmt.Sprintf("c%d", m.nextID),
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
		Owner:           owner,
		Language:        normalizeLanguage(params.Language),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	m.cards[c.ID] = c
	copied := *c
	return &copied, nil
}

func (m *MockService) Get(_ context.Context, id string) (*Card, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, exists := m.cards[id]
	if !exists {
		return nil, ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *MockService) ListByOwner(_ context.Context, owner string) ([]*Card, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if owner == "" {
		return nil, ErrInvalidOwner
	}
	var cards []*Card
	for _, c := range m.cards {
		if c.Owner == owner {
			copied := *c
			cards = append(cards, &copied)
		}
	}
	return cards, nil
}

func (m *MockService) Update(_ context.Context, id, actor string, params UpdateParams) (*Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if actor == "" {
		return nil, ErrUnauthenticated
	}
	c, exists := m.cards[id]
	if !exists {
		return nil, ErrNotFound
	}
	if c.Owner != actor {
		return nil, ErrPermissionDenied
	}

	if params.Name != nil {
		c.Name = strings.TrimSpace(*params.Name)
	}
	if params.Title != nil {
		c.Title = *params.Title
	}
	if params.Company != nil {
		c.Company = *params.Company
	}
	if params.Email != nil {
		c.Email = strings.ToLower(strings.TrimSpace(*params.Email))
	}
	if params.Phone != nil {
		c.Phone = strings.TrimSpace(*params.Phone)
	}
	if params.Website != nil {
		c.Website = *params.Website
	}
	if params.Address != nil {
		c.Address = *params.Address
	}
	if params.Bio != nil {
		c.Bio = *params.Bio
	}
	if params.LinkedIn != nil {
		c.LinkedIn = *params.LinkedIn
	}
	if params.GitHub != nil {
		c.GitHub = *params.GitHub
	}
	if params.Twitter != nil {
		c.Twitter = *params.Twitter
	}
	if params.AvatarImage != nil {
		c.AvatarImage = *params.AvatarImage
	}
	if params.BackgroundImage != nil {
		c.BackgroundImage = *params.BackgroundImage
	}
	if params.Language != nil {
		c.Language = normalizeLanguage(*params.Language)
	}
	c.UpdatedAt = time.Now().UTC()
	copied := *c
	return &copied, nil
}

func (m *MockService) Delete(_ context.Context, id, actor string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if actor == "" {
		return ErrUnauthenticated
	}
	c, exists := m.cards[id]
	if !exists {
		return ErrNotFound
	}
	if c.Owner != actor {
		return ErrPermissionDenied
	}
	delete(m.cards, id)
	return nil
}

// Clear removes all cards (useful for test cleanup).
func (m *MockService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cards = make(map[string]*Card)
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
