package card

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/cardfolio/api/internal/platform/logging"
)

// cardsCollection is the historical collection name; existing documents
// from earlier deployments live under it.
const cardsCollection = "businessCards"

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, ErrInvalidOwner):
		return "invalid_owner"
	case errors.Is(err, ErrUnavailable):
		return "store_unavailable"
	default:
		return "internal_error"
	}
}

// firestoreCard maps to the Firestore document structure. Field names match
// the documents written by earlier record versions, including "userId" for
// the owner. Older documents may lack newer fields; DataTo leaves those at
// their zero value, which is the defaulting-on-read behavior we want.
type firestoreCard struct {
	Name            string    `firestore:"name"`
	Title           string    `firestore:"title"`
	Company         string    `firestore:"company"`
	Email           string    `firestore:"email"`
	Phone           string    `firestore:"phone"`
	Website         string    `firestore:"website"`
	Address         string    `firestore:"address"`
	Bio             string    `firestore:"bio"`
	LinkedIn        string    `firestore:"linkedin"`
	GitHub          string    `firestore:"github"`
	Twitter         string    `firestore:"twitter"`
	AvatarImage     string    `firestore:"avatarImage"`
	BackgroundImage string    `firestore:"backgroundImage"`
	Owner           string    `firestore:"userId"`
	Language        string    `firestore:"language"`
	CreatedAt       time.Time `firestore:"createdAt"`
	UpdatedAt       time.Time `firestore:"updatedAt"`
}

// FirestoreStore implements Service against the durable card collection.
//
// Ownership checks are read-then-check-then-write without a transaction.
// Two sessions of the same owner can race; last write wins on updatedAt.
// That matches the store's historical behavior and is an accepted
// weak-consistency point, not something to paper over here.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Create persists a new card owned by owner and returns it with the
// store-assigned identifier and timestamps.
func (s *FirestoreStore) Create(ctx context.Context, owner string, params CreateParams) (*Card, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}
	if owner == "" {
		applog.LogAuditEvent(ctx, "create", owner, "card", "", "failure",
			map[string]any{"error": categorizeError(ErrUnauthenticated)})
		return nil, ErrUnauthenticated
	}

	docRef := s.client.Collection(cardsCollection).NewDoc()
	now := time.Now().UTC()

	fc := firestoreCard{
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

	if _, err := docRef.Set(ctx, fc); err != nil {
		applog.LogAuditEvent(ctx, "create", owner, "card", docRef.ID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "create", owner, "card", docRef.ID, "success", nil)

	return fc.toCard(docRef.ID), nil
}

// Get retrieves a card by identifier. No ownership check: cards are
// publicly viewable by ID.
func (s *FirestoreStore) Get(ctx context.Context, id string) (*Card, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}
	docRef := s.client.Collection(cardsCollection).Doc(id)
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var fc firestoreCard
	if err := doc.DataTo(&fc); err != nil {
		return nil, err
	}
	return fc.toCard(doc.Ref.ID), nil
}

// ListByOwner returns every card whose owner field equals owner, in store
// order.
func (s *FirestoreStore) ListByOwner(ctx context.Context, owner string) ([]*Card, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}
	if owner == "" {
		return nil, ErrInvalidOwner
	}

	iter := s.client.Collection(cardsCollection).Where("userId", "==", owner).Documents(ctx)
	defer iter.Stop()

	var cards []*Card
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var fc firestoreCard
		if err := doc.DataTo(&fc); err != nil {
			return nil, err
		}
		cards = append(cards, fc.toCard(doc.Ref.ID))
	}
	return cards, nil
}

// Update merges the provided fields into the stored card after the
// ownership check, refreshing updatedAt and preserving ID, owner, and
// createdAt.
func (s *FirestoreStore) Update(ctx context.Context, id, actor string, params UpdateParams) (*Card, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}
	if actor == "" {
		applog.LogAuditEvent(ctx, "update", actor, "card", id, "failure",
			map[string]any{"error": categorizeError(ErrUnauthenticated)})
		return nil, ErrUnauthenticated
	}

	docRef := s.client.Collection(cardsCollection).Doc(id)
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			err = ErrNotFound
		}
		applog.LogAuditEvent(ctx, "update", actor, "card", id, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	var fc firestoreCard
	if err := doc.DataTo(&fc); err != nil {
		return nil, err
	}

	if fc.Owner != actor {
		applog.LogAuditEvent(ctx, "update", actor, "card", id, "failure",
			map[string]any{"error": categorizeError(ErrPermissionDenied)})
		return nil, ErrPermissionDenied
	}

	fc.merge(params)
	fc.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, fc); err != nil {
		applog.LogAuditEvent(ctx, "update", actor, "card", id, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "update", actor, "card", id, "success", nil)

	return fc.toCard(id), nil
}

// Delete removes a card permanently after the ownership check. No
// soft-delete, no undo.
func (s *FirestoreStore) Delete(ctx context.Context, id, actor string) error {
	if s.client == nil {
		return ErrUnavailable
	}
	if actor == "" {
		applog.LogAuditEvent(ctx, "delete", actor, "card", id, "failure",
			map[string]any{"error": categorizeError(ErrUnauthenticated)})
		return ErrUnauthenticated
	}

	docRef := s.client.Collection(cardsCollection).Doc(id)
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			err = ErrNotFound
		}
		applog.LogAuditEvent(ctx, "delete", actor, "card", id, "failure",
			map[string]any{"error": categorizeError(err)})
		return err
	}

	var fc firestoreCard
	if err := doc.DataTo(&fc); err != nil {
		return err
	}

	if fc.Owner != actor {
		applog.LogAuditEvent(ctx, "delete", actor, "card", id, "failure",
			map[string]any{"error": categorizeError(ErrPermissionDenied)})
		return ErrPermissionDenied
	}

	if _, err := docRef.Delete(ctx); err != nil {
		applog.LogAuditEvent(ctx, "delete", actor, "card", id, "failure",
			map[string]any{"error": categorizeError(err)})
		return err
	}

	applog.LogAuditEvent(ctx, "delete", actor, "card", id, "success", nil)

	return nil
}

func (fc *firestoreCard) merge(params UpdateParams) {
	if params.Name != nil {
		fc.Name = strings.TrimSpace(*params.Name)
	}
	if params.Title != nil {
		fc.Title = *params.Title
	}
	if params.Company != nil {
		fc.Company = *params.Company
	}
	if params.Email != nil {
		fc.Email = strings.ToLower(strings.TrimSpace(*params.Email))
	}
	if params.Phone != nil {
		fc.Phone = strings.TrimSpace(*params.Phone)
	}
	if params.Website != nil {
		fc.Website = *params.Website
	}
	if params.Address != nil {
		fc.Address = *params.Address
	}
	if params.Bio != nil {
		fc.Bio = *params.Bio
	}
	if params.LinkedIn != nil {
		fc.LinkedIn = *params.LinkedIn
	}
	if params.GitHub != nil {
		fc.GitHub = *params.GitHub
	}
	if params.Twitter != nil {
		fc.Twitter = *params.Twitter
	}
	if params.AvatarImage != nil {
		fc.AvatarImage = *params.AvatarImage
	}
	if params.BackgroundImage != nil {
		fc.BackgroundImage = *params.BackgroundImage
	}
	if params.Language != nil {
		fc.Language = normalizeLanguage(*params.Language)
	}
}

func (fc *firestoreCard) toCard(id string) *Card {
	return &Card{
		ID:              id,
		Name:            fc.Name,
		Title:           fc.Title,
		Company:         fc.Company,
		Email:           fc.Email,
		Phone:           fc.Phone,
		Website:         fc.Website,
		Address:         fc.Address,
		Bio:             fc.Bio,
		LinkedIn:        fc.LinkedIn,
		GitHub:          fc.GitHub,
		Twitter:         fc.Twitter,
		AvatarImage:     fc.AvatarImage,
		BackgroundImage: fc.BackgroundImage,
		Owner:           fc.Owner,
		Language:        normalizeLanguage(fc.Language),
		CreatedAt:       fc.CreatedAt,
		UpdatedAt:       fc.UpdatedAt,
	}
}

// normalizeLanguage defaults unknown or missing language tags.
func normalizeLanguage(lang string) string {
	switch lang {
	case LanguageEnglish, LanguageChinese:
		return lang
	default:
		return DefaultLanguage
	}
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
