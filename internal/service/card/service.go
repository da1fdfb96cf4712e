package card

import (
	"context"
	"errors"
	"time"
)

// Service errors.
var (
	// ErrNotFound means the identifier does not resolve to any card.
	ErrNotFound = errors.New("card not found")

	// ErrPermissionDenied means the caller is authenticated but is not
	// the card's owner.
	ErrPermissionDenied = errors.New("not the card owner")

	// ErrUnauthenticated means the operation requires an identity and
	// none was supplied.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidOwner means an owner identifier was required and empty.
	ErrInvalidOwner = errors.New("owner identifier is required")

	// ErrUnavailable means the backing store client is not initialized.
	ErrUnavailable = errors.New("card store unavailable")
)

// Display languages a card can be rendered in.
const (
	LanguageEnglish = "en"
	LanguageChinese = "zh"

	// DefaultLanguage matches the product default: Chinese unless the
	// client asked for English.
	DefaultLanguage = LanguageChinese
)

// Card is the persisted business card record. Owner is the creating
// identity's email and is immutable after creation; it alone decides who
// may update or delete the card. Cards are publicly readable by ID for
// the sharing feature. Image fields hold either a hosted URL or an
// inline data URI.
type Card struct {
	ID              string
	Name            string
	Title           string
	Company         string
	Email           string
	Phone           string
	Website         string
	Address         string
	Bio             string
	LinkedIn        string
	GitHub          string
	Twitter         string
	AvatarImage     string
	BackgroundImage string
	Owner           string
	Language        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateParams for creating a card. Identifier, owner, and timestamps are
// assigned by the store.
type CreateParams struct {
	Name            string
	Title           string
	Company         string
	Email           string
	Phone           string
	Website         string
	Address         string
	Bio             string
	LinkedIn        string
	GitHub          string
	Twitter         string
	AvatarImage     string
	BackgroundImage string
	Language        string
}

// UpdateParams for partial updates. Nil fields are left untouched.
type UpdateParams struct {
	Name            *string
	Title           *string
	Company         *string
	Email           *string
	Phone           *string
	Website         *string
	Address         *string
	Bio             *string
	LinkedIn        *string
	GitHub          *string
	Twitter         *string
	AvatarImage     *string
	BackgroundImage *string
	Language        *string
}

// Service defines card operations.
//
//   - Create requires a non-empty owner (ErrUnauthenticated otherwise),
//     assigns the identifier, and stamps createdAt == updatedAt.
//   - Get is public: no ownership check, ErrNotFound on miss.
//   - ListByOwner rejects an empty owner with ErrInvalidOwner and returns
//     matches in store order; callers re-sort as needed.
//   - Update and Delete re-read the stored card and compare its owner to
//     actor before writing (ErrNotFound / ErrPermissionDenied /
//     ErrUnauthenticated). Update refreshes updatedAt and preserves ID,
//     owner, and createdAt.
type Service interface {
	Create(ctx context.Context, owner string, params CreateParams) (*Card, error)
	Get(ctx context.Context, id string) (*Card, error)
	ListByOwner(ctx context.Context, owner string) ([]*Card, error)
	Update(ctx context.Context, id, actor string, params UpdateParams) (*Card, error)
	Delete(ctx context.Context, id, actor string) error
}
