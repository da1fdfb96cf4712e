package cards

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sort"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cardfolio/api/internal/platform/auth"
	"github.com/cardfolio/api/internal/platform/pagination"
	cardsvc "github.com/cardfolio/api/internal/service/card"
)

const cursorType = "card"

// Register registers card endpoints. The get-by-id endpoint is public so
// shared card links work without an account; everything else requires a
// bearer token (or runs as the guest identity in local mode).
func Register(api huma.API, svc cardsvc.Service, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-card",
		Method:        http.MethodPost,
		Path:          "/cards",
		Summary:       "Create a business card",
		Description:   "Creates a card owned by the authenticated identity. Anonymous creation is allowed only in local mode.",
		Tags:          []string{"Cards"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *CardCreateInput) (*CardCreateOutput, error) {
		owner := auth.OwnerEmail(ctx)

		card, err := svc.Create(ctx, owner, cardsvc.CreateParams{
			Name:            input.Body.Name,
			Title:           input.Body.Title,
			Company:         input.Body.Company,
			Email:           input.Body.Email,
			Phone:           input.Body.Phone,
			Website:         input.Body.Website,
			Address:         input.Body.Address,
			Bio:             input.Body.Bio,
			LinkedIn:        input.Body.LinkedIn,
			GitHub:          input.Body.GitHub,
			Twitter:         input.Body.Twitter,
			AvatarImage:     input.Body.AvatarImage,
			BackgroundImage: input.Body.BackgroundImage,
			Language:        input.Body.Language,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &CardCreateOutput{
			Location: prefix + "/cards/" + card.ID,
			Body:     toHTTPCard(card),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-card",
		Method:      http.MethodGet,
		Path:        "/cards/{id}",
		Summary:     "Get a card by identifier",
		Description: "Public read endpoint for the sharing feature. No authentication, no ownership check.",
		Tags:        []string{"Cards"},
	}, func(ctx context.Context, input *CardGetInput) (*CardGetOutput, error) {
		card, err := svc.Get(ctx, input.ID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &CardGetOutput{Body: toHTTPCard(card)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-cards",
		Method:      http.MethodGet,
		Path:        "/cards",
		Summary:     "List the caller's cards",
		Description: "Returns the authenticated identity's cards, newest first, with cursor pagination via the Link header.",
		Tags:        []string{"Cards"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *CardListInput) (*CardListOutput, error) {
		cursor, err := pagination.DecodeCursor(input.Cursor)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid cursor format")
		}
		if cursor.Type != "" && cursor.Type != cursorType {
			return nil, huma.Error400BadRequest("cursor type mismatch")
		}

		owner := auth.OwnerEmail(ctx)
		cards, err := svc.ListByOwner(ctx, owner)
		if err != nil {
			return nil, mapServiceError(err)
		}

		// Store order is unspecified; present newest first.
		sort.SliceStable(cards, func(i, j int) bool {
			if !cards[i].CreatedAt.Equal(cards[j].CreatedAt) {
				return cards[i].CreatedAt.After(cards[j].CreatedAt)
			}
			return cards[i].ID > cards[j].ID
		})

		result := pagination.Paginate(
			cards,
			cursor,
			input.DefaultLimit(),
			cursorType,
			func(c *cardsvc.Card) string { return c.ID },
			prefix+"/cards",
			url.Values{},
		)

		page := make([]Card, 0, len(result.Items))
		for _, c := range result.Items {
			page = append(page, toHTTPCard(c))
		}
		return &CardListOutput{
			Link: result.LinkHeader,
			Body: ListData{
				Cards: page,
				Total: result.Total,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-card",
		Method:      http.MethodPatch,
		Path:        "/cards/{id}",
		Summary:     "Update a card",
		Description: "Updates fields on a card owned by the caller. Only provided fields are updated.",
		Tags:        []string{"Cards"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *CardUpdateInput) (*CardUpdateOutput, error) {
		if !hasUpdateFields(input) {
			return nil, huma.Error422UnprocessableEntity("at least one field must be provided")
		}

		card, err := svc.Update(ctx, input.ID, auth.OwnerEmail(ctx), cardsvc.UpdateParams{
			Name:            input.Body.Name,
			Title:           input.Body.Title,
			Company:         input.Body.Company,
			Email:           input.Body.Email,
			Phone:           input.Body.Phone,
			Website:         input.Body.Website,
			Address:         input.Body.Address,
			Bio:             input.Body.Bio,
			LinkedIn:        input.Body.LinkedIn,
			GitHub:          input.Body.GitHub,
			Twitter:         input.Body.Twitter,
			AvatarImage:     input.Body.AvatarImage,
			BackgroundImage: input.Body.BackgroundImage,
			Language:        input.Body.Language,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &CardUpdateOutput{Body: toHTTPCard(card)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-card",
		Method:        http.MethodDelete,
		Path:          "/cards/{id}",
		Summary:       "Delete a card",
		Description:   "Permanently deletes a card owned by the caller. There is no undo.",
		Tags:          []string{"Cards"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *CardDeleteInput) (*struct{}, error) {
		if err := svc.Delete(ctx, input.ID, auth.OwnerEmail(ctx)); err != nil {
			return nil, mapServiceError(err)
		}
		return nil, nil
	})
}

func hasUpdateFields(input *CardUpdateInput) bool {
	b := input.Body
	return b.Name != nil ||
		b.Title != nil ||
		b.Company != nil ||
		b.Email != nil ||
		b.Phone != nil ||
		b.Website != nil ||
		b.Address != nil ||
		b.Bio != nil ||
		b.LinkedIn != nil ||
		b.GitHub != nil ||
		b.Twitter != nil ||
		b.AvatarImage != nil ||
		b.BackgroundImage != nil ||
		b.Language != nil
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, cardsvc.ErrNotFound):
		return huma.Error404NotFound("card not found")
	case errors.Is(err, cardsvc.ErrPermissionDenied):
		return huma.Error403Forbidden("you do not own this card")
	case errors.Is(err, cardsvc.ErrUnauthenticated):
		return huma.Error401Unauthorized("sign in to manage cards")
	case errors.Is(err, cardsvc.ErrInvalidOwner):
		return huma.Error422UnprocessableEntity("owner identifier is required")
	case errors.Is(err, cardsvc.ErrUnavailable):
		return huma.Error503ServiceUnavailable("card store unavailable")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
