package cards

import (
	"github.com/cardfolio/api/internal/platform/timeutil"
	cardsvc "github.com/cardfolio/api/internal/service/card"
)

// Card is the business card as returned by the API. Owner is the email of
// the identity that created the card (empty for anonymous local cards).
type Card struct {
	ID              string        `json:"id"                        doc:"Unique identifier"          example:"8FkzX2hYwBPaL0daJqkR"`
	Name            string        `json:"name"                      doc:"Display name"               example:"Alice Chen"`
	Title           string        `json:"title,omitempty"           doc:"Job title"                  example:"Product Designer"`
	Company         string        `json:"company,omitempty"         doc:"Company name"               example:"Example Oy"`
	Email           string        `json:"email"                     doc:"Contact email"              example:"alice@example.com"`
	Phone           string        `json:"phone,omitempty"           doc:"Contact phone"              example:"+358401234567"`
	Website         string        `json:"website,omitempty"         doc:"Website URL"                example:"https://alice.example.com"`
	Address         string        `json:"address,omitempty"         doc:"Physical address"           example:"Mannerheimintie 1, Helsinki"`
	Bio             string        `json:"bio,omitempty"             doc:"Free-text description"      example:"Designing cards by day."`
	LinkedIn        string        `json:"linkedin,omitempty"        doc:"LinkedIn profile URL"`
	GitHub          string        `json:"github,omitempty"          doc:"GitHub profile URL"`
	Twitter         string        `json:"twitter,omitempty"         doc:"Twitter profile URL"`
	AvatarImage     string        `json:"avatarImage,omitempty"     doc:"Avatar image URL or data URI"`
	BackgroundImage string        `json:"backgroundImage,omitempty" doc:"Background image URL or data URI"`
	Owner           string        `json:"owner,omitempty"           doc:"Owning identity (email)"    example:"alice@example.com"`
	Language        string        `json:"language"                  doc:"Display language"           example:"en" enum:"en,zh"`
	CreatedAt       timeutil.Time `json:"createdAt"                 doc:"Creation timestamp"         example:"2024-01-15T10:30:00.000Z"`
	UpdatedAt       timeutil.Time `json:"updatedAt"                 doc:"Last update timestamp"      example:"2024-01-15T10:30:00.000Z"`
}

func toHTTPCard(c *cardsvc.Card) Card {
	return Card{
		ID:              c.ID,
		Name:            c.Name,
		Title:           c.Title,
		Company:         c.Company,
		Email:           c.Email,
		Phone:           c.Phone,
		Website:         c.Website,
		Address:         c.Address,
		Bio:             c.Bio,
		LinkedIn:        c.LinkedIn,
		GitHub:          c.GitHub,
		Twitter:         c.Twitter,
		AvatarImage:     c.AvatarImage,
		BackgroundImage: c.BackgroundImage,
		Owner:           c.Owner,
		Language:        c.Language,
		CreatedAt:       timeutil.Time{Time: c.CreatedAt},
		UpdatedAt:       timeutil.Time{Time: c.UpdatedAt},
	}
}
