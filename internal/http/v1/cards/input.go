package cards

import (
	"github.com/cardfolio/api/internal/platform/pagination"
)

// CardCreateInput for POST /cards
type CardCreateInput struct {
	Body struct {
		Name            string `json:"name"                      minLength:"1" maxLength:"100"  required:"true" doc:"Display name"    example:"Alice Chen"`
		Title           string `json:"title,omitempty"           maxLength:"100"                                doc:"Job title"       example:"Product Designer"`
		Company         string `json:"company,omitempty"         maxLength:"100"                                doc:"Company name"    example:"Example Oy"`
		Email           string `json:"email"                     format:"email"                 required:"true" doc:"Contact email"   example:"alice@example.com"`
		Phone           string `json:"phone,omitempty"           maxLength:"30"                                 doc:"Contact phone"   example:"+358401234567"`
		Website         string `json:"website,omitempty"         format:"uri"   maxLength:"500"                 doc:"Website URL"`
		Address         string `json:"address,omitempty"         maxLength:"300"                                doc:"Physical address"`
		Bio             string `json:"bio,omitempty"             maxLength:"2000"                               doc:"Free-text description"`
		LinkedIn        string `json:"linkedin,omitempty"        maxLength:"500"                                doc:"LinkedIn profile URL"`
		GitHub          string `json:"github,omitempty"          maxLength:"500"                                doc:"GitHub profile URL"`
		Twitter         string `json:"twitter,omitempty"         maxLength:"500"                                doc:"Twitter profile URL"`
		AvatarImage     string `json:"avatarImage,omitempty"                                                    doc:"Avatar image URL or data URI"`
		BackgroundImage string `json:"backgroundImage,omitempty"                                                doc:"Background image URL or data URI"`
		Language        string `json:"language,omitempty"        enum:"en,zh"                                   doc:"Display language" example:"en"`
	}
}

// CardGetInput for GET /cards/{id}
type CardGetInput struct {
	ID string `path:"id" minLength:"1" maxLength:"128" doc:"Card identifier"`
}

// CardListInput for GET /cards
type CardListInput struct {
	pagination.Params
}

// CardUpdateInput for PATCH /cards/{id}. Only provided fields are updated.
type CardUpdateInput struct {
	ID   string `path:"id" minLength:"1" maxLength:"128" doc:"Card identifier"`
	Body struct {
		Name            *string `json:"name,omitempty"            minLength:"1" maxLength:"100"  doc:"Display name"`
		Title           *string `json:"title,omitempty"           maxLength:"100"                doc:"Job title"`
		Company         *string `json:"company,omitempty"         maxLength:"100"                doc:"Company name"`
		Email           *string `json:"email,omitempty"           format:"email"                 doc:"Contact email"`
		Phone           *string `json:"phone,omitempty"           maxLength:"30"                 doc:"Contact phone"`
		Website         *string `json:"website,omitempty"         format:"uri"   maxLength:"500" doc:"Website URL"`
		Address         *string `json:"address,omitempty"         maxLength:"300"                doc:"Physical address"`
		Bio             *string `json:"bio,omitempty"             maxLength:"2000"               doc:"Free-text description"`
		LinkedIn        *string `json:"linkedin,omitempty"        maxLength:"500"                doc:"LinkedIn profile URL"`
		GitHub          *string `json:"github,omitempty"          maxLength:"500"                doc:"GitHub profile URL"`
		Twitter         *string `json:"twitter,omitempty"         maxLength:"500"                doc:"Twitter profile URL"`
		AvatarImage     *string `json:"avatarImage,omitempty"                                    doc:"Avatar image URL or data URI"`
		BackgroundImage *string `json:"backgroundImage,omitempty"                                doc:"Background image URL or data URI"`
		Language        *string `json:"language,omitempty"        enum:"en,zh"                   doc:"Display language"`
	}
}

// CardDeleteInput for DELETE /cards/{id}
type CardDeleteInput struct {
	ID string `path:"id" minLength:"1" maxLength:"128" doc:"Card identifier"`
}
