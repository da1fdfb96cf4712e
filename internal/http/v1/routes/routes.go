package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cardfolio/api/internal/http/v1/cards"
	mediahandler "github.com/cardfolio/api/internal/http/v1/media"
	"github.com/cardfolio/api/internal/platform/auth"
	cardsvc "github.com/cardfolio/api/internal/service/card"
	mediasvc "github.com/cardfolio/api/internal/service/media"
)

// Register wires all HTTP routes into the provided API router.
func Register(
	api huma.API,
	verifier auth.Verifier,
	authOpts auth.Options,
	cardService cardsvc.Service,
	mediaService mediasvc.Service,
) {
	prefix := apiPrefix(api)

	api.OpenAPI().Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearerAuth": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}

	// Auth middleware guards every operation that declares bearer security.
	api.UseMiddleware(auth.NewMiddleware(api, verifier, authOpts))

	cards.Register(api, cardService, prefix)
	mediahandler.Register(api, mediaService)
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}
