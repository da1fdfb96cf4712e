package media

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cardfolio/api/internal/platform/auth"
	mediasvc "github.com/cardfolio/api/internal/service/media"
)

// Register registers the image upload endpoint.
func Register(api huma.API, svc mediasvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID:   "upload-media",
		Method:        http.MethodPost,
		Path:          "/media",
		Summary:       "Upload a card image",
		Description:   "Uploads an avatar or background image and returns a stable URL to store on a card.",
		Tags:          []string{"Media"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *UploadInput) (*UploadOutput, error) {
		asset, err := svc.Upload(ctx, auth.OwnerEmail(ctx), mediasvc.UploadParams{
			ContentType: input.Body.ContentType,
			Data:        input.Body.Data,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &UploadOutput{
			Body: Asset{
				URL:         asset.URL,
				ContentType: asset.ContentType,
				Size:        asset.Size,
			},
		}, nil
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, mediasvc.ErrEmptyImage),
		errors.Is(err, mediasvc.ErrUnsupportedType):
		return huma.Error422UnprocessableEntity("unsupported or empty image")
	case errors.Is(err, mediasvc.ErrTooLarge):
		// huma has no generated 413 constructor.
		return huma.NewError(http.StatusRequestEntityTooLarge, "image too large")
	case errors.Is(err, mediasvc.ErrUpstream):
		return huma.Error502BadGateway("image host error")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
