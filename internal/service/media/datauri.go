package media

import (
	"context"
	"encoding/base64"
)

// InlineStore is the local-mode backend: instead of hosting the image it
// returns a data URI, which the card record stores in place of an https
// URL. Matches how cards kept images before sign-in.
type InlineStore struct{}

// NewInlineStore creates an inline data-URI media service.
func NewInlineStore() *InlineStore {
	return &InlineStore{}
}

// Upload encodes the image as a data URI.
func (s *InlineStore) Upload(_ context.Context, _ string, params UploadParams) (*Asset, error) {
	if _, err := validate(params); err != nil {
		return nil, err
	}
	return &Asset{
		URL:         "data:" + params.ContentType + ";base64," + base64.StdEncoding.EncodeToString(params.Data),
		ContentType: params.ContentType,
		Size:        int64(len(params.Data)),
	}, nil
}

// Compile-time interface check
var _ Service = (*InlineStore)(nil)
