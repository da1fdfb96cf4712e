package media

import (
	"context"
)

// MockService implements Service for unit tests.
type MockService struct {
	Asset *Asset
	Error error

	// LastOwner records the owner passed to the most recent upload.
	LastOwner string
}

// Upload returns the configured asset or error.
func (m *MockService) Upload(_ context.Context, owner string, params UploadParams) (*Asset, error) {
	m.LastOwner = owner
	if m.Error != nil {
		return nil, m.Error
	}
	if m.Asset != nil {
		return m.Asset, nil
	}
	return &Asset{
		URL:         "https://cdn.example.com/uploads/mock.png",
		ContentType: params.ContentType,
		Size:        int64(len(params.Data)),
	}, nil
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
