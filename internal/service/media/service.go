package media

import (
	"context"
	"errors"
)

// Service errors.
var (
	// ErrUnsupportedType means the payload is not an accepted image type.
	ErrUnsupportedType = errors.New("unsupported image type")

	// ErrEmptyImage means no image bytes were supplied.
	ErrEmptyImage = errors.New("empty image")

	// ErrTooLarge means the image exceeds MaxImageBytes.
	ErrTooLarge = errors.New("image too large")

	// ErrUpstream means the image host rejected or failed the upload.
	ErrUpstream = errors.New("image host error")
)

// MaxImageBytes caps uploads. Avatars and backgrounds are resized
// client-side before upload, so anything larger is a misbehaving client.
const MaxImageBytes = 5 << 20 // 5 MB

// imageExtensions doubles as the accepted content-type set.
var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// UploadParams describes one image upload.
type UploadParams struct {
	ContentType string
	Data        []byte
}

// Asset is a hosted image. URL is a stable reference the card record
// stores as an opaque string; it may be an https URL or a data URI
// depending on the active backend.
type Asset struct {
	URL         string
	ContentType string
	Size        int64
}

// Service uploads card images and returns their hosted location.
type Service interface {
	Upload(ctx context.Context, owner string, params UploadParams) (*Asset, error)
}

// validate applies the size and type rules shared by all backends.
func validate(params UploadParams) (ext string, err error) {
	if len(params.Data) == 0 {
		return "", ErrEmptyImage
	}
	if len(params.Data) > MaxImageBytes {
		return "", ErrTooLarge
	}
	ext, ok := imageExtensions[params.ContentType]
	if !ok {
		return "", ErrUnsupportedType
	}
	return ext, nil
}
