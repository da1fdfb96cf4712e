package media

import (
	"context"
	"fmt"
	"net/url"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	applog "github.com/cardfolio/api/internal/platform/logging"
)

// StorageStore hosts images in a Cloud Storage bucket. Object names are
// random so URLs are unguessable but stable; the owner goes into object
// metadata rather than the URL to keep emails out of shared links.
type StorageStore struct {
	bucket     *storage.BucketHandle
	bucketName string
}

// NewStorageStore creates a Cloud Storage backed media service.
func NewStorageStore(bucket *storage.BucketHandle, bucketName string) *StorageStore {
	return &StorageStore{bucket: bucket, bucketName: bucketName}
}

// Upload writes the image and returns its public URL.
func (s *StorageStore) Upload(ctx context.Context, owner string, params UploadParams) (*Asset, error) {
	ext, err := validate(params)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("uploads/%s%s", uuid.NewString(), ext)
	obj := s.bucket.Object(name)

	w := obj.NewWriter(ctx)
	w.ContentType = params.ContentType
	w.CacheControl = "public, max-age=31536000"
	if owner != "" {
		w.Metadata = map[string]string{"owner": owner}
	}
	if _, err := w.Write(params.Data); err != nil {
		_ = w.Close()
		applog.LogError(ctx, "image upload write failed", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if err := w.Close(); err != nil {
		applog.LogError(ctx, "image upload close failed", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return &Asset{
		URL:         publicURL(s.bucketName, name),
		ContentType: params.ContentType,
		Size:        int64(len(params.Data)),
	}, nil
}

// publicURL builds the canonical storage.googleapis.com URL, escaping the
// bucket and object names so the result stays valid whatever the naming
// scheme produces.
func publicURL(bucket, object string) string {
	u := url.URL{
		Scheme: "https",
		Host:   "storage.googleapis.com",
		Path:   "/" + bucket + "/" + object,
	}
	return u.String()
}

// Compile-time interface check
var _ Service = (*StorageStore)(nil)
