package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"

	applog "github.com/cardfolio/api/internal/platform/logging"
)

const (
	cloudinaryBaseURL = "https://api.cloudinary.com/v1_1"
	userAgent         = "cardfolio-api"
)

// CloudinaryClient hosts images through Cloudinary's unsigned upload API.
// Unsigned uploads need only the cloud name and a preset configured to
// accept them, which is how the web client uploaded before.
type CloudinaryClient struct {
	httpClient   *http.Client
	baseURL      string
	cloudName    string
	uploadPreset string
}

// CloudinaryOption configures a CloudinaryClient.
type CloudinaryOption func(*CloudinaryClient)

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) CloudinaryOption {
	return func(c *CloudinaryClient) {
		c.baseURL = url
	}
}

// NewCloudinaryClient creates a Cloudinary-backed media service.
func NewCloudinaryClient(httpClient *http.Client, cloudName, uploadPreset string, opts ...CloudinaryOption) *CloudinaryClient {
	c := &CloudinaryClient{
		httpClient:   httpClient,
		baseURL:      cloudinaryBaseURL,
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// cloudinaryUploadResponse is the subset of Cloudinary's response we use.
type cloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
	Bytes     int64  `json:"bytes"`
	Format    string `json:"format"`
}

// Upload posts the image as multipart form data and returns the secure URL.
func (c *CloudinaryClient) Upload(ctx context.Context, _ string, params UploadParams) (*Asset, error) {
	ext, err := validate(params)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("upload_preset", c.uploadPreset); err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}
	fw, err := mw.CreateFormFile("file", "upload"+ext)
	if err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}
	if _, err := fw.Write(params.Data); err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}

	u := fmt.Sprintf("%s/%s/image/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		applog.LogWarn(ctx, "cloudinary upload rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", snippet),
		)
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var uploaded cloudinaryUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return nil, fmt.Errorf("decoding cloudinary response: %w", err)
	}
	if uploaded.SecureURL == "" {
		return nil, fmt.Errorf("%w: missing secure_url", ErrUpstream)
	}

	size := uploaded.Bytes
	if size == 0 {
		size = int64(len(params.Data))
	}
	return &Asset{
		URL:         uploaded.SecureURL,
		ContentType: params.ContentType,
		Size:        size,
	}, nil
}

// Compile-time interface check
var _ Service = (*CloudinaryClient)(nil)
