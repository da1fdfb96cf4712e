package media

// UploadInput for POST /media. Image bytes arrive base64-encoded in JSON;
// clients resize before upload so payloads stay small.
type UploadInput struct {
	Body struct {
		ContentType string `json:"contentType" required:"true" enum:"image/png,image/jpeg,image/webp,image/gif" doc:"Image MIME type" example:"image/png"`
		Data        []byte `json:"data"        required:"true" doc:"Base64-encoded image bytes"`
	}
}
