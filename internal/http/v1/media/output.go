package media

// Asset is the hosted image reference returned after upload.
type Asset struct {
	URL         string `json:"url"         doc:"Stable image URL (or data URI in local mode)"`
	ContentType string `json:"contentType" doc:"Image MIME type" example:"image/png"`
	Size        int64  `json:"size"        doc:"Image size in bytes"`
}

// UploadOutput for POST /media (201 Created)
type UploadOutput struct {
	Body Asset
}
