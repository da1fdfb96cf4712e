package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all process configuration. Values come from the environment,
// with a .env file loaded first when present (local development).
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// FirebaseProjectID selects the Firebase project. Empty means local
	// mode: file-backed card store, anonymous identities allowed, images
	// kept inline as data URIs.
	FirebaseProjectID string

	// GoogleApplicationCredentials is an optional path to a service
	// account JSON file.
	GoogleApplicationCredentials string

	// StorageBucket is the Cloud Storage bucket for uploaded images.
	// Defaults to "<project-id>.appspot.com" when a project is set.
	StorageBucket string

	// CloudinaryCloudName switches image hosting to Cloudinary unsigned
	// uploads when set.
	CloudinaryCloudName string

	// CloudinaryUploadPreset names the unsigned upload preset.
	CloudinaryUploadPreset string

	// LocalDataPath is the JSON file used by the local card store.
	LocalDataPath string

	// CORSOrigins restricts browser origins; empty means any.
	CORSOrigins []string
}

// LocalMode reports whether the server runs without Firebase, serving
// anonymous users from the local file store.
func (c *Config) LocalMode() bool {
	return c.FirebaseProjectID == ""
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                         envOr("PORT", "8080"),
		FirebaseProjectID:            os.Getenv("FIREBASE_PROJECT_ID"),
		GoogleApplicationCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		StorageBucket:                os.Getenv("STORAGE_BUCKET"),
		CloudinaryCloudName:          os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryUploadPreset:       os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
		LocalDataPath:                envOr("LOCAL_DATA_PATH", "cards.json"),
	}

	if cfg.StorageBucket == "" && cfg.FirebaseProjectID != "" {
		cfg.StorageBucket = cfg.FirebaseProjectID + ".appspot.com"
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
