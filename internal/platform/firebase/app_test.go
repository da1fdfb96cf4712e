package firebase

import (
	"context"
	"testing"
)

func TestClientsCloseReturnsNilWhenFirestoreNil(t *testing.T) {
	c := &Clients{}

	if err := c.Close(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestInitializeClientsMissingCredentialsFile(t *testing.T) {
	_, err := InitializeClients(context.Background(), Config{
		ProjectID:                    "demo-cardfolio",
		GoogleApplicationCredentials: "/nonexistent/credentials.json",
	})
	if err == nil {
		t.Fatal("expected error for missing credentials file")
	}
}

func TestConfigStruct(t *testing.T) {
	cfg := Config{
		ProjectID:     "demo-cardfolio",
		StorageBucket: "demo-cardfolio.appspot.com",
	}

	if cfg.ProjectID != "demo-cardfolio" {
		t.Fatalf("expected ProjectID demo-cardfolio, got %s", cfg.ProjectID)
	}
	if cfg.StorageBucket != "demo-cardfolio.appspot.com" {
		t.Fatalf("expected derived bucket name, got %s", cfg.StorageBucket)
	}
}
