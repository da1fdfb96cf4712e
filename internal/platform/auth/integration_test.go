package auth

import (
	"context"
	"testing"

	firebase "firebase.google.com/go/v4"

	"github.com/cardfolio/api/internal/testutil"
)

// setupVerifier builds a FirebaseVerifier backed by the Auth emulator.
func setupVerifier(t *testing.T) *FirebaseVerifier {
	t.Helper()

	testutil.SkipIfEmulatorUnavailable(t)
	testutil.SetupEmulator(t)
	testutil.ClearEmulators(t)

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: testutil.ProjectID})
	if err != nil {
		t.Fatalf("failed to create Firebase app: %v", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		t.Fatalf("failed to create auth client: %v", err)
	}
	return NewFirebaseVerifier(client)
}

func TestFirebaseVerifierEmulator(t *testing.T) {
	verifier := setupVerifier(t)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, "Carol@Example.com", "super-secret-pw")
	if user.IDToken == "" {
		t.Fatal("expected ID token from sign up")
	}

	identity, err := verifier.Verify(ctx, user.IDToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.UID != user.LocalID {
		t.Errorf("expected UID %s, got %s", user.LocalID, identity.UID)
	}
	if identity.Email != "carol@example.com" {
		t.Errorf("expected lowercased email, got %s", identity.Email)
	}
	if identity.Anonymous {
		t.Error("expected signed-in identity")
	}
}

func TestFirebaseVerifierEmulatorInvalidToken(t *testing.T) {
	verifier := setupVerifier(t)

	if _, err := verifier.Verify(context.Background(), "not-a-jwt"); err == nil {
		t.Fatal("expected error for garbage token")
	}
}
