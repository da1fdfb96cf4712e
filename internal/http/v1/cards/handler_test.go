package cards

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/cardfolio/api/internal/platform/auth"
	applog "github.com/cardfolio/api/internal/platform/logging"
	appmiddleware "github.com/cardfolio/api/internal/platform/middleware"
	"github.com/cardfolio/api/internal/platform/pagination"
	"github.com/cardfolio/api/internal/platform/respond"
	cardsvc "github.com/cardfolio/api/internal/service/card"
)

func newTestRouter(svc cardsvc.Service, verifier auth.Verifier, opts auth.Options) chi.Router {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("CardsTest", "test"))
	api.UseMiddleware(auth.NewMiddleware(api, verifier, opts))
	Register(api, svc, "/v1")
	return router
}

func seedCard(t *testing.T, svc cardsvc.Service, owner, name string) *cardsvc.Card {
	t.Helper()
	c, err := svc.Create(context.Background(), owner, cardsvc.CreateParams{
		Name:  name,
		Email: owner,
	})
	if err != nil {
		t.Fatalf("failed to seed card: %v", err)
	}
	return c
}

func TestCreateCardSuccess(t *testing.T) {
	svc := cardsvc.NewMockService()
	verifier := &auth.MockVerifier{Identity: auth.TestIdentity()}
	router := newTestRouter(svc, verifier, auth.Options{})

	body := `{"name":"Alice Chen","title":"Product Designer","email":"alice@example.com","language":"en"}`
	req := httptest.NewRequest(http.MethodPost, "/cards", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	req.Header.Set(chimiddleware.RequestIDHeader, "create-card-test")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var card Card
	if err := json.Unmarshal(resp.Body.Bytes(), &card); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if card.ID == "" {
		t.Fatal("expected an assigned identifier")
	}
	if card.Owner != "alice@example.com" {
		t.Errorf("expected owner alice@example.com, got %s", card.Owner)
	}
	if card.Language != "en" {
		t.Errorf("expected language en, got %s", card.Language)
	}
	if !card.CreatedAt.Equal(card.UpdatedAt.Time) {
		t.Error("expected createdAt == updatedAt on create")
	}

	location := resp.Header().Get("Location")
	if location != "/v1/cards/"+card.ID {
		t.Errorf("expected Location /v1/cards/%s, got %s", card.ID, location)
	}
}

func TestCreateCardValidation(t *testing.T) {
	svc := cardsvc.NewMockService()
	verifier := &auth.MockVerifier{Identity: auth.TestIdentity()}
	router := newTestRouter(svc, verifier, auth.Options{})

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"alice@example.com"}`},
		{"missing email", `{"name":"Alice"}`},
		{"bad language", `{"name":"Alice","email":"alice@example.com","language":"fr"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/cards", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer valid-token")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
			}
		})
	}
}

func TestCreateCardRequiresToken(t *testing.T) {
	svc := cardsvc.NewMockService()
	verifier := &auth.MockVerifier{Identity: auth.TestIdentity()}
	router := newTestRouter(svc, verifier, auth.Options{})

	body := `{"name":"Alice","email":"alice@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/cards", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCreateCardAnonymousLocalMode(t *testing.T) {
	svc := cardsvc.NewLocalStore(t.TempDir() + "/cards.json")
	verifier := &auth.MockVerifier{Identity: &auth.Identity{Anonymous: true}}
	router := newTestRouter(svc, verifier, auth.Options{AllowAnonymous: true})

	body := `{"name":"Guest","email":"guest@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/cards", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var card Card
	if err := json.Unmarshal(resp.Body.Bytes(), &card); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if !strings.HasPrefix(card.ID, "temp_") {
		t.Errorf("expected temp_ identifier, got %s", card.ID)
	}
	if card.Owner != "" {
		t.Errorf("expected no owner for an anonymous card, got %s", card.Owner)
	}
}

func TestGetCardPublic(t *testing.T) {
	svc := cardsvc.NewMockService()
	verifier := &auth.MockVerifier{Identity: auth.TestIdentity()}
	router := newTestRouter(svc, verifier, auth.Options{})

	seeded := seedCard(t, svc, "alice@example.com", "Alice Chen")

	req := httptest.NewRequest(http.MethodGet, "/cards/"+seeded.ID, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 without a token, got %d: %s", resp.Code, resp.Body.String())
	}

	var card Card
	if err := json.Unmarshal(resp.Body.Bytes(), &card); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if card.ID != seeded.ID {
		t.Errorf("expected card %s, got %s", seeded.ID, card.ID)
	}
	if card.Name != "Alice Chen" {
		t.Errorf("expected name Alice Chen, got %s", card.Name)
	}
}

func TestGetCardNotFound(t *testing.T) {
	svc := cardsvc.NewMockService()
	verifier := &auth.MockVerifier{Identity: auth.TestIdentity()}
	router := newTestRouter(svc, verifier, auth.Options{})

	req := httptest.NewRequest(http.MethodGet, "/cards/missing", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestListCards(t *testing.T) {
	svc := cardsvc.NewMockService()
	verifier := &auth.MockVerifier{Identity: auth.TestIdentity()}
	router := newTestRouter(svc, verifier, auth.Options{})

	seedCard(t, svc, "alice@example.com", "First")
	seedCard(t, svc, "alice@example.com", "Second")
	seedCard(t, svc, "bob@example.com", "Other")

	req := httptest.NewRequest(http.MethodGet, "/cards", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var data ListData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if data.Total != 2 {
		t.Errorf("expected 2 cards for the caller, got %d", data.Total)
	}
	for _, c := range data.Cards {
		if c.Owner != "alice@example.com" {
			t.Errorf("expected only the caller's cards, got owner %s", c.Owner)
		}
	}
}

func TestListCardsPagination(t *testing.T) {
	svc := cardsvc.NewMockService()
	verifier := &auth.MockVerifier{Identity: auth.TestIdentity()}
	router := newTestRouter(svc, verifier, auth.Options{})

	for i := 0; i < 5; i++ {
		seedCard(t, svc, "alice@example.com", "Card")
	}

	req := httptest.NewRequest(http.MethodGet, "/cards?limit=2", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var data ListData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(data.Cards) != 2 {
		t.Errorf("expected 2 cards on the page, got %d", len(data.Cards))
	}
	if data.Total != 5 {
		t.Errorf("expected total 5, got %d", data.Total)
	}

	linkHeader := resp.Header().Get("Link")
	if !strings.Contains(linkHeader, `rel="next"`) {
		t.Error("expected Link header with rel=next")
	}

	// Follow the cursor for the second page.
	cursor := pagination.Cursor{Type: "card", Value: data.Cards[1].ID}.Encode()
	req = httptest.NewRequest(http.MethodGet, "/cards?limit=2&cursor="+cursor, nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var second ListData
	if err := json.Unmarshal(resp.Body.Bytes(), &second); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(second.Cards) != 2 {
		t.Errorf("expected 2 cards on the second page, got %d", len(second.Cards))
	}
	if second.Cards[0].ID == data.Cards[0].ID {
		t.Error("expected the second page to advance past the first")
	}
}

func TestListCardsInvalidCursor(t *testing.T) {
	svc := cardsvc.NewMockService()
	verifier := &auth.MockVerifier{Identity: auth.TestIdentity()}
	router := newTestRouter(svc, verifier, auth.Options{})

	req := httptest.NewRequest(http.MethodGet, "/cards?cursor=%21%21%21", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestUpdateCardSuccess(t *testing.T) {
	svc := cardsvc.NewMockService()
	verifier := &auth.MockVerifier{Identity: auth.TestIdentity()}
	router := newTestRouter(svc, verifier, auth.Options{})

	seeded := seedCard(t, svc, "alice@example.com", "Alice Chen")

	body := `{"title":"Staff Designer","company":"Example Oy"}`
	req := httptest.NewRequest(http.MethodPatch, "/cards/"+seeded.ID, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var card Card
	if err := json.Unmarshal(resp.Body.Bytes(), &card); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if card.Title != "Staff Designer" {
		t.Errorf("expected updated title, got %s", card.Title)
	}
	if card.Company != "Example Oy" {
		t.Errorf("expected updated company, got %s", card.Company)
	}
	if card.Name != "Alice Chen" {
		t.Errorf("expected untouched name, got %s", card.Name)
	}
}

func TestUpdateCardEmptyBody(t *testing.T) {
	svc := cardsvc.NewMockService()
	verifier := &auth.MockVerifier{Identity: auth.TestIdentity()}
	router := newTestRouter(svc, verifier, auth.Options{})

	seeded := seedCard(t, svc, "alice@example.com", "Alice Chen")

	req := httptest.NewRequest(http.MethodPatch, "/cards/"+seeded.ID, strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestUpdateCardForbidden(t *testing.T) {
	svc := cardsvc.NewMockService()
	verifier := &auth.MockVerifier{Identity: auth.TestIdentity()}
	router := newTestRouter(svc, verifier, auth.Options{})

	seeded := seedCard(t, svc, "bob@example.com", "Bob")

	body := `{"name":"Hijacked"}`
	req := httptest.NewRequest(http.MethodPatch, "/cards/"+seeded.ID, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", resp.Code, resp.Body.String())
	}

	kept, err := svc.Get(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kept.Name != "Bob" {
		t.Errorf("expected record unchanged after denied update, got %s", kept.Name)
	}
}

func TestDeleteCardSuccess(t *testing.T) {
	svc := cardsvc.NewMockService()
	verifier := &auth.MockVerifier{Identity: auth.TestIdentity()}
	router := newTestRouter(svc, verifier, auth.Options{})

	seeded := seedCard(t, svc, "alice@example.com", "Alice Chen")

	req := httptest.NewRequest(http.MethodDelete, "/cards/"+seeded.ID, nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", resp.Code, resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/cards/"+seeded.ID, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.Code)
	}
}

func TestDeleteCardForbidden(t *testing.T) {
	svc := cardsvc.NewMockService()
	verifier := &auth.MockVerifier{Identity: auth.TestIdentity()}
	router := newTestRouter(svc, verifier, auth.Options{})

	seeded := seedCard(t, svc, "bob@example.com", "Bob")

	req := httptest.NewRequest(http.MethodDelete, "/cards/"+seeded.ID, nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestDeleteCardNotFound(t *testing.T) {
	svc := cardsvc.NewMockService()
	verifier := &auth.MockVerifier{Identity: auth.TestIdentity()}
	router := newTestRouter(svc, verifier, auth.Options{})

	req := httptest.NewRequest(http.MethodDelete, "/cards/missing", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
}
