package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/castmate/castmate-client/internal/core/domain"
)

func TestSessionHandler_Login_StoresToken(t *testing.T) {
	store := &stubStore{}
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*domain.Session, error) {
			if email != "lina@example.com" || password != "pw" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.Session{AccessToken: "abc", User: &domain.UserSummary{ID: strPtr("u1")}}, nil
		},
	}
	h := NewSessionHandler(stub, store, zerolog.Nop())

	c, rec := newContext(http.MethodPost, "/session/login", `{"email":"lina@example.com","password":"pw"}`, "")
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if store.token != "abc" || store.sets != 1 {
		t.Fatalf("token not persisted: %+v", store)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "abc" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestSessionHandler_Login_Validation(t *testing.T) {
	h := NewSessionHandler(&stubSessionService{}, &stubStore{}, zerolog.Nop())
	for _, body := range []string{`{"email":"not-an-email","password":"pw"}`, `{"email":"a@b.com"}`, `{"email":`} {
		c, _ := newContext(http.MethodPost, "/session/login", body, "")
		if code := httpCode(t, h.Login(c)); code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, code)
		}
	}
}

func TestSessionHandler_Login_ServiceErrorNotPersisted(t *testing.T) {
	store := &stubStore{}
	stub := &stubSessionService{
		loginFn: func(context.Context, string, string) (*domain.Session, error) {
			return nil, domain.NewRequestFailed(401, "Identifiants invalides")
		},
	}
	h := NewSessionHandler(stub, store, zerolog.Nop())

	c, _ := newContext(http.MethodPost, "/session/login", `{"email":"a@b.com","password":"bad"}`, "")
	err := h.Login(c)
	if domain.StatusOf(err) != 401 {
		t.Fatalf("expected upstream 401, got %v", err)
	}
	if store.sets != 0 {
		t.Fatalf("failed login must not store a token")
	}
}

func TestSessionHandler_SignupActor_LenientDraft(t *testing.T) {
	store := &stubStore{}
	stub := &stubSessionService{
		signupActorFn: func(_ context.Context, draft domain.ActorSignUpDraft) (*domain.Session, error) {
			if draft.Age != "vingt" || draft.FirstName != "Lina" || len(draft.Interests) != 2 {
				t.Fatalf("unexpected draft %+v", draft)
			}
			return &domain.Session{AccessToken: "signup"}, nil
		},
	}
	h := NewSessionHandler(stub, store, zerolog.Nop())

	body := `{"firstName":"Lina","age":"vingt","email":"lina@example.com","password":"pw","interests":["Théâtre","Cinéma"]}`
	c, rec := newContext(http.MethodPost, "/session/signup/actor", body, "")
	if err := h.SignupActor(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated || store.token != "signup" {
		t.Fatalf("expected 201 with stored token, got %d %+v", rec.Code, store)
	}
}

func TestSessionHandler_SignupAgency_RequiresIdentity(t *testing.T) {
	h := NewSessionHandler(&stubSessionService{}, &stubStore{}, zerolog.Nop())
	c, _ := newContext(http.MethodPost, "/session/signup/agency", `{"agencyName":"Studio Nour"}`, "")
	if code := httpCode(t, h.SignupAgency(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestSessionHandler_SignupAgency_Success(t *testing.T) {
	store := &stubStore{}
	stub := &stubSessionService{
		signupAgencyFn: func(_ context.Context, draft domain.AgencySignUpDraft) (*domain.Session, error) {
			return &domain.Session{AccessToken: "agency"}, nil
		},
	}
	h := NewSessionHandler(stub, store, zerolog.Nop())
	c, rec := newContext(http.MethodPost, "/session/signup/agency", `{"agencyName":"Studio Nour","email":"nour@studio.tn","password":"pw"}`, "")
	if err := h.SignupAgency(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated || store.token != "agency" {
		t.Fatalf("unexpected result %d %+v", rec.Code, store)
	}
}

func TestSessionHandler_Info(t *testing.T) {
	h := NewSessionHandler(&stubSessionService{}, &stubStore{}, zerolog.Nop())

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1", "role": "acteur"}).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	c, rec := newContext(http.MethodGet, "/session", "", signed)
	if err := h.Info(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp sessionInfoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Authenticated || resp.Claims == nil || resp.Claims.Subject != "u1" || resp.Claims.Role != "acteur" {
		t.Fatalf("unexpected info %+v", resp)
	}

	c, rec = newContext(http.MethodGet, "/session", "", "opaque-token")
	if err := h.Info(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp = sessionInfoResponse{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if !resp.Authenticated || resp.Claims != nil {
		t.Fatalf("opaque token must report no claims, got %+v", resp)
	}
}

func TestSessionHandler_Logout(t *testing.T) {
	store := &stubStore{token: "abc"}
	h := NewSessionHandler(&stubSessionService{}, store, zerolog.Nop())
	c, rec := newContext(http.MethodDelete, "/session", "", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || store.token != "" {
		t.Fatalf("expected cleared token, got %d %+v", rec.Code, store)
	}

	failing := NewSessionHandler(&stubSessionService{}, &stubStore{err: errors.New("redis down")}, zerolog.Nop())
	c, _ = newContext(http.MethodDelete, "/session", "", "")
	if err := failing.Logout(c); err == nil {
		t.Fatalf("expected store error")
	}
}
