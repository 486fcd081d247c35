package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/castmate/castmate-client/internal/core/domain"
)

func TestProfileHandler_Me(t *testing.T) {
	stub := &stubSessionService{
		currentUserFn: func(_ context.Context, token string) (*domain.UserSummary, error) {
			if token != "tok" {
				t.Fatalf("unexpected token %q", token)
			}
			return &domain.UserSummary{ID: strPtr("u1"), Role: strPtr(domain.RoleActor)}, nil
		},
	}
	h := NewProfileHandler(stub, &stubLocator{})

	c, rec := newContext(http.MethodGet, "/me", "", "tok")
	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "u1" || resp["role"] != "acteur" {
		t.Fatalf("unexpected payload %+v", resp)
	}
}

func TestProfileHandler_RequiresToken(t *testing.T) {
	h := NewProfileHandler(&stubSessionService{}, &stubLocator{})
	c, _ := newContext(http.MethodGet, "/me", "", "")
	if code := httpCode(t, h.Me(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestProfileHandler_MyProfile_Absent(t *testing.T) {
	locator := &stubLocator{
		locateFn: func(_ context.Context, token string, user *domain.UserSummary) (*domain.ActorProfile, *domain.UserSummary, error) {
			return nil, &domain.UserSummary{ID: strPtr("u1")}, nil
		},
	}
	h := NewProfileHandler(&stubSessionService{}, locator)

	c, rec := newContext(http.MethodGet, "/me/profile", "", "tok")
	if err := h.MyProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if v, ok := resp["profile"]; !ok || v != nil {
		t.Fatalf("expected null profile, got %+v", resp)
	}
}

func TestProfileHandler_Get_PropagatesNotFound(t *testing.T) {
	stub := &stubSessionService{
		actorProfileFn: func(_ context.Context, id, token string) (*domain.ActorProfile, error) {
			if id != "a1" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil, domain.NewRequestFailed(404, "")
		},
	}
	h := NewProfileHandler(stub, &stubLocator{})

	c, _ := newContext(http.MethodGet, "/actors/a1", "", "tok")
	c.SetParamNames("id")
	c.SetParamValues("a1")
	if err := h.Get(c); !domain.IsNotFound(err) {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestProfileHandler_Update(t *testing.T) {
	stub := &stubSessionService{
		updateProfileFn: func(_ context.Context, id, token string, update domain.ActorProfileUpdate) (*domain.ActorProfile, error) {
			if update.Age == nil || *update.Age != 30 || update.LastName != nil {
				t.Fatalf("unexpected update %+v", update)
			}
			age := 30
			return &domain.ActorProfile{ID: strPtr(id), Age: &age}, nil
		},
	}
	h := NewProfileHandler(stub, &stubLocator{})

	c, rec := newContext(http.MethodPatch, "/actors/a1", `{"age":30}`, "tok")
	c.SetParamNames("id")
	c.SetParamValues("a1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newContext(http.MethodPatch, "/actors/a1", `{}`, "tok")
	c.SetParamNames("id")
	c.SetParamValues("a1")
	if code := httpCode(t, h.Update(c)); code != http.StatusBadRequest {
		t.Fatalf("empty update: expected 400, got %d", code)
	}
}

func TestCastingHandler(t *testing.T) {
	stub := &stubSessionService{
		castingsFn: func(context.Context) ([]domain.CastingSummary, error) {
			return nil, nil
		},
		castingDetailFn: func(_ context.Context, id string) (*domain.CastingDetail, error) {
			return nil, domain.NewNetworkFailure(io.EOF)
		},
	}
	h := NewCastingHandler(stub)

	c, rec := newContext(http.MethodGet, "/castings", "", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("expected empty array, got %q", got)
	}

	c, _ = newContext(http.MethodGet, "/castings/c1", "", "")
	c.SetParamNames("id")
	c.SetParamValues("c1")
	if domain.KindOf(h.Get(c)) != domain.KindNetworkFailure {
		t.Fatalf("expected network failure")
	}
}
