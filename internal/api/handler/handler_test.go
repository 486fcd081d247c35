package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/castmate/castmate-client/internal/api/middleware"
	"github.com/castmate/castmate-client/internal/core/domain"
)

type stubSessionService struct {
	loginFn         func(ctx context.Context, email, password string) (*domain.Session, error)
	signupActorFn   func(ctx context.Context, draft domain.ActorSignUpDraft) (*domain.Session, error)
	signupAgencyFn  func(ctx context.Context, draft domain.AgencySignUpDraft) (*domain.Session, error)
	currentUserFn   func(ctx context.Context, token string) (*domain.UserSummary, error)
	actorProfileFn  func(ctx context.Context, id, token string) (*domain.ActorProfile, error)
	updateProfileFn func(ctx context.Context, id, token string, update domain.ActorProfileUpdate) (*domain.ActorProfile, error)
	castingsFn      func(ctx context.Context) ([]domain.CastingSummary, error)
	castingDetailFn func(ctx context.Context, id string) (*domain.CastingDetail, error)
}

func (s *stubSessionService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubSessionService) SignupActor(ctx context.Context, draft domain.ActorSignUpDraft) (*domain.Session, error) {
	return s.signupActorFn(ctx, draft)
}

func (s *stubSessionService) SignupAgency(ctx context.Context, draft domain.AgencySignUpDraft) (*domain.Session, error) {
	return s.signupAgencyFn(ctx, draft)
}

func (s *stubSessionService) FetchCurrentUser(ctx context.Context, token string) (*domain.UserSummary, error) {
	return s.currentUserFn(ctx, token)
}

func (s *stubSessionService) FetchActorProfile(ctx context.Context, id, token string) (*domain.ActorProfile, error) {
	return s.actorProfileFn(ctx, id, token)
}

func (s *stubSessionService) UpdateActorProfile(ctx context.Context, id, token string, update domain.ActorProfileUpdate) (*domain.ActorProfile, error) {
	return s.updateProfileFn(ctx, id, token, update)
}

func (s *stubSessionService) FetchCastings(ctx context.Context) ([]domain.CastingSummary, error) {
	return s.castingsFn(ctx)
}

func (s *stubSessionService) FetchCastingDetail(ctx context.Context, id string) (*domain.CastingDetail, error) {
	return s.castingDetailFn(ctx, id)
}

type stubLocator struct {
	locateFn func(ctx context.Context, token string, user *domain.UserSummary) (*domain.ActorProfile, *domain.UserSummary, error)
}

func (s *stubLocator) LocateActorProfile(ctx context.Context, token string, user *domain.UserSummary) (*domain.ActorProfile, *domain.UserSummary, error) {
	return s.locateFn(ctx, token, user)
}

type stubStore struct {
	token string
	err   error
	sets  int
}

func (s *stubStore) Get(context.Context) (string, error) { return s.token, s.err }

func (s *stubStore) Set(_ context.Context, token string) error {
	if s.err != nil {
		return s.err
	}
	s.sets++
	s.token = token
	return nil
}

func (s *stubStore) Clear(context.Context) error {
	if s.err != nil {
		return s.err
	}
	s.token = ""
	return nil
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

// newContext builds an echo context with the validator registered and, when
// token is non-empty, the token the Session middleware would have resolved.
func newContext(method, target, body, token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if token != "" {
		c.Set(middleware.TokenKey, token)
	}
	return c, rec
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	return he.Code
}

func strPtr(s string) *string { return &s }
