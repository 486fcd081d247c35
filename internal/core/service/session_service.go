package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/castmate/castmate-client/internal/core/domain"
	"github.com/castmate/castmate-client/internal/core/ports"
)

const (
	pathLogin        = "auth/login"
	pathSignupActor  = "acteur/signup"
	pathSignupAgency = "agence/signup"
	pathCurrentUser  = "users/me"
	pathActor        = "acteur/"
	pathCastings     = "castings"
)

// SessionService implements the backend operations on top of an APIClient.
// It keeps no session state: tokens are passed in on every call.
type SessionService struct {
	client ports.APIClient
	log    zerolog.Logger
}

// NewSessionService returns a SessionService using client for every call.
func NewSessionService(client ports.APIClient, log zerolog.Logger) *SessionService {
	return &SessionService{client: client, log: log}
}

// Login exchanges credentials for a session. A 2xx response without a usable
// token fails with KindMissingAccessToken.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	return s.login(ctx, "login", domain.Credentials{Email: email, Password: password})
}

func (s *SessionService) login(ctx context.Context, op string, creds domain.Credentials) (*domain.Session, error) {
	resp, err := ports.Send[domain.AuthResponse](ctx, s.client, op, ports.MethodPost, pathLogin, creds, nil)
	if err != nil {
		return nil, err
	}
	return resp.Session()
}

// SignupActor registers an actor account. When the backend registers the
// account without issuing a token, a single follow-up login with the same
// credentials provides the session.
func (s *SessionService) SignupActor(ctx context.Context, draft domain.ActorSignUpDraft) (*domain.Session, error) {
	return s.signup(ctx, "signup_actor", pathSignupActor, draft.Payload(), draft.Credentials())
}

// SignupAgency is SignupActor for agencies.
func (s *SessionService) SignupAgency(ctx context.Context, draft domain.AgencySignUpDraft) (*domain.Session, error) {
	return s.signup(ctx, "signup_agency", pathSignupAgency, draft.Payload(), draft.Credentials())
}

func (s *SessionService) signup(ctx context.Context, op, path string, payload any, creds domain.Credentials) (*domain.Session, error) {
	resp, err := ports.Send[domain.AuthResponse](ctx, s.client, op, ports.MethodPost, path, payload, nil)
	if err != nil {
		return nil, err
	}
	if resp.HasToken() {
		s.log.Debug().Str("operation", op).Msg("signup returned a token")
		return resp.Session()
	}

	s.log.Debug().Str("operation", op).Msg("signup returned no token, logging in")
	session, err := s.login(ctx, op+"_login", creds)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// FetchCurrentUser returns the account behind token.
func (s *SessionService) FetchCurrentUser(ctx context.Context, token string) (*domain.UserSummary, error) {
	user, err := ports.Fetch[domain.UserSummary](ctx, s.client, "fetch_current_user", ports.MethodGet, pathCurrentUser, ports.BearerHeader(token))
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FetchActorProfile returns the actor profile stored under id. A profile that
// does not exist yet surfaces as RequestFailed(404).
func (s *SessionService) FetchActorProfile(ctx context.Context, id, token string) (*domain.ActorProfile, error) {
	profile, err := ports.Fetch[domain.ActorProfile](ctx, s.client, "fetch_actor_profile", ports.MethodGet, actorPath(id), ports.BearerHeader(token))
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateActorProfile sends only the fields set in update.
func (s *SessionService) UpdateActorProfile(ctx context.Context, id, token string, update domain.ActorProfileUpdate) (*domain.ActorProfile, error) {
	profile, err := ports.Send[domain.ActorProfile](ctx, s.client, "update_actor_profile", ports.MethodPatch, actorPath(id), update, ports.BearerHeader(token))
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FetchCastings lists open castings.
func (s *SessionService) FetchCastings(ctx context.Context) ([]domain.CastingSummary, error) {
	castings, err := ports.Fetch[[]domain.CastingSummary](ctx, s.client, "fetch_castings", ports.MethodGet, pathCastings, nil)
	if err != nil {
		return nil, err
	}
	return castings, nil
}

// FetchCastingDetail returns one casting.
func (s *SessionService) FetchCastingDetail(ctx context.Context, id string) (*domain.CastingDetail, error) {
	detail, err := ports.Fetch[domain.CastingDetail](ctx, s.client, "fetch_casting_detail", ports.MethodGet, pathCastings+"/"+pathSegment(id), nil)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func actorPath(id string) string {
	return pathActor + pathSegment(id)
}

// pathSegment escapes id so it stays a single path segment.
func pathSegment(id string) string {
	if id == "." || id == ".." {
		return strings.ReplaceAll(id, ".", "%2E")
	}
	return url.PathEscape(id)
}

var _ ports.SessionService = (*SessionService)(nil)
