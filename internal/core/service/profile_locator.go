package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/castmate/castmate-client/internal/core/domain"
	"github.com/castmate/castmate-client/internal/core/ports"
)

// AbsentOnNotFound is the caller-side policy "a 404 means the resource does
// not exist yet": it maps RequestFailed(404) to nil and returns any other
// error unchanged.
func AbsentOnNotFound(err error) error {
	if domain.IsNotFound(err) {
		return nil
	}
	return err
}

// ProfileLocator finds the actor profile of an account. The backend stores
// profiles under either the linked actor id or the account id; candidates are
// tried in that order.
type ProfileLocator struct {
	sessions ports.SessionService
	log      zerolog.Logger
}

func NewProfileLocator(sessions ports.SessionService, log zerolog.Logger) *ProfileLocator {
	return &ProfileLocator{sessions: sessions, log: log}
}

// LocateActorProfile returns the profile (nil when none exists yet) and the
// user summary it resolved from, which is fetched when user carries no ids.
func (l *ProfileLocator) LocateActorProfile(ctx context.Context, token string, user *domain.UserSummary) (*domain.ActorProfile, *domain.UserSummary, error) {
	candidates := user.ProfileCandidates()
	if len(candidates) == 0 {
		fetched, err := l.sessions.FetchCurrentUser(ctx, token)
		switch {
		case err == nil:
			user = fetched
			candidates = fetched.ProfileCandidates()
		case AbsentOnNotFound(err) == nil:
			l.log.Debug().Msg("current user endpoint unavailable, keeping known ids")
		default:
			return nil, user, err
		}
	}
	if len(candidates) == 0 {
		return nil, user, nil
	}

	var lastErr error
	for _, id := range candidates {
		profile, err := l.sessions.FetchActorProfile(ctx, id, token)
		if err == nil {
			return profile, user, nil
		}
		l.log.Debug().Err(err).Str("candidate", id).Msg("actor profile lookup failed")
		lastErr = err
	}
	return nil, user, AbsentOnNotFound(lastErr)
}

var _ ports.ProfileLocator = (*ProfileLocator)(nil)
