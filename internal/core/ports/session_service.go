package ports

import (
	"context"

	"github.com/castmate/castmate-client/internal/core/domain"
)

// SessionService exposes the backend operations used by the app.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	SignupActor(ctx context.Context, draft domain.ActorSignUpDraft) (*domain.Session, error)
	SignupAgency(ctx context.Context, draft domain.AgencySignUpDraft) (*domain.Session, error)
	FetchCurrentUser(ctx context.Context, token string) (*domain.UserSummary, error)
	FetchActorProfile(ctx context.Context, id, token string) (*domain.ActorProfile, error)
	UpdateActorProfile(ctx context.Context, id, token string, update domain.ActorProfileUpdate) (*domain.ActorProfile, error)
	FetchCastings(ctx context.Context) ([]domain.CastingSummary, error)
	FetchCastingDetail(ctx context.Context, id string) (*domain.CastingDetail, error)
}

// ProfileLocator resolves the actor profile linked to an account, treating a
// missing profile as absent rather than as an error.
type ProfileLocator interface {
	LocateActorProfile(ctx context.Context, token string, user *domain.UserSummary) (*domain.ActorProfile, *domain.UserSummary, error)
}
