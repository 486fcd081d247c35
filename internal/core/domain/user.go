package domain

import (
	"strings"

	"github.com/castmate/castmate-client/internal/pkg/jsonfield"
)

const (
	RoleActor  = "acteur"
	RoleAgency = "agence"
)

// Credentials are supplied by the caller for a single login; never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the result of a successful login or signup. The caller owns its
// lifecycle (store on success, clear on logout).
type Session struct {
	AccessToken string       `json:"access_token"`
	User        *UserSummary `json:"user,omitempty"`
}

// AuthResponse is the wire shape returned by login and signup endpoints.
type AuthResponse struct {
	AccessToken *string      `json:"access_token"`
	User        *UserSummary `json:"user"`
}

// HasToken reports whether the response carries a non-blank access token.
func (r *AuthResponse) HasToken() bool {
	return r != nil && r.AccessToken != nil && strings.TrimSpace(*r.AccessToken) != ""
}

// Session converts the response into a Session, failing with
// KindMissingAccessToken when the token is absent or blank.
func (r *AuthResponse) Session() (*Session, error) {
	if !r.HasToken() {
		return nil, NewMissingAccessToken()
	}
	return &Session{AccessToken: *r.AccessToken, User: r.User}, nil
}

// UserSummary describes the authenticated account.
type UserSummary struct {
	ID       *string `json:"id,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
	Type     *string `json:"type,omitempty"`
	ActorID  *string `json:"acteurId,omitempty"`
	AgencyID *string `json:"agenceId,omitempty"`
}

func (u *UserSummary) UnmarshalJSON(data []byte) error {
	obj, err := jsonfield.Parse(data)
	if err != nil {
		return err
	}
	return obj.Bind(
		jsonfield.Field(&u.ID, "id", "_id"),
		jsonfield.Field(&u.Email, "email"),
		jsonfield.Field(&u.Role, "role"),
		jsonfield.Field(&u.Type, "type"),
		jsonfield.Field(&u.ActorID, "acteurId"),
		jsonfield.Field(&u.AgencyID, "agenceId"),
	)
}

// ProfileCandidates lists the ids under which an actor profile may be stored:
// the linked actor id first, then the account id. Blank and duplicate ids are
// skipped.
func (u *UserSummary) ProfileCandidates() []string {
	if u == nil {
		return nil
	}
	var ids []string
	seen := make(map[string]struct{}, 2)
	for _, p := range []*string{u.ActorID, u.ID} {
		if p == nil || strings.TrimSpace(*p) == "" {
			continue
		}
		if _, dup := seen[*p]; dup {
			continue
		}
		seen[*p] = struct{}{}
		ids = append(ids, *p)
	}
	return ids
}
