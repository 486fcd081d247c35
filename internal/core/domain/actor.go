package domain

import (
	"strings"

	"github.com/castmate/castmate-client/internal/pkg/jsonfield"
)

// SocialLinks holds optional platform URLs.
type SocialLinks struct {
	Instagram *string `json:"instagram,omitempty"`
	YouTube   *string `json:"youtube,omitempty"`
	TikTok    *string `json:"tiktok,omitempty"`
}

// NewSocialLinks builds the request-side links. It returns nil when every
// value is blank; otherwise blank entries are left absent and values trimmed.
func NewSocialLinks(instagram, youtube, tiktok string) *SocialLinks {
	links := &SocialLinks{
		Instagram: nonBlank(instagram),
		YouTube:   nonBlank(youtube),
		TikTok:    nonBlank(tiktok),
	}
	if links.Instagram == nil && links.YouTube == nil && links.TikTok == nil {
		return nil
	}
	return links
}

func (s *SocialLinks) UnmarshalJSON(data []byte) error {
	obj, err := jsonfield.Parse(data)
	if err != nil {
		return err
	}
	return obj.Bind(
		jsonfield.Field(&s.Instagram, "instagram"),
		jsonfield.Field(&s.YouTube, "youtube"),
		jsonfield.Field(&s.TikTok, "tiktok"),
	)
}

// ActorProfile is the actor's public and professional record. Everything but
// the identifier may be missing while the profile is incomplete.
type ActorProfile struct {
	ID          *string      `json:"id,omitempty"`
	LastName    *string      `json:"nom,omitempty"`
	FirstName   *string      `json:"prenom,omitempty"`
	Email       *string      `json:"email,omitempty"`
	Phone       *string      `json:"tel,omitempty"`
	Age         *int         `json:"age,omitempty"`
	Region      *string      `json:"gouvernorat,omitempty"`
	Experience  *int         `json:"experience,omitempty"`
	CVURL       *string      `json:"cvPdf,omitempty"`
	Interests   []string     `json:"centresInteret,omitempty"`
	Photo       *string      `json:"photoProfil,omitempty"`
	SocialLinks *SocialLinks `json:"socialLinks,omitempty"`
}

func (p *ActorProfile) UnmarshalJSON(data []byte) error {
	obj, err := jsonfield.Parse(data)
	if err != nil {
		return err
	}
	return obj.Bind(
		jsonfield.Field(&p.ID, "id", "_id"),
		jsonfield.Field(&p.LastName, "nom"),
		jsonfield.Field(&p.FirstName, "prenom"),
		jsonfield.Field(&p.Email, "email"),
		jsonfield.Field(&p.Phone, "tel"),
		jsonfield.Field(&p.Age, "age"),
		jsonfield.Field(&p.Region, "gouvernorat"),
		jsonfield.Field(&p.Experience, "experience"),
		jsonfield.Field(&p.CVURL, "cvPdf"),
		jsonfield.Slice(&p.Interests, "centresInteret"),
		jsonfield.Field(&p.Photo, "photoProfil"),
		jsonfield.Field(&p.SocialLinks, "socialLinks"),
	)
}

// ActorProfileUpdate is a partial PATCH body: nil fields are not sent.
type ActorProfileUpdate struct {
	LastName    *string      `json:"nom,omitempty"`
	FirstName   *string      `json:"prenom,omitempty"`
	Email       *string      `json:"email,omitempty"`
	Phone       *string      `json:"tel,omitempty"`
	Age         *int         `json:"age,omitempty"`
	Region      *string      `json:"gouvernorat,omitempty"`
	Experience  *int         `json:"experience,omitempty"`
	CVURL       *string      `json:"cvPdf,omitempty"`
	Interests   []string     `json:"centresInteret,omitempty"`
	Photo       *string      `json:"photoProfil,omitempty"`
	SocialLinks *SocialLinks `json:"socialLinks,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (u ActorProfileUpdate) IsEmpty() bool {
	return u.LastName == nil && u.FirstName == nil && u.Email == nil && u.Phone == nil &&
		u.Age == nil && u.Region == nil && u.Experience == nil && u.CVURL == nil &&
		u.Interests == nil && u.Photo == nil && u.SocialLinks == nil
}

func nonBlank(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
