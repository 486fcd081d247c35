package domain

import (
	"sort"
	"strconv"
	"strings"
)

// ActorSignUpDraft accumulates the actor signup wizard. Every field is raw form
// text; nothing is sent until Payload is called on the final step.
type ActorSignUpDraft struct {
	// Step 1
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Age          string `json:"age"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	Phone        string `json:"phone"`
	Region       string `json:"government"`
	ProfilePhoto string `json:"profileImageBase64"`

	// Step 2
	YearsOfExperience string `json:"yearsOfExperience"`
	CVURL             string `json:"cvURL"`
	Instagram         string `json:"instagram"`
	TikTok            string `json:"tiktok"`
	YouTube           string `json:"youtube"`

	// Step 3
	Interests []string `json:"interests"`
}

// ActorSignupPayload is the wire body of POST acteur/signup.
type ActorSignupPayload struct {
	LastName    string       `json:"nom"`
	FirstName   string       `json:"prenom"`
	Email       string       `json:"email"`
	Password    string       `json:"motDePasse"`
	Phone       string       `json:"tel"`
	Age         *int         `json:"age,omitempty"`
	Region      string       `json:"gouvernorat"`
	Experience  *int         `json:"experience,omitempty"`
	CVURL       *string      `json:"cvPdf,omitempty"`
	Interests   []string     `json:"centresInteret"`
	Photo       *string      `json:"photoProfil,omitempty"`
	SocialLinks *SocialLinks `json:"socialLinks,omitempty"`
}

// Credentials returns the pair used for the post-signup login fallback.
func (d ActorSignUpDraft) Credentials() Credentials {
	return Credentials{Email: d.Email, Password: d.Password}
}

// Payload maps the draft to its wire shape. Numeric fields that do not parse
// are dropped rather than rejected.
func (d ActorSignUpDraft) Payload() ActorSignupPayload {
	return ActorSignupPayload{
		LastName:    d.LastName,
		FirstName:   d.FirstName,
		Email:       d.Email,
		Password:    d.Password,
		Phone:       d.Phone,
		Age:         lenientInt(d.Age),
		Region:      d.Region,
		Experience:  lenientInt(d.YearsOfExperience),
		CVURL:       nonBlank(d.CVURL),
		Interests:   interestSet(d.Interests),
		Photo:       nonBlank(d.ProfilePhoto),
		SocialLinks: NewSocialLinks(d.Instagram, d.YouTube, d.TikTok),
	}
}

// AgencySignUpDraft accumulates the agency signup wizard.
type AgencySignUpDraft struct {
	// Step 1
	AgencyName      string `json:"agencyName"`
	ResponsibleName string `json:"responsibleName"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	Phone           string `json:"phone"`
	Region          string `json:"government"`

	// Step 2
	Website          string `json:"website"`
	Description      string `json:"description"`
	Logo             string `json:"logoBase64"`
	AdminDocumentURL string `json:"adminDocumentURL"`
}

// AgencySignupPayload is the wire body of POST agence/signup.
type AgencySignupPayload struct {
	AgencyName      string  `json:"nomAgence"`
	ResponsibleName string  `json:"responsable"`
	Email           string  `json:"email"`
	Password        string  `json:"motDePasse"`
	Phone           string  `json:"tel"`
	Region          string  `json:"gouvernorat"`
	Website         *string `json:"siteWeb,omitempty"`
	Description     *string `json:"description,omitempty"`
	LogoURL         *string `json:"logoUrl,omitempty"`
	Documents       *string `json:"documents,omitempty"`
}

func (d AgencySignUpDraft) Credentials() Credentials {
	return Credentials{Email: d.Email, Password: d.Password}
}

func (d AgencySignUpDraft) Payload() AgencySignupPayload {
	return AgencySignupPayload{
		AgencyName:      d.AgencyName,
		ResponsibleName: d.ResponsibleName,
		Email:           d.Email,
		Password:        d.Password,
		Phone:           d.Phone,
		Region:          d.Region,
		Website:         nonBlank(d.Website),
		Description:     nonBlank(d.Description),
		LogoURL:         nonBlank(d.Logo),
		Documents:       nonBlank(d.AdminDocumentURL),
	}
}

func lenientInt(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

// interestSet de-duplicates and sorts tags; the result is never nil so the
// field is always sent as an array.
func interestSet(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
