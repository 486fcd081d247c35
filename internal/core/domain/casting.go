package domain

import "github.com/castmate/castmate-client/internal/pkg/jsonfield"

// CastingSummary is the listing projection of a casting call.
type CastingSummary struct {
	ID              *string `json:"id,omitempty"`
	Title           *string `json:"titre,omitempty"`
	RoleDescription *string `json:"descriptionRole,omitempty"`
	Synopsis        *string `json:"synopsis,omitempty"`
	Location        *string `json:"lieu,omitempty"`
	StartDate       *string `json:"dateDebut,omitempty"`
	EndDate         *string `json:"dateFin,omitempty"`
	Compensation    *string `json:"remuneration,omitempty"`
	Role            *string `json:"role,omitempty"`
	MinAge          *int    `json:"ageMinimum,omitempty"`
	MaxAge          *int    `json:"ageMaximum,omitempty"`
}

func (c *CastingSummary) UnmarshalJSON(data []byte) error {
	obj, err := jsonfield.Parse(data)
	if err != nil {
		return err
	}
	return obj.Bind(
		jsonfield.Field(&c.ID, "id", "_id"),
		jsonfield.Field(&c.Title, "titre"),
		jsonfield.Field(&c.RoleDescription, "descriptionRole"),
		jsonfield.Field(&c.Synopsis, "synopsis"),
		jsonfield.Field(&c.Location, "lieu"),
		jsonfield.Field(&c.StartDate, "dateDebut"),
		jsonfield.Field(&c.EndDate, "dateFin"),
		jsonfield.Field(&c.Compensation, "remuneration"),
		jsonfield.Field(&c.Role, "role"),
		jsonfield.Field(&c.MinAge, "ageMinimum"),
		jsonfield.Field(&c.MaxAge, "ageMaximum"),
	)
}

// CastingDetail is the full projection, including the participation conditions.
type CastingDetail struct {
	ID              *string `json:"id,omitempty"`
	Title           *string `json:"titre,omitempty"`
	RoleDescription *string `json:"descriptionRole,omitempty"`
	Synopsis        *string `json:"synopsis,omitempty"`
	Location        *string `json:"lieu,omitempty"`
	StartDate       *string `json:"dateDebut,omitempty"`
	EndDate         *string `json:"dateFin,omitempty"`
	Compensation    *string `json:"remuneration,omitempty"`
	Conditions      *string `json:"conditions,omitempty"`
}

func (c *CastingDetail) UnmarshalJSON(data []byte) error {
	obj, err := jsonfield.Parse(data)
	if err != nil {
		return err
	}
	return obj.Bind(
		jsonfield.Field(&c.ID, "id", "_id"),
		jsonfield.Field(&c.Title, "titre"),
		jsonfield.Field(&c.RoleDescription, "descriptionRole"),
		jsonfield.Field(&c.Synopsis, "synopsis"),
		jsonfield.Field(&c.Location, "lieu"),
		jsonfield.Field(&c.StartDate, "dateDebut"),
		jsonfield.Field(&c.EndDate, "dateFin"),
		jsonfield.Field(&c.Compensation, "remuneration"),
		jsonfield.Field(&c.Conditions, "conditions"),
	)
}
