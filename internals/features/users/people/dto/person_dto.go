package dto

import (
	"strings"

	personModel "hoaportal_backend/internals/features/users/people/model"
)

/* ===========================
   Requests
   =========================== */

// SetupProfileRequest is the first-signup payload (camelCase keys — the
// signup form predates the snake_case convention of the other endpoints).
type SetupProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (r *SetupProfileRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
}

type UpdateProfileRequest struct {
	FirstName              string  `json:"first_name"`
	LastName               string  `json:"last_name"`
	Phone                  *string `json:"phone,omitempty"`
	PreferredContactMethod *string `json:"preferred_contact_method,omitempty"`
}

func (r *UpdateProfileRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	if r.Phone != nil {
		p := strings.TrimSpace(*r.Phone)
		if p == "" {
			r.Phone = nil // empty phone is stored as NULL
		} else {
			r.Phone = &p
		}
	}
	if r.PreferredContactMethod != nil {
		m := strings.TrimSpace(*r.PreferredContactMethod)
		r.PreferredContactMethod = &m
	}
}

/* ===========================
   Responses
   =========================== */

// PersonSummaryDTO is the admin people-list row (no mailing address block).
type PersonSummaryDTO struct {
	PersonID               string  `json:"person_id"`
	FirstName              string  `json:"first_name"`
	LastName               string  `json:"last_name"`
	Email                  *string `json:"email,omitempty"`
	Phone                  *string `json:"phone,omitempty"`
	AccountType            *string `json:"account_type,omitempty"`
	AccountStatus          *string `json:"account_status,omitempty"`
	PreferredContactMethod *string `json:"preferred_contact_method,omitempty"`
	IsOfficialOwner        *bool   `json:"is_official_owner,omitempty"`
}

func ToPersonSummaryDTO(m personModel.PersonModel) PersonSummaryDTO {
	return PersonSummaryDTO{
		PersonID:               m.PersonID.String(),
		FirstName:              m.FirstName,
		LastName:               m.LastName,
		Email:                  m.Email,
		Phone:                  m.Phone,
		AccountType:            m.AccountType,
		AccountStatus:          m.AccountStatus,
		PreferredContactMethod: m.PreferredContactMethod,
		IsOfficialOwner:        m.IsOfficialOwner,
	}
}
