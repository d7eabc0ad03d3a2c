package contact

import (
	"brightway/internal/domain"
	"brightway/internal/email"
)

// SubmitContactRequest accepts both JSON and form-encoded posts.
type SubmitContactRequest struct {
	FirstName string `json:"firstName" form:"firstName" validate:"required"`
	LastName  string `json:"lastName" form:"lastName" validate:"required"`
	Email     string `json:"email" form:"email" validate:"required"`
	Message   string `json:"message" form:"message" validate:"required"`

	Phone       string `json:"phone" form:"phone"`
	City        string `json:"city" form:"city"`
	Postcode    string `json:"postcode" form:"postcode"`
	ServiceType string `json:"serviceType" form:"serviceType"`
}

func (r SubmitContactRequest) toSubmission() domain.ContactSubmission {
	return domain.ContactSubmission{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		City:        r.City,
		Postcode:    r.Postcode,
		ServiceType: r.ServiceType,
		Message:     r.Message,
		Status:      domain.StatusNew,
	}
}

func (r SubmitContactRequest) emailData() email.ContactEmailData {
	return email.ContactEmailData{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		City:        r.City,
		Postcode:    r.Postcode,
		ServiceType: r.ServiceType,
		Message:     r.Message,
	}
}
