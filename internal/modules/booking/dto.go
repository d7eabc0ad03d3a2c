package booking

import (
	"brightway/internal/domain"
	"brightway/internal/email"
)

// SubmitBookingRequest accepts both JSON and form-encoded posts from the
// booking form. Required fields carry only a presence check; the site never
// validated formats and the API keeps that behavior.
type SubmitBookingRequest struct {
	ServiceType  string `json:"serviceType" form:"serviceType" validate:"required"`
	FirstName    string `json:"firstName" form:"firstName" validate:"required"`
	LastName     string `json:"lastName" form:"lastName" validate:"required"`
	Email        string `json:"email" form:"email" validate:"required"`
	Phone        string `json:"phone" form:"phone" validate:"required"`
	CleaningType string `json:"cleaningType" form:"cleaningType" validate:"required"`

	PreferredDate string `json:"preferredDate" form:"preferredDate" validate:"required"`
	PreferredTime string `json:"preferredTime" form:"preferredTime" validate:"required"`

	Address      string `json:"address" form:"address"`
	City         string `json:"city" form:"city"`
	Postcode     string `json:"postcode" form:"postcode"`
	PropertySize string `json:"propertySize" form:"propertySize"`
	Rooms        string `json:"rooms" form:"rooms"`
	Frequency    string `json:"frequency" form:"frequency"`
	Notes        string `json:"notes" form:"notes"`
}

func (r SubmitBookingRequest) toSubmission() domain.BookingSubmission {
	return domain.BookingSubmission{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		City:          r.City,
		Postcode:      r.Postcode,
		PropertySize:  r.PropertySize,
		Rooms:         r.Rooms,
		ServiceType:   r.ServiceType,
		CleaningType:  r.CleaningType,
		Frequency:     r.Frequency,
		PreferredDate: r.PreferredDate,
		PreferredTime: r.PreferredTime,
		Notes:         r.Notes,
		Status:        domain.StatusPending,
	}
}

func (r SubmitBookingRequest) emailData() email.BookingEmailData {
	return email.BookingEmailData{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		City:          r.City,
		Postcode:      r.Postcode,
		PropertySize:  r.PropertySize,
		Rooms:         r.Rooms,
		ServiceType:   r.ServiceType,
		CleaningType:  r.CleaningType,
		Frequency:     r.Frequency,
		PreferredDate: r.PreferredDate,
		PreferredTime: r.PreferredTime,
		Notes:         r.Notes,
	}
}
