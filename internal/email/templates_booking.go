package email

import "fmt"

// BookingEmailData carries the submitted booking fields into the two
// booking templates.
type BookingEmailData struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Address      string
	City         string
	Postcode     string
	PropertySize string
	Rooms        string
	ServiceType  string
	CleaningType string
	Frequency    string

	PreferredDate string
	PreferredTime string
	Notes         string
}

// BuildBookingBusinessEmail creates the internal notification for a new
// booking request. The team promises first contact within 2 hours, so the
// banner makes the deadline impossible to miss.
func BuildBookingBusinessEmail(to string, d BookingEmailData) Message {
	subject := fmt.Sprintf("New booking request from %s %s", d.FirstName, d.LastName)

	textBody := fmt.Sprintf(`NEW BOOKING REQUEST - ACTION REQUIRED
Respond within 2 hours.

Customer
  Name:  %s %s
  Email: %s
  Phone: %s

Property
  Address:  %s
  City:     %s
  Postcode: %s
  Size:     %s
  Rooms:    %s

Service
  Service type:  %s
  Cleaning type: %s
  Frequency:     %s

Schedule
  Preferred date: %s
  Preferred time: %s

Notes:
%s`,
		d.FirstName, d.LastName, d.Email, orFallback(d.Phone),
		orFallback(d.Address), orFallback(d.City), orFallback(d.Postcode),
		orFallback(d.PropertySize), orFallback(d.Rooms),
		d.ServiceType, d.CleaningType, orFallback(d.Frequency),
		d.PreferredDate, d.PreferredTime,
		orFallback(d.Notes))

	rows := htmlRow("Name", d.FirstName+" "+d.LastName) +
		htmlRow("Email", d.Email) +
		htmlRow("Phone", d.Phone) +
		htmlRow("Address", d.Address) +
		htmlRow("City", d.City) +
		htmlRow("Postcode", d.Postcode) +
		htmlRow("Property size", d.PropertySize) +
		htmlRow("Rooms", d.Rooms) +
		htmlRow("Service type", d.ServiceType) +
		htmlRow("Cleaning type", d.CleaningType) +
		htmlRow("Frequency", d.Frequency) +
		htmlRow("Preferred date", d.PreferredDate) +
		htmlRow("Preferred time", d.PreferredTime) +
		htmlRow("Notes", d.Notes)

	htmlBody := htmlDocument(
		ctaBanner("NEW BOOKING REQUEST — ACTION REQUIRED: respond within 2 hours") +
			`<h2 style="color: #2563eb;">Booking request details</h2>` +
			detailTable(rows))

	return Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildBookingCustomerEmail creates the confirmation sent back to the
// customer who requested a booking.
func BuildBookingCustomerEmail(d BookingEmailData) Message {
	firstName := d.FirstName
	if firstName == "" {
		firstName = "there"
	}

	subject := fmt.Sprintf("We received your booking request — %s", appName)

	textBody := fmt.Sprintf(`Hi %s,

Thanks for booking with %s! We received your request and will contact you within 2 hours to confirm your appointment.

Your request:
  Service type:   %s
  Cleaning type:  %s
  Preferred date: %s
  Preferred time: %s
  Frequency:      %s

If anything changes, just reply to this email.

Thanks,
The %s Team`,
		firstName, appName,
		d.ServiceType, d.CleaningType, d.PreferredDate, d.PreferredTime,
		orFallback(d.Frequency), appName)

	rows := htmlRow("Service type", d.ServiceType) +
		htmlRow("Cleaning type", d.CleaningType) +
		htmlRow("Preferred date", d.PreferredDate) +
		htmlRow("Preferred time", d.PreferredTime) +
		htmlRow("Frequency", d.Frequency)

	htmlBody := htmlDocument(fmt.Sprintf(
		`<h2 style="color: #2563eb;">Hi %s,</h2>
<p>Thanks for booking with %s! We received your request and will contact you <strong>within 2 hours</strong> to confirm your appointment.</p>
%s
<p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>`,
		firstName, appName, detailTable(rows), appName))

	return Message{
		To:       []string{d.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
