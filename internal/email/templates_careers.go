package email

import "fmt"

// CareersEmailData carries the submitted application fields. Resume holds
// metadata of the uploaded file only; the bytes are never attached.
type CareersEmailData struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Address      string
	Position     string
	Availability string
	StartDate    string

	Experience     string
	Transportation string
	Reference1     string
	Reference2     string
	CoverLetter    string

	BackgroundCheck bool

	ResumeName string
	ResumeSize int64
	ResumeType string
}

func (d CareersEmailData) resumeLine() string {
	if d.ResumeName == "" {
		return notProvided
	}
	return fmt.Sprintf("%s (%d bytes, %s)", d.ResumeName, d.ResumeSize, d.ResumeType)
}

func (d CareersEmailData) backgroundCheckLine() string {
	if d.BackgroundCheck {
		return "Consented"
	}
	return "Not consented"
}

// BuildCareersBusinessEmail creates the internal notification for a new
// job application.
func BuildCareersBusinessEmail(to string, d CareersEmailData) Message {
	subject := fmt.Sprintf("New job application from %s %s — %s", d.FirstName, d.LastName, d.Position)

	textBody := fmt.Sprintf(`NEW JOB APPLICATION - ACTION REQUIRED
Respond within 48 hours.

Applicant
  Name:    %s %s
  Email:   %s
  Phone:   %s
  Address: %s

Role
  Position:     %s
  Availability: %s
  Start date:   %s

Details
  Transportation:   %s
  Background check: %s
  Resume:           %s

Experience:
%s

Reference 1:
%s

Reference 2:
%s

Cover letter:
%s`,
		d.FirstName, d.LastName, d.Email, d.Phone, orFallback(d.Address),
		d.Position, d.Availability, orFallback(d.StartDate),
		d.Transportation, d.backgroundCheckLine(), d.resumeLine(),
		orFallback(d.Experience),
		orFallback(d.Reference1), orFallback(d.Reference2),
		orFallback(d.CoverLetter))

	rows := htmlRow("Name", d.FirstName+" "+d.LastName) +
		htmlRow("Email", d.Email) +
		htmlRow("Phone", d.Phone) +
		htmlRow("Address", d.Address) +
		htmlRow("Position", d.Position) +
		htmlRow("Availability", d.Availability) +
		htmlRow("Start date", d.StartDate) +
		htmlRow("Transportation", d.Transportation) +
		htmlRow("Background check", d.backgroundCheckLine()) +
		htmlRow("Resume", d.resumeLine()) +
		htmlRow("Experience", d.Experience) +
		htmlRow("Reference 1", d.Reference1) +
		htmlRow("Reference 2", d.Reference2) +
		htmlRow("Cover letter", d.CoverLetter)

	htmlBody := htmlDocument(
		ctaBanner("NEW JOB APPLICATION — ACTION REQUIRED: respond within 48 hours") +
			`<h2 style="color: #2563eb;">Application details</h2>` +
			detailTable(rows))

	return Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildCareersCustomerEmail creates the confirmation sent to the applicant.
func BuildCareersCustomerEmail(d CareersEmailData) Message {
	firstName := d.FirstName
	if firstName == "" {
		firstName = "there"
	}

	subject := fmt.Sprintf("We received your application — %s", appName)

	textBody := fmt.Sprintf(`Hi %s,

Thanks for applying to %s! We received your application for the %s position and will review it and contact you within 48 hours.

Your application:
  Position:     %s
  Availability: %s
  Start date:   %s

Thanks,
The %s Team`,
		firstName, appName, d.Position,
		d.Position, d.Availability, orFallback(d.StartDate),
		appName)

	rows := htmlRow("Position", d.Position) +
		htmlRow("Availability", d.Availability) +
		htmlRow("Start date", d.StartDate)

	htmlBody := htmlDocument(fmt.Sprintf(
		`<h2 style="color: #2563eb;">Hi %s,</h2>
<p>Thanks for applying to %s! We received your application for the <strong>%s</strong> position and will review it and contact you <strong>within 48 hours</strong>.</p>
%s
<p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>`,
		firstName, appName, d.Position, detailTable(rows), appName))

	return Message{
		To:       []string{d.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
