package email

import "fmt"

// ContactEmailData carries the submitted contact-form fields.
type ContactEmailData struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	City        string
	Postcode    string
	ServiceType string
	Message     string
}

// BuildContactBusinessEmail creates the internal notification for a new
// contact message.
func BuildContactBusinessEmail(to string, d ContactEmailData) Message {
	subject := fmt.Sprintf("New contact message from %s %s", d.FirstName, d.LastName)

	textBody := fmt.Sprintf(`New contact form message.

From
  Name:  %s %s
  Email: %s
  Phone: %s

Location
  City:     %s
  Postcode: %s

Service of interest: %s

Message:
%s`,
		d.FirstName, d.LastName, d.Email, orFallback(d.Phone),
		orFallback(d.City), orFallback(d.Postcode),
		orFallback(d.ServiceType),
		d.Message)

	rows := htmlRow("Name", d.FirstName+" "+d.LastName) +
		htmlRow("Email", d.Email) +
		htmlRow("Phone", d.Phone) +
		htmlRow("City", d.City) +
		htmlRow("Postcode", d.Postcode) +
		htmlRow("Service of interest", d.ServiceType) +
		htmlRow("Message", d.Message)

	htmlBody := htmlDocument(
		`<h2 style="color: #2563eb;">New contact message</h2>` + detailTable(rows))

	return Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildContactCustomerEmail creates the confirmation sent back to the sender.
func BuildContactCustomerEmail(d ContactEmailData) Message {
	firstName := d.FirstName
	if firstName == "" {
		firstName = "there"
	}

	subject := fmt.Sprintf("We received your message — %s", appName)

	textBody := fmt.Sprintf(`Hi %s,

Thanks for getting in touch with %s! We received your message and will get back to you within 24 hours.

Your message:
%s

Thanks,
The %s Team`,
		firstName, appName, d.Message, appName)

	htmlBody := htmlDocument(fmt.Sprintf(
		`<h2 style="color: #2563eb;">Hi %s,</h2>
<p>Thanks for getting in touch with %s! We received your message and will get back to you <strong>within 24 hours</strong>.</p>
<p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px;">%s</p>
<p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>`,
		firstName, appName, d.Message, appName))

	return Message{
		To:       []string{d.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
