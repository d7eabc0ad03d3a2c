package email

// Message is one outbound transactional email.
type Message struct {
	To       []string
	Subject  string
	TextBody string
	HTMLBody string
}
