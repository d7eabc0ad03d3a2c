package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brightway/internal/config"
)

func validMessage() Message {
	return Message{
		To:       []string{"jane@example.com"},
		Subject:  "Hello",
		TextBody: "hi",
	}
}

func TestSendDisabled(t *testing.T) {
	c := New(config.EmailConfig{Enabled: false})

	err := c.Send(context.Background(), validMessage())
	assert.ErrorIs(t, err, ErrDisabled{})
}

func TestBuildMessageValidation(t *testing.T) {
	tests := []struct {
		name   string
		from   string
		mutate func(*Message)
	}{
		{name: "missing from", from: ""},
		{name: "missing recipient", from: "noreply@x.example", mutate: func(m *Message) { m.To = nil }},
		{name: "blank recipient", from: "noreply@x.example", mutate: func(m *Message) { m.To = []string{"  "} }},
		{name: "missing subject", from: "noreply@x.example", mutate: func(m *Message) { m.Subject = " " }},
		{name: "missing body", from: "noreply@x.example", mutate: func(m *Message) { m.TextBody = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMessage()
			if tt.mutate != nil {
				tt.mutate(&m)
			}
			_, err := buildMessage(tt.from, m)
			require.Error(t, err)
			var invalid ErrInvalidMessage
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestBuildMessageOK(t *testing.T) {
	m := validMessage()
	m.HTMLBody = "<html><body>hi</body></html>"

	msg, err := buildMessage("noreply@x.example", m)
	require.NoError(t, err)
	assert.Equal(t, []string{"jane@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Hello"}, msg.GetHeader("Subject"))
}

func TestSendInvalidMessageBeforeDialing(t *testing.T) {
	// Enabled but pointed nowhere: validation must fail before any dial.
	c := New(config.EmailConfig{Enabled: true, From: "noreply@x.example"})

	err := c.Send(context.Background(), Message{To: []string{"jane@example.com"}})
	var invalid ErrInvalidMessage
	assert.ErrorAs(t, err, &invalid)
}
