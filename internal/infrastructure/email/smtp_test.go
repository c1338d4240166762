package email

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type captureSender struct {
	sent []*gomail.Message
	err  error
}

func (c *captureSender) DialAndSend(m ...*gomail.Message) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, m...)
	return nil
}

func newTestService() (*SMTPEmailService, *captureSender) {
	sender := &captureSender{}
	svc := NewSMTPEmailService(SMTPConfig{
		FromAddress: "support@example.com",
		FromName:    "Help Center",
		BaseURL:     "https://help.example.com/",
	})
	svc.sender = sender
	return svc, sender
}

func render(t *testing.T, m *gomail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestSendTicketConfirmation(t *testing.T) {
	svc, sender := newTestService()

	require.NoError(t, svc.SendTicketConfirmation("guest@example.com", "Ana", "SUP-2024-000042", "Where is my order?"))
	require.Len(t, sender.sent, 1)

	m := sender.sent[0]
	assert.Equal(t, []string{"guest@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"[SUP-2024-000042] We received your request"}, m.GetHeader("Subject"))
	assert.Contains(t, render(t, m), "https://help.example.com/support/tickets/SUP-2024-000042")
}

func TestSendTicketReply_EscapesBodyInHTML(t *testing.T) {
	svc, sender := newTestService()

	require.NoError(t, svc.SendTicketReply("c@example.com", "SUP-2024-000001", "Refund", "<script>x</script>"))
	out := render(t, sender.sent[0])
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestSendTicketStatusChange_Subject(t *testing.T) {
	svc, sender := newTestService()

	require.NoError(t, svc.SendTicketStatusChange("c@example.com", "SUP-2024-000001", "Refund", "OPEN", "RESOLVED"))
	assert.Equal(t, []string{"[SUP-2024-000001] Ticket resolved"}, sender.sent[0].GetHeader("Subject"))
}

func TestSendEmail_Errors(t *testing.T) {
	svc, sender := newTestService()

	assert.Error(t, svc.SendNewTicketAlert("", "SUP-2024-000001", "s", "OTHER", "LOW", "x"))

	sender.err = errors.New("connection refused")
	err := svc.SendTicketReply("c@example.com", "SUP-2024-000001", "s", "b")
	assert.ErrorContains(t, err, "failed to send email")
}
