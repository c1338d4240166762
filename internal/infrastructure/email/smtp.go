package email

import (
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for links back to the help center
}

// messageSender is satisfied by *gomail.Dialer.
type messageSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPEmailService struct {
	config SMTPConfig
	sender messageSender
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		sender: dialer,
	}
}

func (s *SMTPEmailService) ticketURL(number string) string {
	return fmt.Sprintf("%s/support/tickets/%s", strings.TrimRight(s.config.BaseURL, "/"), number)
}

// SendTicketConfirmation acknowledges a newly opened ticket to its requester.
func (s *SMTPEmailService) SendTicketConfirmation(to, name, number, subject string) error {
	greeting := "Hello"
	if name != "" {
		greeting = "Hello " + name
	}
	url := s.ticketURL(number)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>%s,</p>
			<p>We received your request <strong>%s</strong>: %s</p>
			<p>Our team will get back to you as soon as possible. You can follow the conversation here:</p>
			<p><a href="%s">%s</a></p>
		</body>
		</html>
	`, html.EscapeString(greeting), html.EscapeString(number), html.EscapeString(subject), url, url)

	plainBody := fmt.Sprintf(`%s,

We received your request %s: %s

Our team will get back to you as soon as possible. Follow the conversation at:
%s
`, greeting, number, subject, url)

	return s.sendEmail(to, fmt.Sprintf("[%s] We received your request", number), htmlBody, plainBody)
}

// SendTicketReply forwards a support reply to the requester.
func (s *SMTPEmailService) SendTicketReply(to, number, subject, body string) error {
	url := s.ticketURL(number)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Our support team replied to <strong>%s</strong> (%s):</p>
			<blockquote>%s</blockquote>
			<p><a href="%s">Reply in the help center</a></p>
		</body>
		</html>
	`, html.EscapeString(number), html.EscapeString(subject),
		strings.ReplaceAll(html.EscapeString(body), "\n", "<br>"), url)

	plainBody := fmt.Sprintf(`Our support team replied to %s (%s):

%s

Reply in the help center: %s
`, number, subject, body, url)

	return s.sendEmail(to, fmt.Sprintf("[%s] New reply from support", number), htmlBody, plainBody)
}

// SendTicketStatusChange tells the requester their ticket moved to a new status.
func (s *SMTPEmailService) SendTicketStatusChange(to, number, subject, oldStatus, newStatus string) error {
	label := humanStatus(newStatus)
	url := s.ticketURL(number)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Your request <strong>%s</strong> (%s) is now <strong>%s</strong>.</p>
			<p>Previous status: %s</p>
			<p><a href="%s">View the ticket</a></p>
		</body>
		</html>
	`, html.EscapeString(number), html.EscapeString(subject), label, humanStatus(oldStatus), url)

	plainBody := fmt.Sprintf(`Your request %s (%s) is now %s.
Previous status: %s

View the ticket: %s
`, number, subject, label, humanStatus(oldStatus), url)

	return s.sendEmail(to, fmt.Sprintf("[%s] Ticket %s", number, strings.ToLower(label)), htmlBody, plainBody)
}

// SendNewTicketAlert copies a new ticket to the support inbox.
func (s *SMTPEmailService) SendNewTicketAlert(inbox, number, subject, category, priority, contact string) error {
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h3>%s</h3>
			<p>%s</p>
			<ul>
				<li>Category: %s</li>
				<li>Priority: %s</li>
				<li>Contact: %s</li>
			</ul>
		</body>
		</html>
	`, html.EscapeString(number), html.EscapeString(subject), category, priority, html.EscapeString(contact))

	plainBody := fmt.Sprintf(`%s
%s

Category: %s
Priority: %s
Contact: %s
`, number, subject, category, priority, contact)

	return s.sendEmail(inbox, fmt.Sprintf("[%s] %s", number, subject), htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	if to == "" {
		return fmt.Errorf("email recipient is required")
	}

	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func humanStatus(status string) string {
	switch status {
	case "OPEN":
		return "Open"
	case "IN_PROGRESS":
		return "In progress"
	case "RESOLVED":
		return "Resolved"
	case "CLOSED":
		return "Closed"
	default:
		return status
	}
}
