package email

import (
	"context"
	"fmt"
	"net"
	"time"

	"outreach_backend/platform/config"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender implements Sender over a direct SMTP connection via go-mail.
type SMTPSender struct {
	host            string
	port            int
	username        string
	password        string
	fromName        string
	fromEmail       string
	outreachSubject string
}

// NewSMTPSender creates a new SMTPSender from the email configuration.
func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	return &SMTPSender{
		host:            cfg.GetSMTPHost(),
		port:            cfg.GetSMTPPort(),
		username:        cfg.GetSMTPUsername(),
		password:        cfg.GetSMTPPassword(),
		fromName:        cfg.GetEmailFromName(),
		fromEmail:       cfg.GetEmailFromAddress(),
		outreachSubject: cfg.GetOutreachSubject(),
	}
}

func (s *SMTPSender) send(ctx context.Context, toEmail, toName, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.AddToFormat(toName, toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

// SendOutreachEmail delivers a personalized outreach email. The subject is
// the configured outreach subject for every lead.
func (s *SMTPSender) SendOutreachEmail(ctx context.Context, to, name, body string) error {
	return s.send(ctx, to, name, s.outreachSubject, body)
}

// SendMeetingProposalEmail delivers a reviewed meeting proposal draft.
func (s *SMTPSender) SendMeetingProposalEmail(ctx context.Context, to, name, body string) error {
	subject := fmt.Sprintf(subjectMeetingProposalFmt, name)
	return s.send(ctx, to, name, subject, body)
}

var _ Sender = (*SMTPSender)(nil)
var _ Sender = NoopSender{}
