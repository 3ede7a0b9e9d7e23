// Package email provides outbound email delivery for outreach and meeting
// proposals.
package email

import "context"

// Sender is the delivery contract. Bodies arrive fully rendered; the sender
// only wraps them in a message and hands them to the transport.
type Sender interface {
	SendOutreachEmail(ctx context.Context, to, name, body string) error
	SendMeetingProposalEmail(ctx context.Context, to, name, body string) error
}

// NoopSender is used when email delivery is disabled. It accepts every
// message and drops it, so the rest of the pipeline behaves as in production.
type NoopSender struct{}

func (NoopSender) SendOutreachEmail(ctx context.Context, to, name, body string) error {
	return nil
}

func (NoopSender) SendMeetingProposalEmail(ctx context.Context, to, name, body string) error {
	return nil
}
