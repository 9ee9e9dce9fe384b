package notification

import "context"

// Message is a single outbound email.
type Message struct {
	FromName string
	From     string
	To       string
	ReplyTo  string
	Subject  string
	HTML     string
}

// Mailer sends transactional email. The SMTP implementation is used in
// production; tests substitute a recording fake.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
