package notification

import (
	"context"
	"fmt"

	"alliancewav/config"

	mail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// SMTPMailer delivers mail over authenticated SMTP.
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
}

// NewSMTPMailerFromConfig builds the production mailer from app config.
func NewSMTPMailerFromConfig(cfg config.Config) *SMTPMailer {
	return &SMTPMailer{
		Host:     cfg.MailHost,
		Port:     cfg.MailPort,
		Username: cfg.MailUsername,
		Password: cfg.MailPassword,
	}
}

func (m *SMTPMailer) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(m.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.Username),
		mail.WithPassword(m.Password),
	}
	if m.Port == 465 {
		opts = append(opts, mail.WithSSL())
	}
	return mail.NewClient(m.Host, opts...)
}

// Send delivers one message, blocking until the SMTP transaction completes.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	client, err := m.client()
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	message := mail.NewMsg()
	if err := message.FromFormat(msg.FromName, msg.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := message.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := message.ReplyTo(msg.ReplyTo); err != nil {
			return fmt.Errorf("invalid reply-to address: %w", err)
		}
	}
	message.Subject(msg.Subject)
	message.SetBodyString(mail.TypeTextHTML, msg.HTML)

	if err := client.DialAndSendWithContext(ctx, message); err != nil {
		zap.L().Error("Failed to send email",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
			zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}
	zap.L().Info("Email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}
