// Package relay adapts the outbound mail services to domain.MailRelay.
package relay

import (
	"context"
	"fmt"
	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/emailjs"
)

type emailJSRelay struct {
	client *emailjs.Client
}

// NewEmailJSRelay sends contact messages as EmailJS template params
func NewEmailJSRelay(client *emailjs.Client) domain.MailRelay {
	return &emailJSRelay{client: client}
}

func (r *emailJSRelay) Send(ctx context.Context, msg domain.RelayMessage) error {
	return r.client.Send(ctx, msg)
}

type smtpRelay struct {
	service *email.EmailService
}

// NewSMTPRelay renders contact messages into an HTML email sent over SMTP
func NewSMTPRelay(service *email.EmailService) domain.MailRelay {
	return &smtpRelay{service: service}
}

func (r *smtpRelay) Send(ctx context.Context, msg domain.RelayMessage) error {
	if !r.service.IsConfigured() {
		return fmt.Errorf("smtp relay is not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.service.SendContactEmail(email.ContactEmailData{
		SenderName:  msg.Name,
		SenderEmail: msg.Email,
		PhoneNumber: msg.PhoneNumber,
		Subject:     msg.Title,
		Message:     msg.Message,
		SentAt:      msg.Time,
		ReplyTo:     msg.ReplyTo,
	})
}

// New builds the relay selected by RELAY_DRIVER
func New(cfg *config.Config) (domain.MailRelay, error) {
	switch cfg.RelayDriver {
	case config.RelayDriverEmailJS, "":
		return NewEmailJSRelay(emailjs.NewClient(emailjs.Config{
			BaseURL:    cfg.EmailJSBaseURL,
			ServiceID:  cfg.EmailJSServiceID,
			TemplateID: cfg.EmailJSTemplateID,
			PublicKey:  cfg.EmailJSPublicKey,
			PrivateKey: cfg.EmailJSPrivateKey,
			Timeout:    cfg.RelayTimeout,
		})), nil
	case config.RelayDriverSMTP:
		return NewSMTPRelay(email.NewEmailService(cfg)), nil
	default:
		return nil, fmt.Errorf("unknown relay driver %q", cfg.RelayDriver)
	}
}
