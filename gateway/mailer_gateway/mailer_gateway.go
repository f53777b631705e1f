package mailer_gateway

import (
	"context"
	"errors"

	"khabar/config"
	"khabar/domain"
	"khabar/driver/mailer"
)

// MailerGateway fronts SMTP delivery for the subscribe and contact flows.
type MailerGateway struct {
	smtp *mailer.SMTPMailer
}

func NewMailerGateway(cfg config.SMTPConfig, site config.SiteConfig) *MailerGateway {
	return &MailerGateway{
		smtp: mailer.NewSMTPMailer(cfg, site),
	}
}

func (g *MailerGateway) SendWelcome(ctx context.Context, to string) error {
	if g.smtp == nil {
		return errors.New("mailer not available")
	}
	return g.smtp.SendWelcome(ctx, to)
}

func (g *MailerGateway) SendContact(ctx context.Context, msg domain.ContactMessage) error {
	if g.smtp == nil {
		return errors.New("mailer not available")
	}
	return g.smtp.SendContact(ctx, msg)
}
