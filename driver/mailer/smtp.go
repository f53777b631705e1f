package mailer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"khabar/config"
	"khabar/domain"
	"khabar/utils/logger"
)

// sendFunc matches smtp.SendMail; swapped out in tests.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer delivers the welcome and contact emails over authenticated
// SMTP (STARTTLS on the standard submission port).
type SMTPMailer struct {
	cfg  config.SMTPConfig
	site config.SiteConfig
	send sendFunc
}

func NewSMTPMailer(cfg config.SMTPConfig, site config.SiteConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, site: site, send: smtp.SendMail}
}

// SendWelcome mails the newsletter welcome message to a fresh subscriber.
func (m *SMTPMailer) SendWelcome(ctx context.Context, to string) error {
	subject := fmt.Sprintf("Welcome to %s!", m.site.Name)
	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.6; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px;">
	<h1 style="color: #333; text-align: center;">Welcome to %s!</h1>
	<p>Thank you for subscribing to our newsletter.</p>
	<p>You are now part of a growing community of informed readers. We'll keep you updated with the most important news, straight to your inbox.</p>
	<p>Stay informed!</p>
	<br>
	<p>Best regards,</p>
	<p><strong>The %s Team</strong></p>
	<hr>
	<p style="text-align: center; font-size: 0.8rem; color: #888;">
		You received this email because you subscribed on our website.
	</p>
</div>`, m.site.Name, m.site.Name)

	fromHeader := fmt.Sprintf("%q <%s>", m.site.Name, m.cfg.From)
	return m.deliver(ctx, fromHeader, to, subject, body)
}

// SendContact relays a reader's message to the newsroom inbox. The sender's
// name appears as the display name so replies read naturally.
func (m *SMTPMailer) SendContact(ctx context.Context, msg domain.ContactMessage) error {
	if m.cfg.To == "" {
		return errors.New("contact inbox address not configured")
	}

	subject := fmt.Sprintf("New Contact Form Message from %s (%s)", msg.Name, m.site.Name)
	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.6;">
	<h2>New Message via %s Contact Form</h2>
	<p><strong>Name:</strong> %s</p>
	<p><strong>Email:</strong> %s</p>
	<hr>
	<h3>Message:</h3>
	<p style="white-space: pre-wrap;">%s</p>
</div>`, m.site.Name, msg.Name, msg.Email, msg.Message)

	fromHeader := fmt.Sprintf("%q <%s>", msg.Name, m.cfg.From)
	return m.deliver(ctx, fromHeader, m.cfg.To, subject, body)
}

func (m *SMTPMailer) deliver(ctx context.Context, fromHeader, to, subject, body string) error {
	if m.cfg.User == "" || m.cfg.Password == "" {
		return errors.New("smtp credentials not configured")
	}

	headers := []string{
		"From: " + fromHeader,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
	}
	message := strings.Join(headers, "\r\n") + "\r\n\r\n" + body

	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)

	if err := m.send(addr, auth, m.cfg.From, []string{to}, []byte(message)); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to send email", "error", err, "to", to)
		return errors.New("failed to send email")
	}

	logger.Logger.InfoContext(ctx, "email sent", "to", to, "subject", subject)
	return nil
}
