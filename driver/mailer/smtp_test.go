package mailer

import (
	"context"
	"net/smtp"
	"os"
	"testing"

	"khabar/config"
	"khabar/domain"
	"khabar/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}

type capturedMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func testMailer(captured *capturedMail, sendErr error) *SMTPMailer {
	m := NewSMTPMailer(
		config.SMTPConfig{
			Host:     "smtp.example.com",
			Port:     "587",
			User:     "newsdesk@example.com",
			Password: "secret",
			From:     "newsdesk@example.com",
			To:       "inbox@example.com",
		},
		config.SiteConfig{Name: "India Jagran"},
	)
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		if sendErr != nil {
			return sendErr
		}
		*captured = capturedMail{addr: addr, from: from, to: to, msg: string(msg)}
		return nil
	}
	return m
}

func TestSendWelcome(t *testing.T) {
	var captured capturedMail
	m := testMailer(&captured, nil)

	err := m.SendWelcome(context.Background(), "reader@example.com")
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", captured.addr)
	assert.Equal(t, "newsdesk@example.com", captured.from)
	assert.Equal(t, []string{"reader@example.com"}, captured.to)
	assert.Contains(t, captured.msg, "Subject: Welcome to India Jagran!")
	assert.Contains(t, captured.msg, "To: reader@example.com")
	assert.Contains(t, captured.msg, "Thank you for subscribing")
	assert.Contains(t, captured.msg, "Content-Type: text/html")
}

func TestSendContact(t *testing.T) {
	var captured capturedMail
	m := testMailer(&captured, nil)

	err := m.SendContact(context.Background(), domain.ContactMessage{
		Name:    "Asha",
		Email:   "asha@example.com",
		Message: "Please cover the water shortage in Bhopal.",
	})
	require.NoError(t, err)

	// Contact mail goes to the configured newsroom inbox, not the sender.
	assert.Equal(t, []string{"inbox@example.com"}, captured.to)
	assert.Contains(t, captured.msg, "Subject: New Contact Form Message from Asha")
	assert.Contains(t, captured.msg, "asha@example.com")
	assert.Contains(t, captured.msg, "water shortage in Bhopal")
}

func TestSendContact_NoInboxConfigured(t *testing.T) {
	var captured capturedMail
	m := testMailer(&captured, nil)
	m.cfg.To = ""

	err := m.SendContact(context.Background(), domain.ContactMessage{Name: "Asha"})
	assert.Error(t, err)
	assert.Empty(t, captured.to)
}

func TestDeliver_MissingCredentials(t *testing.T) {
	var captured capturedMail
	m := testMailer(&captured, nil)
	m.cfg.Password = ""

	err := m.SendWelcome(context.Background(), "reader@example.com")
	assert.Error(t, err)
	assert.Empty(t, captured.to)
}
