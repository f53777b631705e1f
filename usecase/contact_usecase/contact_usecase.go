package contact_usecase

import (
	"context"
	"strings"

	"khabar/domain"
	"khabar/port/mailer_port"
	appErrors "khabar/utils/errors"
)

// ContactUsecase relays reader messages to the newsroom inbox.
type ContactUsecase struct {
	mailer mailer_port.MailerPort
}

func NewContactUsecase(mailer mailer_port.MailerPort) *ContactUsecase {
	return &ContactUsecase{mailer: mailer}
}

// Send validates and relays the message. Unlike the welcome email this one
// is the whole point of the request, so delivery failure is surfaced.
func (u *ContactUsecase) Send(ctx context.Context, msg domain.ContactMessage) error {
	if strings.TrimSpace(msg.Name) == "" ||
		strings.TrimSpace(msg.Email) == "" ||
		strings.TrimSpace(msg.Message) == "" {
		return appErrors.ValidationError("all fields are required", nil)
	}
	return u.mailer.SendContact(ctx, msg)
}
