package mailer_port

import (
	"context"

	"khabar/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=mailer_port.go -destination=../../mocks/mock_mailer_port.go -package=mocks

// MailerPort delivers outbound email. Welcome mail is best-effort: callers
// log failures and never surface them to the subscriber.
type MailerPort interface {
	SendWelcome(ctx context.Context, to string) error
	SendContact(ctx context.Context, msg domain.ContactMessage) error
}
