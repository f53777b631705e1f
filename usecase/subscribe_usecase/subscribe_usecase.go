package subscribe_usecase

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"khabar/domain"
	"khabar/port/mailer_port"
	"khabar/port/subscriber_port"
	appErrors "khabar/utils/errors"
	"khabar/utils/logger"
)

// SubscribeUsecase captures newsletter signups. The welcome email is
// best-effort and sent off the request path; the signup stands either way.
type SubscribeUsecase struct {
	subscribers subscriber_port.SubscriberPort
	mailer      mailer_port.MailerPort
	mailTimeout time.Duration
}

func NewSubscribeUsecase(subscribers subscriber_port.SubscriberPort, mailer mailer_port.MailerPort) *SubscribeUsecase {
	return &SubscribeUsecase{
		subscribers: subscribers,
		mailer:      mailer,
		mailTimeout: 30 * time.Second,
	}
}

// Subscribe validates and stores the address, then fires the welcome email
// without blocking the response.
func (u *SubscribeUsecase) Subscribe(ctx context.Context, email string) (*domain.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, appErrors.ValidationError("please include a valid email", nil)
	}

	exists, err := u.subscribers.SubscriberExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadySubscribed
	}

	subscriber, err := u.subscribers.InsertSubscriber(ctx, email)
	if err != nil {
		return nil, err
	}

	if u.mailer != nil {
		detached := context.WithoutCancel(ctx)
		go func() {
			mailCtx, cancel := context.WithTimeout(detached, u.mailTimeout)
			defer cancel()
			if err := u.mailer.SendWelcome(mailCtx, email); err != nil {
				logger.Logger.ErrorContext(mailCtx, "failed to send welcome email", "error", err, "email", email)
				return
			}
			logger.Logger.InfoContext(mailCtx, "welcome email sent", "email", email)
		}()
	}

	return subscriber, nil
}

// List returns every subscriber for the admin dashboard.
func (u *SubscribeUsecase) List(ctx context.Context) ([]*domain.Subscriber, error) {
	return u.subscribers.ListSubscribers(ctx)
}
