package contact_usecase

import (
	"context"
	"os"
	"testing"

	"khabar/domain"
	"khabar/mocks"
	"khabar/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}

func TestSend_RelaysMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msg := domain.ContactMessage{Name: "Asha", Email: "asha@example.com", Message: "Hello"}
	mailer := mocks.NewMockMailerPort(ctrl)
	mailer.EXPECT().SendContact(gomock.Any(), msg).Return(nil)

	usecase := NewContactUsecase(mailer)
	require.NoError(t, usecase.Send(context.Background(), msg))
}

func TestSend_RequiresAllFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := NewContactUsecase(mocks.NewMockMailerPort(ctrl))

	for _, msg := range []domain.ContactMessage{
		{Email: "a@b.com", Message: "hi"},
		{Name: "Asha", Message: "hi"},
		{Name: "Asha", Email: "a@b.com", Message: "   "},
	} {
		assert.Error(t, usecase.Send(context.Background(), msg))
	}
}

func TestSend_DeliveryFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mailer := mocks.NewMockMailerPort(ctrl)
	mailer.EXPECT().SendContact(gomock.Any(), gomock.Any()).Return(assert.AnError)

	usecase := NewContactUsecase(mailer)
	err := usecase.Send(context.Background(), domain.ContactMessage{Name: "A", Email: "a@b.com", Message: "m"})
	assert.Error(t, err)
}
