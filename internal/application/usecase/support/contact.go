package support

import (
	"context"
	"fmt"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/domain/entity"
	"github.com/roadassist/dispatch/pkg/logger"
)

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactOutput struct {
	ID string `json:"id"`
}

type SendContactUseCase interface {
	Execute(ctx context.Context, input ContactInput) (ContactOutput, error)
}

type SendContactUseCaseImpl struct {
	Messages     outbound.ContactRepository
	Notifier     outbound.Notifier
	SupportInbox string
	Logger       logger.Logger
}

// Execute persists the message and then forwards it to the support inbox.
// Forwarding is best effort; a stored message is a successful submission.
func (uc *SendContactUseCaseImpl) Execute(ctx context.Context, input ContactInput) (ContactOutput, error) {
	message, err := entity.NewContactMessage(input.Name, input.Email, input.Message)
	if err != nil {
		return ContactOutput{}, err
	}

	if err := uc.Messages.Save(ctx, message); err != nil {
		return ContactOutput{}, fmt.Errorf("save contact message: %w", err)
	}

	subject := fmt.Sprintf("Contact form: %s <%s>", message.Name(), message.Email())
	if err := uc.Notifier.SendMessage(ctx, uc.SupportInbox, subject, message.Message()); err != nil {
		uc.Logger.Warn(ctx, "contact forwarding failed",
			logger.String("messageId", message.ID()),
			logger.WithError(err),
		)
	}

	return ContactOutput{ID: message.ID()}, nil
}
