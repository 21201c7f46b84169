package support

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roadassist/dispatch/internal/domain/entity"
	"github.com/roadassist/dispatch/pkg/logger"
)

type fakeContactRepo struct {
	saved []*entity.ContactMessage
	err   error
}

func (r *fakeContactRepo) Save(ctx context.Context, message *entity.ContactMessage) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, message)
	return nil
}

type fakeNotifier struct {
	sent []string
	err  error
}

func (n *fakeNotifier) SendMessage(ctx context.Context, to, subject, body string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, to)
	return nil
}

func newContactUseCase(repo *fakeContactRepo, notifier *fakeNotifier) *SendContactUseCaseImpl {
	return &SendContactUseCaseImpl{
		Messages:     repo,
		Notifier:     notifier,
		SupportInbox: "support@roadassist.local",
		Logger:       logger.NewNop(),
	}
}

func TestSendContact(t *testing.T) {
	repo := &fakeContactRepo{}
	notifier := &fakeNotifier{}
	uc := newContactUseCase(repo, notifier)

	output, err := uc.Execute(context.Background(), ContactInput{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "My request seems stuck.",
	})

	assert.Nil(t, err)
	assert.NotEmpty(t, output.ID)
	assert.Len(t, repo.saved, 1)
	assert.Equal(t, []string{"support@roadassist.local"}, notifier.sent)
}

func TestSendContact_MissingFields(t *testing.T) {
	uc := newContactUseCase(&fakeContactRepo{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), ContactInput{Name: "Alice"})

	assert.ErrorIs(t, err, entity.ErrContactFieldsRequired)
}

func TestSendContact_ForwardingFailureIsNotAnError(t *testing.T) {
	repo := &fakeContactRepo{}
	uc := newContactUseCase(repo, &fakeNotifier{err: errors.New("smtp down")})

	output, err := uc.Execute(context.Background(), ContactInput{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "ping",
	})

	assert.Nil(t, err)
	assert.NotEmpty(t, output.ID)
	assert.Len(t, repo.saved, 1)
}

func TestSendContact_StoreFailure(t *testing.T) {
	uc := newContactUseCase(&fakeContactRepo{err: errors.New("db down")}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), ContactInput{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "ping",
	})

	assert.NotNil(t, err)
}
