package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshmehta/portfolio-api/internal/domain"
)

type fakeContactRepo struct {
	created   []*domain.ContactMessage
	listLimit int
	err       error
}

func (f *fakeContactRepo) Create(_ context.Context, msg *domain.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, msg)
	return nil
}

func (f *fakeContactRepo) List(_ context.Context, limit int) ([]*domain.ContactMessage, error) {
	f.listLimit = limit
	return f.created, nil
}

type fakeMailer struct {
	sent int
	err  error
}

func (f *fakeMailer) Send(_ context.Context, _ *domain.ContactMessage) error {
	f.sent++
	return f.err
}

func TestSubmitValidatesFields(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, &fakeMailer{})

	err := svc.Submit(context.Background(), &domain.ContactMessage{
		Name:    "Alex",
		Email:   "alex@example.com",
		Subject: "   ", // whitespace only
		Message: "Hello",
	})
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Empty(t, repo.created)
}

func TestSubmitTrimsAndStores(t *testing.T) {
	repo := &fakeContactRepo{}
	mailer := &fakeMailer{}
	svc := NewContactService(repo, mailer)

	err := svc.Submit(context.Background(), &domain.ContactMessage{
		Name:    "  Alex ",
		Email:   " alex@example.com ",
		Subject: "Hi",
		Message: " Let's talk ",
	})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	stored := repo.created[0]
	assert.Equal(t, "Alex", stored.Name)
	assert.Equal(t, "alex@example.com", stored.Email)
	assert.Equal(t, "Let's talk", stored.Message)
	assert.False(t, stored.SubmittedAt.IsZero())
	assert.Equal(t, 1, mailer.sent)
}

func TestSubmitMailerFailureIsNonFatal(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, &fakeMailer{err: errors.New("smtp down")})

	err := svc.Submit(context.Background(), &domain.ContactMessage{
		Name:    "Alex",
		Email:   "alex@example.com",
		Subject: "Hi",
		Message: "Hello",
	})
	assert.NoError(t, err)
	assert.Len(t, repo.created, 1)
}

func TestSubmitStoreFailure(t *testing.T) {
	repo := &fakeContactRepo{err: errors.New("mongo down")}
	mailer := &fakeMailer{}
	svc := NewContactService(repo, mailer)

	err := svc.Submit(context.Background(), &domain.ContactMessage{
		Name:    "Alex",
		Email:   "alex@example.com",
		Subject: "Hi",
		Message: "Hello",
	})
	assert.Error(t, err)
	assert.Zero(t, mailer.sent)
}

func TestRecentDefaultsLimit(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, &fakeMailer{})

	_, err := svc.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 50, repo.listLimit)

	_, err = svc.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, repo.listLimit)
}
