package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newOTPFixture(t *testing.T) (OTPService, *memOTPRepo, *fakeMailer) {
	t.Helper()

	repo := newMemOTPRepo()
	sender := &fakeMailer{}
	srv := NewOTPService(repo, sender, newTestConfig(), zap.NewNop())

	return srv, repo, sender
}

func TestOTPIssue(t *testing.T) {
	srv, repo, sender := newOTPFixture(t)
	ctx := context.Background()

	challenge, err := srv.Issue(ctx, "admin@studio.test")
	require.NoError(t, err)
	require.NotNil(t, challenge)

	assert.Len(t, challenge.Code, 6)
	assert.False(t, challenge.Verified)
	assert.Equal(t, 0, challenge.Attempts)
	assert.True(t, challenge.ExpiresAt.After(time.Now()))

	require.Equal(t, 1, sender.sentCount())
	assert.Equal(t, challenge.Code, sender.sent[0].code)
	assert.Equal(t, 1, repo.count())
}

func TestOTPIssueSupersedesPriorChallenge(t *testing.T) {
	srv, repo, _ := newOTPFixture(t)
	ctx := context.Background()

	first, err := srv.Issue(ctx, "admin@studio.test")
	require.NoError(t, err)

	// Pin the stored codes so the assertions below are deterministic
	repo.stored("admin@studio.test").Code = "111111"

	second, err := srv.Issue(ctx, "admin@studio.test")
	require.NoError(t, err)
	repo.stored("admin@studio.test").Code = "222222"

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.count(), "only one challenge per email may exist")

	// The superseded code is just a wrong guess against the new challenge
	_, err = srv.Verify(ctx, "admin@studio.test", "111111")
	var invalidCode *InvalidCodeError
	require.ErrorAs(t, err, &invalidCode)
	assert.Equal(t, 4, invalidCode.AttemptsLeft)

	verified, err := srv.Verify(ctx, "admin@studio.test", "222222")
	require.NoError(t, err)
	assert.True(t, verified.Verified)
}

func TestOTPIssueSurvivesMailFailure(t *testing.T) {
	repo := newMemOTPRepo()
	sender := &fakeMailer{fail: errors.New("smtp down")}
	srv := NewOTPService(repo, sender, newTestConfig(), zap.NewNop())

	challenge, err := srv.Issue(context.Background(), "admin@studio.test")
	require.NoError(t, err, "delivery failure must not void the challenge")
	require.NotNil(t, challenge)
	assert.Equal(t, 1, repo.count())
}

func TestOTPVerifyNoChallenge(t *testing.T) {
	srv, _, _ := newOTPFixture(t)

	_, err := srv.Verify(context.Background(), "nobody@studio.test", "123456")
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestOTPVerifyExpiredChallenge(t *testing.T) {
	srv, repo, _ := newOTPFixture(t)
	ctx := context.Background()

	_, err := srv.Issue(ctx, "admin@studio.test")
	require.NoError(t, err)

	// An expired challenge behaves exactly like a missing one
	repo.stored("admin@studio.test").ExpiresAt = time.Now().Add(-time.Minute)

	_, err = srv.Verify(ctx, "admin@studio.test", "123456")
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestOTPVerifyWrongCodeBurnsAttempt(t *testing.T) {
	srv, repo, _ := newOTPFixture(t)
	ctx := context.Background()

	_, err := srv.Issue(ctx, "admin@studio.test")
	require.NoError(t, err)
	repo.stored("admin@studio.test").Code = "123456"

	_, err = srv.Verify(ctx, "admin@studio.test", "000000")
	var invalidCode *InvalidCodeError
	require.ErrorAs(t, err, &invalidCode)
	assert.Equal(t, 4, invalidCode.AttemptsLeft)

	// A correct guess still works after wrong ones
	verified, err := srv.Verify(ctx, "admin@studio.test", "123456")
	require.NoError(t, err)
	assert.True(t, verified.Verified)
	assert.Equal(t, 1, verified.Attempts)
}

func TestOTPVerifyAttemptExhaustion(t *testing.T) {
	srv, repo, _ := newOTPFixture(t)
	ctx := context.Background()

	_, err := srv.Issue(ctx, "admin@studio.test")
	require.NoError(t, err)
	repo.stored("admin@studio.test").Code = "123456"

	// First four wrong guesses report the shrinking attempt budget
	for want := 4; want >= 1; want-- {
		_, err := srv.Verify(ctx, "admin@studio.test", "000000")
		var invalidCode *InvalidCodeError
		require.ErrorAs(t, err, &invalidCode)
		assert.Equal(t, want, invalidCode.AttemptsLeft)
	}

	// The fifth wrong guess destroys the challenge
	_, err = srv.Verify(ctx, "admin@studio.test", "000000")
	assert.ErrorIs(t, err, ErrAttemptsExceeded)
	assert.Equal(t, 0, repo.count())

	// Even the correct code is dead now
	_, err = srv.Verify(ctx, "admin@studio.test", "123456")
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestOTPVerifyAlreadyVerified(t *testing.T) {
	srv, repo, _ := newOTPFixture(t)
	ctx := context.Background()

	_, err := srv.Issue(ctx, "admin@studio.test")
	require.NoError(t, err)

	stored := repo.stored("admin@studio.test")
	stored.Code = "123456"
	stored.Verified = true

	_, err = srv.Verify(ctx, "admin@studio.test", "123456")
	assert.ErrorIs(t, err, ErrCodeAlreadyUsed)
}
