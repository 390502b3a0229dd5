package repository

import (
	"context"
	"testing"
	"time"

	"studio-site/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOTPRepoCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOTPRepository(mock, zap.NewNop())

	now := time.Now()
	challenge := &entity.OTPChallenge{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		Email:      "admin@studio.test",
		Code:       "123456",
		Verified:   false,
		Attempts:   0,
		ExpiresAt:  now.Add(10 * time.Minute),
	}

	mock.ExpectExec("INSERT INTO otp_challenges").
		WithArgs(challenge.ID, challenge.Email, challenge.Code, challenge.Verified,
			challenge.Attempts, challenge.ExpiresAt, challenge.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), challenge)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepoFindLatestByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOTPRepository(mock, zap.NewNop())

	id := uuid.New()
	now := time.Now()
	expires := now.Add(10 * time.Minute)

	rows := pgxmock.NewRows([]string{"id", "email", "code", "verified", "attempts", "expires_at", "created_at"}).
		AddRow(id, "admin@studio.test", "123456", false, 2, expires, now)

	mock.ExpectQuery("SELECT (.+) FROM otp_challenges").
		WithArgs("admin@studio.test").
		WillReturnRows(rows)

	challenge, err := repo.FindLatestByEmail(context.Background(), "admin@studio.test")
	require.NoError(t, err)
	require.NotNil(t, challenge)
	assert.Equal(t, id, challenge.ID)
	assert.Equal(t, "123456", challenge.Code)
	assert.Equal(t, 2, challenge.Attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepoFindLatestByEmailNone(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOTPRepository(mock, zap.NewNop())

	mock.ExpectQuery("SELECT (.+) FROM otp_challenges").
		WithArgs("nobody@studio.test").
		WillReturnError(pgx.ErrNoRows)

	challenge, err := repo.FindLatestByEmail(context.Background(), "nobody@studio.test")
	require.NoError(t, err, "no rows is not an error for this lookup")
	assert.Nil(t, challenge)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepoUpdateAttempts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOTPRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectExec("UPDATE otp_challenges").
		WithArgs(id, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateAttempts(context.Background(), id, 3))

	// Updating a missing challenge is an error
	mock.ExpectExec("UPDATE otp_challenges").
		WithArgs(id, 4).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.Error(t, repo.UpdateAttempts(context.Background(), id, 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepoMarkVerified(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOTPRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectExec("UPDATE otp_challenges").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.MarkVerified(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepoDeleteByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOTPRepository(mock, zap.NewNop())

	// Deleting zero rows is fine; issue always clears first
	mock.ExpectExec("DELETE FROM otp_challenges").
		WithArgs("admin@studio.test").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.DeleteByEmail(context.Background(), "admin@studio.test"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
