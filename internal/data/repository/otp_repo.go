package repository

import (
	"context"
	"fmt"

	"studio-site/internal/data/entity"
	"studio-site/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OTPRepository interface {
	Create(ctx context.Context, challenge *entity.OTPChallenge) error
	FindLatestByEmail(ctx context.Context, email string) (*entity.OTPChallenge, error)
	UpdateAttempts(ctx context.Context, id uuid.UUID, attempts int) error
	MarkVerified(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByEmail(ctx context.Context, email string) error
}

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOTPRepository(db database.PgxIface, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

func (r *otpRepository) Create(ctx context.Context, challenge *entity.OTPChallenge) error {
	query := `
		INSERT INTO otp_challenges (id, email, code, verified, attempts,
		                            expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		challenge.ID,
		challenge.Email,
		challenge.Code,
		challenge.Verified,
		challenge.Attempts,
		challenge.ExpiresAt,
		challenge.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create OTP challenge",
			zap.Error(err),
			zap.String("email", challenge.Email),
		)
		return fmt.Errorf("create OTP challenge for %s: %w", challenge.Email, err)
	}

	return nil
}

// FindLatestByEmail returns the most recent unexpired challenge for an
// email, or nil. Expired rows are filtered here, so an expired code behaves
// exactly like a missing one; physical cleanup is left to a TTL sweep.
func (r *otpRepository) FindLatestByEmail(ctx context.Context, email string) (*entity.OTPChallenge, error) {
	query := `
		SELECT id, email, code, verified, attempts, expires_at, created_at
		FROM otp_challenges
		WHERE email = $1
		  AND expires_at > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`

	var challenge entity.OTPChallenge
	err := r.db.QueryRow(ctx, query, email).Scan(
		&challenge.ID,
		&challenge.Email,
		&challenge.Code,
		&challenge.Verified,
		&challenge.Attempts,
		&challenge.ExpiresAt,
		&challenge.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find OTP challenge",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find OTP challenge for %s: %w", email, err)
	}

	return &challenge, nil
}

func (r *otpRepository) UpdateAttempts(ctx context.Context, id uuid.UUID, attempts int) error {
	query := `
		UPDATE otp_challenges
		SET attempts = $2
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, attempts)
	if err != nil {
		r.log.Error("Failed to update OTP attempts",
			zap.Error(err),
			zap.String("challenge_id", id.String()),
		)
		return fmt.Errorf("update attempts for challenge %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("OTP challenge %s not found", id.String())
	}

	return nil
}

func (r *otpRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE otp_challenges
		SET verified = true
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to mark OTP challenge verified",
			zap.Error(err),
			zap.String("challenge_id", id.String()),
		)
		return fmt.Errorf("mark challenge %s verified: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("OTP challenge %s not found", id.String())
	}

	return nil
}

func (r *otpRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM otp_challenges
		WHERE id = $1
	`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete OTP challenge",
			zap.Error(err),
			zap.String("challenge_id", id.String()),
		)
		return fmt.Errorf("delete challenge %s: %w", id.String(), err)
	}

	return nil
}

// DeleteByEmail removes every challenge for an email. Issuing a fresh code
// goes through here first, which keeps the at-most-one-active invariant.
func (r *otpRepository) DeleteByEmail(ctx context.Context, email string) error {
	query := `
		DELETE FROM otp_challenges
		WHERE email = $1
	`

	_, err := r.db.Exec(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to delete OTP challenges by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("delete challenges for %s: %w", email, err)
	}

	return nil
}
