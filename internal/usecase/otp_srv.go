package usecase

import (
	"context"
	"fmt"
	"time"

	"studio-site/internal/data/entity"
	"studio-site/internal/data/repository"
	"studio-site/pkg/mailer"
	"studio-site/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OTPService issues, verifies and retires one-time login codes.
//
// Per-challenge state machine:
//
//	Created -> VerifiedOnce (terminal, deleted by the caller)
//	        -> AttemptsExhausted (terminal, deleted here)
//	        -> Superseded (terminal, deleted by the next Issue)
//
// There is no transition back out of a terminal state.
type OTPService interface {
	Issue(ctx context.Context, email string) (*entity.OTPChallenge, error)
	Verify(ctx context.Context, email, code string) (*entity.OTPChallenge, error)
}

type otpService struct {
	otpRepo repository.OTPRepository
	sender  mailer.Sender
	config  *utils.Config
	log     *zap.Logger
}

func NewOTPService(
	otpRepo repository.OTPRepository,
	sender mailer.Sender,
	config *utils.Config,
	log *zap.Logger,
) OTPService {
	return &otpService{
		otpRepo: otpRepo,
		sender:  sender,
		config:  config,
		log:     log,
	}
}

// Issue creates a fresh challenge for the email. Any prior challenge is
// deleted first, so at most one active challenge exists per address. Email
// delivery failure does not fail the operation: the code is still issued
// and logged so operators can relay it.
func (s *otpService) Issue(ctx context.Context, email string) (*entity.OTPChallenge, error) {
	// Supersede any outstanding challenge
	if err := s.otpRepo.DeleteByEmail(ctx, email); err != nil {
		s.log.Error("Failed to clear prior OTP challenges", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to generate verification code")
	}

	now := time.Now()
	challenge := &entity.OTPChallenge{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Email:     email,
		Code:      utils.GenerateOTPCode(6),
		Verified:  false,
		Attempts:  0,
		ExpiresAt: now.Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute),
	}

	if err := s.otpRepo.Create(ctx, challenge); err != nil {
		s.log.Error("Failed to save OTP challenge", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to generate verification code")
	}

	// Secondary channel for the code. The original surfaced it through the
	// server log when SMTP was down, which operators rely on in dev.
	s.log.Info("OTP challenge issued",
		zap.String("email", email),
		zap.String("code", challenge.Code),
		zap.Time("expires_at", challenge.ExpiresAt),
	)

	if err := s.sender.SendOTPEmail(email, challenge.Code); err != nil {
		// Non-fatal: the challenge stays valid
		s.log.Warn("OTP email not delivered",
			zap.Error(err),
			zap.String("email", email),
		)
	}

	return challenge, nil
}

// Verify evaluates a submitted code against the latest challenge for the
// email. A wrong guess burns one attempt; the guess that reaches the
// attempt cap destroys the challenge. A correct guess marks the challenge
// verified and returns it; the caller consumes the result and deletes the
// record, so each challenge verifies at most once end to end.
func (s *otpService) Verify(ctx context.Context, email, code string) (*entity.OTPChallenge, error) {
	challenge, err := s.otpRepo.FindLatestByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to look up OTP challenge", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to verify code")
	}
	if challenge == nil {
		return nil, ErrChallengeNotFound
	}

	if challenge.Verified {
		return nil, ErrCodeAlreadyUsed
	}

	maxAttempts := s.config.OTP.MaxAttempts
	if challenge.Attempts >= maxAttempts {
		// Stale record past the cap; destroy it before evaluating anything
		if err := s.otpRepo.Delete(ctx, challenge.ID); err != nil {
			s.log.Warn("Failed to delete exhausted OTP challenge",
				zap.Error(err), zap.String("challenge_id", challenge.ID.String()))
		}
		return nil, ErrAttemptsExceeded
	}

	if challenge.Code != code {
		challenge.Attempts++
		if err := s.otpRepo.UpdateAttempts(ctx, challenge.ID, challenge.Attempts); err != nil {
			s.log.Error("Failed to record failed OTP attempt",
				zap.Error(err), zap.String("challenge_id", challenge.ID.String()))
			return nil, fmt.Errorf("failed to verify code")
		}

		if challenge.Attempts >= maxAttempts {
			if err := s.otpRepo.Delete(ctx, challenge.ID); err != nil {
				s.log.Warn("Failed to delete exhausted OTP challenge",
					zap.Error(err), zap.String("challenge_id", challenge.ID.String()))
			}
			s.log.Warn("OTP challenge exhausted",
				zap.String("email", email),
				zap.Int("attempts", challenge.Attempts),
			)
			return nil, ErrAttemptsExceeded
		}

		return nil, &InvalidCodeError{AttemptsLeft: maxAttempts - challenge.Attempts}
	}

	if err := s.otpRepo.MarkVerified(ctx, challenge.ID); err != nil {
		s.log.Error("Failed to mark OTP challenge verified",
			zap.Error(err), zap.String("challenge_id", challenge.ID.String()))
		return nil, fmt.Errorf("failed to verify code")
	}
	challenge.Verified = true

	s.log.Info("OTP challenge verified", zap.String("email", email))

	return challenge, nil
}
