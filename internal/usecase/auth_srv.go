package usecase

import (
	"context"
	"fmt"
	"time"

	"studio-site/internal/data/entity"
	"studio-site/internal/data/repository"
	"studio-site/internal/dto/request"
	"studio-site/internal/dto/response"
	"studio-site/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService is the login state machine: password auth, the conditional
// OTP challenge for admins, and session token issuance.
type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.LoginResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.LoginResponse, error)
	ResendOTP(ctx context.Context, req *request.ResendOTPRequest) (*response.ResendOTPResponse, error)
}

type authService struct {
	repo   *repository.Repository
	otp    OTPService
	jwt    *utils.JWTUtil
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	otp OTPService,
	jwt *utils.JWTUtil,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		otp:    otp,
		jwt:    jwt,
		config: config,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Phone:        req.Phone,
		Role:         entity.RoleUser,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return s.authenticated(user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}

	// Same error for unknown email and wrong password; the distinction is
	// logged for operators but never surfaced.
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Wrong password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, ErrAccountDisabled
	}

	// Admin logins go through the OTP challenge unless the deployment
	// skip-flag is set (non-production only).
	if user.Role == entity.RoleAdmin && !s.config.OTP.SkipForAdmin {
		if _, err := s.otp.Issue(ctx, user.Email); err != nil {
			s.log.Error("Failed to issue OTP challenge", zap.Error(err), zap.String("email", user.Email))
			return nil, fmt.Errorf("failed to send verification code")
		}

		s.log.Info("Admin login pending OTP", zap.String("user_id", user.ID.String()))

		return response.RequiresOTPResponse(user.Email,
			"A verification code was sent to your email"), nil
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return s.authenticated(user)
}

func (s *authService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify OTP validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	challenge, err := s.otp.Verify(ctx, req.Email, req.OTP)
	if err != nil {
		return nil, err
	}

	// Consume the challenge so the code can never verify twice
	if err := s.repo.OTP.Delete(ctx, challenge.ID); err != nil {
		s.log.Warn("Failed to delete consumed OTP challenge",
			zap.Error(err), zap.String("challenge_id", challenge.ID.String()))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user after OTP", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		// Account removed between login and verify
		return nil, ErrUserNotFound
	}

	s.log.Info("Admin logged in via OTP", zap.String("user_id", user.ID.String()))

	return s.authenticated(user)
}

// ResendOTP issues a fresh code for an admin mid-login. Unlike Login this
// path reports not-found for unknown or non-admin emails: it is only
// reachable after a correct password already confirmed the account, so the
// stricter error costs nothing and keeps the endpoint admin-only.
func (s *authService) ResendOTP(ctx context.Context, req *request.ResendOTPRequest) (*response.ResendOTPResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Resend OTP validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for resend", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil || user.Role != entity.RoleAdmin {
		return nil, ErrUserNotFound
	}

	// Cooldown: do not reissue while a freshly-created challenge exists
	cooldown := time.Duration(s.config.OTP.ResendCooldown) * time.Second
	latest, err := s.repo.OTP.FindLatestByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check OTP cooldown", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to send verification code")
	}
	if latest != nil && time.Since(latest.CreatedAt) < cooldown {
		return nil, ErrResendTooSoon
	}

	if _, err := s.otp.Issue(ctx, req.Email); err != nil {
		s.log.Error("Failed to reissue OTP challenge", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to send verification code")
	}

	s.log.Info("OTP challenge reissued", zap.String("email", req.Email))

	return &response.ResendOTPResponse{
		Email:   req.Email,
		Message: "A new verification code was sent to your email",
	}, nil
}

// ==================== HELPER METHODS ====================

func (s *authService) authenticated(user *entity.User) (*response.LoginResponse, error) {
	token, expiresAt, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		s.log.Error("Failed to issue session token",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	return response.AuthenticatedResponse(user, token, expiresAt), nil
}
