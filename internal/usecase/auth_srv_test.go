package usecase

import (
	"context"
	"testing"
	"time"

	"studio-site/internal/data/entity"
	"studio-site/internal/data/repository"
	"studio-site/internal/dto/request"
	"studio-site/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	auth     AuthService
	userRepo *memUserRepo
	otpRepo  *memOTPRepo
	sender   *fakeMailer
	config   *utils.Config
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	config := newTestConfig()
	userRepo := newMemUserRepo()
	otpRepo := newMemOTPRepo()
	sender := &fakeMailer{}
	log := zap.NewNop()

	repo := &repository.Repository{
		User: userRepo,
		OTP:  otpRepo,
	}

	otp := NewOTPService(otpRepo, sender, config, log)
	jwt := utils.NewJWTUtil(config.JWT)

	return &authFixture{
		auth:     NewAuthService(repo, otp, jwt, config, log),
		userRepo: userRepo,
		otpRepo:  otpRepo,
		sender:   sender,
		config:   config,
	}
}

func (f *authFixture) addUser(t *testing.T, email, password string, role entity.UserRole) *entity.User {
	t.Helper()

	user := newTestUser(email, password, role)
	require.NoError(t, f.userRepo.Create(context.Background(), user))
	return user
}

func TestRegister(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	resp, err := f.auth.Register(ctx, &request.RegisterRequest{
		Name:     "New Customer",
		Email:    "customer@studio.test",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.False(t, resp.RequiresOTP)
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, entity.RoleUser, resp.User.Role)

	// Duplicate registration is rejected
	_, err = f.auth.Register(ctx, &request.RegisterRequest{
		Name:     "New Customer",
		Email:    "customer@studio.test",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRegularUserGetsTokenDirectly(t *testing.T) {
	f := newAuthFixture(t)
	f.addUser(t, "customer@studio.test", "secret123", entity.RoleUser)

	resp, err := f.auth.Login(context.Background(), &request.LoginRequest{
		Email:    "customer@studio.test",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.False(t, resp.RequiresOTP, "regular users never face an OTP challenge")
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 0, f.otpRepo.count())
	assert.Equal(t, 0, f.sender.sentCount())
}

func TestLoginAdminRequiresOTP(t *testing.T) {
	f := newAuthFixture(t)
	f.addUser(t, "admin@studio.test", "secret123", entity.RoleAdmin)

	resp, err := f.auth.Login(context.Background(), &request.LoginRequest{
		Email:    "admin@studio.test",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.True(t, resp.RequiresOTP)
	assert.Empty(t, resp.Token, "no session token before OTP verification")
	assert.Nil(t, resp.User)
	assert.Equal(t, "admin@studio.test", resp.Email)

	assert.Equal(t, 1, f.otpRepo.count())
	assert.Equal(t, 1, f.sender.sentCount())
}

func TestLoginAdminWithSkipFlag(t *testing.T) {
	f := newAuthFixture(t)
	f.config.OTP.SkipForAdmin = true
	f.addUser(t, "admin@studio.test", "secret123", entity.RoleAdmin)

	resp, err := f.auth.Login(context.Background(), &request.LoginRequest{
		Email:    "admin@studio.test",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.False(t, resp.RequiresOTP)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 0, f.otpRepo.count())
}

func TestLoginBadCredentialsAreIndistinguishable(t *testing.T) {
	f := newAuthFixture(t)
	f.addUser(t, "admin@studio.test", "secret123", entity.RoleAdmin)
	ctx := context.Background()

	// Unknown email and wrong password must yield the identical error
	_, unknownErr := f.auth.Login(ctx, &request.LoginRequest{
		Email:    "ghost@studio.test",
		Password: "secret123",
	})
	_, wrongPassErr := f.auth.Login(ctx, &request.LoginRequest{
		Email:    "admin@studio.test",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())

	// Neither failure may trigger an OTP challenge
	assert.Equal(t, 0, f.otpRepo.count())
}

func TestLoginDeactivatedAccount(t *testing.T) {
	f := newAuthFixture(t)
	user := f.addUser(t, "admin@studio.test", "secret123", entity.RoleAdmin)
	user.IsActive = false

	_, err := f.auth.Login(context.Background(), &request.LoginRequest{
		Email:    "admin@studio.test",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestVerifyOTPHappyPath(t *testing.T) {
	f := newAuthFixture(t)
	user := f.addUser(t, "admin@studio.test", "secret123", entity.RoleAdmin)
	ctx := context.Background()

	_, err := f.auth.Login(ctx, &request.LoginRequest{
		Email:    "admin@studio.test",
		Password: "secret123",
	})
	require.NoError(t, err)

	code := f.otpRepo.stored("admin@studio.test").Code
	resp, err := f.auth.VerifyOTP(ctx, &request.VerifyOTPRequest{
		Email: "admin@studio.test",
		OTP:   code,
	})
	require.NoError(t, err)

	assert.False(t, resp.RequiresOTP)
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, user.ID.String(), resp.User.ID)

	// The consumed challenge is gone; the same code can never verify twice
	assert.Equal(t, 0, f.otpRepo.count())
	_, err = f.auth.VerifyOTP(ctx, &request.VerifyOTPRequest{
		Email: "admin@studio.test",
		OTP:   code,
	})
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestVerifyOTPWrongThenCorrect(t *testing.T) {
	f := newAuthFixture(t)
	f.addUser(t, "admin@studio.test", "secret123", entity.RoleAdmin)
	ctx := context.Background()

	_, err := f.auth.Login(ctx, &request.LoginRequest{
		Email:    "admin@studio.test",
		Password: "secret123",
	})
	require.NoError(t, err)

	stored := f.otpRepo.stored("admin@studio.test")
	stored.Code = "123456"

	_, err = f.auth.VerifyOTP(ctx, &request.VerifyOTPRequest{
		Email: "admin@studio.test",
		OTP:   "654321",
	})
	var invalidCode *InvalidCodeError
	require.ErrorAs(t, err, &invalidCode)
	assert.Equal(t, 4, invalidCode.AttemptsLeft)

	resp, err := f.auth.VerifyOTP(ctx, &request.VerifyOTPRequest{
		Email: "admin@studio.test",
		OTP:   "123456",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestVerifyOTPExhaustionForcesFreshLogin(t *testing.T) {
	f := newAuthFixture(t)
	f.addUser(t, "admin@studio.test", "secret123", entity.RoleAdmin)
	ctx := context.Background()

	_, err := f.auth.Login(ctx, &request.LoginRequest{
		Email:    "admin@studio.test",
		Password: "secret123",
	})
	require.NoError(t, err)
	f.otpRepo.stored("admin@studio.test").Code = "123456"

	for i := 0; i < 4; i++ {
		_, err := f.auth.VerifyOTP(ctx, &request.VerifyOTPRequest{
			Email: "admin@studio.test",
			OTP:   "000000",
		})
		var invalidCode *InvalidCodeError
		require.ErrorAs(t, err, &invalidCode)
	}

	_, err = f.auth.VerifyOTP(ctx, &request.VerifyOTPRequest{
		Email: "admin@studio.test",
		OTP:   "000000",
	})
	assert.ErrorIs(t, err, ErrAttemptsExceeded)

	// Challenge destroyed; only a fresh login can mint a new one
	_, err = f.auth.VerifyOTP(ctx, &request.VerifyOTPRequest{
		Email: "admin@studio.test",
		OTP:   "123456",
	})
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestReloginSupersedesPendingChallenge(t *testing.T) {
	f := newAuthFixture(t)
	f.addUser(t, "admin@studio.test", "secret123", entity.RoleAdmin)
	ctx := context.Background()
	login := &request.LoginRequest{Email: "admin@studio.test", Password: "secret123"}

	_, err := f.auth.Login(ctx, login)
	require.NoError(t, err)
	f.otpRepo.stored("admin@studio.test").Code = "111111"

	_, err = f.auth.Login(ctx, login)
	require.NoError(t, err)
	f.otpRepo.stored("admin@studio.test").Code = "222222"

	require.Equal(t, 1, f.otpRepo.count(), "relogin must supersede, not stack")

	// The first code no longer matches anything
	_, err = f.auth.VerifyOTP(ctx, &request.VerifyOTPRequest{
		Email: "admin@studio.test",
		OTP:   "111111",
	})
	var invalidCode *InvalidCodeError
	require.ErrorAs(t, err, &invalidCode)

	resp, err := f.auth.VerifyOTP(ctx, &request.VerifyOTPRequest{
		Email: "admin@studio.test",
		OTP:   "222222",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestResendOTP(t *testing.T) {
	f := newAuthFixture(t)
	f.addUser(t, "admin@studio.test", "secret123", entity.RoleAdmin)
	f.addUser(t, "customer@studio.test", "secret123", entity.RoleUser)
	ctx := context.Background()

	// Unknown and non-admin emails both come back not found
	_, err := f.auth.ResendOTP(ctx, &request.ResendOTPRequest{Email: "ghost@studio.test"})
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = f.auth.ResendOTP(ctx, &request.ResendOTPRequest{Email: "customer@studio.test"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = f.auth.Login(ctx, &request.LoginRequest{
		Email:    "admin@studio.test",
		Password: "secret123",
	})
	require.NoError(t, err)

	// A challenge was just issued, so resend hits the cooldown
	_, err = f.auth.ResendOTP(ctx, &request.ResendOTPRequest{Email: "admin@studio.test"})
	assert.ErrorIs(t, err, ErrResendTooSoon)

	// Age the pending challenge past the cooldown window
	f.otpRepo.stored("admin@studio.test").CreatedAt = time.Now().Add(-2 * time.Minute)

	resp, err := f.auth.ResendOTP(ctx, &request.ResendOTPRequest{Email: "admin@studio.test"})
	require.NoError(t, err)
	assert.Equal(t, "admin@studio.test", resp.Email)
	assert.Equal(t, 1, f.otpRepo.count())
	assert.Equal(t, 2, f.sender.sentCount())
}

func TestVerifyOTPUserRemovedMidFlow(t *testing.T) {
	f := newAuthFixture(t)
	user := f.addUser(t, "admin@studio.test", "secret123", entity.RoleAdmin)
	ctx := context.Background()

	_, err := f.auth.Login(ctx, &request.LoginRequest{
		Email:    "admin@studio.test",
		Password: "secret123",
	})
	require.NoError(t, err)
	code := f.otpRepo.stored("admin@studio.test").Code

	// Account deleted between login and verification
	delete(f.userRepo.users, user.ID)

	_, err = f.auth.VerifyOTP(ctx, &request.VerifyOTPRequest{
		Email: "admin@studio.test",
		OTP:   code,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
