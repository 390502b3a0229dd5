package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"studio-site/internal/data/entity"
	"studio-site/pkg/utils"

	"github.com/google/uuid"
)

// In-memory repository fakes for service tests. They mirror the semantics
// the SQL layer provides, in particular expiry filtering on lookup.

type memOTPRepo struct {
	mu         sync.Mutex
	challenges map[uuid.UUID]*entity.OTPChallenge
}

func newMemOTPRepo() *memOTPRepo {
	return &memOTPRepo{challenges: make(map[uuid.UUID]*entity.OTPChallenge)}
}

func (m *memOTPRepo) Create(_ context.Context, challenge *entity.OTPChallenge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.challenges[challenge.ID] = challenge
	return nil
}

func (m *memOTPRepo) FindLatestByEmail(_ context.Context, email string) (*entity.OTPChallenge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var latest *entity.OTPChallenge
	for _, c := range m.challenges {
		if c.Email != email || !c.ExpiresAt.After(time.Now()) {
			continue
		}
		if latest == nil || c.CreatedAt.After(latest.CreatedAt) {
			latest = c
		}
	}
	return latest, nil
}

func (m *memOTPRepo) UpdateAttempts(_ context.Context, id uuid.UUID, attempts int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.challenges[id]
	if !ok {
		return errors.New("challenge not found")
	}
	c.Attempts = attempts
	return nil
}

func (m *memOTPRepo) MarkVerified(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.challenges[id]
	if !ok {
		return errors.New("challenge not found")
	}
	c.Verified = true
	return nil
}

func (m *memOTPRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.challenges, id)
	return nil
}

func (m *memOTPRepo) DeleteByEmail(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, c := range m.challenges {
		if c.Email == email {
			delete(m.challenges, id)
		}
	}
	return nil
}

func (m *memOTPRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.challenges)
}

// stored returns the single stored challenge for an email regardless of
// expiry, so tests can inspect and mutate it.
func (m *memOTPRepo) stored(email string) *entity.OTPChallenge {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.challenges {
		if c.Email == email {
			return c
		}
	}
	return nil
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (m *memUserRepo) Create(_ context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id], nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var all []*entity.User
	for _, u := range m.users {
		all = append(all, u)
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *memUserRepo) CountAll(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

func (m *memUserRepo) Update(_ context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *memUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return errors.New("user not found")
	}
	u.PasswordHash = passwordHash
	return nil
}

func (m *memUserRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return errors.New("user not found")
	}
	u.IsActive = active
	return nil
}

type sentMail struct {
	email string
	code  string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	fail error
}

func (f *fakeMailer) SendOTPEmail(email, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.sent = append(f.sent, sentMail{email: email, code: code})
	return nil
}

func (f *fakeMailer) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func newTestConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: 1,
		},
		OTP: utils.OTPConfig{
			ExpiryMinutes:  10,
			MaxAttempts:    5,
			ResendCooldown: 60,
		},
	}
}

func newTestUser(email, password string, role entity.UserRole) *entity.User {
	hash, _ := utils.HashPassword(password)
	now := time.Now()
	return &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
}
