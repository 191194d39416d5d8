package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"learnplatform/internal/domain"
	"learnplatform/internal/infrastructure/repository"
	"learnplatform/internal/infrastructure/security"

	"gorm.io/gorm"
)

// fakeSessions — замена redis для тестов
type fakeSessions struct {
	tokens map[string]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: make(map[string]string)}
}

func (f *fakeSessions) Save(_ context.Context, token, userID string, _ time.Duration) error {
	f.tokens[token] = userID
	return nil
}

func (f *fakeSessions) Check(_ context.Context, token string) (string, error) {
	userID, ok := f.tokens[token]
	if !ok {
		return "", errors.New("session not found")
	}
	return userID, nil
}

func (f *fakeSessions) Delete(_ context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

func newAuthUseCase(db *gorm.DB, sessions SessionStore) *AuthUseCase {
	return NewAuthUseCase(
		repository.NewUserRepository(db),
		sessions,
		security.NewPasswordHasher(),
		security.NewTokenManager("test-secret"),
	)
}

func TestAuthRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	sessions := newFakeSessions()
	uc := newAuthUseCase(db, sessions)

	user, err := uc.Register(ctxBg(), "Ivan", "ivan@example.com", "secret123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Name != "Ivan" || user.Email != "ivan@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.Password == "secret123" {
		t.Fatalf("password stored in plain text")
	}

	if _, err := uc.Register(ctxBg(), "Other", "ivan@example.com", "another"); !errors.Is(err, domain.ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}

	token, logged, err := uc.Login(ctxBg(), "ivan@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != user.ID {
		t.Fatalf("login returned another user")
	}
	if cached, err := sessions.Check(ctxBg(), token); err != nil || cached != user.ID.String() {
		t.Fatalf("session not saved: %q, %v", cached, err)
	}
}

func TestAuthLogin_InvalidCredentials(t *testing.T) {
	db := newTestDB(t)
	uc := newAuthUseCase(db, newFakeSessions())

	if _, err := uc.Register(ctxBg(), "Ivan", "ivan@example.com", "secret123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Неизвестный email и неверный пароль дают одну и ту же ошибку
	if _, _, err := uc.Login(ctxBg(), "nobody@example.com", "secret123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := uc.Login(ctxBg(), "ivan@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthLogout(t *testing.T) {
	db := newTestDB(t)
	sessions := newFakeSessions()
	uc := newAuthUseCase(db, sessions)

	if _, err := uc.Register(ctxBg(), "Ivan", "ivan@example.com", "secret123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, _, err := uc.Login(ctxBg(), "ivan@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := uc.Logout(ctxBg(), token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := sessions.Check(ctxBg(), token); err == nil {
		t.Fatalf("session survived logout")
	}
}
