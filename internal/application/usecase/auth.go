package usecase

import (
	"context"
	"errors"
	"time"

	"learnplatform/internal/domain"
	"learnplatform/internal/infrastructure/repository"
	"learnplatform/internal/infrastructure/security"

	"github.com/google/uuid"
)

// SessionStore — хранилище выданных токенов (redis в бою).
type SessionStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	Check(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

type AuthUseCase struct {
	userRepo *repository.UserRepository
	sessions SessionStore
	hasher   *security.PasswordHasher
	tokens   *security.TokenManager
}

func NewAuthUseCase(ur *repository.UserRepository, s SessionStore, h *security.PasswordHasher, tm *security.TokenManager) *AuthUseCase {
	return &AuthUseCase{userRepo: ur, sessions: s, hasher: h, tokens: tm}
}

func (uc *AuthUseCase) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if existing, err := uc.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Password: hash,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login проверяет пару email/пароль и выдает сессионный токен.
// Неизвестный email и неверный пароль неразличимы для клиента.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err := uc.hasher.Compare(user.Password, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Generate(user.ID.String())
	if err != nil {
		return "", nil, err
	}

	if err := uc.sessions.Save(ctx, token, user.ID.String(), security.TokenTTL); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (uc *AuthUseCase) Me(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	return uc.sessions.Delete(ctx, token)
}
