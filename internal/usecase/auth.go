package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"plant-exchange/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.User, error)
}

type TokenService interface {
	GenerateToken(userID string) (string, error)
	VerifyToken(token string) (string, error)
}

type AuthUsecase struct {
	users  UserRepository
	tokens TokenService
	logger *zap.Logger
}

func NewAuthUsecase(users UserRepository, tokens TokenService, logger *zap.Logger) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens, logger: logger}
}

// Register creates a user with a freshly hashed password and returns a signed
// token for them.
func (uc *AuthUsecase) Register(ctx context.Context, username, email, password string) (string, error) {
	exists, err := uc.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrUserExists
	}

	user, err := domain.NewUser(username, email, password)
	if err != nil {
		return "", err
	}

	if err := uc.users.Create(ctx, user); err != nil {
		uc.logger.Error("failed to create user", zap.Error(err))
		return "", err
	}

	return uc.tokens.GenerateToken(user.ID)
}

// Login verifies credentials and returns a fresh token. Unknown username and
// wrong password fail identically so callers cannot tell which part was wrong.
func (uc *AuthUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := uc.users.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials
	}

	if err := user.CheckPassword(password); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	return uc.tokens.GenerateToken(user.ID)
}

// Authenticate resolves a bearer token to its user. Runs on every protected
// request.
func (uc *AuthUsecase) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	userID, err := uc.tokens.VerifyToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidToken
	}
	return user, nil
}
