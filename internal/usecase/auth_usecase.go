package usecase

import (
	"context"
	"errors"
	"time"

	"emplynix-backend/internal/domain"
	"emplynix-backend/pkg/apperror"
	"emplynix-backend/pkg/auth"

	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same message as a password mismatch, no enumeration signal.
			return "", nil, apperror.Unauthorized("Invalid credentials")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}

	token, err := u.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}
	return token, user, nil
}

func (u *authUsecase) CreateAdmin(ctx context.Context, email, password, name string) error {
	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if existing != nil {
		return apperror.Conflict("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	return u.userRepo.Create(ctx, user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
