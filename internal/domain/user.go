package domain

import (
	"context"
	"time"
)

const RoleAdmin = "admin"

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type AuthUsecase interface {
	// Login verifies the credentials and issues a bearer token. Unknown
	// email and wrong password fail identically.
	Login(ctx context.Context, email, password string) (string, *User, error)
	CreateAdmin(ctx context.Context, email, password, name string) error
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}
