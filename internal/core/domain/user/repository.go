package user

import (
	"context"
	c "registration/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Username     Username
	Email        c.Email
	PasswordHash PasswordHash
	IsActive     bool
	CreatedAt    time.Time
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	SetActive(ctx context.Context, id ID, isActive bool) (User, error)
}
