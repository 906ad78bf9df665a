package user

import (
	"fmt"
	c "registration/internal/core/domain/common"
	e "registration/internal/core/domain/errors"
	"time"
)

type ID int64

type Username string

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type User struct {
	ID           ID
	Username     Username
	Email        c.Email
	PasswordHash PasswordHash
	IsActive     bool
	// CreatedAt is the moment the user joined, activation expiry counts from it.
	CreatedAt time.Time
}

func (u *User) Validate() error {
	if u.Username == "" {
		return e.NewInvalidStateError(fmt.Sprintf("username is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	return nil
}

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}
