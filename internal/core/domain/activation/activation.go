package activation

import (
	"fmt"
	c "registration/internal/core/domain/common"
	e "registration/internal/core/domain/errors"
	"registration/internal/core/domain/user"
	"time"
)

type Key string

// KeyActivated replaces the key of a profile once its user is activated.
// A profile holding it is terminal.
const KeyActivated = Key("ALREADY_ACTIVATED")

type ProfileID int64

type Profile struct {
	ID     ProfileID
	UserID user.ID
	Key    Key
}

func (p *Profile) IsActivated() bool {
	return p.Key == KeyActivated
}

// IsExpired reports whether the key can no longer activate the user.
// The key expires exactly at joinedAt + window.
func (p *Profile) IsExpired(joinedAt time.Time, window time.Duration, now time.Time) bool {
	if p.IsActivated() {
		return true
	}
	return !now.Before(ExpiresAt(joinedAt, window))
}

func ExpiresAt(joinedAt time.Time, window time.Duration) time.Time {
	return joinedAt.Add(window)
}

func (p *Profile) Validate() error {
	if p.Key == "" {
		return e.NewInvalidStateError(fmt.Sprintf("activation key is not set for profile %d", p.ID))
	}
	return nil
}

type KeyGenerator interface {
	GenerateKey(u user.User) (Key, error)
}

type Site struct {
	Name   string
	Domain string
}

type Config struct {
	ExpirationDays   int
	DefaultFromEmail c.Email
	Site             Site
}

func (c Config) Window() time.Duration {
	return time.Duration(c.ExpirationDays) * 24 * time.Hour
}

func (c Config) Validate() error {
	if c.ExpirationDays <= 0 {
		return e.NewInvalidStateError(fmt.Sprintf("activation window must be positive, got %d days", c.ExpirationDays))
	}
	if c.DefaultFromEmail == "" {
		return e.NewInvalidStateError("default sender email is not set")
	}
	return nil
}
