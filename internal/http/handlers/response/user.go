package response

import (
	"registration/internal/core/domain/user"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Username = string(du.Username)
	u.Email = string(du.Email)
	u.IsActive = du.IsActive
	u.CreatedAt = du.CreatedAt
}
