package activation

import (
	"context"
	"registration/internal/core/domain/user"
)

type CreateProfileInput struct {
	UserID user.ID
	Key    Key
}

type ProfileRepository interface {
	Create(ctx context.Context, input CreateProfileInput) (Profile, error)
	GetByKey(ctx context.Context, key Key) (Profile, error)
	// GetByKeyWithLock holds the profile row until the surrounding transaction ends.
	GetByKeyWithLock(ctx context.Context, key Key) (Profile, error)
	GetByUserID(ctx context.Context, userID user.ID) (Profile, error)
	SetKey(ctx context.Context, id ProfileID, key Key) (Profile, error)
}
