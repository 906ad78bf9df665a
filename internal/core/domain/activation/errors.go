package activation

import "errors"

var (
	ErrProfileDoesNotExist  = errors.New("registration profile does not exist")
	ErrProfileAlreadyExists = errors.New("registration profile already exists")
)
