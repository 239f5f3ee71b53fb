package domain

import "errors"

var (
	// ErrValidation covers malformed or missing request input.
	ErrValidation = errors.New("invalid input")
	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password, so responses do not reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists is returned when registering a username that is taken.
	ErrUserExists = errors.New("username already taken")
	// ErrUserNotFound is an internal lookup miss; callers in the login path
	// must translate it to ErrInvalidCredentials before it reaches a client.
	ErrUserNotFound = errors.New("user not found")
	// ErrUnauthorized is returned when no valid session backs a request.
	ErrUnauthorized = errors.New("authentication required")
	// ErrSessionNotFound is returned by stores for a missing or expired token.
	ErrSessionNotFound = errors.New("session not found")
)
