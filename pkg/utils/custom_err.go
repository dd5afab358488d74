package utils

import "errors"

var (
	ErrProtocolNotFound   = errors.New("protocol not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrResetTokenInvalid  = errors.New("reset token invalid or expired")
	ErrStoreNotConfigured = errors.New("store not configured")
	ErrDatabaseError      = errors.New("database error")
)
