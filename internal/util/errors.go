package util

import "errors"

var (
	ErrProfileNotFound    = errors.New("learning profile not found")
	ErrPathNotFound       = errors.New("learning path not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
)
