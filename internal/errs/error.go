package errs

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrPermission    = errors.New("permission denied")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidOTP    = errors.New("invalid or expired OTP")
	ErrBadPassword   = errors.New("wrong password")
	ErrWeakPassword  = errors.New("password must be at least 8 characters and contain a letter and a digit")
	ErrPasswordMatch = errors.New("password fields didn't match")
	ErrSMSDelivery   = errors.New("failed to send OTP")
)
