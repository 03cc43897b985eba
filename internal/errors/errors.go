package errors

import (
	"errors"
)

var (
	ErrTermNotFound      = errors.New("slang term not found")
	ErrTermAlreadyExists = errors.New("slang term already exists")
	ErrUserAlreadyExists = errors.New("user with this email or username already exist")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrEmailNotVerified  = errors.New("please verify your mail to proceed")
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrSameUsername      = errors.New("username cannot be same")
	ErrMailSend          = errors.New("failed to send mail")
)
