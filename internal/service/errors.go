package service

import "errors"

var (
	ErrLoginOnServer    = errors.New("login failed on server")
	ErrRegisterOnServer = errors.New("registration failed on server")

	ErrValidationEmptyEmail    = errors.New("email must not be empty")
	ErrValidationEmptyPassword = errors.New("password must not be empty")
	ErrValidationEmptyTitle    = errors.New("title must not be empty")
	ErrValidationEmptyName     = errors.New("name must not be empty")
	ErrValidationBadDateRange  = errors.New("end date must be after start date")
	ErrValidationInvalidRole   = errors.New("unknown role")
)
