package model

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrOrderTerminal      = errors.New("order status is terminal")
	ErrStatusRegression   = errors.New("status cannot move backwards")
	ErrInvalidTransition  = errors.New("transition not allowed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOTP         = errors.New("invalid otp")
)
