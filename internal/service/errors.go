package service

import "errors"

var (
	// ErrInvalidDataProvided indicates a request failed input validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials indicates a username/password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenCreationFailed indicates session token signing failed.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid covers every token verification failure:
	// expired, malformed, bad signature. Callers treat the session as
	// absent rather than inspecting the cause.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrMailDeliveryFailed indicates the mail provider rejected or failed
	// to accept an outbound message.
	ErrMailDeliveryFailed = errors.New("mail delivery failed")
)
