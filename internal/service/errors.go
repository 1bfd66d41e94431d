package service

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrChatroomNotFound = errors.New("chatroom not found")
	ErrMessageNotFound  = errors.New("message not found")
	ErrPlanNotFound     = errors.New("no active plan")

	// ErrForbidden means the caller is authenticated but does not own the
	// resource it is touching.
	ErrForbidden = errors.New("forbidden")

	// ErrAlreadyProcessed means a response was already applied to the
	// message. Callers that see it on a retry path should treat the work
	// as done.
	ErrAlreadyProcessed = errors.New("message already processed")

	ErrInvalidOTP         = errors.New("invalid or expired otp")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
