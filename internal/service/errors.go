package service

import "errors"

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUserNotFound      = errors.New("user not found")
	ErrGiftNotFound      = errors.New("gift not found")
	ErrLessonNotFound    = errors.New("lesson not found")
	ErrChatNotFound      = errors.New("chat not found")
	ErrEmailTaken        = errors.New("email already registered")
)
