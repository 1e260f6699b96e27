package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrAttemptNotFound     = errors.New("attempt not found")
	ErrAttemptCompleted    = errors.New("attempt already completed")
	ErrResultNotFound      = errors.New("result not found")
	ErrResultNotPaid       = errors.New("result is not unlocked for premium content")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrSeriesNotFound      = errors.New("unknown question series")
	ErrProductNotFound     = errors.New("unknown product")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
	ErrPackNotFound        = errors.New("pack not found")
	ErrPackFull            = errors.New("pack has no free member slots")
	ErrPackNotReady        = errors.New("pack is missing linked results")
	ErrAlreadyMember       = errors.New("already a member of this pack")
	ErrResetLimitExceeded  = errors.New("too many reset requests, try again later")
	ErrResetTokenInvalid   = errors.New("reset token is invalid or expired")
)
