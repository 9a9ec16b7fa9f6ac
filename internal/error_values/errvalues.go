package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrOwnerNotFound    = errors.New("owner of the record doesn't exist")
	ErrWrongOwner       = errors.New("record belongs to another user")
	ErrValidation       = errors.New("validation error")

	ErrSessionNotFound = errors.New("training session doesn't exist")
	ErrInvalidReorder  = errors.New("reorder indexes are out of range")
	ErrBatchFailed     = errors.New("batch write failed, nothing was saved")

	ErrBadgeNotFound = errors.New("badge doesn't exist")

	ErrSloganNotFound = errors.New("slogan doesn't exist")
	ErrSloganLimit    = errors.New("slogan limit reached")

	ErrFeedbackNotFound = errors.New("no feedback for this date")
)
