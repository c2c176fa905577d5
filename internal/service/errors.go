package service

import "errors"

// Sentinel errors shared by the services. Handlers map these to HTTP status
// codes; anything else surfaces as an internal server error.
var (
	ErrIDRequired    = errors.New("id is required")
	ErrNotFound      = errors.New("record not found")
	ErrPhotoRequired = errors.New("photo is required")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidRange  = errors.New("start date is after end date")
)
