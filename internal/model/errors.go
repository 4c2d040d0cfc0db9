package model

import "errors"

// Error kinds checked with errors.Is across layers. The HTTP boundary maps
// ErrInvalidInput to 400, ErrNotFound to 404 and everything else to 500.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrDecode       = errors.New("undecodable image")
	ErrPersistence  = errors.New("persistence failure")
	ErrStorage      = errors.New("storage failure")
)
