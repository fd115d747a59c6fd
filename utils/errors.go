package utils

import "errors"

var (
	ErrEmptyURL      = errors.New("URL cannot be empty")
	ErrInvalidURL    = errors.New("invalid URL format")
	ErrInvalidScheme = errors.New("URL must include http:// or https://")
	ErrEmptyHost     = errors.New("URL host cannot be empty")
)
