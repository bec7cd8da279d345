package model

import "errors"

var (
	errInvalidCheckInterval = errors.New("polling check interval must be positive")
	errNegativeMaxWait      = errors.New("polling max wait must not be negative")
)
