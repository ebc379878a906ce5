package config

import "errors"

var (
	// ErrValidationFailed indicates a setting has an unusable value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownSetting indicates a source set a key red does not know.
	ErrUnknownSetting = errors.New("unknown setting")
)
