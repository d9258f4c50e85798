package config

import "github.com/ayoisaiah/tally/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing config file failed",
	}

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}

	errInvalidColor = &apperr.Error{
		Message: "display color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "log level must be one of debug, info, warn, or error, got %s",
	}

	errInvalidLogRotation = &apperr.Error{
		Message: "log %s must not be negative, got %d",
	}
)
