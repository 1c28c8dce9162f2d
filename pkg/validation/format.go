// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/creditcalc/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPlain && format != constants.OutputFormatGrouped {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPlain, constants.OutputFormatGrouped, format)
	}
	return nil
}

// ValidateLogLevel checks if the log level is understood by the logger setup.
func ValidateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %s", level)
}

// ValidateLogFormat checks if the log format is json or console.
func ValidateLogFormat(format string) error {
	if format != constants.LogFormatJSON && format != constants.LogFormatConsole {
		return fmt.Errorf("invalid log format: %s", format)
	}
	return nil
}

// ValidateMonthLabelBase checks that schedule months are labeled from 0 or 1.
func ValidateMonthLabelBase(base int64) error {
	if base != 0 && base != 1 {
		return fmt.Errorf("expected month label base of 0 or 1, got %d", base)
	}
	return nil
}
