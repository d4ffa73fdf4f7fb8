// Package logger wraps zap with nil-safe helpers so call sites never have to
// guard against an absent logger.
package logger

import "go.uber.org/zap"

// CheckError logs msg when err is non-nil and reports whether it was.
// Callers use it as the condition of their error branch.
func CheckError(err error, logger *zap.Logger, msg string, fields ...zap.Field) bool {
	if err != nil {
		if logger != nil {
			logger.Error(msg, fields...)
		}
		return true
	}
	return false
}

func MakeInfo(logger *zap.Logger, msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Info(msg, fields...)
	}
}
