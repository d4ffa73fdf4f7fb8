package log

import (
	"github.com/project/biblioteca/pkg/logger"
	"go.uber.org/zap"
)

// Info and Error cover the read-only actions that carry no entity fields
// beyond the trace id.
func Info(l *zap.Logger, msg, traceID string, action Action, fields ...zap.Field) {
	logger.MakeInfo(l, msg,
		append(fields,
			zap.String("trace_id", traceID),
			zap.String("action", action))...)
}

func Error(l *zap.Logger, err error, msg, traceID string, action Action, fields ...zap.Field) bool {
	return logger.CheckError(err, l, msg,
		append(fields,
			zap.String("trace_id", traceID),
			zap.Error(err),
			zap.String("action", action))...)
}
