package log

import (
	"github.com/project/biblioteca/pkg/logger"
	"go.uber.org/zap"
)

func InfoCreateRenter(l *zap.Logger, msg string, traceID, renterName string, id ...string) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("renter_name", renterName),
			zap.String("action", CreateRenter))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("renter_id", id[0]),
		zap.String("renter_name", renterName),
		zap.String("action", CreateRenter))
}

func ErrorCreateRenter(l *zap.Logger, err error, msg string, traceID, renterName string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("renter_name", renterName),
		zap.Error(err),
		zap.String("action", CreateRenter))
}

func InfoUpdateRenter(l *zap.Logger, msg string, traceID, renterID string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("renter_id", renterID),
		zap.String("action", UpdateRenter))
}

func ErrorUpdateRenter(l *zap.Logger, err error, msg string, traceID, renterID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("renter_id", renterID),
		zap.Error(err),
		zap.String("action", UpdateRenter))
}

func InfoDeleteRenter(l *zap.Logger, msg string, traceID, renterID string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("renter_id", renterID),
		zap.String("action", DeleteRenter))
}

func ErrorDeleteRenter(l *zap.Logger, err error, msg string, traceID, renterID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("renter_id", renterID),
		zap.Error(err),
		zap.String("action", DeleteRenter))
}
