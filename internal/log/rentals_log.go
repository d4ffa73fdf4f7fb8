package log

import (
	"github.com/project/biblioteca/pkg/logger"
	"go.uber.org/zap"
)

func InfoCreateRental(l *zap.Logger, msg string, traceID, renterID string, bookIDs []string, id ...string) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("renter_id", renterID),
			zap.Strings("book_ids", bookIDs),
			zap.String("action", CreateRental))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("rental_id", id[0]),
		zap.String("renter_id", renterID),
		zap.Strings("book_ids", bookIDs),
		zap.String("action", CreateRental))
}

func ErrorCreateRental(l *zap.Logger, err error, msg string, traceID, renterID string, bookIDs []string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("renter_id", renterID),
		zap.Strings("book_ids", bookIDs),
		zap.Error(err),
		zap.String("action", CreateRental))
}

func InfoUpdateRental(l *zap.Logger, msg string, traceID, rentalID string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("rental_id", rentalID),
		zap.String("action", UpdateRental))
}

func ErrorUpdateRental(l *zap.Logger, err error, msg string, traceID, rentalID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("rental_id", rentalID),
		zap.Error(err),
		zap.String("action", UpdateRental))
}

func InfoDeleteRental(l *zap.Logger, msg string, traceID, rentalID string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("rental_id", rentalID),
		zap.String("action", DeleteRental))
}

func ErrorDeleteRental(l *zap.Logger, err error, msg string, traceID, rentalID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("rental_id", rentalID),
		zap.Error(err),
		zap.String("action", DeleteRental))
}
