package log

import (
	"github.com/project/biblioteca/pkg/logger"
	"go.uber.org/zap"
)

func InfoCreateAuthor(l *zap.Logger, msg string, traceID, authorName string, id ...string) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("author_name", authorName),
			zap.String("action", CreateAuthor))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_id", id[0]),
		zap.String("author_name", authorName),
		zap.String("action", CreateAuthor))
}

func ErrorCreateAuthor(l *zap.Logger, err error, msg string, traceID, authorName string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_name", authorName),
		zap.Error(err),
		zap.String("action", CreateAuthor))
}

func InfoUpdateAuthor(l *zap.Logger, msg string, traceID, authorID string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_id", authorID),
		zap.String("action", UpdateAuthor))
}

func ErrorUpdateAuthor(l *zap.Logger, err error, msg string, traceID, authorID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_id", authorID),
		zap.Error(err),
		zap.String("action", UpdateAuthor))
}

func InfoDeleteAuthor(l *zap.Logger, msg string, traceID, authorID string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_id", authorID),
		zap.String("action", DeleteAuthor))
}

func ErrorDeleteAuthor(l *zap.Logger, err error, msg string, traceID, authorID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_id", authorID),
		zap.Error(err),
		zap.String("action", DeleteAuthor))
}

func InfoGetAuthorByName(l *zap.Logger, msg string, traceID, authorName string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_name", authorName),
		zap.String("action", GetAuthorByName))
}

func ErrorGetAuthorByName(l *zap.Logger, err error, msg string, traceID, authorName string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_name", authorName),
		zap.Error(err),
		zap.String("action", GetAuthorByName))
}
