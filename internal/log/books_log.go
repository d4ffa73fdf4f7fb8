package log

import (
	"github.com/project/biblioteca/pkg/logger"
	"go.uber.org/zap"
)

func InfoCreateBook(l *zap.Logger, msg string, traceID, title string, authorIDs []string, id ...string) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("book_title", title),
			zap.Strings("author_ids", authorIDs),
			zap.String("action", CreateBook))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", id[0]),
		zap.String("book_title", title),
		zap.Strings("author_ids", authorIDs),
		zap.String("action", CreateBook))
}

func ErrorCreateBook(l *zap.Logger, err error, msg string, traceID, title string, authorIDs []string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_title", title),
		zap.Strings("author_ids", authorIDs),
		zap.Error(err),
		zap.String("action", CreateBook))
}

func InfoUpdateBook(l *zap.Logger, msg string, traceID, bookID string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", bookID),
		zap.String("action", UpdateBook))
}

func ErrorUpdateBook(l *zap.Logger, err error, msg string, traceID, bookID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", bookID),
		zap.Error(err),
		zap.String("action", UpdateBook))
}

func InfoDeleteBook(l *zap.Logger, msg string, traceID, bookID string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", bookID),
		zap.String("action", DeleteBook))
}

func ErrorDeleteBook(l *zap.Logger, err error, msg string, traceID, bookID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", bookID),
		zap.Error(err),
		zap.String("action", DeleteBook))
}

func InfoAddBookAuthor(l *zap.Logger, msg string, traceID, bookID, authorID string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", bookID),
		zap.String("author_id", authorID),
		zap.String("action", AddBookAuthor))
}

func ErrorAddBookAuthor(l *zap.Logger, err error, msg string, traceID, bookID, authorID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", bookID),
		zap.String("author_id", authorID),
		zap.Error(err),
		zap.String("action", AddBookAuthor))
}

func InfoRemoveBookAuthor(l *zap.Logger, msg string, traceID, bookID, authorID string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", bookID),
		zap.String("author_id", authorID),
		zap.String("action", RemoveBookAuthor))
}

func ErrorRemoveBookAuthor(l *zap.Logger, err error, msg string, traceID, bookID, authorID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", bookID),
		zap.String("author_id", authorID),
		zap.Error(err),
		zap.String("action", RemoveBookAuthor))
}
