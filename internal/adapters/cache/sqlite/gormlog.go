package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen/quotevault/internal/platform/logging"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes gorm's logging into the request-scoped slog logger.
type gormLogger struct {
	level gormlogger.LogLevel
}

func newGormLogger(logQueries bool) gormlogger.Interface {
	if logQueries {
		return &gormLogger{level: gormlogger.Info}
	}

	return &gormLogger{level: gormlogger.Warn}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		logging.FromContext(ctx).InfoContext(ctx, fmt.Sprintf(msg, args...), slog.String("component", "cache"))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		logging.FromContext(ctx).WarnContext(ctx, fmt.Sprintf(msg, args...), slog.String("component", "cache"))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		logging.FromContext(ctx).ErrorContext(ctx, fmt.Sprintf(msg, args...), slog.String("component", "cache"))
	}
}

// Trace logs failed and slow statements at warn, and every statement at
// trace level when query logging is on. Missing rows are not failures.
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	logger := logging.FromContext(ctx)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		logger.WarnContext(ctx, "cache statement failed",
			slog.String("sql", sql), slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed), slog.Any("error", err))
	case elapsed > slowQueryThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		logger.WarnContext(ctx, "slow cache statement",
			slog.String("sql", sql), slog.Int64("rows", rows), slog.Duration("elapsed", elapsed))
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		logger.Log(ctx, logging.LevelTrace, "cache statement",
			slog.String("sql", sql), slog.Int64("rows", rows), slog.Duration("elapsed", elapsed))
	}
}
