package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"automarket/config"
	"automarket/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlite calls are local; anything slower than this is worth a warning
const defaultGormSlowThreshold = 100 * time.Millisecond

type gormSlogLogger struct {
	logger                     *slog.Logger
	level                      logger.LogLevel
	slowThreshold              time.Duration
	ignoreRecordNotFoundErrors bool
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:                     baseLogger,
		level:                      level,
		slowThreshold:              defaultGormSlowThreshold,
		ignoreRecordNotFoundErrors: true,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < threshold {
		return
	}

	l.logger.LogAttrs(ctx, level, "[Store] gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed queries, then slow ones, and every query at Info
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	query := func(extra ...slog.Attr) []slog.Attr {
		sql, rows := sqlAndRowsFn()

		return append([]slog.Attr{
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", redactLiterals(sql)),
		}, extra...)
	}

	switch {
	case l.failed(err):
		l.logger.LogAttrs(ctx, slog.LevelError, "[Store] query failed", query(slog.String("error", err.Error()))...)
	case l.slow(elapsed):
		l.logger.LogAttrs(ctx, slog.LevelWarn, "[Store] slow query", query(slog.Duration("slowThreshold", l.slowThreshold))...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelInfo, "[Store] query", query()...)
	}
}

// redactLiterals masks quoted values; the settings table holds the API key and bearer token
func redactLiterals(sql string) string {
	var out strings.Builder
	out.Grow(len(sql))

	inLiteral := false
	for i := 0; i < len(sql); i++ {
		ch := sql[i]
		if ch != '\'' {
			if !inLiteral {
				out.WriteByte(ch)
			}

			continue
		}

		// '' inside a literal is an escaped quote
		if inLiteral && i+1 < len(sql) && sql[i+1] == '\'' {
			i++

			continue
		}

		if inLiteral {
			out.WriteString("***'")
		} else {
			out.WriteByte('\'')
		}
		inLiteral = !inLiteral
	}

	return out.String()
}

func (l *gormSlogLogger) failed(err error) bool {
	if err == nil || l.level < logger.Error {
		return false
	}

	return !(l.ignoreRecordNotFoundErrors && errors.Is(err, gorm.ErrRecordNotFound))
}

func (l *gormSlogLogger) slow(elapsed time.Duration) bool {
	return l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn
}
