package database

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Logger adapts zerolog to GORM's logger interface. Queries only surface
// in the log when they fail or run slower than the threshold.
type Logger struct {
	log           zerolog.Logger
	slowThreshold time.Duration
}

// NewLogger returns a Logger backed by the global zerolog logger.
func NewLogger() *Logger {
	return &Logger{log: log.Logger, slowThreshold: 200 * time.Millisecond}
}

// LogMode implements gorm's logger.Interface; levels are controlled by
// zerolog, so this is a no-op.
func (l *Logger) LogMode(gormlogger.LogLevel) gormlogger.Interface { return l }

func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.log.Info().Msgf(msg, args...)
}

func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.log.Warn().Msgf(msg, args...)
}

func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	l.log.Error().Msgf(msg, args...)
}

func (l *Logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.log.Error().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).Msg(sql)
	case elapsed > l.slowThreshold:
		sql, rows := fc()
		l.log.Warn().Dur("elapsed", elapsed).Int64("rows", rows).Msg(sql)
	}
}
