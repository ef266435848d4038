package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide sugared logger. It discards everything until Initialize runs,
// so packages can log from tests without setup.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize replaces Log with a logger at the given level.
// format is "json" (production encoder) or "console" (human readable, colored levels).
func Initialize(level, format string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = l.Sugar()
	return nil
}

// Sync flushes buffered entries. Errors from syncing stderr on some platforms are ignored.
func Sync() {
	_ = Log.Sync()
}
