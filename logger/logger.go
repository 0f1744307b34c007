// Package logger wraps zap with the small sugared surface the rest of
// the library logs through.
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Interface interface {
	Debugw(msg string, kv ...any)
	Infow(msg string, kv ...any)
	Warnw(msg string, kv ...any)
	Errorw(msg string, kv ...any)

	With(kv ...any) Interface
	SafeSync()
}

type Logger struct {
	*zap.SugaredLogger
}

// Init builds a logger or exits. Meant for main(); libraries should
// call New and propagate the error.
func Init(serviceName, env string) *Logger {
	l, err := New(serviceName, env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	return l
}

func New(serviceName, env string) (*Logger, error) {
	cfg := buildConfig(env)

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("cannot init zap logger: %w", err)
	}
	return &Logger{SugaredLogger: z.Named(serviceName).Sugar()}, nil
}

// Nop discards everything. Handy default for adapters constructed
// without an explicit logger.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func buildConfig(env string) zap.Config {
	var cfg zap.Config

	switch strings.ToLower(strings.TrimSpace(env)) {
	case "development", "debug":
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "production":
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.LevelKey = "level"
	cfg.EncoderConfig.MessageKey = "msg"
	cfg.EncoderConfig.NameKey = "logger"
	cfg.EncoderConfig.CallerKey = zapcore.OmitKey
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stdout"}

	return cfg
}

func (l *Logger) With(kv ...any) Interface {
	return &Logger{SugaredLogger: l.SugaredLogger.With(kv...)}
}

func (l *Logger) SafeSync() {
	if l == nil {
		return
	}
	if err := l.Desugar().Sync(); err != nil && !isIgnorableSyncError(err) {
		l.Errorw("log sync error", "err", err)
	}
}

// Sync on a terminal stdout fails with ENOTTY/EINVAL; neither is worth
// reporting.
func isIgnorableSyncError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "invalid argument") ||
		strings.Contains(s, "inappropriate ioctl for device")
}
