package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "supplydesk"

var log *zap.Logger

// newConfig picks JSON on stdout for production and a readable console
// format on stderr otherwise, so CLI output on stdout stays clean.
func newConfig(env string) zap.Config {
	if env != "production" {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.OutputPaths = []string{"stderr"}
		return cfg
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	enc := &cfg.EncoderConfig
	enc.TimeKey, enc.MessageKey, enc.LevelKey = "timestamp", "message", "level"
	enc.EncodeLevel = zapcore.LowercaseLevelEncoder
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stdout"}
	return cfg
}

// parseLevel reads LOG_LEVEL; unknown or empty keeps the env default.
func parseLevel(raw string) (zapcore.Level, bool) {
	if raw == "" {
		return 0, false
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(raw))); err != nil {
		return 0, false
	}
	return lvl, true
}

// buildOptions annotates entries with the call site of the logging
// statement itself; callers use the *zap.Logger directly.
func buildOptions() []zap.Option {
	return []zap.Option{zap.AddCaller()}
}

// Init builds the global logger for env ("production" or anything else).
func Init(env string) {
	cfg := newConfig(env)
	if lvl, ok := parseLevel(os.Getenv("LOG_LEVEL")); ok {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := cfg.Build(buildOptions()...)
	if err != nil {
		panic(err)
	}
	log = l.With(zap.String("service", serviceName))
}

// L returns the global logger, building it from APP_ENV on first use.
func L() *zap.Logger {
	if log == nil {
		Init(os.Getenv("APP_ENV"))
	}
	return log
}

// Replace swaps the global logger and returns a func restoring the previous one.
func Replace(l *zap.Logger) func() {
	prev := log
	log = l
	return func() { log = prev }
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
