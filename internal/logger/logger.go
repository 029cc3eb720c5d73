// Package logger builds the zap logger used by passgen.
//
// Logs always go to stderr so that generated passwords on stdout stay
// pipeable. Passwords and derived values are never logged.
package logger

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger at level. Development mode adds caller
// information and stack traces on warnings.
func New(level zapcore.Level, development bool) (*zap.Logger, error) {
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      development,
		Encoding:         "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}
	if development {
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	} else {
		cfg.DisableCaller = true
		cfg.DisableStacktrace = true
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	log, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	return log.Named("passgen"), nil
}
