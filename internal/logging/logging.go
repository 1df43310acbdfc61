// Package logging builds the structured logger. The terminal UI owns stdout,
// so logs only go to a file when one is configured.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the log sink and level.
type Options struct {
	File  string
	Debug bool
}

// New returns a JSON file logger, or a no-op logger when File is empty.
// The file is opened directly rather than through zap's URL sinks, so any
// OS path works, including Windows drive letters and names with '#' or '%'.
func New(opts Options) (*zap.Logger, error) {
	if opts.File == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if opts.Debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	sink := zapcore.Lock(zapcore.AddSync(f))
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), sink, level)

	return zap.New(core,
		zap.ErrorOutput(sink),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	).Named("fastpath"), nil
}
