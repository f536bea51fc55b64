// Package logging builds the zap loggers used by the desktop and CLI shells.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the log level and encoder.
type Config struct {
	Level  string
	Format string // "console" or "json"
}

// New creates a logger writing to stdout and to any extra writers.
func New(cfg Config, extra ...io.Writer) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
	}
	sinks := []zapcore.WriteSyncer{zapcore.Lock(zapcore.AddSync(os.Stdout))}
	for _, w := range extra {
		sinks = append(sinks, zapcore.AddSync(w))
	}
	core := zapcore.NewCore(newEncoder(cfg.Format), zapcore.NewMultiWriteSyncer(sinks...), level)
	return zap.New(core), nil
}

func newEncoder(format string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == "json" {
		return zapcore.NewJSONEncoder(encoderCfg)
	}
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encoderCfg)
}
