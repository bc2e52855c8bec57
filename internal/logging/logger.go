// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger
}

// NewLogger creates a console-friendly JSON logger at the given level.
// Unknown levels fall back to "error".
func NewLogger(l string) *Logger {
	var lvl zapcore.Level

	if err := lvl.UnmarshalText([]byte(strings.ToLower(l))); err != nil {
		lvl = zapcore.ErrorLevel
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(lvl)
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	c.DisableStacktrace = lvl != zapcore.DebugLevel

	lgr, err := c.Build(zap.AddCaller())
	if err != nil {
		panic(err)
	}

	return &Logger{SugaredLogger: lgr.Sugar()}
}
