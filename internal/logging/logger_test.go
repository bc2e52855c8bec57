// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		level    string
		expected zapcore.Level
	}{
		{level: "DEBUG", expected: zapcore.DebugLevel},
		{level: "info", expected: zapcore.InfoLevel},
		{level: "warn", expected: zapcore.WarnLevel},
		{level: "invalid", expected: zapcore.ErrorLevel},
		{level: "", expected: zapcore.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			l := NewLogger(tc.level)

			if got := l.Level(); got != tc.expected {
				t.Errorf("expected level %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.Infof("seeded %d rows", 3)

	if err := l.Sync(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
