// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context handling, level filtering,
//              formatters and structured error logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-19 v0.2.0: Formatter determinism and concurrent write tests

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	mdwerror "github.com/msto63/timescale/core/error"
)

func newBufferLogger(format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: LevelTrace, Format: format, Output: &buf, Name: "test"}), &buf
}

func TestNew(t *testing.T) {
	logger := New()

	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}

	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestWithMethodsReturnCopies(t *testing.T) {
	logger := New()
	derived := logger.WithLevel(LevelDebug).WithName("timex").WithField("component", "rounding")

	if derived == logger {
		t.Fatal("With* should return a new logger instance")
	}

	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify the original logger")
	}

	if _, ok := logger.contextFields["component"]; ok {
		t.Error("WithField() should not modify the original logger")
	}

	if derived.Name() != "timex" {
		t.Errorf("Name() = %q, want timex", derived.Name())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Format: FormatText, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")
	logger.Audit("always")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "always") {
		t.Errorf("output missing expected messages: %q", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON)
	logger.WithCorrelationID("run-1").Warn("julian day out of range", Fields{"julian_day": 42})

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	checks := map[string]interface{}{
		"level":          "warn",
		"message":        "julian day out of range",
		"logger":         "test",
		"correlation_id": "run-1",
		"julian_day":     float64(42),
	}
	for k, want := range checks {
		if decoded[k] != want {
			t.Errorf("%s = %v, want %v", k, decoded[k], want)
		}
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	formatter := &TextFormatter{DisableTimestamp: true}
	entry := NewEntry(LevelInfo, "rounded")
	entry.Fields = Fields{"unit": "day", "input": 1, "output": 2}

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "[INF] rounded [input=1 output=2 unit=day]\n"
	if string(data) != want {
		t.Errorf("Format() = %q, want %q", string(data), want)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	logger, buf := newBufferLogger(FormatLogfmt)
	logger.Info("classified", Fields{"interval": "month"})

	out := buf.String()
	for _, want := range []string{"level=info", `message="classified"`, `interval="month"`, "logger=test"} {
		if !strings.Contains(out, want) {
			t.Errorf("logfmt output %q missing %q", out, want)
		}
	}
}

func TestConsoleFormatterColors(t *testing.T) {
	formatter := NewConsoleFormatter()
	formatter.DisableTimestamp = true

	data, _ := formatter.Format(NewEntry(LevelError, "boom"))
	if !strings.HasPrefix(string(data), LevelError.Color()) {
		t.Errorf("console output should start with the level color: %q", string(data))
	}

	formatter.DisableColors = true
	data, _ = formatter.Format(NewEntry(LevelError, "boom"))
	if strings.Contains(string(data), "\033[") {
		t.Errorf("colors should be disabled: %q", string(data))
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  string
		wantAlert bool
	}{
		{
			name:      "low severity logs at info",
			err:       mdwerror.New("out of range").WithCode(mdwerror.CodeRangeOverflow),
			wantLevel: "info",
			wantCode:  "RANGE_OVERFLOW",
		},
		{
			name:      "high severity logs at error",
			err:       mdwerror.New("bad config").WithCode(mdwerror.CodeInvalidConfig),
			wantLevel: "error",
			wantCode:  "INVALID_CONFIG",
			wantAlert: true,
		},
		{
			name:      "wrapped structured error keeps its severity",
			err:       fmt.Errorf("weekstart: %w", mdwerror.New("year out of range").WithCode(mdwerror.CodeRangeOverflow)),
			wantLevel: "info",
			wantCode:  "RANGE_OVERFLOW",
		},
		{
			name:      "medium severity logs at warn",
			err:       mdwerror.New("odd").WithCode(mdwerror.CodeUnknown),
			wantLevel: "warn",
			wantCode:  "UNKNOWN",
		},
		{
			name:      "plain error logs at error",
			err:       errors.New("plain"),
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(FormatJSON)
			logger.LogError(tt.err)

			var decoded map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}

			if decoded["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", decoded["level"], tt.wantLevel)
			}

			if tt.wantCode != "" && decoded["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", decoded["error_code"], tt.wantCode)
			}

			if alert, _ := decoded["alert"].(bool); alert != tt.wantAlert {
				t.Errorf("alert = %v, want %v", decoded["alert"], tt.wantAlert)
			}
		})
	}

	logger, buf := newBufferLogger(FormatJSON)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not write anything")
	}
}

func TestConcurrentWritesDoNotInterleave(t *testing.T) {
	logger, buf := newBufferLogger(FormatLogfmt)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			child := logger.WithField("worker", i)
			for j := 0; j < 50; j++ {
				child.Info("tick")
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 400 {
		t.Fatalf("got %d lines, want 400", len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "timestamp=") {
			t.Fatalf("interleaved line: %q", line)
		}
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if lvl, err := ParseLevel("WARNING"); err != nil || lvl != LevelWarn {
		t.Errorf("ParseLevel(WARNING) = %v, %v", lvl, err)
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}

	if f, err := ParseFormat(" logfmt "); err != nil || f != FormatLogfmt {
		t.Errorf("ParseFormat(logfmt) = %v, %v", f, err)
	}

	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	// Audit entries pass every level filter and end in io.Discard
	for level := LevelTrace; level < LevelAudit; level++ {
		if logger.IsLevelEnabled(level) {
			t.Errorf("Discard() enables %s", level)
		}
	}
	logger.Audit("dropped")
	logger.ErrorWithErr("dropped", errors.New("boom"))
}

func TestErrorWithErr(t *testing.T) {
	logger, buf := newBufferLogger(FormatLogfmt)
	logger.ErrorWithErr("cannot convert timestamp", errors.New("boom"), Field("input", "1e400"))

	out := buf.String()
	for _, want := range []string{"level=error", `error="boom"`, `input="1e400"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}
