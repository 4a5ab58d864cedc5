package common

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/lni/dragonboat/v4/logger"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]logger.LogLevel{
		"debug":   logger.DEBUG,
		"INFO":    logger.INFO,
		"warn":    logger.WARNING,
		"warning": logger.WARNING,
		"error":   logger.ERROR,
	}
	for in, want := range cases {
		got, err := ParseLogLevel(in)
		if err != nil {
			t.Fatalf("ParseLogLevel(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseLogLevel("verbose"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := &dCollLogger{
		name:   "arraymap",
		level:  logger.INFO,
		logger: log.New(&buf, "", 0),
	}

	l.Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("debug message should be filtered at INFO level, got %q", buf.String())
	}

	l.Infof("grew to %d", 8)
	out := buf.String()
	if !strings.Contains(out, "INFO") || !strings.Contains(out, "arraymap") || !strings.Contains(out, "grew to 8") {
		t.Errorf("unexpected log line %q", out)
	}

	buf.Reset()
	l.SetLevel(logger.DEBUG)
	l.Debugf("visible")
	if !strings.Contains(buf.String(), "DEBUG") {
		t.Errorf("debug message should be written at DEBUG level, got %q", buf.String())
	}
}

func TestInitLoggersRepeated(t *testing.T) {
	if err := InitLoggers("error"); err != nil {
		t.Fatalf("first InitLoggers failed: %v", err)
	}
	if err := InitLoggers("debug"); err != nil {
		t.Fatalf("second InitLoggers failed: %v", err)
	}
	if err := InitLoggers("verbose"); err == nil {
		t.Error("expected an error for an unknown level")
	}
	// restore the default level for the other tests of this binary
	if err := InitLoggers("warn"); err != nil {
		t.Fatal(err)
	}
}
