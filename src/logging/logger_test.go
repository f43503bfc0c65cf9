package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = newSugared(&buf)
	t.Cleanup(func() {
		baseLogger = saved
		SetLogLevel("info")
	})
	return &buf
}

func TestInfof_PercentInArgumentIsKept(t *testing.T) {
	buf := captureLogs(t)
	SetLogLevel("info")

	msg := "wrote plot_top_suspects.png rows=20 (100.0% of top-N) seeds=3"
	Infof("%s", msg)

	out := buf.String()
	if !strings.Contains(out, "(100.0% of top-N)") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "%!o(MISSING)") || strings.Contains(out, "%!f(MISSING)") {
		t.Fatalf("log output still shows fmt artifact: %s", out)
	}
}

func TestLevelGating(t *testing.T) {
	buf := captureLogs(t)
	SetLogLevel("warn")
	if GetLogLevel() != LevelWarn {
		t.Fatalf("level = %v, want warn", GetLogLevel())
	}
	Infof("hidden %d", 1)
	Debugf("hidden too")
	Warnf("shown %s", "warning")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info/debug lines leaked at warn level: %s", out)
	}
	if !strings.Contains(out, "shown warning") || !strings.Contains(out, "WARN") {
		t.Fatalf("warn line missing: %s", out)
	}
}

func TestSetLogLevel_IgnoresUnknown(t *testing.T) {
	captureLogs(t)
	SetLogLevel("debug")
	SetLogLevel("chatty")
	if GetLogLevel() != LevelDebug {
		t.Fatalf("unknown level changed state: %v", GetLogLevel())
	}
	if ValidLevel("chatty") || !ValidLevel(" Warning ") {
		t.Fatalf("ValidLevel mismatch")
	}
}

func TestAtomicLevelIsTheGate(t *testing.T) {
	buf := captureLogs(t)
	atomLevel.SetLevel(zapcore.ErrorLevel)
	if GetLogLevel() != LevelError {
		t.Fatalf("level = %v, want error", GetLogLevel())
	}
	Warnf("quiet %d", 1)
	Errorf("loud %d", 2)
	out := buf.String()
	if strings.Contains(out, "quiet") || !strings.Contains(out, "loud 2") {
		t.Fatalf("zap level not honoured: %s", out)
	}
}
