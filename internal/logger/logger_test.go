package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelWarn, &buf)
	defer Init(slog.LevelInfo, nil)

	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("warn message missing: %q", out)
	}
	if !strings.Contains(out, "logger_test.go") {
		t.Errorf("source should name the calling file: %q", out)
	}
}

func TestOpen(t *testing.T) {
	w, closeFn, err := Open("")
	if err != nil || w == nil || closeFn == nil {
		t.Fatalf("Open(\"\") = %v, %v", w, err)
	}

	path := filepath.Join(t.TempDir(), "logs", "boxedit.log")
	w, closeFn, err = Open(path)
	if err != nil {
		t.Fatalf("Open(%q): %v", path, err)
	}
	if _, err := w.Write([]byte("hello\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "hello\n" {
		t.Fatalf("log file = %q, %v", data, err)
	}
}
