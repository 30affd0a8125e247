package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("Info message should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("Warn message should be written")
	}
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New("loud", &buf)

	log.Debug().Msg("debug")
	log.Info().Msg("info")

	if strings.Contains(buf.String(), `"debug"`) {
		t.Error("Debug should be filtered at the default level")
	}
	if !strings.Contains(buf.String(), `"info"`) {
		t.Error("Info should be written at the default level")
	}
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.log")

	log, closeLog, err := Open("info", path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	log.Info().Str("cell", "(0,0)").Msg("chosen")
	if err := closeLog(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), `"cell":"(0,0)"`) {
		t.Errorf("Log file missing entry, got %q", string(data))
	}
}

func TestOpen_Fallback(t *testing.T) {
	var buf bytes.Buffer
	log, closeLog, err := Open("info", "", &buf)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	log.Info().Msg("fallback")
	if err := closeLog(); err != nil {
		t.Errorf("close should be a no-op, got %v", err)
	}
	if !strings.Contains(buf.String(), "fallback") {
		t.Error("Expected message in fallback writer")
	}
}

func TestOpen_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "memory.log")
	if _, _, err := Open("info", path, nil); err == nil {
		t.Error("Expected error for unwritable path")
	}
}
