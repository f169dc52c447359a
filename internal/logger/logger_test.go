package logger

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLogSolveAppendsJSONL(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUANTUMIN_DATA_DIR", dir)

	l, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := l.LogSolve("d/dx(x^2)", "2*x", "Derivative", "power rule", 3*time.Millisecond, nil); err != nil {
		t.Fatalf("LogSolve: %v", err)
	}
	if err := l.LogSolve("integral(", "", "Integral", "", time.Millisecond, errors.New("failed to compute integral")); err != nil {
		t.Fatalf("LogSolve: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "sessions.jsonl"))
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	var entries []LogEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e LogEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("unmarshal line: %v", err)
		}
		entries = append(entries, e)
	}

	if len(entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(entries))
	}
	if entries[0].Result != "2*x" || entries[0].Error != "" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Error != "failed to compute integral" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestLogEventRecordsFailure(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUANTUMIN_DATA_DIR", dir)

	l, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := l.LogEvent("save solution", errors.New("database is locked")); err != nil {
		t.Fatalf("LogEvent: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "sessions.jsonl"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var e LogEntry
	if err := json.Unmarshal(data, &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Event != "save solution" || e.Error != "database is locked" {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.Timestamp == "" {
		t.Error("timestamp missing")
	}
}
