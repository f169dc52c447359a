package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const MaxResultSize = 10 * 1024 // 10KB limit

// LogEntry - single solve record (fields ordered by priority)
type LogEntry struct {
	Event      string `json:"event,omitempty"`
	Input      string `json:"input,omitempty"`
	Result     string `json:"result,omitempty"`
	Category   string `json:"category,omitempty"`
	Method     string `json:"method,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
	Timestamp  string `json:"timestamp"`
}

// Logger - writes to the data directory
type Logger struct {
	logPath string
}

// New - creates Logger
// Uses QUANTUMIN_DATA_DIR env var if set, otherwise ~/.quantumin/sessions.jsonl
func New() (*Logger, error) {
	var logDir string

	if envDir := os.Getenv("QUANTUMIN_DATA_DIR"); envDir != "" {
		logDir = envDir
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		logDir = filepath.Join(home, ".quantumin")
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &Logger{
		logPath: filepath.Join(logDir, "sessions.jsonl"),
	}, nil
}

// LogSolve - appends one solve attempt to the session log
func (l *Logger) LogSolve(input, result, category, method string, elapsed time.Duration, solveErr error) error {
	// Truncate result if exceeds max size
	if len(result) > MaxResultSize {
		result = result[:MaxResultSize]
	}

	entry := LogEntry{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Input:      input,
		Result:     result,
		Category:   category,
		Method:     method,
		DurationMS: elapsed.Milliseconds(),
	}
	if solveErr != nil {
		entry.Error = solveErr.Error()
	}
	return l.append(entry)
}

// LogEvent - appends a non-solve event, such as a persistence failure
func (l *Logger) LogEvent(event string, eventErr error) error {
	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Event:     event,
	}
	if eventErr != nil {
		entry.Error = eventErr.Error()
	}
	return l.append(entry)
}

func (l *Logger) append(entry LogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	f, err := os.OpenFile(l.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write log entry: %w", err)
	}

	return nil
}
