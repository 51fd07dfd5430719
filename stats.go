package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"gridsnake/game/manager"
)

const sessionsFile = "sessions.csv"

// SessionRecord is one row of sessions.csv.
type SessionRecord struct {
	SessionID string    `csv:"session_id"`
	StartTime time.Time `csv:"start_time"`
	EndTime   time.Time `csv:"end_time"`
	Duration  float64   `csv:"duration_sec"`
	Score     int       `csv:"score"`
	Length    int       `csv:"length"`
	Ticks     int       `csv:"ticks"`
	Cause     string    `csv:"cause"`
}

// NewSessionRecord flattens a finished session for export.
func NewSessionRecord(s manager.SessionSummary) SessionRecord {
	return SessionRecord{
		SessionID: s.SessionID,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Duration:  s.Duration().Seconds(),
		Score:     s.Score,
		Length:    s.Length,
		Ticks:     s.Ticks,
		Cause:     s.Cause,
	}
}

// SessionLog appends finished sessions to a CSV file. A nil *SessionLog discards writes.
type SessionLog struct {
	file          *os.File
	headerWritten bool
}

// NewSessionLog creates dir and opens sessions.csv inside it.
// Returns nil if dir is empty (export disabled).
func NewSessionLog(dir string) (*SessionLog, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, sessionsFile))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", sessionsFile, err)
	}
	return &SessionLog{file: f}, nil
}

// Write appends one session row.
func (sl *SessionLog) Write(record SessionRecord) error {
	if sl == nil {
		return nil
	}

	records := []SessionRecord{record}
	if !sl.headerWritten {
		if err := gocsv.Marshal(records, sl.file); err != nil {
			return fmt.Errorf("writing session: %w", err)
		}
		sl.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, sl.file); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (sl *SessionLog) Close() error {
	if sl == nil {
		return nil
	}
	return sl.file.Close()
}
