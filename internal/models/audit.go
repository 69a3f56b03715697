package models

import "time"

// OperationLevel classifies an operation trail entry.
type OperationLevel string

// Trail entry levels.
const (
	LevelInfo    OperationLevel = "INFO"
	LevelWarning OperationLevel = "WARNING"
	LevelError   OperationLevel = "ERROR"
	LevelSuccess OperationLevel = "SUCCESS"
)

// OperationEntry is one record of the append-only operation trail.
type OperationEntry struct {
	ID        int            `json:"id"`
	Level     OperationLevel `json:"level"`
	Timestamp time.Time      `json:"timestamp"`
	SessionID string         `json:"session_id"`
	Operation string         `json:"operation"`
	Detail    string         `json:"detail"`
}
