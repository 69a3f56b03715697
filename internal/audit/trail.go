package audit

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/sims-cli/internal/models"
)

// Trail is the capacity-bounded, append-only record of every domain
// operation performed during one run. Entries are never mutated or removed.
type Trail struct {
	capacity  int
	sessionID string
	entries   []models.OperationEntry
	logger    *zap.Logger
	out       io.Writer
	now       func() time.Time
}

// NewTrail builds a trail for a fresh session.
func NewTrail(capacity int, logger *zap.Logger) *Trail {
	if capacity <= 0 {
		capacity = 10000
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Trail{
		capacity:  capacity,
		sessionID: uuid.NewString(),
		entries:   make([]models.OperationEntry, 0, capacity),
		logger:    logger,
		out:       os.Stdout,
		now:       time.Now,
	}
}

// SetOutput redirects the buffer-full console warning.
func (t *Trail) SetOutput(w io.Writer) {
	if w != nil {
		t.out = w
	}
}

// SessionID returns the identifier stamped on every entry of this run.
func (t *Trail) SessionID() string {
	return t.sessionID
}

// Record appends one entry. Once the trail is full further entries are
// refused without signalling the caller; a console warning is printed
// instead.
func (t *Trail) Record(level models.OperationLevel, operation, detail string) {
	if len(t.entries) >= t.capacity {
		fmt.Fprintln(t.out, "Warning: operation trail full")
		t.logger.Warn("operation trail full", zap.Int("capacity", t.capacity))
		return
	}
	t.entries = append(t.entries, models.OperationEntry{
		ID:        len(t.entries) + 1,
		Level:     level,
		Timestamp: t.now().UTC(),
		SessionID: t.sessionID,
		Operation: operation,
		Detail:    detail,
	})
}

// Entries returns a snapshot of the trail in insertion order.
func (t *Trail) Entries() []models.OperationEntry {
	out := make([]models.OperationEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of recorded entries.
func (t *Trail) Len() int {
	return len(t.entries)
}
