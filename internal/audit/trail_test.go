package audit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sims-cli/internal/models"
)

func TestTrailRecordsEntriesInOrder(t *testing.T) {
	trail := NewTrail(10, nil)

	trail.Record(models.LevelInfo, "System Init", "started")
	trail.Record(models.LevelSuccess, "Add Student", "added")

	entries := trail.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].ID)
	assert.Equal(t, 2, entries[1].ID)
	assert.Equal(t, models.LevelInfo, entries[0].Level)
	assert.Equal(t, "Add Student", entries[1].Operation)
	assert.Equal(t, trail.SessionID(), entries[0].SessionID)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestTrailRefusesSilentlyWhenFull(t *testing.T) {
	trail := NewTrail(2, nil)
	out := &bytes.Buffer{}
	trail.SetOutput(out)

	trail.Record(models.LevelInfo, "op", "one")
	trail.Record(models.LevelInfo, "op", "two")
	trail.Record(models.LevelInfo, "op", "three")

	assert.Equal(t, 2, trail.Len())
	assert.Contains(t, out.String(), "operation trail full")
}

func TestTrailSnapshotIsDetached(t *testing.T) {
	trail := NewTrail(4, nil)
	trail.Record(models.LevelInfo, "op", "one")

	snapshot := trail.Entries()
	snapshot[0].Detail = "mutated"

	assert.Equal(t, "one", trail.Entries()[0].Detail)
}
