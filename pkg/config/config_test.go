package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)

	assert.Equal(t, 500, cfg.Tables.MaxStudents)
	assert.Equal(t, 100, cfg.Tables.MaxCourses)
	assert.Equal(t, 5000, cfg.Tables.MaxEnrollments)
	assert.Equal(t, 1001, cfg.Tables.StudentIDOffset)
	assert.Equal(t, 5001, cfg.Tables.CourseIDOffset)
	assert.Equal(t, 7001, cfg.Tables.EnrollmentIDOffset)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "./exports", cfg.Export.Dir)
	assert.Equal(t, "system_export", cfg.Export.Basename)
	assert.Equal(t, 10000, cfg.Trail.Capacity)
}

func TestLoadHonoursEnvironment(t *testing.T) {
	t.Setenv("MAX_STUDENTS", "25")
	t.Setenv("EXPORT_DIR", "/tmp/reports")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Tables.MaxStudents)
	assert.Equal(t, "/tmp/reports", cfg.Export.Dir)
}
