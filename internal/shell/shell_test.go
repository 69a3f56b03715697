package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sims-cli/internal/audit"
	"github.com/noah-isme/sims-cli/internal/models"
	"github.com/noah-isme/sims-cli/internal/repository"
	"github.com/noah-isme/sims-cli/internal/service"
	"github.com/noah-isme/sims-cli/pkg/config"
	"github.com/noah-isme/sims-cli/pkg/storage"
)

func newTestShell(t *testing.T, script string) (*Shell, *bytes.Buffer, *audit.Trail) {
	t.Helper()

	tables := repository.NewTables(config.TablesConfig{
		MaxStudents:        10,
		MaxCourses:         10,
		MaxEnrollments:     10,
		StudentIDOffset:    1001,
		CourseIDOffset:     5001,
		EnrollmentIDOffset: 7001,
	})
	trail := audit.NewTrail(100, nil)
	out := &bytes.Buffer{}
	trail.SetOutput(out)

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	students := tables.Students()
	courses := tables.Courses()
	enrollments := tables.Enrollments()

	studentSvc := service.NewStudentService(students, trail, nil, nil)
	courseSvc := service.NewCourseService(courses, trail, nil, nil)
	enrollmentSvc := service.NewEnrollmentService(enrollments, students, courses, trail, nil, nil)
	analyticsSvc := service.NewAnalyticsService(students, courses, enrollments, trail, nil)
	exportSvc := service.NewExportService(students, courses, enrollments, store, trail, "system_export", nil)

	sh := New(strings.NewReader(script), out, studentSvc, courseSvc, enrollmentSvc, analyticsSvc, exportSvc, trail, nil)
	return sh, out, trail
}

func TestShellFullScenario(t *testing.T) {
	script := strings.Join([]string{
		"1",
		"Ada Lovelace",
		"ada@example.com",
		"012-345-6789",
		"12 Analytical Way",
		"2024",
		"Mathematics",
		"5",
		"CS101",
		"Intro to Computing",
		"Basics of computing",
		"3",
		"30",
		"2.5",
		"8",
		"1001",
		"5001",
		"8",
		"1001",
		"5001",
		"10",
		"7001",
		"95",
		"11",
		"1001",
		"16",
	}, "\n") + "\n"

	sh, out, _ := newTestShell(t, script)
	require.NoError(t, sh.Run())

	body := out.String()
	assert.Contains(t, body, "Student added successfully with ID: 1001")
	assert.Contains(t, body, "Course added successfully with ID: 5001")
	assert.Contains(t, body, "Enrollment ID: 7001")
	// Second attempt on the same pair is refused.
	assert.Contains(t, body, "Error: student is already enrolled in this course")
	assert.Contains(t, body, "Grade: 95.00 (A)")
	assert.Contains(t, body, "GPA Points: 4.00")
	assert.Contains(t, body, "GPA: 4.00")
	assert.Contains(t, body, "System shutting down...")
}

func TestShellInvalidMenuChoices(t *testing.T) {
	sh, out, trail := newTestShell(t, "abc\n99\n16\n")
	require.NoError(t, sh.Run())

	body := out.String()
	assert.Contains(t, body, "Invalid input. Please enter a number.")
	assert.Contains(t, body, "Invalid choice! Please select a valid option (1-16).")

	warnings := 0
	for _, e := range trail.Entries() {
		if e.Level == models.LevelWarning && e.Operation == "Menu" {
			warnings++
		}
	}
	assert.Equal(t, 2, warnings)
}

func TestShellDiscardsMalformedNumericInput(t *testing.T) {
	// A bad student ID aborts the details view; the stray line is consumed
	// and the next menu read proceeds normally.
	sh, out, _ := newTestShell(t, "4\nnot-a-number\n12\n16\n")
	require.NoError(t, sh.Run())

	body := out.String()
	assert.Contains(t, body, "Invalid input. Please enter a number.")
	assert.Contains(t, body, "SYSTEM STATISTICS")
}

func TestShellExportWritesFile(t *testing.T) {
	script := strings.Join([]string{
		"1",
		"Ada",
		"ada@example.com",
		"0123456789",
		"Somewhere",
		"2024",
		"Math",
		"15",
		"",
		"16",
	}, "\n") + "\n"

	sh, out, _ := newTestShell(t, script)
	require.NoError(t, sh.Run())

	assert.Contains(t, out.String(), "Data exported successfully to")
}

func TestShellStartupAndShutdownEntries(t *testing.T) {
	sh, _, trail := newTestShell(t, "16\n")
	require.NoError(t, sh.Run())

	entries := trail.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "System Init", entries[0].Operation)
	assert.Equal(t, "System Shutdown", entries[len(entries)-1].Operation)
}
