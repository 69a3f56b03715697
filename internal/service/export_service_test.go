package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sims-cli/internal/models"
	appErrors "github.com/noah-isme/sims-cli/pkg/errors"
	"github.com/noah-isme/sims-cli/pkg/export"
)

type mockStorage struct {
	saved map[string][]byte
	err   error
}

func (m *mockStorage) Save(filename string, data []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.saved == nil {
		m.saved = make(map[string][]byte)
	}
	m.saved[filename] = data
	return "/exports/" + filename, nil
}

func newExportFixture(t *testing.T) (*enrollmentFixture, *mockStorage, *ExportService) {
	t.Helper()
	f := newEnrollmentFixture(t, 10)
	store := &mockStorage{}
	svc := NewExportService(f.tables.Students(), f.tables.Courses(), f.tables.Enrollments(), store, f.trail, "system_export", nil)
	return f, store, svc
}

func TestExportTextMatchesTableCounts(t *testing.T) {
	f, store, svc := newExportFixture(t)

	ada := f.registerStudent(t, "Ada")
	grace := f.registerStudent(t, "Grace")
	course := f.registerCourse(t, "CS101", 5)
	_, err := f.enrollments.Enroll(EnrollRequest{StudentID: ada.ID, CourseID: course.ID})
	require.NoError(t, err)
	_, err = f.enrollments.Enroll(EnrollRequest{StudentID: grace.ID, CourseID: course.ID})
	require.NoError(t, err)

	path, err := svc.Generate(export.FormatText)
	require.NoError(t, err)
	assert.Equal(t, "/exports/system_export.txt", path)

	body := string(store.saved["system_export.txt"])
	assert.Contains(t, body, "============ STUDENTS ============")
	assert.Contains(t, body, "Total Students: 2")
	assert.Contains(t, body, "Total Courses: 1")
	assert.Contains(t, body, "Total Enrollments: 2")
	assert.Contains(t, body, fmt.Sprintf("ID: %d | Name: Ada", ada.ID))
	assert.Contains(t, body, "========== END OF EXPORT ==========")

	// One data line per record in each section.
	assert.Equal(t, 2, strings.Count(body, "| Major: "))
	assert.Equal(t, 1, strings.Count(body, "| Enrolled: "))
	assert.Equal(t, 2, strings.Count(body, "| Status: "))
}

func TestExportCSVAndPDF(t *testing.T) {
	f, store, svc := newExportFixture(t)
	f.registerStudent(t, "Ada")

	_, err := svc.Generate(export.FormatCSV)
	require.NoError(t, err)
	csvBody := string(store.saved["system_export.csv"])
	assert.Contains(t, csvBody, "Students,count=1")
	assert.Contains(t, csvBody, "ID,Name,Email,Phone,Major")

	_, err = svc.Generate(export.FormatPDF)
	require.NoError(t, err)
	assert.NotEmpty(t, store.saved["system_export.pdf"])
}

func TestExportOverwritesPreviousReport(t *testing.T) {
	f, store, svc := newExportFixture(t)

	f.registerStudent(t, "Ada")
	_, err := svc.Generate(export.FormatText)
	require.NoError(t, err)
	first := store.saved["system_export.txt"]

	f.registerStudent(t, "Grace")
	_, err = svc.Generate(export.FormatText)
	require.NoError(t, err)
	second := store.saved["system_export.txt"]

	assert.NotEqual(t, string(first), string(second))
	assert.Contains(t, string(second), "Total Students: 2")
}

func TestExportStorageFailureIsLogged(t *testing.T) {
	f, store, svc := newExportFixture(t)
	store.err = fmt.Errorf("disk full")

	_, err := svc.Generate(export.FormatText)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrInternal))

	errors := entriesWithLevel(f.trail, models.LevelError)
	require.NotEmpty(t, errors)
	assert.Equal(t, "Export Data", errors[len(errors)-1].Operation)
}

func TestExportUnsupportedFormat(t *testing.T) {
	_, _, svc := newExportFixture(t)

	_, err := svc.Generate(export.Format("xml"))
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}
