package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sims-cli/internal/models"
	appErrors "github.com/noah-isme/sims-cli/pkg/errors"
	"github.com/noah-isme/sims-cli/pkg/export"
)

type studentsSource interface {
	List() []models.Student
}

type coursesSource interface {
	List() []models.Course
}

type enrollmentsSource interface {
	List() []models.Enrollment
}

type reportStorage interface {
	Save(filename string, data []byte) (string, error)
}

type reportRenderer interface {
	Render(r export.Report) ([]byte, error)
}

type sessionTrail interface {
	operationRecorder
	SessionID() string
}

// ExportService serialises the record tables into a one-shot report file.
type ExportService struct {
	students    studentsSource
	courses     coursesSource
	enrollments enrollmentsSource
	storage     reportStorage
	renderers   map[export.Format]reportRenderer
	trail       sessionTrail
	logger      *zap.Logger
	basename    string
}

// NewExportService constructs an ExportService.
func NewExportService(students studentsSource, courses coursesSource, enrollments enrollmentsSource, storage reportStorage, trail sessionTrail, basename string, logger *zap.Logger) *ExportService {
	if basename == "" {
		basename = "system_export"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		students:    students,
		courses:     courses,
		enrollments: enrollments,
		storage:     storage,
		renderers: map[export.Format]reportRenderer{
			export.FormatText: export.NewTextExporter(),
			export.FormatCSV:  export.NewCSVExporter(),
			export.FormatPDF:  export.NewPDFExporter(),
		},
		trail:    trail,
		logger:   logger,
		basename: basename,
	}
}

// Generate renders the current table contents in the requested format and
// writes the report, replacing any previous one at the same destination.
func (s *ExportService) Generate(format export.Format) (string, error) {
	renderer, ok := s.renderers[format]
	if !ok {
		s.trail.Record(models.LevelError, "Export Data", fmt.Sprintf("unsupported format %q", format))
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	payload, err := renderer.Render(s.buildReport())
	if err != nil {
		s.trail.Record(models.LevelError, "Export Data", "failed to render export")
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to render export")
	}

	path, err := s.storage.Save(s.basename+format.Ext(), payload)
	if err != nil {
		s.trail.Record(models.LevelError, "Export Data", "failed to create export file")
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "could not create export file")
	}

	s.trail.Record(models.LevelSuccess, "Export Data", fmt.Sprintf("Data exported to %s", path))
	s.logger.Info("data exported", zap.String("path", path), zap.String("format", string(format)))
	return path, nil
}

func (s *ExportService) buildReport() export.Report {
	students := s.students.List()
	studentRows := make([]map[string]string, 0, len(students))
	for _, st := range students {
		studentRows = append(studentRows, map[string]string{
			"ID":    fmt.Sprintf("%d", st.ID),
			"Name":  st.Name,
			"Email": st.Email,
			"Phone": st.Phone,
			"Major": st.Major,
		})
	}

	courses := s.courses.List()
	courseRows := make([]map[string]string, 0, len(courses))
	for _, c := range courses {
		courseRows = append(courseRows, map[string]string{
			"ID":       fmt.Sprintf("%d", c.ID),
			"Code":     c.Code,
			"Name":     c.Name,
			"Credits":  fmt.Sprintf("%d", c.Credits),
			"Enrolled": fmt.Sprintf("%d/%d", c.CurrentEnrollment, c.MaxCapacity),
		})
	}

	enrollments := s.enrollments.List()
	enrollmentRows := make([]map[string]string, 0, len(enrollments))
	for _, e := range enrollments {
		enrollmentRows = append(enrollmentRows, map[string]string{
			"ID":      fmt.Sprintf("%d", e.ID),
			"Student": fmt.Sprintf("%d", e.StudentID),
			"Course":  fmt.Sprintf("%d", e.CourseID),
			"Grade":   fmt.Sprintf("%.2f", e.Grade),
			"Status":  e.Status.Label(),
		})
	}

	return export.Report{
		Title:       "System Data Export",
		SessionID:   s.trail.SessionID(),
		GeneratedAt: time.Now(),
		Sections: []export.Section{
			{Title: "Students", Headers: []string{"ID", "Name", "Email", "Phone", "Major"}, Rows: studentRows},
			{Title: "Courses", Headers: []string{"ID", "Code", "Name", "Credits", "Enrolled"}, Rows: courseRows},
			{Title: "Enrollments", Headers: []string{"ID", "Student", "Course", "Grade", "Status"}, Rows: enrollmentRows},
		},
	}
}
