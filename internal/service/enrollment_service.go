package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sims-cli/internal/models"
	appErrors "github.com/noah-isme/sims-cli/pkg/errors"
)

type enrollmentRepository interface {
	AtCapacity() bool
	Insert(enrollment models.Enrollment) (models.Enrollment, error)
	FindByID(id int) (*models.Enrollment, error)
	ExistsActivePair(studentID, courseID int) bool
	SetGrade(id int, grade float64, letter string, points float64) (*models.Enrollment, error)
	ListByStudent(studentID int) []models.Enrollment
	Count() int
}

type studentReader interface {
	FindByID(id int) (*models.Student, error)
	FindActiveByID(id int) (*models.Student, error)
}

type courseReader interface {
	FindByID(id int) (*models.Course, error)
	IncrementEnrollment(id int) (*models.Course, error)
}

// EnrollRequest describes an enrollment creation request.
type EnrollRequest struct {
	StudentID int `validate:"required"`
	CourseID  int `validate:"required"`
}

// RecordGradeRequest describes a grade submission.
type RecordGradeRequest struct {
	EnrollmentID int     `validate:"required"`
	Grade        float64 `validate:"min=0,max=100"`
}

// EnrollmentService orchestrates enrollment and grading workflows.
type EnrollmentService struct {
	repo      enrollmentRepository
	students  studentReader
	courses   courseReader
	trail     operationRecorder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEnrollmentService constructs EnrollmentService.
func NewEnrollmentService(repo enrollmentRepository, students studentReader, courses courseReader, trail operationRecorder, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, students: students, courses: courses, trail: trail, validator: validate, logger: logger}
}

// Enroll registers a student into a course. All checks run before any table
// is touched, so a failed attempt leaves no partial mutation behind.
func (s *EnrollmentService) Enroll(req EnrollRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		s.trail.Record(models.LevelError, "Enrollment", "invalid enrollment payload")
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid enrollment payload")
	}
	if s.repo.AtCapacity() {
		s.trail.Record(models.LevelError, "Enrollment", "maximum enrollment limit exceeded")
		return nil, appErrors.Clone(appErrors.ErrCapacityExceeded, "maximum enrollment limit reached")
	}
	student, err := s.students.FindActiveByID(req.StudentID)
	if err != nil {
		s.trail.Record(models.LevelError, "Enrollment", "student not found")
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	course, err := s.courses.FindByID(req.CourseID)
	if err != nil {
		s.trail.Record(models.LevelError, "Enrollment", "course not found")
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	if course.CurrentEnrollment >= course.MaxCapacity {
		s.trail.Record(models.LevelError, "Enrollment", "course at maximum capacity")
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "course is at maximum capacity")
	}
	if s.repo.ExistsActivePair(req.StudentID, req.CourseID) {
		s.trail.Record(models.LevelWarning, "Enrollment", "duplicate enrollment attempt")
		return nil, appErrors.Clone(appErrors.ErrConflict, "student is already enrolled in this course")
	}

	enrollment, err := s.repo.Insert(models.Enrollment{
		StudentID:   req.StudentID,
		CourseID:    req.CourseID,
		Grade:       0,
		LetterGrade: models.UngradedLetter,
		GradePoints: 0,
		Status:      models.EnrollmentStatusPending,
		EnrolledAt:  time.Now().UTC(),
	})
	if err != nil {
		s.trail.Record(models.LevelError, "Enrollment", "maximum enrollment limit exceeded")
		return nil, err
	}
	if _, err := s.courses.IncrementEnrollment(req.CourseID); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update course roster")
	}

	s.trail.Record(models.LevelSuccess, "Enrollment", fmt.Sprintf("Enrolled student %d in course %d", student.ID, course.ID))
	s.logger.Info("student enrolled", zap.Int("enrollment_id", enrollment.ID), zap.Int("student_id", student.ID), zap.Int("course_id", course.ID))
	return &enrollment, nil
}

// RecordGrade sets the numeric grade, derives letter grade and grade points
// and marks the enrollment completed.
func (s *EnrollmentService) RecordGrade(req RecordGradeRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		s.trail.Record(models.LevelError, "Record Grade", "invalid grade value")
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "grade must be between 0 and 100")
	}
	if _, err := s.repo.FindByID(req.EnrollmentID); err != nil {
		s.trail.Record(models.LevelError, "Record Grade", "enrollment not found")
		return nil, err
	}

	letter := LetterGrade(req.Grade)
	enrollment, err := s.repo.SetGrade(req.EnrollmentID, req.Grade, letter, GradePoints(letter))
	if err != nil {
		return nil, err
	}

	s.trail.Record(models.LevelSuccess, "Record Grade", fmt.Sprintf("Recorded grade %.2f for enrollment %d", req.Grade, req.EnrollmentID))
	s.logger.Info("grade recorded", zap.Int("enrollment_id", enrollment.ID), zap.Float64("grade", enrollment.Grade), zap.String("letter", enrollment.LetterGrade))
	return enrollment, nil
}

// StudentEnrollments returns a student's enrollments joined with course
// context for display.
func (s *EnrollmentService) StudentEnrollments(studentID int) ([]models.EnrollmentDetail, error) {
	if _, err := s.students.FindByID(studentID); err != nil {
		s.trail.Record(models.LevelWarning, "View Enrollments", "student not found")
		return nil, err
	}

	enrollments := s.repo.ListByStudent(studentID)
	details := make([]models.EnrollmentDetail, 0, len(enrollments))
	for _, e := range enrollments {
		detail := models.EnrollmentDetail{Enrollment: e, CourseCode: "Unknown", CourseName: "Unknown"}
		if course, err := s.courses.FindByID(e.CourseID); err == nil {
			detail.CourseCode = course.Code
			detail.CourseName = course.Name
			detail.Credits = course.Credits
		}
		details = append(details, detail)
	}
	return details, nil
}
