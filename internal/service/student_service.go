package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sims-cli/internal/models"
	appErrors "github.com/noah-isme/sims-cli/pkg/errors"
)

type studentRepository interface {
	Insert(student models.Student) (models.Student, error)
	FindByID(id int) (*models.Student, error)
	SearchByName(substr string) []models.Student
	List() []models.Student
	Count() int
}

// RegisterStudentRequest describes the student registration payload.
type RegisterStudentRequest struct {
	Name          string `validate:"required"`
	Email         string
	Phone         string
	Address       string
	AdmissionYear int `validate:"required"`
	Major         string
}

// StudentService manages student records.
type StudentService struct {
	repo      studentRepository
	trail     operationRecorder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs StudentService.
func NewStudentService(repo studentRepository, trail operationRecorder, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, trail: trail, validator: validate, logger: logger}
}

// Register creates a student. Malformed email or phone values are advisory
// only: they are recorded as warnings and the record is still created.
func (s *StudentService) Register(req RegisterStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		s.trail.Record(models.LevelError, "Add Student", "invalid registration payload")
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid registration payload")
	}

	if !IsValidEmail(req.Email) {
		s.trail.Record(models.LevelWarning, "Add Student", "invalid email format")
		s.logger.Warn("email format may be invalid", zap.String("email", req.Email))
	}
	if !IsValidPhone(req.Phone) {
		s.trail.Record(models.LevelWarning, "Add Student", "invalid phone format")
		s.logger.Warn("phone format may be invalid", zap.String("phone", req.Phone))
	}

	student, err := s.repo.Insert(models.Student{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		AdmissionYear: req.AdmissionYear,
		Major:         req.Major,
		RegisteredAt:  time.Now().UTC(),
		Active:        true,
	})
	if err != nil {
		s.trail.Record(models.LevelError, "Add Student", "maximum student limit exceeded")
		return nil, err
	}

	s.trail.Record(models.LevelSuccess, "Add Student", fmt.Sprintf("Added student: %s (ID: %d)", student.Name, student.ID))
	s.logger.Info("student registered", zap.Int("id", student.ID), zap.String("name", student.Name))
	return &student, nil
}

// Get returns a single student by identifier.
func (s *StudentService) Get(id int) (*models.Student, error) {
	student, err := s.repo.FindByID(id)
	if err != nil {
		s.trail.Record(models.LevelWarning, "Display Student", "student ID not found")
		return nil, err
	}
	return student, nil
}

// Search returns active students whose name contains the substring.
func (s *StudentService) Search(name string) []models.Student {
	return s.repo.SearchByName(name)
}

// List returns all students in registration order.
func (s *StudentService) List() []models.Student {
	return s.repo.List()
}
