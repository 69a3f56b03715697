package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sims-cli/internal/models"
	appErrors "github.com/noah-isme/sims-cli/pkg/errors"
)

type courseRepository interface {
	Insert(course models.Course) (models.Course, error)
	FindByID(id int) (*models.Course, error)
	List() []models.Course
	Count() int
}

// RegisterCourseRequest describes the course creation payload.
type RegisterCourseRequest struct {
	Code        string `validate:"required"`
	Name        string `validate:"required"`
	Description string
	Credits     int     `validate:"min=0"`
	MaxCapacity int     `validate:"min=0"`
	Difficulty  float64 `validate:"min=0,max=5"`
}

// CourseService manages course records.
type CourseService struct {
	repo      courseRepository
	trail     operationRecorder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs CourseService.
func NewCourseService(repo courseRepository, trail operationRecorder, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, trail: trail, validator: validate, logger: logger}
}

// Register creates a course with an empty roster.
func (s *CourseService) Register(req RegisterCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		s.trail.Record(models.LevelError, "Add Course", "invalid course payload")
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid course payload")
	}

	course, err := s.repo.Insert(models.Course{
		Code:              req.Code,
		Name:              req.Name,
		Description:       req.Description,
		Credits:           req.Credits,
		MaxCapacity:       req.MaxCapacity,
		CurrentEnrollment: 0,
		Difficulty:        req.Difficulty,
		CreatedAt:         time.Now().UTC(),
	})
	if err != nil {
		s.trail.Record(models.LevelError, "Add Course", "maximum course limit exceeded")
		return nil, err
	}

	s.trail.Record(models.LevelSuccess, "Add Course", fmt.Sprintf("Added course: %s (%s)", course.Name, course.Code))
	s.logger.Info("course registered", zap.Int("id", course.ID), zap.String("code", course.Code))
	return &course, nil
}

// Get returns a single course by identifier.
func (s *CourseService) Get(id int) (*models.Course, error) {
	course, err := s.repo.FindByID(id)
	if err != nil {
		s.trail.Record(models.LevelWarning, "Display Course", "course ID not found")
		return nil, err
	}
	return course, nil
}

// List returns all courses in creation order.
func (s *CourseService) List() []models.Course {
	return s.repo.List()
}
