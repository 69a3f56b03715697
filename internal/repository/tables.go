package repository

import (
	"github.com/noah-isme/sims-cli/internal/models"
	"github.com/noah-isme/sims-cli/pkg/config"
)

// Tables owns the in-memory record tables for the lifetime of one run.
// Records are only ever appended or field-mutated in place; nothing is
// physically removed.
type Tables struct {
	cfg config.TablesConfig

	students    []models.Student
	courses     []models.Course
	enrollments []models.Enrollment
}

// NewTables allocates the record tables with the configured capacities.
func NewTables(cfg config.TablesConfig) *Tables {
	if cfg.MaxStudents <= 0 {
		cfg.MaxStudents = 500
	}
	if cfg.MaxCourses <= 0 {
		cfg.MaxCourses = 100
	}
	if cfg.MaxEnrollments <= 0 {
		cfg.MaxEnrollments = 5000
	}
	if cfg.StudentIDOffset <= 0 {
		cfg.StudentIDOffset = 1001
	}
	if cfg.CourseIDOffset <= 0 {
		cfg.CourseIDOffset = 5001
	}
	if cfg.EnrollmentIDOffset <= 0 {
		cfg.EnrollmentIDOffset = 7001
	}
	return &Tables{
		cfg:         cfg,
		students:    make([]models.Student, 0, cfg.MaxStudents),
		courses:     make([]models.Course, 0, cfg.MaxCourses),
		enrollments: make([]models.Enrollment, 0, cfg.MaxEnrollments),
	}
}

// Students returns a repository over the student table.
func (t *Tables) Students() *StudentRepository {
	return &StudentRepository{tables: t}
}

// Courses returns a repository over the course table.
func (t *Tables) Courses() *CourseRepository {
	return &CourseRepository{tables: t}
}

// Enrollments returns a repository over the enrollment table.
func (t *Tables) Enrollments() *EnrollmentRepository {
	return &EnrollmentRepository{tables: t}
}
