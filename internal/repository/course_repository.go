package repository

import (
	"github.com/noah-isme/sims-cli/internal/models"
	appErrors "github.com/noah-isme/sims-cli/pkg/errors"
)

// CourseRepository provides access to the course table.
type CourseRepository struct {
	tables *Tables
}

// Insert assigns the next identifier and appends the course. The table is
// untouched when capacity is already reached.
func (r *CourseRepository) Insert(course models.Course) (models.Course, error) {
	t := r.tables
	if len(t.courses) >= t.cfg.MaxCourses {
		return models.Course{}, appErrors.Clone(appErrors.ErrCapacityExceeded, "maximum course limit reached")
	}
	course.ID = t.cfg.CourseIDOffset + len(t.courses)
	t.courses = append(t.courses, course)
	return course, nil
}

// FindByID returns the course with the given identifier.
func (r *CourseRepository) FindByID(id int) (*models.Course, error) {
	for i := range r.tables.courses {
		if r.tables.courses[i].ID == id {
			course := r.tables.courses[i]
			return &course, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
}

// IncrementEnrollment bumps the seat counter for a course, refusing to go
// past the configured capacity.
func (r *CourseRepository) IncrementEnrollment(id int) (*models.Course, error) {
	for i := range r.tables.courses {
		if r.tables.courses[i].ID != id {
			continue
		}
		if r.tables.courses[i].CurrentEnrollment >= r.tables.courses[i].MaxCapacity {
			return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "course is at maximum capacity")
		}
		r.tables.courses[i].CurrentEnrollment++
		course := r.tables.courses[i]
		return &course, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
}

// List returns all courses in insertion order.
func (r *CourseRepository) List() []models.Course {
	out := make([]models.Course, len(r.tables.courses))
	copy(out, r.tables.courses)
	return out
}

// Count returns the number of stored courses.
func (r *CourseRepository) Count() int {
	return len(r.tables.courses)
}
