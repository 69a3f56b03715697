package repository

import (
	"github.com/noah-isme/sims-cli/internal/models"
	appErrors "github.com/noah-isme/sims-cli/pkg/errors"
)

// EnrollmentRepository provides access to the enrollment table.
type EnrollmentRepository struct {
	tables *Tables
}

// Insert assigns the next identifier and appends the enrollment. The table
// is untouched when capacity is already reached.
func (r *EnrollmentRepository) Insert(enrollment models.Enrollment) (models.Enrollment, error) {
	t := r.tables
	if len(t.enrollments) >= t.cfg.MaxEnrollments {
		return models.Enrollment{}, appErrors.Clone(appErrors.ErrCapacityExceeded, "maximum enrollment limit reached")
	}
	enrollment.ID = t.cfg.EnrollmentIDOffset + len(t.enrollments)
	t.enrollments = append(t.enrollments, enrollment)
	return enrollment, nil
}

// AtCapacity reports whether the enrollment table can take no more records.
func (r *EnrollmentRepository) AtCapacity() bool {
	return len(r.tables.enrollments) >= r.tables.cfg.MaxEnrollments
}

// FindByID returns the enrollment with the given identifier.
func (r *EnrollmentRepository) FindByID(id int) (*models.Enrollment, error) {
	for i := range r.tables.enrollments {
		if r.tables.enrollments[i].ID == id {
			enrollment := r.tables.enrollments[i]
			return &enrollment, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "enrollment not found")
}

// ExistsActivePair reports whether a non-dropped enrollment already links
// the student and course.
func (r *EnrollmentRepository) ExistsActivePair(studentID, courseID int) bool {
	for _, e := range r.tables.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID && e.Status != models.EnrollmentStatusDropped {
			return true
		}
	}
	return false
}

// SetGrade records grading state on the enrollment in place and marks it
// completed, returning the updated record.
func (r *EnrollmentRepository) SetGrade(id int, grade float64, letter string, points float64) (*models.Enrollment, error) {
	for i := range r.tables.enrollments {
		if r.tables.enrollments[i].ID != id {
			continue
		}
		r.tables.enrollments[i].Grade = grade
		r.tables.enrollments[i].LetterGrade = letter
		r.tables.enrollments[i].GradePoints = points
		r.tables.enrollments[i].Status = models.EnrollmentStatusCompleted
		enrollment := r.tables.enrollments[i]
		return &enrollment, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "enrollment not found")
}

// ListByStudent returns all enrollments for one student in insertion order.
func (r *EnrollmentRepository) ListByStudent(studentID int) []models.Enrollment {
	out := make([]models.Enrollment, 0)
	for _, e := range r.tables.enrollments {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out
}

// ListByCourse returns all enrollments for one course in insertion order.
func (r *EnrollmentRepository) ListByCourse(courseID int) []models.Enrollment {
	out := make([]models.Enrollment, 0)
	for _, e := range r.tables.enrollments {
		if e.CourseID == courseID {
			out = append(out, e)
		}
	}
	return out
}

// List returns all enrollments in insertion order.
func (r *EnrollmentRepository) List() []models.Enrollment {
	out := make([]models.Enrollment, len(r.tables.enrollments))
	copy(out, r.tables.enrollments)
	return out
}

// Count returns the number of stored enrollments.
func (r *EnrollmentRepository) Count() int {
	return len(r.tables.enrollments)
}
