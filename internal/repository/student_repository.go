package repository

import (
	"strings"

	"github.com/noah-isme/sims-cli/internal/models"
	appErrors "github.com/noah-isme/sims-cli/pkg/errors"
)

// StudentRepository provides access to the student table.
type StudentRepository struct {
	tables *Tables
}

// Insert assigns the next identifier and appends the student. The table is
// untouched when capacity is already reached.
func (r *StudentRepository) Insert(student models.Student) (models.Student, error) {
	t := r.tables
	if len(t.students) >= t.cfg.MaxStudents {
		return models.Student{}, appErrors.Clone(appErrors.ErrCapacityExceeded, "maximum student limit reached")
	}
	student.ID = t.cfg.StudentIDOffset + len(t.students)
	t.students = append(t.students, student)
	return student, nil
}

// FindByID returns the student with the given identifier.
func (r *StudentRepository) FindByID(id int) (*models.Student, error) {
	for i := range r.tables.students {
		if r.tables.students[i].ID == id {
			student := r.tables.students[i]
			return &student, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
}

// FindActiveByID returns the student only when the active flag is set.
func (r *StudentRepository) FindActiveByID(id int) (*models.Student, error) {
	student, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !student.Active {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return student, nil
}

// SearchByName returns active students whose name contains the given
// substring, case-insensitively.
func (r *StudentRepository) SearchByName(substr string) []models.Student {
	needle := strings.ToLower(substr)
	matches := make([]models.Student, 0)
	for _, student := range r.tables.students {
		if student.Active && strings.Contains(strings.ToLower(student.Name), needle) {
			matches = append(matches, student)
		}
	}
	return matches
}

// List returns all students in insertion order.
func (r *StudentRepository) List() []models.Student {
	out := make([]models.Student, len(r.tables.students))
	copy(out, r.tables.students)
	return out
}

// Count returns the number of stored students.
func (r *StudentRepository) Count() int {
	return len(r.tables.students)
}
