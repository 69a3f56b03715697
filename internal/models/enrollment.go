package models

import "time"

// EnrollmentStatus represents the lifecycle of an enrollment.
type EnrollmentStatus string

// Possible enrollment statuses.
const (
	EnrollmentStatusPending   EnrollmentStatus = "PENDING"
	EnrollmentStatusActive    EnrollmentStatus = "ACTIVE"
	EnrollmentStatusCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentStatusDropped   EnrollmentStatus = "DROPPED"
)

// Label returns the display word for a status.
func (s EnrollmentStatus) Label() string {
	switch s {
	case EnrollmentStatusActive:
		return "Active"
	case EnrollmentStatusCompleted:
		return "Completed"
	case EnrollmentStatusDropped:
		return "Dropped"
	default:
		return "Pending"
	}
}

// UngradedLetter is the letter placeholder before a grade is recorded.
const UngradedLetter = "-"

// Enrollment links one student to one course and carries grading state.
type Enrollment struct {
	ID          int              `json:"id"`
	StudentID   int              `json:"student_id"`
	CourseID    int              `json:"course_id"`
	Grade       float64          `json:"grade"`
	LetterGrade string           `json:"letter_grade"`
	GradePoints float64          `json:"grade_points"`
	Status      EnrollmentStatus `json:"status"`
	EnrolledAt  time.Time        `json:"enrolled_at"`
}

// EnrollmentDetail enriches Enrollment with course context for display.
type EnrollmentDetail struct {
	Enrollment
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
	Credits    int    `json:"credits"`
}
