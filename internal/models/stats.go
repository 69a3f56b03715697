package models

// StudentGPA summarises one student's completed coursework.
type StudentGPA struct {
	StudentID        int     `json:"student_id"`
	StudentName      string  `json:"student_name"`
	CompletedCourses int     `json:"completed_courses"`
	GPA              float64 `json:"gpa"`
	// HasGPA is false when no enrollment is completed; GPA is then not
	// applicable rather than 0.0.
	HasGPA bool `json:"has_gpa"`
}

// ClassStats aggregates completed grades for one course.
type ClassStats struct {
	CourseID          int     `json:"course_id"`
	CourseCode        string  `json:"course_code"`
	CourseName        string  `json:"course_name"`
	CurrentEnrollment int     `json:"current_enrollment"`
	GradedCount       int     `json:"graded_count"`
	AverageGrade      float64 `json:"average_grade"`
	HighestGrade      float64 `json:"highest_grade"`
	LowestGrade       float64 `json:"lowest_grade"`
	GradeRange        float64 `json:"grade_range"`
}

// SystemStats aggregates counts and averages across all tables.
type SystemStats struct {
	TotalStudents    int `json:"total_students"`
	TotalCourses     int `json:"total_courses"`
	TotalEnrollments int `json:"total_enrollments"`
	TrailEntries     int `json:"trail_entries"`

	AverageGPA float64 `json:"average_gpa"`
	HasAverage bool    `json:"has_average"`

	// AverageEnrollmentRate is the mean fill ratio over courses with a
	// positive capacity.
	AverageEnrollmentRate float64 `json:"average_enrollment_rate"`
	HasEnrollmentRate     bool    `json:"has_enrollment_rate"`
}
