package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/sims-cli/internal/models"
)

type enrollmentLister interface {
	List() []models.Enrollment
	ListByStudent(studentID int) []models.Enrollment
	ListByCourse(courseID int) []models.Enrollment
	Count() int
}

type courseLister interface {
	FindByID(id int) (*models.Course, error)
	List() []models.Course
	Count() int
}

type studentCounter interface {
	FindByID(id int) (*models.Student, error)
	Count() int
}

type trailReader interface {
	operationRecorder
	Len() int
}

// AnalyticsService derives GPA, class and system statistics from the
// record tables.
type AnalyticsService struct {
	students    studentCounter
	courses     courseLister
	enrollments enrollmentLister
	trail       trailReader
	logger      *zap.Logger
}

// NewAnalyticsService constructs an analytics service.
func NewAnalyticsService(students studentCounter, courses courseLister, enrollments enrollmentLister, trail trailReader, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{students: students, courses: courses, enrollments: enrollments, trail: trail, logger: logger}
}

// StudentGPA averages grade points over the student's completed
// enrollments. Pending and active enrollments do not contribute.
func (s *AnalyticsService) StudentGPA(studentID int) (*models.StudentGPA, error) {
	student, err := s.students.FindByID(studentID)
	if err != nil {
		s.trail.Record(models.LevelWarning, "Student GPA", "student not found")
		return nil, err
	}

	total := 0.0
	completed := 0
	for _, e := range s.enrollments.ListByStudent(studentID) {
		if e.Status == models.EnrollmentStatusCompleted {
			total += e.GradePoints
			completed++
		}
	}

	result := &models.StudentGPA{
		StudentID:        student.ID,
		StudentName:      student.Name,
		CompletedCourses: completed,
	}
	if completed > 0 {
		result.GPA = total / float64(completed)
		result.HasGPA = true
	}

	s.trail.Record(models.LevelInfo, "Student GPA", fmt.Sprintf("Computed GPA for student %d", student.ID))
	return result, nil
}

// ClassStats aggregates completed grades for one course.
func (s *AnalyticsService) ClassStats(courseID int) (*models.ClassStats, error) {
	course, err := s.courses.FindByID(courseID)
	if err != nil {
		s.trail.Record(models.LevelWarning, "Class Statistics", "course not found")
		return nil, err
	}

	stats := &models.ClassStats{
		CourseID:          course.ID,
		CourseCode:        course.Code,
		CourseName:        course.Name,
		CurrentEnrollment: course.CurrentEnrollment,
	}

	total := 0.0
	for _, e := range s.enrollments.ListByCourse(courseID) {
		if e.Status != models.EnrollmentStatusCompleted {
			continue
		}
		if stats.GradedCount == 0 {
			stats.HighestGrade = e.Grade
			stats.LowestGrade = e.Grade
		} else {
			if e.Grade > stats.HighestGrade {
				stats.HighestGrade = e.Grade
			}
			if e.Grade < stats.LowestGrade {
				stats.LowestGrade = e.Grade
			}
		}
		total += e.Grade
		stats.GradedCount++
	}
	if stats.GradedCount > 0 {
		stats.AverageGrade = total / float64(stats.GradedCount)
		stats.GradeRange = stats.HighestGrade - stats.LowestGrade
	}

	s.trail.Record(models.LevelInfo, "Class Statistics", fmt.Sprintf("Computed class statistics for course %d", course.ID))
	return stats, nil
}

// SystemStats aggregates table counts and system-wide averages.
func (s *AnalyticsService) SystemStats() *models.SystemStats {
	stats := &models.SystemStats{
		TotalStudents:    s.students.Count(),
		TotalCourses:     s.courses.Count(),
		TotalEnrollments: s.enrollments.Count(),
		TrailEntries:     s.trail.Len(),
	}

	totalPoints := 0.0
	completed := 0
	for _, e := range s.enrollments.List() {
		if e.Status == models.EnrollmentStatusCompleted {
			totalPoints += e.GradePoints
			completed++
		}
	}
	if completed > 0 {
		stats.AverageGPA = totalPoints / float64(completed)
		stats.HasAverage = true
	}

	// Courses with zero capacity are excluded from the rate average to
	// avoid dividing by zero.
	totalRate := 0.0
	rated := 0
	for _, c := range s.courses.List() {
		if c.MaxCapacity <= 0 {
			continue
		}
		totalRate += c.EnrollmentRate()
		rated++
	}
	if rated > 0 {
		stats.AverageEnrollmentRate = totalRate / float64(rated)
		stats.HasEnrollmentRate = true
	}

	s.trail.Record(models.LevelInfo, "System Statistics", "Computed system statistics")
	return stats
}
