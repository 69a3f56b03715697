package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/sims-cli/internal/audit"
	"github.com/noah-isme/sims-cli/internal/models"
	"github.com/noah-isme/sims-cli/internal/service"
	appErrors "github.com/noah-isme/sims-cli/pkg/errors"
	"github.com/noah-isme/sims-cli/pkg/export"
)

const timeLayout = "2006-01-02 15:04:05"

var errInvalidNumber = errors.New("invalid numeric input")

// Shell drives the numbered menu over a line-oriented input stream and
// dispatches to the domain services.
type Shell struct {
	in          *bufio.Reader
	out         io.Writer
	students    *service.StudentService
	courses     *service.CourseService
	enrollments *service.EnrollmentService
	analytics   *service.AnalyticsService
	exports     *service.ExportService
	trail       *audit.Trail
	logger      *zap.Logger
}

// New constructs a Shell reading from in and writing to out.
func New(in io.Reader, out io.Writer, students *service.StudentService, courses *service.CourseService, enrollments *service.EnrollmentService, analytics *service.AnalyticsService, exports *service.ExportService, trail *audit.Trail, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		in:          bufio.NewReader(in),
		out:         out,
		students:    students,
		courses:     courses,
		enrollments: enrollments,
		analytics:   analytics,
		exports:     exports,
		trail:       trail,
		logger:      logger,
	}
}

// Run loops over the menu until the exit choice is received or the input
// stream ends.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "**** INITIALIZING STUDENT MANAGEMENT SYSTEM ****")
	s.trail.Record(models.LevelInfo, "System Init", "system started successfully")
	fmt.Fprintln(s.out, "**** READY ****")

	for {
		s.printMenu()
		line, err := s.readLine()
		if err != nil {
			return err
		}
		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter a number.")
			s.trail.Record(models.LevelWarning, "Menu", "invalid input received")
			continue
		}

		switch choice {
		case 1:
			s.addStudent()
		case 2:
			s.listStudents()
		case 3:
			s.searchStudents()
		case 4:
			s.studentDetails()
		case 5:
			s.addCourse()
		case 6:
			s.listCourses()
		case 7:
			s.courseDetails()
		case 8:
			s.enroll()
		case 9:
			s.studentEnrollments()
		case 10:
			s.recordGrade()
		case 11:
			s.studentGPA()
		case 12:
			s.systemStats()
		case 13:
			s.classStats()
		case 14:
			s.showTrail()
		case 15:
			s.exportData()
		case 16:
			fmt.Fprintln(s.out)
			s.separator('=', 70)
			fmt.Fprintln(s.out, "Thank you for using Student Management System!")
			fmt.Fprintln(s.out, "System shutting down...")
			s.trail.Record(models.LevelInfo, "System Shutdown", "system exited normally")
			s.separator('=', 70)
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice! Please select a valid option (1-16).")
			s.trail.Record(models.LevelWarning, "Menu", "invalid choice selected")
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	s.separator('=', 70)
	fmt.Fprintln(s.out, "       STUDENT MANAGEMENT AND ANALYTICS SYSTEM")
	s.separator('=', 70)
	fmt.Fprintln(s.out, "1.  Add Student")
	fmt.Fprintln(s.out, "2.  Display All Students")
	fmt.Fprintln(s.out, "3.  Search Student by Name")
	fmt.Fprintln(s.out, "4.  View Student Details")
	fmt.Fprintln(s.out, "5.  Add Course")
	fmt.Fprintln(s.out, "6.  Display All Courses")
	fmt.Fprintln(s.out, "7.  View Course Details")
	fmt.Fprintln(s.out, "8.  Enroll Student in Course")
	fmt.Fprintln(s.out, "9.  View Student Enrollments")
	fmt.Fprintln(s.out, "10. Record Grade")
	fmt.Fprintln(s.out, "11. Calculate Student GPA")
	fmt.Fprintln(s.out, "12. Display System Statistics")
	fmt.Fprintln(s.out, "13. Generate Class Statistics")
	fmt.Fprintln(s.out, "14. Display Operation Trail")
	fmt.Fprintln(s.out, "15. Export Data to File")
	fmt.Fprintln(s.out, "16. Exit System")
	fmt.Fprint(s.out, "Enter your choice (1-16): ")
}

func (s *Shell) addStudent() {
	s.banner("ADD NEW STUDENT", 60)

	name, err := s.promptString("Enter student name")
	if err != nil {
		return
	}
	email, err := s.promptString("Enter email address")
	if err != nil {
		return
	}
	phone, err := s.promptString("Enter phone number")
	if err != nil {
		return
	}
	address, err := s.promptString("Enter address")
	if err != nil {
		return
	}
	year, err := s.promptInt("Enter admission year")
	if err != nil {
		s.inputError("Add Student", err)
		return
	}
	major, err := s.promptString("Enter major")
	if err != nil {
		return
	}

	student, err := s.students.Register(service.RegisterStudentRequest{
		Name:          name,
		Email:         email,
		Phone:         phone,
		Address:       address,
		AdmissionYear: year,
		Major:         major,
	})
	if err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintf(s.out, "\nStudent added successfully with ID: %d\n", student.ID)
}

func (s *Shell) listStudents() {
	students := s.students.List()
	if len(students) == 0 {
		fmt.Fprintln(s.out, "No students in the system.")
		return
	}

	fmt.Fprintln(s.out)
	s.separator('=', 100)
	fmt.Fprintf(s.out, "%-6s %-25s %-30s %-15s %-10s\n", "ID", "Name", "Email", "Phone", "Major")
	s.separator('=', 100)
	active := 0
	for _, st := range students {
		if !st.Active {
			continue
		}
		fmt.Fprintf(s.out, "%-6d %-25s %-30s %-15s %-10s\n", st.ID, st.Name, st.Email, st.Phone, st.Major)
		active++
	}
	s.separator('=', 100)
	fmt.Fprintf(s.out, "Total Active Students: %d\n", active)
}

func (s *Shell) searchStudents() {
	name, err := s.promptString("Enter student name to search")
	if err != nil {
		return
	}

	matches := s.students.Search(name)
	if len(matches) == 0 {
		fmt.Fprintf(s.out, "No students found matching %q\n", name)
		return
	}

	fmt.Fprintln(s.out)
	s.separator('=', 100)
	fmt.Fprintf(s.out, "%-6s %-25s %-30s %-15s %-10s\n", "ID", "Name", "Email", "Phone", "Major")
	s.separator('=', 100)
	for _, st := range matches {
		fmt.Fprintf(s.out, "%-6d %-25s %-30s %-15s %-10s\n", st.ID, st.Name, st.Email, st.Phone, st.Major)
	}
	s.separator('=', 100)
	fmt.Fprintf(s.out, "Found %d student(s)\n", len(matches))
}

func (s *Shell) studentDetails() {
	id, err := s.promptInt("Enter student ID")
	if err != nil {
		s.inputError("Display Student", err)
		return
	}

	student, err := s.students.Get(id)
	if err != nil {
		fmt.Fprintln(s.out, "Student not found.")
		return
	}

	status := "Inactive"
	if student.Active {
		status = "Active"
	}
	s.banner("STUDENT DETAILS", 60)
	fmt.Fprintf(s.out, "Student ID:      %d\n", student.ID)
	fmt.Fprintf(s.out, "Name:            %s\n", student.Name)
	fmt.Fprintf(s.out, "Email:           %s\n", student.Email)
	fmt.Fprintf(s.out, "Phone:           %s\n", student.Phone)
	fmt.Fprintf(s.out, "Address:         %s\n", student.Address)
	fmt.Fprintf(s.out, "Admission Year:  %d\n", student.AdmissionYear)
	fmt.Fprintf(s.out, "Major:           %s\n", student.Major)
	fmt.Fprintf(s.out, "Status:          %s\n", status)
	fmt.Fprintf(s.out, "Registration:    %s\n", student.RegisteredAt.Format(timeLayout))
	s.separator('=', 60)
}

func (s *Shell) addCourse() {
	s.banner("ADD NEW COURSE", 60)

	code, err := s.promptString("Enter course code (e.g., CS101)")
	if err != nil {
		return
	}
	name, err := s.promptString("Enter course name")
	if err != nil {
		return
	}
	description, err := s.promptString("Enter course description")
	if err != nil {
		return
	}
	credits, err := s.promptInt("Enter course credits")
	if err != nil {
		s.inputError("Add Course", err)
		return
	}
	capacity, err := s.promptInt("Enter maximum capacity")
	if err != nil {
		s.inputError("Add Course", err)
		return
	}
	difficulty, err := s.promptFloat("Enter difficulty level (1.0 - 5.0)")
	if err != nil {
		s.inputError("Add Course", err)
		return
	}

	course, err := s.courses.Register(service.RegisterCourseRequest{
		Code:        code,
		Name:        name,
		Description: description,
		Credits:     credits,
		MaxCapacity: capacity,
		Difficulty:  difficulty,
	})
	if err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintf(s.out, "\nCourse added successfully with ID: %d\n", course.ID)
}

func (s *Shell) listCourses() {
	courses := s.courses.List()
	if len(courses) == 0 {
		fmt.Fprintln(s.out, "No courses in the system.")
		return
	}

	fmt.Fprintln(s.out)
	s.separator('=', 120)
	fmt.Fprintf(s.out, "%-6s %-10s %-25s %-8s %-12s %-10s %-15s\n", "ID", "Code", "Name", "Credits", "Capacity", "Enrolled", "Difficulty")
	s.separator('=', 120)
	for _, c := range courses {
		fmt.Fprintf(s.out, "%-6d %-10s %-25s %-8d %-12d %-10d %-15.1f\n", c.ID, c.Code, c.Name, c.Credits, c.MaxCapacity, c.CurrentEnrollment, c.Difficulty)
	}
	s.separator('=', 120)
	fmt.Fprintf(s.out, "Total Courses: %d\n", len(courses))
}

func (s *Shell) courseDetails() {
	id, err := s.promptInt("Enter course ID")
	if err != nil {
		s.inputError("Display Course", err)
		return
	}

	course, err := s.courses.Get(id)
	if err != nil {
		fmt.Fprintln(s.out, "Course not found.")
		return
	}

	s.banner("COURSE DETAILS", 70)
	fmt.Fprintf(s.out, "Course ID:           %d\n", course.ID)
	fmt.Fprintf(s.out, "Course Code:         %s\n", course.Code)
	fmt.Fprintf(s.out, "Course Name:         %s\n", course.Name)
	fmt.Fprintf(s.out, "Description:         %s\n", course.Description)
	fmt.Fprintf(s.out, "Credits:             %d\n", course.Credits)
	fmt.Fprintf(s.out, "Maximum Capacity:    %d\n", course.MaxCapacity)
	fmt.Fprintf(s.out, "Current Enrollment:  %d\n", course.CurrentEnrollment)
	fmt.Fprintf(s.out, "Enrollment Rate:     %.1f%%\n", course.EnrollmentRate()*100)
	fmt.Fprintf(s.out, "Difficulty Level:    %.1f/5.0\n", course.Difficulty)
	fmt.Fprintf(s.out, "Available Seats:     %d\n", course.AvailableSeats())
	s.separator('=', 70)
}

func (s *Shell) enroll() {
	s.banner("ENROLL STUDENT", 60)

	studentID, err := s.promptInt("Enter student ID")
	if err != nil {
		s.inputError("Enrollment", err)
		return
	}
	courseID, err := s.promptInt("Enter course ID")
	if err != nil {
		s.inputError("Enrollment", err)
		return
	}

	enrollment, err := s.enrollments.Enroll(service.EnrollRequest{StudentID: studentID, CourseID: courseID})
	if err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintln(s.out, "\nStudent successfully enrolled in course!")
	fmt.Fprintf(s.out, "  Enrollment ID: %d\n", enrollment.ID)
}

func (s *Shell) studentEnrollments() {
	id, err := s.promptInt("Enter student ID")
	if err != nil {
		s.inputError("View Enrollments", err)
		return
	}

	details, err := s.enrollments.StudentEnrollments(id)
	if err != nil {
		fmt.Fprintln(s.out, "Student not found.")
		return
	}
	if len(details) == 0 {
		fmt.Fprintln(s.out, "Student has no enrollments.")
		return
	}

	fmt.Fprintln(s.out)
	s.separator('=', 100)
	fmt.Fprintf(s.out, "%-8s %-25s %-12s %-8s %-8s %-15s\n", "Enr.ID", "Course Name", "Course Code", "Credits", "Grade", "Status")
	s.separator('=', 100)
	for _, d := range details {
		fmt.Fprintf(s.out, "%-8d %-25s %-12s %-8d %-8.1f %-15s\n", d.ID, d.CourseName, d.CourseCode, d.Credits, d.Grade, d.Status.Label())
	}
	s.separator('=', 100)
	fmt.Fprintf(s.out, "Total Enrollments: %d\n", len(details))
}

func (s *Shell) recordGrade() {
	s.banner("RECORD GRADE", 60)

	enrollmentID, err := s.promptInt("Enter enrollment ID")
	if err != nil {
		s.inputError("Record Grade", err)
		return
	}
	grade, err := s.promptFloat("Enter grade (0-100)")
	if err != nil {
		s.inputError("Record Grade", err)
		return
	}

	enrollment, err := s.enrollments.RecordGrade(service.RecordGradeRequest{EnrollmentID: enrollmentID, Grade: grade})
	if err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintln(s.out, "\nGrade recorded successfully!")
	fmt.Fprintf(s.out, "  Enrollment ID: %d\n", enrollment.ID)
	fmt.Fprintf(s.out, "  Grade: %.2f (%s)\n", enrollment.Grade, enrollment.LetterGrade)
	fmt.Fprintf(s.out, "  GPA Points: %.2f\n", enrollment.GradePoints)
}

func (s *Shell) studentGPA() {
	id, err := s.promptInt("Enter student ID")
	if err != nil {
		s.inputError("Student GPA", err)
		return
	}

	result, err := s.analytics.StudentGPA(id)
	if err != nil {
		fmt.Fprintln(s.out, "Student not found.")
		return
	}

	s.banner("STUDENT GPA", 60)
	fmt.Fprintf(s.out, "Student: %s\n", result.StudentName)
	fmt.Fprintf(s.out, "Student ID: %d\n", result.StudentID)
	fmt.Fprintf(s.out, "Completed Courses: %d\n", result.CompletedCourses)
	if result.HasGPA {
		fmt.Fprintf(s.out, "GPA: %.2f\n", result.GPA)
	} else {
		fmt.Fprintln(s.out, "GPA: N/A (No completed courses)")
	}
	s.separator('=', 60)
}

func (s *Shell) systemStats() {
	stats := s.analytics.SystemStats()

	s.banner("SYSTEM STATISTICS", 80)
	fmt.Fprintf(s.out, "Total Students (Active):    %d\n", stats.TotalStudents)
	fmt.Fprintf(s.out, "Total Courses:              %d\n", stats.TotalCourses)
	fmt.Fprintf(s.out, "Total Enrollments:          %d\n", stats.TotalEnrollments)
	fmt.Fprintf(s.out, "Total Trail Entries:        %d\n", stats.TrailEntries)
	if stats.HasAverage {
		fmt.Fprintf(s.out, "Average GPA (System):       %.2f\n", stats.AverageGPA)
	}
	if stats.HasEnrollmentRate {
		fmt.Fprintf(s.out, "Average Enrollment Rate:    %.1f%%\n", stats.AverageEnrollmentRate*100)
	}
	s.separator('=', 80)
}

func (s *Shell) classStats() {
	id, err := s.promptInt("Enter course ID")
	if err != nil {
		s.inputError("Class Statistics", err)
		return
	}

	stats, err := s.analytics.ClassStats(id)
	if err != nil {
		fmt.Fprintln(s.out, "Course not found.")
		return
	}

	s.banner("CLASS STATISTICS", 70)
	fmt.Fprintf(s.out, "Course: %s (%s)\n", stats.CourseName, stats.CourseCode)
	fmt.Fprintf(s.out, "Course ID: %d\n", stats.CourseID)
	fmt.Fprintf(s.out, "Total Enrollment: %d\n", stats.CurrentEnrollment)
	fmt.Fprintf(s.out, "Students Graded: %d\n", stats.GradedCount)
	if stats.GradedCount > 0 {
		fmt.Fprintf(s.out, "Average Grade: %.2f\n", stats.AverageGrade)
		fmt.Fprintf(s.out, "Highest Grade: %.2f\n", stats.HighestGrade)
		fmt.Fprintf(s.out, "Lowest Grade: %.2f\n", stats.LowestGrade)
		fmt.Fprintf(s.out, "Grade Range: %.2f\n", stats.GradeRange)
	} else {
		fmt.Fprintln(s.out, "No grades recorded for this course.")
	}
	s.separator('=', 70)
}

func (s *Shell) showTrail() {
	entries := s.trail.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No operation trail entries.")
		return
	}

	fmt.Fprintln(s.out)
	s.separator('=', 120)
	fmt.Fprintf(s.out, "%-6s %-10s %-20s %-20s %-50s\n", "ID", "Level", "Timestamp", "Operation", "Details")
	s.separator('=', 120)
	for _, e := range entries {
		fmt.Fprintf(s.out, "%-6d %-10s %-20s %-20s %-50s\n", e.ID, e.Level, e.Timestamp.Format(timeLayout), e.Operation, e.Detail)
	}
	s.separator('=', 120)
	fmt.Fprintf(s.out, "Total Trail Entries: %d\n", len(entries))
}

func (s *Shell) exportData() {
	raw, err := s.promptString("Export format (text/csv/pdf) [text]")
	if err != nil {
		return
	}
	format, err := export.ParseFormat(raw)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		s.trail.Record(models.LevelWarning, "Export Data", "unsupported format requested")
		return
	}

	path, err := s.exports.Generate(format)
	if err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintf(s.out, "Data exported successfully to %q\n", path)
}

func (s *Shell) promptString(label string) (string, error) {
	fmt.Fprintf(s.out, "%s: ", label)
	return s.readLine()
}

func (s *Shell) promptInt(label string) (int, error) {
	raw, err := s.promptString(label)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(raw))
	if convErr != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidNumber, raw)
	}
	return n, nil
}

func (s *Shell) promptFloat(label string) (float64, error) {
	raw, err := s.promptString(label)
	if err != nil {
		return 0, err
	}
	f, convErr := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if convErr != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidNumber, raw)
	}
	return f, nil
}

// readLine consumes exactly one input line so malformed values never leak
// into the next prompt.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) inputError(operation string, err error) {
	if errors.Is(err, errInvalidNumber) {
		fmt.Fprintln(s.out, "Invalid input. Please enter a number.")
		s.trail.Record(models.LevelWarning, operation, "invalid numeric input")
	}
}

func (s *Shell) reportError(err error) {
	fmt.Fprintf(s.out, "Error: %s\n", appErrors.FromError(err).Message)
}

func (s *Shell) banner(title string, width int) {
	fmt.Fprintln(s.out)
	s.separator('=', width)
	fmt.Fprintf(s.out, "%*s\n", (width+len(title))/2, title)
	s.separator('=', width)
}

func (s *Shell) separator(ch rune, length int) {
	fmt.Fprintln(s.out, strings.Repeat(string(ch), length))
}
