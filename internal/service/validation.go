package service

import "github.com/noah-isme/sims-cli/internal/models"

// IsValidEmail applies the advisory email shape check: exactly one '@' and
// at least one '.'.
func IsValidEmail(email string) bool {
	atCount, dotCount := 0, 0
	for _, r := range email {
		switch r {
		case '@':
			atCount++
		case '.':
			dotCount++
		}
	}
	return atCount == 1 && dotCount >= 1
}

// IsValidPhone applies the advisory phone shape check: at least ten
// characters, digits, hyphens and spaces only.
func IsValidPhone(phone string) bool {
	if len(phone) < 10 {
		return false
	}
	for _, r := range phone {
		if (r < '0' || r > '9') && r != '-' && r != ' ' {
			return false
		}
	}
	return true
}

// LetterGrade maps a numeric score to its letter, inclusive lower bounds
// checked in descending order.
func LetterGrade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// GradePoints maps a letter grade to its grade-point value.
func GradePoints(letter string) float64 {
	switch letter {
	case "A":
		return 4.0
	case "B":
		return 3.0
	case "C":
		return 2.0
	case "D":
		return 1.0
	default:
		return 0.0
	}
}

// operationRecorder is satisfied by the audit trail.
type operationRecorder interface {
	Record(level models.OperationLevel, operation, detail string)
}
