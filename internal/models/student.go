package models

import "time"

// Student represents a learner registered in the institution.
type Student struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	AdmissionYear int       `json:"admission_year"`
	Major         string    `json:"major"`
	RegisteredAt  time.Time `json:"registered_at"`
	Active        bool      `json:"active"`
}
