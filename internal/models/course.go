package models

import "time"

// Course represents an offered course with a bounded seat count.
type Course struct {
	ID                int       `json:"id"`
	Code              string    `json:"code"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Credits           int       `json:"credits"`
	MaxCapacity       int       `json:"max_capacity"`
	CurrentEnrollment int       `json:"current_enrollment"`
	Difficulty        float64   `json:"difficulty"`
	CreatedAt         time.Time `json:"created_at"`
}

// AvailableSeats reports remaining capacity.
func (c Course) AvailableSeats() int {
	return c.MaxCapacity - c.CurrentEnrollment
}

// EnrollmentRate reports fill ratio in [0,1]; zero-capacity courses rate 0.
func (c Course) EnrollmentRate() float64 {
	if c.MaxCapacity <= 0 {
		return 0
	}
	return float64(c.CurrentEnrollment) / float64(c.MaxCapacity)
}
