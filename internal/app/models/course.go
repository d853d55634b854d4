package models

import "time"

// Course represents an entry in the course catalog. Courses are immutable
// after creation; catalog edits go through delete-and-recreate.
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Code        string    `json:"code" db:"code" example:"CS101"`
	Name        string    `json:"name" db:"name"`
	CreditHours int       `json:"creditHours" db:"credit_hours"`
	Department  string    `json:"department" db:"department"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
