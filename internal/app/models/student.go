package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// identifierPrefix starts every student identifier, followed by the 4-digit
// enrollment year and a zero-padded sequence number.
const identifierPrefix = "STU"

// identifierSeqWidth is the minimum printed width of the sequence part.
// Sequences past 9999 widen the identifier instead of wrapping.
const identifierSeqWidth = 4

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64     `json:"id" db:"id"`
	Identifier     string    `json:"identifier" db:"identifier" example:"STU20240001"` // Generated student number, unique per year sequence
	FullName       string    `json:"fullName" db:"full_name"`
	DateOfBirth    time.Time `json:"dateOfBirth" db:"date_of_birth"`
	Gender         Gender    `json:"gender" db:"gender"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	Address        string    `json:"address" db:"address"`
	PhotoKey       *string   `json:"photoKey,omitempty" db:"photo_key"` // Storage handle only, never raw bytes
	EnrollmentDate time.Time `json:"enrollmentDate" db:"enrollment_date"`
	UserID         *int64    `json:"userId,omitempty" db:"user_id"` // Linked account, if any
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// EnrollmentYear is the year the student's identifier sequence belongs to
func (s *Student) EnrollmentYear() int {
	return s.EnrollmentDate.Year()
}

// IdentifierYearPrefix returns the identifier prefix for an enrollment year,
// e.g. "STU2024".
func IdentifierYearPrefix(year int) string {
	return fmt.Sprintf("%s%04d", identifierPrefix, year)
}

// FormatStudentIdentifier builds a student identifier from an enrollment year
// and a sequence number, zero-padding the sequence to four digits.
func FormatStudentIdentifier(year, seq int) string {
	return fmt.Sprintf("%s%0*d", IdentifierYearPrefix(year), identifierSeqWidth, seq)
}

// IdentifierSequence extracts the numeric sequence from an identifier for the
// given enrollment year. Returns false when the identifier does not belong to
// that year or is malformed.
func IdentifierSequence(identifier string, year int) (int, bool) {
	prefix := IdentifierYearPrefix(year)
	if !strings.HasPrefix(identifier, prefix) {
		return 0, false
	}
	seq, err := strconv.Atoi(identifier[len(prefix):])
	if err != nil || seq <= 0 {
		return 0, false
	}
	return seq, true
}
