package models

import "time"

// LetterGrade is the derived letter for a numeric score
type LetterGrade string

const (
	LetterA LetterGrade = "A"
	LetterB LetterGrade = "B"
	LetterC LetterGrade = "C"
	LetterD LetterGrade = "D"
	LetterF LetterGrade = "F"
)

// Score bounds for a grade's numeric marks
const (
	MinMarks = 0.0
	MaxMarks = 100.0
)

// LetterFromMarks derives the letter grade for a score. Boundaries are
// inclusive on the lower bound: 90 is an A, 89.99 is a B.
func LetterFromMarks(marks float64) LetterGrade {
	switch {
	case marks >= 90:
		return LetterA
	case marks >= 80:
		return LetterB
	case marks >= 70:
		return LetterC
	case marks >= 60:
		return LetterD
	default:
		return LetterF
	}
}

// GradePoint maps a letter onto the fixed 4-point scale used for GPA
func (l LetterGrade) GradePoint() float64 {
	switch l {
	case LetterA:
		return 4
	case LetterB:
		return 3
	case LetterC:
		return 2
	case LetterD:
		return 1
	default:
		return 0
	}
}

// ValidMarks reports whether a score is inside the accepted range
func ValidMarks(marks float64) bool {
	return marks >= MinMarks && marks <= MaxMarks
}

// Grade belongs to exactly one enrollment. Recording a grade for an
// enrollment that already has one replaces it.
type Grade struct {
	ID           int64       `json:"id" db:"id"`
	EnrollmentID int64       `json:"enrollmentId" db:"enrollment_id"`
	Marks        float64     `json:"marks" db:"marks"`
	Letter       LetterGrade `json:"letter" db:"letter"`
	Remark       string      `json:"remark" db:"remark"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" db:"updated_at"`
}
