package models

import "time"

// Enrollment binds one student to one course for one semester and academic
// year. The (student, course, semester, academic_year) tuple is unique.
type Enrollment struct {
	ID           int64     `json:"id" db:"id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	CourseID     int64     `json:"courseId" db:"course_id"`
	Semester     string    `json:"semester" db:"semester" example:"Fall"`
	AcademicYear string    `json:"academicYear" db:"academic_year" example:"2023-2024"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}
