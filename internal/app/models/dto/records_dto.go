package dto

import (
	"time"

	"github.com/ecamli/registra/internal/app/models"
)

// EnrollRequest binds a student to a course for one term
type EnrollRequest struct {
	StudentID    int64  `json:"studentId" binding:"required"`
	CourseID     int64  `json:"courseId" binding:"required"`
	Semester     string `json:"semester" binding:"required"`
	AcademicYear string `json:"academicYear" binding:"required"`
}

// MarkAttendanceRequest is one submitted attendance sheet: a course, a day,
// and one entry per student.
type MarkAttendanceRequest struct {
	CourseID int64                    `json:"courseId" binding:"required"`
	Date     time.Time                `json:"date" binding:"required"`
	Entries  []models.AttendanceEntry `json:"entries" binding:"required,min=1"`
}

// RecordGradeRequest records or replaces the grade for an enrollment
type RecordGradeRequest struct {
	EnrollmentID int64   `json:"enrollmentId" binding:"required"`
	Marks        float64 `json:"marks"`
	Remark       string  `json:"remark"`
}
