package dto

import (
	"time"

	"github.com/ecamli/registra/internal/app/models"
)

// CreateStudentRequest is the payload for registering a new student. The
// identifier is allocated by the engine, never supplied by the caller.
type CreateStudentRequest struct {
	FullName       string        `json:"fullName" binding:"required,min=2,max=100"`
	DateOfBirth    time.Time     `json:"dateOfBirth" binding:"required"`
	Gender         models.Gender `json:"gender" binding:"required,oneof=male female other"`
	Email          string        `json:"email" binding:"required,email"`
	Phone          string        `json:"phone"`
	Address        string        `json:"address"`
	PhotoKey       *string       `json:"photoKey"`
	EnrollmentDate *time.Time    `json:"enrollmentDate"` // Defaults to today
}

// CreateCourseRequest is the payload for adding a course to the catalog
type CreateCourseRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required,min=2,max=150"`
	CreditHours int    `json:"creditHours" binding:"required"`
	Department  string `json:"department" binding:"required"`
}
