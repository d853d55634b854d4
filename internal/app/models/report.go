package models

import (
	"math"
	"time"
)

// ReportLine is one graded enrollment on a report card
type ReportLine struct {
	CourseCode  string      `json:"courseCode"`
	CourseName  string      `json:"courseName"`
	CreditHours int         `json:"creditHours"`
	Marks       float64     `json:"marks"`
	Letter      LetterGrade `json:"letter"`
	Remark      string      `json:"remark,omitempty"`
}

// ReportCard aggregates a student's graded enrollments for one term.
// Enrollments without a recorded grade are excluded from the body.
type ReportCard struct {
	StudentID    int64        `json:"studentId"`
	Identifier   string       `json:"identifier"`
	StudentName  string       `json:"studentName"`
	Semester     string       `json:"semester"`
	AcademicYear string       `json:"academicYear"`
	Lines        []ReportLine `json:"lines"`
	TotalCredits int          `json:"totalCredits"`
	GPA          float64      `json:"gpa"`
}

// AttendanceSummary aggregates a student's attendance in one course over a
// date range.
type AttendanceSummary struct {
	StudentID    int64     `json:"studentId"`
	CourseID     int64     `json:"courseId"`
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
	TotalClasses int       `json:"totalClasses"`
	PresentCount int       `json:"presentCount"`
	Percentage   float64   `json:"percentage"`
}

// ComputeGPA returns the credit-weighted grade point average for a set of
// report lines, rounded to two decimals, together with the credit total.
// A report with no credits has a GPA of 0, never a division fault.
func ComputeGPA(lines []ReportLine) (totalCredits int, gpa float64) {
	var weighted float64
	for _, line := range lines {
		totalCredits += line.CreditHours
		weighted += line.Letter.GradePoint() * float64(line.CreditHours)
	}
	if totalCredits == 0 {
		return 0, 0
	}
	return totalCredits, round2(weighted / float64(totalCredits))
}

// ComputePresentPercentage returns present/total as a percentage rounded to
// two decimals, 0 when there are no recorded classes.
func ComputePresentPercentage(presentCount, totalClasses int) float64 {
	if totalClasses == 0 {
		return 0
	}
	return round2(float64(presentCount) / float64(totalClasses) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
