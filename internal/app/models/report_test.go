package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeGPA(t *testing.T) {
	t.Run("credit weighted average", func(t *testing.T) {
		// A and C with equal credits average to 3.00
		credits, gpa := ComputeGPA([]ReportLine{
			{CreditHours: 3, Letter: LetterA},
			{CreditHours: 3, Letter: LetterC},
		})
		assert.Equal(t, 6, credits)
		assert.Equal(t, 3.0, gpa)
	})

	t.Run("weights follow credit hours", func(t *testing.T) {
		// 4*4.0 + 1*0.0 over 5 credits = 3.2
		credits, gpa := ComputeGPA([]ReportLine{
			{CreditHours: 4, Letter: LetterA},
			{CreditHours: 1, Letter: LetterF},
		})
		assert.Equal(t, 5, credits)
		assert.Equal(t, 3.2, gpa)
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		// 3*4.0 + 2*3.0 + 2*2.0 over 7 credits = 3.142857...
		_, gpa := ComputeGPA([]ReportLine{
			{CreditHours: 3, Letter: LetterA},
			{CreditHours: 2, Letter: LetterB},
			{CreditHours: 2, Letter: LetterC},
		})
		assert.Equal(t, 3.14, gpa)
	})

	t.Run("no lines", func(t *testing.T) {
		credits, gpa := ComputeGPA(nil)
		assert.Equal(t, 0, credits)
		assert.Equal(t, 0.0, gpa)
	})
}

func TestComputePresentPercentage(t *testing.T) {
	assert.Equal(t, 80.0, ComputePresentPercentage(8, 10))
	assert.Equal(t, 100.0, ComputePresentPercentage(5, 5))
	assert.Equal(t, 0.0, ComputePresentPercentage(0, 10))
	assert.Equal(t, 66.67, ComputePresentPercentage(2, 3))

	// No recorded classes yields zero, never a division fault
	assert.Equal(t, 0.0, ComputePresentPercentage(0, 0))
}

func TestCapabilitiesForRole(t *testing.T) {
	admin := CapabilitiesForRole(RoleAdmin)
	assert.True(t, admin.ManageRecords)
	assert.True(t, admin.MarkAttendance)
	assert.True(t, admin.RecordGrades)

	teacher := CapabilitiesForRole(RoleTeacher)
	assert.False(t, teacher.ManageRecords)
	assert.True(t, teacher.MarkAttendance)
	assert.True(t, teacher.RecordGrades)

	student := CapabilitiesForRole(RoleStudent)
	assert.Equal(t, Capabilities{}, student)

	unknown := CapabilitiesForRole(RoleType("JANITOR"))
	assert.Equal(t, Capabilities{}, unknown)
}
