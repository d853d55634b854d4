package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatStudentIdentifier(t *testing.T) {
	assert.Equal(t, "STU20240001", FormatStudentIdentifier(2024, 1))
	assert.Equal(t, "STU20240042", FormatStudentIdentifier(2024, 42))
	assert.Equal(t, "STU20249999", FormatStudentIdentifier(2024, 9999))

	// Past 9999 the identifier widens instead of wrapping
	assert.Equal(t, "STU202410000", FormatStudentIdentifier(2024, 10000))
	assert.Equal(t, "STU2024123456", FormatStudentIdentifier(2024, 123456))
}

func TestIdentifierSequence(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		year       int
		wantSeq    int
		wantOK     bool
	}{
		{name: "first of year", identifier: "STU20240001", year: 2024, wantSeq: 1, wantOK: true},
		{name: "widened sequence", identifier: "STU202410000", year: 2024, wantSeq: 10000, wantOK: true},
		{name: "wrong year", identifier: "STU20240001", year: 2023, wantOK: false},
		{name: "garbage suffix", identifier: "STU2024abcd", year: 2024, wantOK: false},
		{name: "empty", identifier: "", year: 2024, wantOK: false},
		{name: "zero sequence rejected", identifier: "STU20240000", year: 2024, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, ok := IdentifierSequence(tt.identifier, tt.year)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantSeq, seq)
			}
		})
	}
}

func TestIdentifierRoundTrip(t *testing.T) {
	for _, seq := range []int{1, 57, 9999, 10000, 250000} {
		identifier := FormatStudentIdentifier(2025, seq)
		got, ok := IdentifierSequence(identifier, 2025)
		assert.True(t, ok, identifier)
		assert.Equal(t, seq, got)
	}
}

func TestEnrollmentYear(t *testing.T) {
	student := Student{EnrollmentDate: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 2024, student.EnrollmentYear())
}
