package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Student identifier pattern: STU + 4-digit year + at least 4 sequence
	// digits. The sequence widens past 9999, so no upper bound on length.
	IdentifierPattern = `^STU\d{4}\d{4,}$`

	// Academic year label pattern, e.g. "2023-2024"
	AcademicYearPattern = `^\d{4}-\d{4}$`

	// Course code pattern: uppercase alphanumerics, e.g. "CS101"
	CourseCodePattern = `^[A-Z0-9]{2,12}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email        *regexp.Regexp
	Identifier   *regexp.Regexp
	AcademicYear *regexp.Regexp
	CourseCode   *regexp.Regexp
}{
	Email:        regexp.MustCompile(EmailPattern),
	Identifier:   regexp.MustCompile(IdentifierPattern),
	AcademicYear: regexp.MustCompile(AcademicYearPattern),
	CourseCode:   regexp.MustCompile(CourseCodePattern),
}

// IsValidEmail reports whether the string is a plausible email address
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidIdentifier reports whether the string is a well-formed student identifier
func IsValidIdentifier(identifier string) bool {
	return CompiledPatterns.Identifier.MatchString(identifier)
}

// IsValidAcademicYear reports whether the string is a well-formed academic year label
func IsValidAcademicYear(year string) bool {
	return CompiledPatterns.AcademicYear.MatchString(year)
}

// IsValidCourseCode reports whether the string is a well-formed course code
func IsValidCourseCode(code string) bool {
	return CompiledPatterns.CourseCode.MatchString(code)
}
