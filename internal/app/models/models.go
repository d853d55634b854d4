package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleTeacher RoleType = "TEACHER"
	RoleStudent RoleType = "STUDENT"
)

// Gender enum for student profiles
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid reports whether the gender value is one of the known constants
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Capabilities is the resolved set of privileges passed into the engine's
// privileged operations. The engine only checks whether a capability was
// granted; resolving roles to capabilities happens at the boundary.
type Capabilities struct {
	ManageRecords  bool // create/delete students and courses, enroll
	MarkAttendance bool
	RecordGrades   bool
}

// CapabilitiesForRole maps an authenticated role onto its capability set.
func CapabilitiesForRole(role RoleType) Capabilities {
	switch role {
	case RoleAdmin:
		return Capabilities{ManageRecords: true, MarkAttendance: true, RecordGrades: true}
	case RoleTeacher:
		return Capabilities{MarkAttendance: true, RecordGrades: true}
	default:
		return Capabilities{}
	}
}
