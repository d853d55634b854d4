package models

import "time"

// AttendanceStatus enum for daily attendance
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// Valid reports whether the status value is one of the known constants
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}

// Attendance records one student's status in one course on one day. The
// (student, course, date) tuple is unique; re-marking the same day overwrites.
type Attendance struct {
	ID        int64            `json:"id" db:"id"`
	StudentID int64            `json:"studentId" db:"student_id"`
	CourseID  int64            `json:"courseId" db:"course_id"`
	Date      time.Time        `json:"date" db:"date"`
	Status    AttendanceStatus `json:"status" db:"status"`
	Remark    string           `json:"remark" db:"remark"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time        `json:"updatedAt" db:"updated_at"`
}

// AttendanceEntry is one row of a submitted attendance sheet
type AttendanceEntry struct {
	StudentID int64            `json:"studentId"`
	Status    AttendanceStatus `json:"status"`
	Remark    string           `json:"remark"`
}

// EntryResult reports what the upsert did for one sheet entry
type EntryResult struct {
	StudentID int64 `json:"studentId"`
	Created   bool  `json:"created"` // false means an existing row was overwritten
}

// MarkResult reports the outcome of a batch attendance submission. When an
// entry fails, Applied still lists everything processed before the failure;
// partial progress is never rolled back.
type MarkResult struct {
	CourseID int64         `json:"courseId"`
	Date     time.Time     `json:"date"`
	Applied  []EntryResult `json:"applied"`
}
