package services

import (
	"context"
	"time"

	"github.com/ecamli/registra/internal/app/models"
)

// Store interfaces the engine depends on. The pgx repositories satisfy them;
// tests substitute in-memory fakes. Each store is responsible for the
// serialization its keys need (identifier allocation, attendance upsert,
// enrollment uniqueness) — the engine never does read-then-write on those
// keys itself.

// StudentStore persists student profiles. Create allocates the student
// identifier for the profile's enrollment year atomically with the insert.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// CourseStore persists the course catalog
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	List(ctx context.Context) ([]*models.Course, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// EnrollmentStore persists enrollments
type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	ListByStudentTerm(ctx context.Context, studentID int64, semester, academicYear string) ([]*models.Enrollment, error)
	Delete(ctx context.Context, id int64) error
}

// AttendanceStore persists daily attendance rows
type AttendanceStore interface {
	Upsert(ctx context.Context, attendance *models.Attendance) (created bool, err error)
	ListRange(ctx context.Context, studentID, courseID int64, from, to time.Time) ([]*models.Attendance, error)
	CountRange(ctx context.Context, studentID, courseID int64, from, to time.Time) (total, present int, err error)
}

// GradeStore persists grades
type GradeStore interface {
	Upsert(ctx context.Context, grade *models.Grade) error
	GetByEnrollment(ctx context.Context, enrollmentID int64) (*models.Grade, error)
}

// UserStore persists console accounts
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// NotificationStore persists dashboard notifications
type NotificationStore interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]*models.Notification, error)
	UnreadCount(ctx context.Context, userID int64) (int, error)
	MarkAllRead(ctx context.Context, userID int64) error
	ClearAll(ctx context.Context, userID int64) error
}

// Notifier delivers a dashboard message to a user. Notification delivery is
// best effort; record operations never fail because a message could not be
// written.
type Notifier interface {
	NotifyUser(ctx context.Context, userID int64, message string)
}
