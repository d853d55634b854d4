package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository      *StudentRepository
	CourseRepository       *CourseRepository
	EnrollmentRepository   *EnrollmentRepository
	AttendanceRepository   *AttendanceRepository
	GradeRepository        *GradeRepository
	UserRepository         *UserRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool, allocRetries int) *Repositories {
	return &Repositories{
		StudentRepository:      NewStudentRepository(db, allocRetries),
		CourseRepository:       NewCourseRepository(db),
		EnrollmentRepository:   NewEnrollmentRepository(db),
		AttendanceRepository:   NewAttendanceRepository(db),
		GradeRepository:        NewGradeRepository(db),
		UserRepository:         NewUserRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
