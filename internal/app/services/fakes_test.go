package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ecamli/registra/internal/app/models"
	"github.com/ecamli/registra/internal/pkg/apperrors"
)

// fakeStore is an in-memory implementation of every store interface with the
// same key and error semantics as the SQL repositories.
type fakeStore struct {
	mu            sync.Mutex
	nextID        int64
	students      map[int64]*models.Student
	courses       map[int64]*models.Course
	enrollments   map[int64]*models.Enrollment
	attendance    map[string]*models.Attendance
	grades        map[int64]*models.Grade // keyed by enrollment ID
	users         map[int64]*models.User
	notifications []*models.Notification
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		students:    make(map[int64]*models.Student),
		courses:     make(map[int64]*models.Course),
		enrollments: make(map[int64]*models.Enrollment),
		attendance:  make(map[string]*models.Attendance),
		grades:      make(map[int64]*models.Grade),
		users:       make(map[int64]*models.User),
	}
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

func attendanceKey(studentID, courseID int64, date time.Time) string {
	return fmt.Sprintf("%d/%d/%s", studentID, courseID, date.Format("2006-01-02"))
}

// --- StudentStore ---

func (s *fakeStore) Create(ctx context.Context, student *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	year := student.EnrollmentYear()
	maxSeq := 0
	for _, existing := range s.students {
		if seq, ok := models.IdentifierSequence(existing.Identifier, year); ok && seq > maxSeq {
			maxSeq = seq
		}
	}
	student.Identifier = models.FormatStudentIdentifier(year, maxSeq+1)
	student.ID = s.id()
	student.CreatedAt = time.Now()
	copied := *student
	s.students[student.ID] = &copied
	return nil
}

func (s *fakeStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (s *fakeStore) GetByIdentifier(ctx context.Context, identifier string) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, student := range s.students {
		if student.Identifier == identifier {
			copied := *student
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *fakeStore) List(ctx context.Context) ([]*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var students []*models.Student
	for _, student := range s.students {
		copied := *student
		students = append(students, &copied)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].Identifier < students[j].Identifier })
	return students, nil
}

func (s *fakeStore) Exists(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.students[id]
	return ok, nil
}

func (s *fakeStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	for enrollmentID, enrollment := range s.enrollments {
		if enrollment.StudentID == id {
			delete(s.grades, enrollmentID)
			delete(s.enrollments, enrollmentID)
		}
	}
	for key, att := range s.attendance {
		if att.StudentID == id {
			delete(s.attendance, key)
		}
	}
	delete(s.students, id)
	return nil
}

// --- CourseStore ---

type fakeCourseStore struct{ *fakeStore }

func (s fakeCourseStore) Create(ctx context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.courses {
		if existing.Code == course.Code {
			return apperrors.ErrCourseCodeExists
		}
	}
	course.ID = s.id()
	course.CreatedAt = time.Now()
	copied := *course
	s.courses[course.ID] = &copied
	return nil
}

func (s fakeCourseStore) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	course, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (s fakeCourseStore) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, course := range s.courses {
		if course.Code == code {
			copied := *course
			return &copied, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (s fakeCourseStore) List(ctx context.Context) ([]*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var courses []*models.Course
	for _, course := range s.courses {
		copied := *course
		courses = append(courses, &copied)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].Code < courses[j].Code })
	return courses, nil
}

func (s fakeCourseStore) Exists(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.courses[id]
	return ok, nil
}

func (s fakeCourseStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	for enrollmentID, enrollment := range s.enrollments {
		if enrollment.CourseID == id {
			delete(s.grades, enrollmentID)
			delete(s.enrollments, enrollmentID)
		}
	}
	for key, att := range s.attendance {
		if att.CourseID == id {
			delete(s.attendance, key)
		}
	}
	delete(s.courses, id)
	return nil
}

// --- EnrollmentStore ---

type fakeEnrollmentStore struct{ *fakeStore }

func (s fakeEnrollmentStore) Create(ctx context.Context, enrollment *models.Enrollment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.enrollments {
		if existing.StudentID == enrollment.StudentID &&
			existing.CourseID == enrollment.CourseID &&
			existing.Semester == enrollment.Semester &&
			existing.AcademicYear == enrollment.AcademicYear {
			return apperrors.ErrDuplicateEnrollment
		}
	}
	if _, ok := s.students[enrollment.StudentID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	if _, ok := s.courses[enrollment.CourseID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	enrollment.ID = s.id()
	enrollment.CreatedAt = time.Now()
	copied := *enrollment
	copied.Course = nil
	s.enrollments[enrollment.ID] = &copied
	return nil
}

func (s fakeEnrollmentStore) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	enrollment, ok := s.enrollments[id]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	copied := *enrollment
	return &copied, nil
}

func (s fakeEnrollmentStore) ListByStudentTerm(ctx context.Context, studentID int64, semester, academicYear string) ([]*models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*models.Enrollment
	for _, enrollment := range s.enrollments {
		if enrollment.StudentID == studentID && enrollment.Semester == semester && enrollment.AcademicYear == academicYear {
			copied := *enrollment
			if course, ok := s.courses[enrollment.CourseID]; ok {
				courseCopy := *course
				copied.Course = &courseCopy
			}
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Course.Code < result[j].Course.Code
	})
	return result, nil
}

func (s fakeEnrollmentStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.enrollments[id]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(s.grades, id)
	delete(s.enrollments, id)
	return nil
}

// --- AttendanceStore ---

type fakeAttendanceStore struct{ *fakeStore }

func (s fakeAttendanceStore) Upsert(ctx context.Context, attendance *models.Attendance) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := attendanceKey(attendance.StudentID, attendance.CourseID, attendance.Date)
	if existing, ok := s.attendance[key]; ok {
		existing.Status = attendance.Status
		existing.Remark = attendance.Remark
		existing.UpdatedAt = time.Now()
		attendance.ID = existing.ID
		return false, nil
	}
	attendance.ID = s.id()
	attendance.CreatedAt = time.Now()
	attendance.UpdatedAt = attendance.CreatedAt
	copied := *attendance
	s.attendance[key] = &copied
	return true, nil
}

func (s fakeAttendanceStore) ListRange(ctx context.Context, studentID, courseID int64, from, to time.Time) ([]*models.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*models.Attendance
	for _, att := range s.attendance {
		if att.StudentID == studentID && att.CourseID == courseID &&
			!att.Date.Before(from) && !att.Date.After(to) {
			copied := *att
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (s fakeAttendanceStore) CountRange(ctx context.Context, studentID, courseID int64, from, to time.Time) (int, int, error) {
	records, err := s.ListRange(ctx, studentID, courseID, from, to)
	if err != nil {
		return 0, 0, err
	}
	total, present := 0, 0
	for _, att := range records {
		total++
		if att.Status == models.AttendancePresent {
			present++
		}
	}
	return total, present, nil
}

// --- GradeStore ---

type fakeGradeStore struct{ *fakeStore }

func (s fakeGradeStore) Upsert(ctx context.Context, grade *models.Grade) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.enrollments[grade.EnrollmentID]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	if existing, ok := s.grades[grade.EnrollmentID]; ok {
		existing.Marks = grade.Marks
		existing.Letter = grade.Letter
		existing.Remark = grade.Remark
		existing.UpdatedAt = time.Now()
		grade.ID = existing.ID
		return nil
	}
	grade.ID = s.id()
	grade.CreatedAt = time.Now()
	grade.UpdatedAt = grade.CreatedAt
	copied := *grade
	s.grades[grade.EnrollmentID] = &copied
	return nil
}

func (s fakeGradeStore) GetByEnrollment(ctx context.Context, enrollmentID int64) (*models.Grade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	grade, ok := s.grades[enrollmentID]
	if !ok {
		return nil, apperrors.ErrGradeNotFound
	}
	copied := *grade
	return &copied, nil
}

// --- UserStore ---

type fakeUserStore struct{ *fakeStore }

func (s fakeUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = s.id()
	user.CreatedAt = time.Now()
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s fakeUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// --- NotificationStore ---

type fakeNotificationStore struct{ *fakeStore }

func (s fakeNotificationStore) Create(ctx context.Context, notification *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	notification.ID = s.id()
	notification.CreatedAt = time.Now()
	copied := *notification
	s.notifications = append(s.notifications, &copied)
	return nil
}

func (s fakeNotificationStore) ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]*models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*models.Notification
	for i := len(s.notifications) - 1; i >= 0; i-- {
		n := s.notifications[i]
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		copied := *n
		result = append(result, &copied)
	}
	return result, nil
}

func (s fakeNotificationStore) UnreadCount(ctx context.Context, userID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (s fakeNotificationStore) MarkAllRead(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (s fakeNotificationStore) ClearAll(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.UserID != userID {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
	return nil
}

// Capability sets used across the service tests
var (
	adminCaps   = models.Capabilities{ManageRecords: true, MarkAttendance: true, RecordGrades: true}
	teacherCaps = models.Capabilities{MarkAttendance: true, RecordGrades: true}
	noCaps      = models.Capabilities{}
)

// seedStudent registers a student through the fake store directly
func seedStudent(store *fakeStore, name string) *models.Student {
	student := &models.Student{
		FullName:       name,
		DateOfBirth:    time.Date(2006, 3, 15, 0, 0, 0, 0, time.UTC),
		Gender:         models.GenderFemale,
		EnrollmentDate: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	_ = store.Create(context.Background(), student)
	return student
}

// seedCourse adds a course through the fake store directly
func seedCourse(store *fakeStore, code, name string, credits int) *models.Course {
	course := &models.Course{Code: code, Name: name, CreditHours: credits, Department: "General"}
	_ = fakeCourseStore{store}.Create(context.Background(), course)
	return course
}
