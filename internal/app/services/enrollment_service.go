package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
)

// EnrollmentStore is the persistence surface the enrollment service needs
type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, studentID, courseID int64) error
	Exists(ctx context.Context, studentID, courseID int64) (bool, error)
	CountByCourse(ctx context.Context, courseID int64) (int, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	EnrolledCourseCodes(ctx context.Context, studentID int64) ([]string, error)
}

// CourseReader is the read-only course access the enrollment service needs
type CourseReader interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// EnrollmentService enforces the enrollment rules: active course, no
// duplicate, capacity, prerequisites
type EnrollmentService struct {
	enrollmentStore EnrollmentStore
	courses         CourseReader
	userStore       UserStore
	logger          zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(enrollmentStore EnrollmentStore, courses CourseReader, userStore UserStore, logger zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		enrollmentStore: enrollmentStore,
		courses:         courses,
		userStore:       userStore,
		logger:          logger,
	}
}

// studentProfileID resolves the caller's student profile
func (s *EnrollmentService) studentProfileID(ctx context.Context, userID int64) (int64, error) {
	profile, err := s.userStore.GetStudentProfileByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return profile.ID, nil
}

// Enroll enrolls a student in a course after the full check chain. The
// unique constraint on (student, course) backstops the duplicate check
// under concurrency.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID int64) (*models.Enrollment, error) {
	studentID, err := s.studentProfileID(ctx, userID)
	if err != nil {
		return nil, err
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if !course.IsActive {
		return nil, apperrors.ErrCourseInactive
	}

	enrolled, err := s.enrollmentStore.Exists(ctx, studentID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if enrolled {
		return nil, apperrors.ErrAlreadyEnrolled
	}

	count, err := s.enrollmentStore.CountByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to count enrollments: %w", err)
	}
	if count >= course.Capacity {
		return nil, apperrors.ErrCourseFull
	}

	if err := s.checkPrerequisites(ctx, studentID, course); err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
		Status:    models.EnrollmentStatusEnrolled,
		Course:    course,
	}
	if err := s.enrollmentStore.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentID", studentID).
		Int64("courseID", courseID).
		Msg("Student enrolled")

	return enrollment, nil
}

// checkPrerequisites verifies every prerequisite course code appears among
// the student's current enrollments
func (s *EnrollmentService) checkPrerequisites(ctx context.Context, studentID int64, course *models.Course) error {
	required := course.PrerequisiteCodes()
	if len(required) == 0 {
		return nil
	}

	enrolledCodes, err := s.enrollmentStore.EnrolledCourseCodes(ctx, studentID)
	if err != nil {
		return fmt.Errorf("failed to list enrolled courses: %w", err)
	}

	have := make(map[string]bool, len(enrolledCodes))
	for _, code := range enrolledCodes {
		have[code] = true
	}

	for _, code := range required {
		if !have[code] {
			return fmt.Errorf("%w: %s", apperrors.ErrMissingPrerequisite, code)
		}
	}

	return nil
}

// Drop removes the student's enrollment in a course
func (s *EnrollmentService) Drop(ctx context.Context, userID, courseID int64) error {
	studentID, err := s.studentProfileID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.enrollmentStore.Delete(ctx, studentID, courseID); err != nil {
		return err
	}
	s.logger.Info().
		Int64("studentID", studentID).
		Int64("courseID", courseID).
		Msg("Enrollment dropped")
	return nil
}

// ListMine retrieves the student's enrollments with course snapshots
func (s *EnrollmentService) ListMine(ctx context.Context, userID int64) ([]*models.Enrollment, error) {
	studentID, err := s.studentProfileID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.enrollmentStore.ListByStudent(ctx, studentID)
}
