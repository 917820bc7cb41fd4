package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/app/models/dto"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
)

// AssignmentStore is the persistence surface for assignments and
// submissions
type AssignmentStore interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	GetByID(ctx context.Context, id int64) (*models.Assignment, error)
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Assignment, error)
	ListByStudentCourses(ctx context.Context, studentID int64) ([]*models.Assignment, error)
	UpsertSubmission(ctx context.Context, submission *models.AssignmentSubmission) error
	GetSubmission(ctx context.Context, assignmentID, studentID int64) (*models.AssignmentSubmission, error)
	GetSubmissionByID(ctx context.Context, id int64) (*models.AssignmentSubmission, error)
	ListSubmissions(ctx context.Context, assignmentID int64) ([]*models.AssignmentSubmission, error)
	GradeSubmission(ctx context.Context, id int64, grade float64, feedback *string, gradedBy int64) error
}

// EnrollmentChecker verifies course membership for submissions
type EnrollmentChecker interface {
	Exists(ctx context.Context, studentID, courseID int64) (bool, error)
}

// AssignmentService handles assignments, submissions and grading
type AssignmentService struct {
	assignmentStore AssignmentStore
	enrollments     EnrollmentChecker
	facultyCourses  FacultyCourseStore
	userStore       UserStore
	logger          zerolog.Logger
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(
	assignmentStore AssignmentStore,
	enrollments EnrollmentChecker,
	facultyCourses FacultyCourseStore,
	userStore UserStore,
	logger zerolog.Logger,
) *AssignmentService {
	return &AssignmentService{
		assignmentStore: assignmentStore,
		enrollments:     enrollments,
		facultyCourses:  facultyCourses,
		userStore:       userStore,
		logger:          logger,
	}
}

// Create creates an assignment for a course the caller teaches
func (s *AssignmentService) Create(ctx context.Context, userID int64, req *dto.CreateAssignmentRequest) (*models.Assignment, error) {
	dueDate, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		return nil, apperrors.NewValidationError("dueDate must be RFC 3339")
	}

	profile, err := s.userStore.GetFacultyProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	assigned, err := s.facultyCourses.IsAssigned(ctx, profile.ID, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check teaching assignment: %w", err)
	}
	if !assigned {
		return nil, apperrors.ErrNotAssignedToCourse
	}

	assignment := &models.Assignment{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
	}
	if err := s.assignmentStore.Create(ctx, assignment); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("assignmentID", assignment.ID).
		Int64("courseID", assignment.CourseID).
		Msg("Assignment created")

	return assignment, nil
}

// ListByCourse retrieves assignments for a course
func (s *AssignmentService) ListByCourse(ctx context.Context, courseID int64) ([]*models.Assignment, error) {
	return s.assignmentStore.ListByCourse(ctx, courseID)
}

// ListMine retrieves the calling student's assignments across enrolled
// courses
func (s *AssignmentService) ListMine(ctx context.Context, userID int64) ([]*models.Assignment, error) {
	profile, err := s.userStore.GetStudentProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.assignmentStore.ListByStudentCourses(ctx, profile.ID)
}

// Submit stores the calling student's submission. A resubmission for the
// same assignment overwrites the previous one and clears any grade.
func (s *AssignmentService) Submit(ctx context.Context, userID, assignmentID int64, req *dto.SubmitAssignmentRequest) (*models.AssignmentSubmission, error) {
	assignment, err := s.assignmentStore.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	profile, err := s.userStore.GetStudentProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollments.Exists(ctx, profile.ID, assignment.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if !enrolled {
		return nil, apperrors.ErrNotEnrolled
	}

	submission := &models.AssignmentSubmission{
		AssignmentID: assignmentID,
		StudentID:    profile.ID,
		FileName:     req.FileName,
		FilePath:     req.FilePath,
		FileSize:     req.FileSize,
		FileType:     req.FileType,
		IsLate:       time.Now().After(assignment.DueDate),
		Comments:     req.Comments,
		Status:       models.SubmissionStatusSubmitted,
	}
	if err := s.assignmentStore.UpsertSubmission(ctx, submission); err != nil {
		return nil, err
	}

	return submission, nil
}

// MySubmission retrieves the calling student's current submission for an
// assignment
func (s *AssignmentService) MySubmission(ctx context.Context, userID, assignmentID int64) (*models.AssignmentSubmission, error) {
	profile, err := s.userStore.GetStudentProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.assignmentStore.GetSubmission(ctx, assignmentID, profile.ID)
}

// ListSubmissions retrieves all submissions for an assignment the caller
// teaches
func (s *AssignmentService) ListSubmissions(ctx context.Context, userID, assignmentID int64) ([]*models.AssignmentSubmission, error) {
	if err := s.requireAssignmentOwner(ctx, userID, assignmentID); err != nil {
		return nil, err
	}
	return s.assignmentStore.ListSubmissions(ctx, assignmentID)
}

// Grade records a grade and feedback for a submission on an assignment
// the caller teaches
func (s *AssignmentService) Grade(ctx context.Context, userID, submissionID int64, req *dto.GradeSubmissionRequest) (*models.AssignmentSubmission, error) {
	submission, err := s.assignmentStore.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	if err := s.requireAssignmentOwner(ctx, userID, submission.AssignmentID); err != nil {
		return nil, err
	}

	if err := s.assignmentStore.GradeSubmission(ctx, submissionID, req.Grade, req.Feedback, userID); err != nil {
		return nil, err
	}

	return s.assignmentStore.GetSubmissionByID(ctx, submissionID)
}

func (s *AssignmentService) requireAssignmentOwner(ctx context.Context, userID, assignmentID int64) error {
	assignment, err := s.assignmentStore.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}

	profile, err := s.userStore.GetFacultyProfileByUserID(ctx, userID)
	if err != nil {
		return err
	}

	assigned, err := s.facultyCourses.IsAssigned(ctx, profile.ID, assignment.CourseID)
	if err != nil {
		return fmt.Errorf("failed to check teaching assignment: %w", err)
	}
	if !assigned {
		return apperrors.ErrNotAssignedToCourse
	}
	return nil
}
