package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/app/models/dto"
	"github.com/emrekoc/campushub/internal/app/repositories"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
)

// CourseStore is the persistence surface the course service needs
type CourseStore interface {
	CreateWithApproval(ctx context.Context, course *models.Course, approval *models.CourseApproval) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByCode(ctx context.Context, courseCode string) (*models.Course, error)
	CodeExists(ctx context.Context, courseCode string) (bool, error)
	List(ctx context.Context, filter repositories.CourseFilter) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseService handles the course catalog operations
type CourseService struct {
	courseStore CourseStore
	logger      zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseStore CourseStore, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courseStore: courseStore,
		logger:      logger,
	}
}

func validateCourseFields(courseCode, title, department string, credits, capacity int) error {
	if strings.TrimSpace(courseCode) == "" {
		return apperrors.NewValidationError("course code is required")
	}
	if strings.TrimSpace(title) == "" {
		return apperrors.NewValidationError("title is required")
	}
	if strings.TrimSpace(department) == "" {
		return apperrors.NewValidationError("department is required")
	}
	if credits <= 0 {
		return apperrors.NewValidationError("credits must be a positive integer")
	}
	if capacity <= 0 {
		return apperrors.NewValidationError("capacity must be a positive integer")
	}
	return nil
}

// Create creates a course on behalf of the requester. Courses submitted
// by non-admin roles start inactive with one pending approval; an
// admin-created course is active immediately with no approval record.
// Both rows are written in one transaction.
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest, requesterID int64, requesterRole models.RoleType) (*models.Course, *models.CourseApproval, error) {
	if err := validateCourseFields(req.CourseCode, req.Title, req.Department, req.Credits, req.Capacity); err != nil {
		return nil, nil, err
	}

	exists, err := s.courseStore.CodeExists(ctx, req.CourseCode)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check course code: %w", err)
	}
	if exists {
		return nil, nil, apperrors.ErrCourseCodeAlreadyExists
	}

	isAdmin := requesterRole == models.RoleAdmin

	course := &models.Course{
		CourseCode:    strings.TrimSpace(req.CourseCode),
		Title:         req.Title,
		Description:   req.Description,
		Credits:       req.Credits,
		Department:    req.Department,
		Prerequisites: normalizePrerequisites(req.Prerequisites),
		Capacity:      req.Capacity,
		IsActive:      isAdmin,
		CreatedBy:     requesterID,
	}

	var approval *models.CourseApproval
	if !isAdmin {
		approval = &models.CourseApproval{
			RequestedBy: requesterID,
			Status:      models.ApprovalPending,
		}
	}

	if err := s.courseStore.CreateWithApproval(ctx, course, approval); err != nil {
		return nil, nil, err
	}

	s.logger.Info().
		Int64("courseID", course.ID).
		Str("courseCode", course.CourseCode).
		Bool("isActive", course.IsActive).
		Msg("Course created")

	return course, approval, nil
}

// normalizePrerequisites maps the legacy "none"/empty conventions to an
// explicit NULL on write
func normalizePrerequisites(prerequisites *string) *string {
	if prerequisites == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*prerequisites)
	if trimmed == "" || strings.EqualFold(trimmed, "none") {
		return nil
	}
	return &trimmed
}

// List retrieves courses matching the filter
func (s *CourseService) List(ctx context.Context, req *dto.CourseFilterRequest) ([]*models.Course, error) {
	return s.courseStore.List(ctx, repositories.CourseFilter{
		Department:  req.Department,
		IsActive:    req.IsActive,
		Search:      req.Search,
		Credits:     req.Credits,
		MinCapacity: req.MinCapacity,
		MaxCapacity: req.MaxCapacity,
	})
}

// Get retrieves a course by ID
func (s *CourseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseStore.GetByID(ctx, id)
}

// Update applies partial updates to a course. The course code and the
// activation flag are immutable here.
func (s *CourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Credits != nil {
		course.Credits = *req.Credits
	}
	if req.Department != nil {
		course.Department = *req.Department
	}
	if req.Prerequisites != nil {
		course.Prerequisites = normalizePrerequisites(req.Prerequisites)
	}
	if req.Capacity != nil {
		course.Capacity = *req.Capacity
	}

	if err := validateCourseFields(course.CourseCode, course.Title, course.Department, course.Credits, course.Capacity); err != nil {
		return nil, err
	}

	if err := s.courseStore.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// Delete removes a course
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	if err := s.courseStore.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("courseID", id).Msg("Course deleted")
	return nil
}
