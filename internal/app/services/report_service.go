package services

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/app/models/dto"
	"github.com/emrekoc/campushub/internal/app/repositories"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
)

// ReportStore is the persistence surface for reports
type ReportStore interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id int64) (*models.Report, error)
	List(ctx context.Context, department *string, reportType *models.ReportType) ([]*models.Report, error)
	Update(ctx context.Context, report *models.Report) error
	Delete(ctx context.Context, id int64) error
}

// AnalyticsStore computes department aggregates
type AnalyticsStore interface {
	DepartmentStats(ctx context.Context, department string) (*repositories.DepartmentStats, error)
	PopularCourses(ctx context.Context, department string, limit int) ([]repositories.PopularCourse, error)
}

// ReportService handles reports and department analytics
type ReportService struct {
	reportStore    ReportStore
	analyticsStore AnalyticsStore
	logger         zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(reportStore ReportStore, analyticsStore AnalyticsStore, logger zerolog.Logger) *ReportService {
	return &ReportService{
		reportStore:    reportStore,
		analyticsStore: analyticsStore,
		logger:         logger,
	}
}

// Create creates a report. Content must be a valid JSON document.
func (s *ReportService) Create(ctx context.Context, req *dto.CreateReportRequest, createdBy int64) (*models.Report, error) {
	reportType, ok := models.ParseReportType(req.Type)
	if !ok {
		return nil, apperrors.NewValidationError("unknown report type: " + req.Type)
	}

	if !json.Valid([]byte(req.Content)) {
		return nil, apperrors.ErrInvalidReportContent
	}

	report := &models.Report{
		Title:       req.Title,
		Description: req.Description,
		Type:        reportType,
		Content:     req.Content,
		Summary:     req.Summary,
		DateRange:   req.DateRange,
		Department:  req.Department,
		CreatedBy:   createdBy,
	}
	if err := s.reportStore.Create(ctx, report); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("reportID", report.ID).Str("type", string(report.Type)).Msg("Report created")

	return report, nil
}

// List retrieves reports, optionally restricted to a department and type
func (s *ReportService) List(ctx context.Context, department, reportType *string) ([]*models.Report, error) {
	var parsed *models.ReportType
	if reportType != nil {
		rt, ok := models.ParseReportType(*reportType)
		if !ok {
			return nil, apperrors.NewValidationError("unknown report type: " + *reportType)
		}
		parsed = &rt
	}
	return s.reportStore.List(ctx, department, parsed)
}

// Get retrieves a report
func (s *ReportService) Get(ctx context.Context, id int64) (*models.Report, error) {
	return s.reportStore.GetByID(ctx, id)
}

// Update applies partial updates to a report, revalidating JSON content
func (s *ReportService) Update(ctx context.Context, id int64, req *dto.UpdateReportRequest) (*models.Report, error) {
	report, err := s.reportStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		report.Title = *req.Title
	}
	if req.Description != nil {
		report.Description = *req.Description
	}
	if req.Content != nil {
		if !json.Valid([]byte(*req.Content)) {
			return nil, apperrors.ErrInvalidReportContent
		}
		report.Content = *req.Content
	}
	if req.Summary != nil {
		report.Summary = req.Summary
	}
	if req.DateRange != nil {
		report.DateRange = req.DateRange
	}

	if err := s.reportStore.Update(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

// Delete removes a report
func (s *ReportService) Delete(ctx context.Context, id int64) error {
	return s.reportStore.Delete(ctx, id)
}

// DepartmentAnalytics aggregates course, enrollment and approval activity
// for one department, including its most-enrolled courses
func (s *ReportService) DepartmentAnalytics(ctx context.Context, department string) (*dto.DepartmentAnalyticsResponse, error) {
	stats, err := s.analyticsStore.DepartmentStats(ctx, department)
	if err != nil {
		return nil, err
	}

	popular, err := s.analyticsStore.PopularCourses(ctx, department, 5)
	if err != nil {
		return nil, err
	}

	resp := &dto.DepartmentAnalyticsResponse{
		Department:       stats.Department,
		CourseCount:      stats.CourseCount,
		ActiveCourses:    stats.ActiveCourses,
		EnrollmentCount:  stats.EnrollmentCount,
		PendingApprovals: stats.PendingApprovals,
		ApprovedCourses:  stats.ApprovedCourses,
		RejectedCourses:  stats.RejectedCourses,
		PopularCourses:   make([]dto.PopularCourseEntry, 0, len(popular)),
	}
	for _, entry := range popular {
		resp.PopularCourses = append(resp.PopularCourses, dto.PopularCourseEntry{
			CourseID:    entry.CourseID,
			CourseCode:  entry.CourseCode,
			Title:       entry.Title,
			Enrollments: entry.Enrollments,
		})
	}

	return resp, nil
}
