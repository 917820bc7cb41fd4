package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models/dto"
	"github.com/emrekoc/campushub/internal/app/services"
	"github.com/emrekoc/campushub/internal/middleware"
)

// ReportController handles reports and department analytics
type ReportController struct {
	reportService *services.ReportService
	logger        zerolog.Logger
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService, logger zerolog.Logger) *ReportController {
	return &ReportController{
		reportService: reportService,
		logger:        logger,
	}
}

// CreateReport creates a report. The content must be valid JSON.
// @Summary Create report
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateReportRequest true "Report details"
// @Success 201 {object} dto.APIResponse{data=dto.ReportResponse}
// @Failure 400 {object} dto.ErrorResponse "Content is not valid JSON"
// @Router /reports [post]
func (c *ReportController) CreateReport(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateReportRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	report, err := c.reportService.Create(ctx.Request.Context(), &req, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromReport(report), "Report created successfully"))
}

// ListReports lists reports, optionally filtered by department and type
// @Summary List reports
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param department query string false "Filter by department"
// @Param type query string false "Filter by report type"
// @Success 200 {object} dto.APIResponse{data=[]dto.ReportResponse}
// @Router /reports [get]
func (c *ReportController) ListReports(ctx *gin.Context) {
	var department, reportType *string
	if d := ctx.Query("department"); d != "" {
		department = &d
	}
	if t := ctx.Query("type"); t != "" {
		reportType = &t
	}

	reports, err := c.reportService.List(ctx.Request.Context(), department, reportType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.ReportResponse, 0, len(reports))
	for _, report := range reports {
		resp = append(resp, dto.FromReport(report))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Reports retrieved successfully"))
}

// GetReport retrieves a single report
// @Summary Get report by ID
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} dto.APIResponse{data=dto.ReportResponse}
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Router /reports/{id} [get]
func (c *ReportController) GetReport(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	report, err := c.reportService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromReport(report), "Report retrieved successfully"))
}

// UpdateReport updates report fields, revalidating the content as JSON when
// it changes
// @Summary Update report
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Param request body dto.UpdateReportRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ReportResponse}
// @Router /reports/{id} [put]
func (c *ReportController) UpdateReport(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateReportRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	report, err := c.reportService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromReport(report), "Report updated successfully"))
}

// DeleteReport removes a report
// @Summary Delete report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /reports/{id} [delete]
func (c *ReportController) DeleteReport(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.reportService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Report deleted"}, "Report deleted successfully"))
}

// DepartmentAnalytics aggregates live statistics for a department: course
// and enrollment counts, approval outcomes, and the most popular courses
// @Summary Get department analytics
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param department path string true "Department name"
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentAnalyticsResponse}
// @Router /analytics/departments/{department} [get]
func (c *ReportController) DepartmentAnalytics(ctx *gin.Context) {
	department := ctx.Param("department")
	if department == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Department is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	analytics, err := c.reportService.DepartmentAnalytics(ctx.Request.Context(), department)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(analytics, "Analytics retrieved successfully"))
}
