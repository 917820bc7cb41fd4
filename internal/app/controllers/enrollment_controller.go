package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models/dto"
	"github.com/emrekoc/campushub/internal/app/services"
	"github.com/emrekoc/campushub/internal/middleware"
)

// EnrollmentController handles student enrollment operations
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
	logger            zerolog.Logger
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService, logger zerolog.Logger) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
		logger:            logger,
	}
}

// Enroll enrolls the authenticated student in a course. The course must be
// active, have a free seat, and all its prerequisites must already be on the
// student's record.
// @Summary Enroll in a course
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EnrollRequest true "Course to enroll in"
// @Success 201 {object} dto.APIResponse{data=dto.EnrollmentResponse}
// @Failure 400 {object} dto.ErrorResponse "Course inactive, full, or missing prerequisite"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled"
// @Router /enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.EnrollRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	enrollment, err := c.enrollmentService.Enroll(ctx.Request.Context(), userID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("userId", userID).
		Int64("courseId", req.CourseID).
		Msg("Student enrolled")

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromEnrollment(enrollment), "Enrolled successfully"))
}

// Drop removes the authenticated student's enrollment in a course
// @Summary Drop a course
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Not enrolled in this course"
// @Router /enrollments/{courseId} [delete]
func (c *EnrollmentController) Drop(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}

	if err := c.enrollmentService.Drop(ctx.Request.Context(), userID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("userId", userID).
		Int64("courseId", courseID).
		Msg("Enrollment dropped")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Enrollment dropped"}, "Course dropped successfully"))
}

// MyEnrollments lists the authenticated student's enrollments with course
// snapshots
// @Summary List my enrollments
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentListResponse}
// @Router /enrollments/me [get]
func (c *EnrollmentController) MyEnrollments(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.ListMine(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.EnrollmentListResponse{Enrollments: make([]dto.EnrollmentResponse, 0, len(enrollments))}
	for _, enrollment := range enrollments {
		resp.Enrollments = append(resp.Enrollments, dto.FromEnrollment(enrollment))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Enrollments retrieved successfully"))
}
