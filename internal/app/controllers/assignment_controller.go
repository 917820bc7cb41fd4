package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/app/models/dto"
	"github.com/emrekoc/campushub/internal/app/services"
	"github.com/emrekoc/campushub/internal/middleware"
)

func mapAssignments(assignments []*models.Assignment) []dto.AssignmentResponse {
	resp := make([]dto.AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		resp = append(resp, dto.FromAssignment(assignment))
	}
	return resp
}

// AssignmentController handles assignments, submissions and grading
type AssignmentController struct {
	assignmentService *services.AssignmentService
	logger            zerolog.Logger
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService *services.AssignmentService, logger zerolog.Logger) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
		logger:            logger,
	}
}

// CreateAssignment creates an assignment for a course the caller teaches
// @Summary Create assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAssignmentRequest true "Assignment details"
// @Success 201 {object} dto.APIResponse{data=dto.AssignmentResponse}
// @Failure 403 {object} dto.ErrorResponse "Not assigned to this course"
// @Router /assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateAssignmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	assignment, err := c.assignmentService.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromAssignment(assignment), "Assignment created successfully"))
}

// ListByCourse lists assignments for a course
// @Summary List course assignments
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.AssignmentResponse}
// @Router /assignments/course/{courseId} [get]
func (c *AssignmentController) ListByCourse(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}

	assignments, err := c.assignmentService.ListByCourse(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(mapAssignments(assignments), "Assignments retrieved successfully"))
}

// MyAssignments lists assignments across all courses the authenticated
// student is enrolled in
// @Summary List my assignments
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AssignmentResponse}
// @Router /assignments/me [get]
func (c *AssignmentController) MyAssignments(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	assignments, err := c.assignmentService.ListMine(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(mapAssignments(assignments), "Assignments retrieved successfully"))
}

// Submit submits work for an assignment. Resubmitting replaces the previous
// submission and clears any grade.
// @Summary Submit assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param request body dto.SubmitAssignmentRequest true "Submission file details"
// @Success 201 {object} dto.APIResponse{data=dto.SubmissionResponse}
// @Failure 403 {object} dto.ErrorResponse "Not enrolled in this course"
// @Router /assignments/{id}/submissions [post]
func (c *AssignmentController) Submit(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	assignmentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.SubmitAssignmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	submission, err := c.assignmentService.Submit(ctx.Request.Context(), userID, assignmentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromSubmission(submission), "Assignment submitted"))
}

// MySubmission retrieves the authenticated student's submission for an
// assignment
// @Summary Get my submission
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SubmissionResponse}
// @Failure 404 {object} dto.ErrorResponse "No submission yet"
// @Router /assignments/{id}/submissions/me [get]
func (c *AssignmentController) MySubmission(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	assignmentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	submission, err := c.assignmentService.MySubmission(ctx.Request.Context(), userID, assignmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromSubmission(submission), "Submission retrieved successfully"))
}

// ListSubmissions lists all submissions for an assignment the caller owns
// @Summary List assignment submissions
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.SubmissionResponse}
// @Router /assignments/{id}/submissions [get]
func (c *AssignmentController) ListSubmissions(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	assignmentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	submissions, err := c.assignmentService.ListSubmissions(ctx.Request.Context(), userID, assignmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.SubmissionResponse, 0, len(submissions))
	for _, submission := range submissions {
		resp = append(resp, dto.FromSubmission(submission))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Submissions retrieved successfully"))
}

// GradeSubmission records a grade and feedback on a submission
// @Summary Grade submission
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submissionId path int true "Submission ID"
// @Param request body dto.GradeSubmissionRequest true "Grade (0-100) and feedback"
// @Success 200 {object} dto.APIResponse{data=dto.SubmissionResponse}
// @Router /submissions/{submissionId}/grade [put]
func (c *AssignmentController) GradeSubmission(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	submissionID, ok := pathID(ctx, "submissionId")
	if !ok {
		return
	}

	var req dto.GradeSubmissionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	submission, err := c.assignmentService.Grade(ctx.Request.Context(), userID, submissionID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("submissionId", submissionID).
		Int64("gradedBy", userID).
		Float64("grade", req.Grade).
		Msg("Submission graded")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromSubmission(submission), "Submission graded"))
}
