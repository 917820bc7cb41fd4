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

func mapApprovals(approvals []*models.CourseApproval) []dto.ApprovalResponse {
	resp := make([]dto.ApprovalResponse, 0, len(approvals))
	for _, approval := range approvals {
		resp = append(resp, dto.FromApproval(approval))
	}
	return resp
}

// ApprovalController handles the course approval workflow
type ApprovalController struct {
	approvalService *services.ApprovalService
	logger          zerolog.Logger
}

// NewApprovalController creates a new ApprovalController
func NewApprovalController(approvalService *services.ApprovalService, logger zerolog.Logger) *ApprovalController {
	return &ApprovalController{
		approvalService: approvalService,
		logger:          logger,
	}
}

// ListApprovals retrieves approval requests, optionally filtered by status
// @Summary List approval requests
// @Tags approvals
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (PENDING, APPROVED, REJECTED)"
// @Success 200 {object} dto.APIResponse{data=[]dto.ApprovalResponse}
// @Router /approvals [get]
func (c *ApprovalController) ListApprovals(ctx *gin.Context) {
	var status *string
	if s := ctx.Query("status"); s != "" {
		status = &s
	}

	approvals, err := c.approvalService.List(ctx.Request.Context(), status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(mapApprovals(approvals), "Approvals retrieved successfully"))
}

// ListMyApprovals retrieves approval requests opened by the caller
// @Summary List my approval requests
// @Tags approvals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ApprovalResponse}
// @Router /approvals/mine [get]
func (c *ApprovalController) ListMyApprovals(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	approvals, err := c.approvalService.ListMine(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(mapApprovals(approvals), "Approvals retrieved successfully"))
}

// GetApproval retrieves a single approval request with its course
// @Summary Get approval request
// @Tags approvals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Approval ID"
// @Success 200 {object} dto.APIResponse{data=dto.ApprovalResponse}
// @Failure 404 {object} dto.ErrorResponse "Approval not found"
// @Router /approvals/{id} [get]
func (c *ApprovalController) GetApproval(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	approval, err := c.approvalService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromApproval(approval), "Approval retrieved successfully"))
}

// DecideApproval approves or rejects a pending request. Approving flips the
// course active in the same transaction; a decided request cannot be decided
// again.
// @Summary Decide approval request
// @Tags approvals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Approval ID"
// @Param request body dto.ApprovalActionRequest true "approve or reject, with optional comments"
// @Success 200 {object} dto.APIResponse{data=dto.ApprovalResponse}
// @Failure 409 {object} dto.ErrorResponse "Approval already decided"
// @Router /approvals/{id}/decision [put]
func (c *ApprovalController) DecideApproval(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.ApprovalActionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	approval, err := c.approvalService.Decide(ctx.Request.Context(), id, req.Action, userID, req.Comments)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("approvalId", id).
		Int64("decidedBy", userID).
		Str("action", req.Action).
		Msg("Approval decided")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromApproval(approval), "Approval "+req.Action+"d"))
}
