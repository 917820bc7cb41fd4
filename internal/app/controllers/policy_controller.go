package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models/dto"
	"github.com/emrekoc/campushub/internal/app/services"
	"github.com/emrekoc/campushub/internal/middleware"
)

// PolicyController handles department policies
type PolicyController struct {
	policyService *services.PolicyService
	logger        zerolog.Logger
}

// NewPolicyController creates a new PolicyController
func NewPolicyController(policyService *services.PolicyService, logger zerolog.Logger) *PolicyController {
	return &PolicyController{
		policyService: policyService,
		logger:        logger,
	}
}

// CreatePolicy creates a department policy
// @Summary Create policy
// @Tags policies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePolicyRequest true "Policy details"
// @Success 201 {object} dto.APIResponse{data=dto.PolicyResponse}
// @Router /policies [post]
func (c *PolicyController) CreatePolicy(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreatePolicyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	policy, err := c.policyService.Create(ctx.Request.Context(), &req, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromPolicy(policy), "Policy created successfully"))
}

// ListPolicies lists policies, optionally filtered by department and
// restricted to active ones
// @Summary List policies
// @Tags policies
// @Produce json
// @Security BearerAuth
// @Param department query string false "Filter by department"
// @Param activeOnly query bool false "Only active policies"
// @Success 200 {object} dto.APIResponse{data=[]dto.PolicyResponse}
// @Router /policies [get]
func (c *PolicyController) ListPolicies(ctx *gin.Context) {
	var department *string
	if d := ctx.Query("department"); d != "" {
		department = &d
	}
	activeOnly := ctx.Query("activeOnly") == "true"

	policies, err := c.policyService.List(ctx.Request.Context(), department, activeOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.PolicyResponse, 0, len(policies))
	for _, policy := range policies {
		resp = append(resp, dto.FromPolicy(policy))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Policies retrieved successfully"))
}

// GetPolicy retrieves a single policy
// @Summary Get policy by ID
// @Tags policies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Policy ID"
// @Success 200 {object} dto.APIResponse{data=dto.PolicyResponse}
// @Failure 404 {object} dto.ErrorResponse "Policy not found"
// @Router /policies/{id} [get]
func (c *PolicyController) GetPolicy(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	policy, err := c.policyService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromPolicy(policy), "Policy retrieved successfully"))
}

// UpdatePolicy updates policy fields
// @Summary Update policy
// @Tags policies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Policy ID"
// @Param request body dto.UpdatePolicyRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.PolicyResponse}
// @Router /policies/{id} [put]
func (c *PolicyController) UpdatePolicy(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePolicyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	policy, err := c.policyService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromPolicy(policy), "Policy updated successfully"))
}

// DeletePolicy removes a policy
// @Summary Delete policy
// @Tags policies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Policy ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /policies/{id} [delete]
func (c *PolicyController) DeletePolicy(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.policyService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Policy deleted"}, "Policy deleted successfully"))
}
