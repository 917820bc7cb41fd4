package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/app/models/dto"
)

// PolicyStore is the persistence surface for department policies
type PolicyStore interface {
	Create(ctx context.Context, policy *models.Policy) error
	GetByID(ctx context.Context, id int64) (*models.Policy, error)
	List(ctx context.Context, department *string, activeOnly bool) ([]*models.Policy, error)
	Update(ctx context.Context, policy *models.Policy) error
	Delete(ctx context.Context, id int64) error
}

// PolicyService handles department policies
type PolicyService struct {
	policyStore PolicyStore
	logger      zerolog.Logger
}

// NewPolicyService creates a new PolicyService
func NewPolicyService(policyStore PolicyStore, logger zerolog.Logger) *PolicyService {
	return &PolicyService{
		policyStore: policyStore,
		logger:      logger,
	}
}

// Create creates an active policy owned by the caller
func (s *PolicyService) Create(ctx context.Context, req *dto.CreatePolicyRequest, createdBy int64) (*models.Policy, error) {
	policy := &models.Policy{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Department:  req.Department,
		IsActive:    true,
		CreatedBy:   createdBy,
	}
	if err := s.policyStore.Create(ctx, policy); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("policyID", policy.ID).Str("department", policy.Department).Msg("Policy created")

	return policy, nil
}

// List retrieves policies, optionally restricted to a department and to
// active ones
func (s *PolicyService) List(ctx context.Context, department *string, activeOnly bool) ([]*models.Policy, error) {
	return s.policyStore.List(ctx, department, activeOnly)
}

// Get retrieves a policy
func (s *PolicyService) Get(ctx context.Context, id int64) (*models.Policy, error) {
	return s.policyStore.GetByID(ctx, id)
}

// Update applies partial updates to a policy
func (s *PolicyService) Update(ctx context.Context, id int64, req *dto.UpdatePolicyRequest) (*models.Policy, error) {
	policy, err := s.policyStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		policy.Title = *req.Title
	}
	if req.Description != nil {
		policy.Description = *req.Description
	}
	if req.Content != nil {
		policy.Content = *req.Content
	}
	if req.IsActive != nil {
		policy.IsActive = *req.IsActive
	}

	if err := s.policyStore.Update(ctx, policy); err != nil {
		return nil, err
	}

	return policy, nil
}

// Delete removes a policy
func (s *PolicyService) Delete(ctx context.Context, id int64) error {
	return s.policyStore.Delete(ctx, id)
}
