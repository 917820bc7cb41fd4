package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
)

// ApprovalStore is the persistence surface the approval service needs
type ApprovalStore interface {
	GetByID(ctx context.Context, id int64) (*models.CourseApproval, error)
	List(ctx context.Context, status *models.ApprovalStatus) ([]*models.CourseApproval, error)
	ListByRequester(ctx context.Context, requestedBy int64) ([]*models.CourseApproval, error)
	Decide(ctx context.Context, approvalID int64, status models.ApprovalStatus, decidedBy int64, comments *string) (*models.CourseApproval, error)
}

// NotificationSender lets other services push a notification without
// depending on the whole notification service
type NotificationSender interface {
	Notify(ctx context.Context, userID int64, title, message string, notificationType models.NotificationType, link *string) error
}

// ApprovalService handles the course approval workflow
type ApprovalService struct {
	approvalStore ApprovalStore
	notifier      NotificationSender
	logger        zerolog.Logger
}

// NewApprovalService creates a new ApprovalService
func NewApprovalService(approvalStore ApprovalStore, notifier NotificationSender, logger zerolog.Logger) *ApprovalService {
	return &ApprovalService{
		approvalStore: approvalStore,
		notifier:      notifier,
		logger:        logger,
	}
}

// List retrieves approvals, optionally filtered by status
func (s *ApprovalService) List(ctx context.Context, status *string) ([]*models.CourseApproval, error) {
	var parsed *models.ApprovalStatus
	if status != nil {
		switch st := models.ApprovalStatus(*status); st {
		case models.ApprovalPending, models.ApprovalApproved, models.ApprovalRejected:
			parsed = &st
		default:
			return nil, apperrors.NewValidationError("unknown approval status: " + *status)
		}
	}
	return s.approvalStore.List(ctx, parsed)
}

// ListMine retrieves the approvals the user requested
func (s *ApprovalService) ListMine(ctx context.Context, userID int64) ([]*models.CourseApproval, error) {
	return s.approvalStore.ListByRequester(ctx, userID)
}

// Get retrieves one approval with its course snapshot
func (s *ApprovalService) Get(ctx context.Context, id int64) (*models.CourseApproval, error) {
	return s.approvalStore.GetByID(ctx, id)
}

// Decide applies an approve/reject action exactly once. The store layer
// flips the linked course's activation flag in the same transaction and
// rejects decisions on an already-decided approval.
func (s *ApprovalService) Decide(ctx context.Context, approvalID int64, action string, decidedBy int64, comments *string) (*models.CourseApproval, error) {
	var status models.ApprovalStatus
	switch action {
	case "approve":
		status = models.ApprovalApproved
	case "reject":
		status = models.ApprovalRejected
	default:
		return nil, apperrors.ErrInvalidApprovalAction
	}

	approval, err := s.approvalStore.Decide(ctx, approvalID, status, decidedBy, comments)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("approvalID", approval.ID).
		Int64("courseID", approval.CourseID).
		Str("status", string(approval.Status)).
		Int64("decidedBy", decidedBy).
		Msg("Course approval decided")

	if s.notifier != nil {
		title := "Course request " + string(status)
		message := "Your course request was " + string(status) + "."
		if approval.Course != nil {
			message = "Your request for " + approval.Course.CourseCode + " was " + string(status) + "."
		}
		notificationType := models.NotificationSuccess
		if status == models.ApprovalRejected {
			notificationType = models.NotificationWarning
		}
		if err := s.notifier.Notify(ctx, approval.RequestedBy, title, message, notificationType, nil); err != nil {
			s.logger.Warn().Err(err).Int64("approvalID", approval.ID).Msg("Failed to notify requester")
		}
	}

	return approval, nil
}
