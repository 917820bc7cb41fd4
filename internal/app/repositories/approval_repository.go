package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/db"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
)

const approvalColumns = `ca.id, ca.course_id, ca.requested_by, ca.approved_by, ca.status, ca.comments, ca.requested_at, ca.updated_at`

// ApprovalRepository handles database operations for course approvals
type ApprovalRepository struct {
	db *pgxpool.Pool
}

// NewApprovalRepository creates a new approval repository
func NewApprovalRepository(db *pgxpool.Pool) *ApprovalRepository {
	return &ApprovalRepository{
		db: db,
	}
}

func scanApprovalWithCourse(row pgx.Row) (*models.CourseApproval, error) {
	approval := &models.CourseApproval{Course: &models.Course{}}
	c := approval.Course
	err := row.Scan(
		&approval.ID, &approval.CourseID, &approval.RequestedBy, &approval.ApprovedBy,
		&approval.Status, &approval.Comments, &approval.RequestedAt, &approval.UpdatedAt,
		&c.ID, &c.CourseCode, &c.Title, &c.Description, &c.Credits, &c.Department,
		&c.Prerequisites, &c.Capacity, &c.IsActive, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApprovalNotFound
		}
		return nil, fmt.Errorf("error scanning approval: %w", err)
	}
	return approval, nil
}

// GetByID retrieves an approval together with its course snapshot
func (r *ApprovalRepository) GetByID(ctx context.Context, id int64) (*models.CourseApproval, error) {
	return scanApprovalWithCourse(r.db.QueryRow(ctx, `
		SELECT `+approvalColumns+`, `+courseJoinColumns+`
		FROM course_approvals ca
		JOIN courses c ON c.id = ca.course_id
		WHERE ca.id = $1`, id))
}

const courseJoinColumns = `c.id, c.course_code, c.title, c.description, c.credits, c.department, c.prerequisites, c.capacity, c.is_active, c.created_by, c.created_at, c.updated_at`

// List retrieves approvals, optionally filtered by status
func (r *ApprovalRepository) List(ctx context.Context, status *models.ApprovalStatus) ([]*models.CourseApproval, error) {
	query := `
		SELECT ` + approvalColumns + `, ` + courseJoinColumns + `
		FROM course_approvals ca
		JOIN courses c ON c.id = ca.course_id`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE ca.status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY ca.requested_at DESC`

	return r.queryApprovals(ctx, query, args...)
}

// ListByRequester retrieves the approvals requested by a user
func (r *ApprovalRepository) ListByRequester(ctx context.Context, requestedBy int64) ([]*models.CourseApproval, error) {
	query := `
		SELECT ` + approvalColumns + `, ` + courseJoinColumns + `
		FROM course_approvals ca
		JOIN courses c ON c.id = ca.course_id
		WHERE ca.requested_by = $1
		ORDER BY ca.requested_at DESC`
	return r.queryApprovals(ctx, query, requestedBy)
}

func (r *ApprovalRepository) queryApprovals(ctx context.Context, query string, args ...interface{}) ([]*models.CourseApproval, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing approvals: %w", err)
	}
	defer rows.Close()

	var approvals []*models.CourseApproval
	for rows.Next() {
		approval := &models.CourseApproval{Course: &models.Course{}}
		c := approval.Course
		if err := rows.Scan(
			&approval.ID, &approval.CourseID, &approval.RequestedBy, &approval.ApprovedBy,
			&approval.Status, &approval.Comments, &approval.RequestedAt, &approval.UpdatedAt,
			&c.ID, &c.CourseCode, &c.Title, &c.Description, &c.Credits, &c.Department,
			&c.Prerequisites, &c.Capacity, &c.IsActive, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning approval: %w", err)
		}
		approvals = append(approvals, approval)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return approvals, nil
}

// Decide applies a terminal status to a pending approval and sets the
// linked course's is_active flag to match, in one transaction. The WHERE
// clause on the pending status makes a second decision a no-op, reported
// as ErrApprovalAlreadyDecided.
func (r *ApprovalRepository) Decide(ctx context.Context, approvalID int64, status models.ApprovalStatus, decidedBy int64, comments *string) (*models.CourseApproval, error) {
	if !status.Decided() {
		return nil, apperrors.ErrInvalidApprovalAction
	}

	var approval *models.CourseApproval
	err := db.WithTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		now := time.Now()

		var courseID int64
		err := tx.QueryRow(ctx, `
			UPDATE course_approvals
			SET status = $1, approved_by = $2, comments = COALESCE($3, comments), updated_at = $4
			WHERE id = $5 AND status = $6
			RETURNING course_id`,
			status, decidedBy, comments, now, approvalID, models.ApprovalPending,
		).Scan(&courseID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// Either missing or already decided; look it up to tell apart
				var existing models.ApprovalStatus
				lookupErr := tx.QueryRow(ctx, `
					SELECT status FROM course_approvals WHERE id = $1`,
					approvalID).Scan(&existing)
				if errors.Is(lookupErr, pgx.ErrNoRows) {
					return apperrors.ErrApprovalNotFound
				}
				if lookupErr != nil {
					return fmt.Errorf("error checking approval: %w", lookupErr)
				}
				return apperrors.ErrApprovalAlreadyDecided
			}
			return fmt.Errorf("error deciding approval: %w", err)
		}

		isActive := status == models.ApprovalApproved
		if _, err := tx.Exec(ctx, `
			UPDATE courses SET is_active = $1, updated_at = $2 WHERE id = $3`,
			isActive, now, courseID); err != nil {
			return fmt.Errorf("error updating course activation: %w", err)
		}

		approval, err = scanApprovalWithCourse(tx.QueryRow(ctx, `
			SELECT `+approvalColumns+`, `+courseJoinColumns+`
			FROM course_approvals ca
			JOIN courses c ON c.id = ca.course_id
			WHERE ca.id = $1`, approvalID))
		return err
	})
	if err != nil {
		return nil, err
	}

	return approval, nil
}
