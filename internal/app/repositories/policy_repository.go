package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
)

// PolicyRepository handles database operations for department policies
type PolicyRepository struct {
	db *pgxpool.Pool
}

// NewPolicyRepository creates a new policy repository
func NewPolicyRepository(db *pgxpool.Pool) *PolicyRepository {
	return &PolicyRepository{
		db: db,
	}
}

// Create inserts a department policy
func (r *PolicyRepository) Create(ctx context.Context, policy *models.Policy) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO policies (title, description, content, department, is_active, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		policy.Title, policy.Description, policy.Content, policy.Department,
		policy.IsActive, policy.CreatedBy,
	).Scan(&policy.ID, &policy.CreatedAt, &policy.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating policy: %w", err)
	}
	return nil
}

// GetByID retrieves a policy
func (r *PolicyRepository) GetByID(ctx context.Context, id int64) (*models.Policy, error) {
	policy := &models.Policy{}
	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, content, department, is_active, created_by, created_at, updated_at
		FROM policies
		WHERE id = $1`, id).Scan(
		&policy.ID, &policy.Title, &policy.Description, &policy.Content,
		&policy.Department, &policy.IsActive, &policy.CreatedBy,
		&policy.CreatedAt, &policy.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPolicyNotFound
		}
		return nil, fmt.Errorf("error retrieving policy: %w", err)
	}
	return policy, nil
}

// List retrieves policies, optionally restricted to a department and to
// active ones
func (r *PolicyRepository) List(ctx context.Context, department *string, activeOnly bool) ([]*models.Policy, error) {
	query := `
		SELECT id, title, description, content, department, is_active, created_by, created_at, updated_at
		FROM policies
		WHERE 1=1`
	args := []interface{}{}
	argPos := 1
	if department != nil {
		query += fmt.Sprintf(" AND department = $%d", argPos)
		args = append(args, *department)
		argPos++
	}
	if activeOnly {
		query += " AND is_active = true"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing policies: %w", err)
	}
	defer rows.Close()

	var policies []*models.Policy
	for rows.Next() {
		policy := &models.Policy{}
		if err := rows.Scan(
			&policy.ID, &policy.Title, &policy.Description, &policy.Content,
			&policy.Department, &policy.IsActive, &policy.CreatedBy,
			&policy.CreatedAt, &policy.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning policy: %w", err)
		}
		policies = append(policies, policy)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return policies, nil
}

// Update updates a policy
func (r *PolicyRepository) Update(ctx context.Context, policy *models.Policy) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE policies
		SET title = $1, description = $2, content = $3, is_active = $4, updated_at = $5
		WHERE id = $6`,
		policy.Title, policy.Description, policy.Content, policy.IsActive,
		time.Now(), policy.ID)
	if err != nil {
		return fmt.Errorf("error updating policy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPolicyNotFound
	}
	return nil
}

// Delete removes a policy
func (r *PolicyRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM policies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting policy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPolicyNotFound
	}
	return nil
}
