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
	"github.com/emrekoc/campushub/internal/pkg/dberrors"
)

const courseColumns = `id, course_code, title, description, credits, department, prerequisites, capacity, is_active, created_by, created_at, updated_at`

// CourseFilter carries the optional course list filters, combined with
// AND semantics
type CourseFilter struct {
	Department  *string
	IsActive    *bool
	Search      *string
	Credits     *int
	MinCapacity *int
	MaxCapacity *int
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	err := row.Scan(
		&course.ID, &course.CourseCode, &course.Title, &course.Description,
		&course.Credits, &course.Department, &course.Prerequisites, &course.Capacity,
		&course.IsActive, &course.CreatedBy, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error scanning course: %w", err)
	}
	return course, nil
}

// CreateWithApproval creates a course and its pending approval record in
// one transaction. A course submitted by a non-admin starts inactive; an
// admin-created course is activated immediately and needs no approval row.
func (r *CourseRepository) CreateWithApproval(ctx context.Context, course *models.Course, approval *models.CourseApproval) error {
	return db.WithTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO courses (course_code, title, description, credits, department, prerequisites, capacity, is_active, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at, updated_at`,
			course.CourseCode, course.Title, course.Description, course.Credits,
			course.Department, course.Prerequisites, course.Capacity, course.IsActive, course.CreatedBy,
		).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "courses_course_code_key") {
				return apperrors.ErrCourseCodeAlreadyExists
			}
			return fmt.Errorf("error creating course: %w", err)
		}

		if approval == nil {
			return nil
		}

		approval.CourseID = course.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO course_approvals (course_id, requested_by, status)
			VALUES ($1, $2, $3)
			RETURNING id, requested_at, updated_at`,
			approval.CourseID, approval.RequestedBy, approval.Status,
		).Scan(&approval.ID, &approval.RequestedAt, &approval.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error creating course approval: %w", err)
		}

		return nil
	})
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return scanCourse(r.db.QueryRow(ctx, `
		SELECT `+courseColumns+`
		FROM courses
		WHERE id = $1`, id))
}

// GetByCode retrieves a course by its course code
func (r *CourseRepository) GetByCode(ctx context.Context, courseCode string) (*models.Course, error) {
	return scanCourse(r.db.QueryRow(ctx, `
		SELECT `+courseColumns+`
		FROM courses
		WHERE course_code = $1`, courseCode))
}

// CodeExists checks if a course code already exists
func (r *CourseRepository) CodeExists(ctx context.Context, courseCode string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE course_code = $1)`,
		courseCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course code: %w", err)
	}
	return exists, nil
}

// List retrieves courses matching the filter
func (r *CourseRepository) List(ctx context.Context, filter CourseFilter) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.Department != nil {
		query += fmt.Sprintf(" AND department = $%d", argPos)
		args = append(args, *filter.Department)
		argPos++
	}
	if filter.IsActive != nil {
		query += fmt.Sprintf(" AND is_active = $%d", argPos)
		args = append(args, *filter.IsActive)
		argPos++
	}
	if filter.Search != nil {
		query += fmt.Sprintf(" AND (course_code ILIKE $%d OR title ILIKE $%d OR description ILIKE $%d)", argPos, argPos, argPos)
		args = append(args, "%"+*filter.Search+"%")
		argPos++
	}
	if filter.Credits != nil {
		query += fmt.Sprintf(" AND credits = $%d", argPos)
		args = append(args, *filter.Credits)
		argPos++
	}
	if filter.MinCapacity != nil {
		query += fmt.Sprintf(" AND capacity >= $%d", argPos)
		args = append(args, *filter.MinCapacity)
		argPos++
	}
	if filter.MaxCapacity != nil {
		query += fmt.Sprintf(" AND capacity <= $%d", argPos)
		args = append(args, *filter.MaxCapacity)
		argPos++
	}

	query += " ORDER BY course_code"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(
			&course.ID, &course.CourseCode, &course.Title, &course.Description,
			&course.Credits, &course.Department, &course.Prerequisites, &course.Capacity,
			&course.IsActive, &course.CreatedBy, &course.CreatedAt, &course.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Update updates a course's mutable fields. The course code and the
// is_active flag are not updatable here; activation is owned by the
// approval workflow.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE courses
		SET title = $1, description = $2, credits = $3, department = $4, prerequisites = $5, capacity = $6, updated_at = $7
		WHERE id = $8`,
		course.Title, course.Description, course.Credits, course.Department,
		course.Prerequisites, course.Capacity, time.Now(), course.ID)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Delete removes a course and, via cascade rules, its approvals,
// enrollments and attached records
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
