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

const materialColumns = `id, course_id, title, description, file_name, file_path, file_size, file_type, material_type, is_published, release_date, created_by, created_at, updated_at, downloads, views`

// MaterialRepository handles database operations for course materials
type MaterialRepository struct {
	db *pgxpool.Pool
}

// NewMaterialRepository creates a new material repository
func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{
		db: db,
	}
}

// Create inserts a course material record
func (r *MaterialRepository) Create(ctx context.Context, material *models.CourseMaterial) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO course_materials (course_id, title, description, file_name, file_path, file_size, file_type, material_type, is_published, release_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`,
		material.CourseID, material.Title, material.Description, material.FileName,
		material.FilePath, material.FileSize, material.FileType, material.MaterialType,
		material.IsPublished, material.ReleaseDate, material.CreatedBy,
	).Scan(&material.ID, &material.CreatedAt, &material.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating course material: %w", err)
	}
	return nil
}

// GetByID retrieves a course material
func (r *MaterialRepository) GetByID(ctx context.Context, id int64) (*models.CourseMaterial, error) {
	material := &models.CourseMaterial{}
	err := r.db.QueryRow(ctx, `
		SELECT `+materialColumns+`
		FROM course_materials
		WHERE id = $1`, id).Scan(
		&material.ID, &material.CourseID, &material.Title, &material.Description,
		&material.FileName, &material.FilePath, &material.FileSize, &material.FileType,
		&material.MaterialType, &material.IsPublished, &material.ReleaseDate,
		&material.CreatedBy, &material.CreatedAt, &material.UpdatedAt,
		&material.Downloads, &material.Views)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("error retrieving course material: %w", err)
	}
	return material, nil
}

// ListByCourse retrieves materials for a course. When publishedOnly is
// set, unpublished materials are excluded (the student view).
func (r *MaterialRepository) ListByCourse(ctx context.Context, courseID int64, publishedOnly bool) ([]*models.CourseMaterial, error) {
	query := `
		SELECT ` + materialColumns + `
		FROM course_materials
		WHERE course_id = $1`
	if publishedOnly {
		query += ` AND is_published = true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing course materials: %w", err)
	}
	defer rows.Close()

	var materials []*models.CourseMaterial
	for rows.Next() {
		material := &models.CourseMaterial{}
		if err := rows.Scan(
			&material.ID, &material.CourseID, &material.Title, &material.Description,
			&material.FileName, &material.FilePath, &material.FileSize, &material.FileType,
			&material.MaterialType, &material.IsPublished, &material.ReleaseDate,
			&material.CreatedBy, &material.CreatedAt, &material.UpdatedAt,
			&material.Downloads, &material.Views,
		); err != nil {
			return nil, fmt.Errorf("error scanning course material: %w", err)
		}
		materials = append(materials, material)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return materials, nil
}

// Update updates a material's title, description and publication flag
func (r *MaterialRepository) Update(ctx context.Context, material *models.CourseMaterial) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE course_materials
		SET title = $1, description = $2, is_published = $3, updated_at = $4
		WHERE id = $5`,
		material.Title, material.Description, material.IsPublished, time.Now(), material.ID)
	if err != nil {
		return fmt.Errorf("error updating course material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMaterialNotFound
	}
	return nil
}

// Delete removes a course material
func (r *MaterialRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM course_materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMaterialNotFound
	}
	return nil
}

// IncrementViews bumps the view counter
func (r *MaterialRepository) IncrementViews(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE course_materials SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error incrementing views: %w", err)
	}
	return nil
}

// IncrementDownloads bumps the download counter
func (r *MaterialRepository) IncrementDownloads(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE course_materials SET downloads = downloads + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error incrementing downloads: %w", err)
	}
	return nil
}
