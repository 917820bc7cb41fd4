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

const reportColumns = `id, title, description, type, content, summary, date_range, department, created_by, created_at, updated_at`

// ReportRepository handles database operations for reports
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

// Create inserts a report
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO reports (title, description, type, content, summary, date_range, department, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		report.Title, report.Description, report.Type, report.Content,
		report.Summary, report.DateRange, report.Department, report.CreatedBy,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating report: %w", err)
	}
	return nil
}

// GetByID retrieves a report
func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*models.Report, error) {
	report := &models.Report{}
	err := r.db.QueryRow(ctx, `
		SELECT `+reportColumns+`
		FROM reports
		WHERE id = $1`, id).Scan(
		&report.ID, &report.Title, &report.Description, &report.Type,
		&report.Content, &report.Summary, &report.DateRange, &report.Department,
		&report.CreatedBy, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("error retrieving report: %w", err)
	}
	return report, nil
}

// List retrieves reports, optionally restricted to a department and type
func (r *ReportRepository) List(ctx context.Context, department *string, reportType *models.ReportType) ([]*models.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE 1=1`
	args := []interface{}{}
	argPos := 1
	if department != nil {
		query += fmt.Sprintf(" AND department = $%d", argPos)
		args = append(args, *department)
		argPos++
	}
	if reportType != nil {
		query += fmt.Sprintf(" AND type = $%d", argPos)
		args = append(args, *reportType)
		argPos++
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing reports: %w", err)
	}
	defer rows.Close()

	var reports []*models.Report
	for rows.Next() {
		report := &models.Report{}
		if err := rows.Scan(
			&report.ID, &report.Title, &report.Description, &report.Type,
			&report.Content, &report.Summary, &report.DateRange, &report.Department,
			&report.CreatedBy, &report.CreatedAt, &report.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning report: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

// Update updates a report
func (r *ReportRepository) Update(ctx context.Context, report *models.Report) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reports
		SET title = $1, description = $2, content = $3, summary = $4, date_range = $5, updated_at = $6
		WHERE id = $7`,
		report.Title, report.Description, report.Content, report.Summary,
		report.DateRange, time.Now(), report.ID)
	if err != nil {
		return fmt.Errorf("error updating report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrReportNotFound
	}
	return nil
}

// Delete removes a report
func (r *ReportRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrReportNotFound
	}
	return nil
}
