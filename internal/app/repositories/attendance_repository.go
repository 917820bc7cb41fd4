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
	"github.com/emrekoc/campushub/internal/pkg/dberrors"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// Create inserts an attendance record, unique per
// (faculty course, student, date)
func (r *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO attendances (faculty_course_id, student_id, date, status, remarks, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		attendance.FacultyCourseID, attendance.StudentID, attendance.Date,
		attendance.Status, attendance.Remarks, attendance.CreatedBy,
	).Scan(&attendance.ID, &attendance.CreatedAt, &attendance.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAttendanceAlreadyRecorded
		}
		return fmt.Errorf("error creating attendance record: %w", err)
	}
	return nil
}

// GetByID retrieves an attendance record
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	attendance := &models.Attendance{}
	err := r.db.QueryRow(ctx, `
		SELECT id, faculty_course_id, student_id, date, status, remarks, created_by, created_at, updated_at
		FROM attendances
		WHERE id = $1`, id).Scan(
		&attendance.ID, &attendance.FacultyCourseID, &attendance.StudentID,
		&attendance.Date, &attendance.Status, &attendance.Remarks,
		&attendance.CreatedBy, &attendance.CreatedAt, &attendance.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("error retrieving attendance record: %w", err)
	}
	return attendance, nil
}

// ListByFacultyCourse retrieves attendance records for a teaching
// assignment, optionally restricted to one date
func (r *AttendanceRepository) ListByFacultyCourse(ctx context.Context, facultyCourseID int64, date *time.Time) ([]*models.Attendance, error) {
	query := `
		SELECT id, faculty_course_id, student_id, date, status, remarks, created_by, created_at, updated_at
		FROM attendances
		WHERE faculty_course_id = $1`
	args := []interface{}{facultyCourseID}
	if date != nil {
		query += ` AND date = $2`
		args = append(args, *date)
	}
	query += ` ORDER BY date DESC, student_id`

	return r.queryAttendances(ctx, query, args...)
}

// ListByStudent retrieves a student's attendance records
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Attendance, error) {
	return r.queryAttendances(ctx, `
		SELECT id, faculty_course_id, student_id, date, status, remarks, created_by, created_at, updated_at
		FROM attendances
		WHERE student_id = $1
		ORDER BY date DESC`, studentID)
}

func (r *AttendanceRepository) queryAttendances(ctx context.Context, query string, args ...interface{}) ([]*models.Attendance, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance records: %w", err)
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		attendance := &models.Attendance{}
		if err := rows.Scan(
			&attendance.ID, &attendance.FacultyCourseID, &attendance.StudentID,
			&attendance.Date, &attendance.Status, &attendance.Remarks,
			&attendance.CreatedBy, &attendance.CreatedAt, &attendance.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning attendance record: %w", err)
		}
		records = append(records, attendance)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// UpdateStatus updates the status and remarks of an attendance record
func (r *AttendanceRepository) UpdateStatus(ctx context.Context, id int64, status models.AttendanceStatus, remarks *string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE attendances
		SET status = $1, remarks = COALESCE($2, remarks), updated_at = $3
		WHERE id = $4`,
		status, remarks, time.Now(), id)
	if err != nil {
		return fmt.Errorf("error updating attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}
	return nil
}
