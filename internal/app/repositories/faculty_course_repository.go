package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
	"github.com/emrekoc/campushub/internal/pkg/dberrors"
)

// FacultyCourseRepository handles database operations for teaching
// assignments
type FacultyCourseRepository struct {
	db *pgxpool.Pool
}

// NewFacultyCourseRepository creates a new faculty course repository
func NewFacultyCourseRepository(db *pgxpool.Pool) *FacultyCourseRepository {
	return &FacultyCourseRepository{
		db: db,
	}
}

// Create inserts a teaching assignment, unique per (faculty, course,
// semester)
func (r *FacultyCourseRepository) Create(ctx context.Context, fc *models.FacultyCourse) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO faculty_courses (faculty_id, course_id, semester, schedule, room, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		fc.FacultyID, fc.CourseID, fc.Semester, fc.Schedule, fc.Room, fc.IsActive,
	).Scan(&fc.ID, &fc.CreatedAt, &fc.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrFacultyCourseAlreadyExists
		}
		return fmt.Errorf("error creating faculty course: %w", err)
	}
	return nil
}

// GetByID retrieves a teaching assignment
func (r *FacultyCourseRepository) GetByID(ctx context.Context, id int64) (*models.FacultyCourse, error) {
	fc := &models.FacultyCourse{}
	err := r.db.QueryRow(ctx, `
		SELECT id, faculty_id, course_id, semester, schedule, room, is_active, created_at, updated_at
		FROM faculty_courses
		WHERE id = $1`, id).Scan(
		&fc.ID, &fc.FacultyID, &fc.CourseID, &fc.Semester, &fc.Schedule, &fc.Room,
		&fc.IsActive, &fc.CreatedAt, &fc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty course: %w", err)
	}
	return fc, nil
}

// ListByFaculty retrieves a faculty member's teaching assignments with the
// course snapshot and current enrollment count
func (r *FacultyCourseRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]*models.FacultyCourse, error) {
	rows, err := r.db.Query(ctx, `
		SELECT fc.id, fc.faculty_id, fc.course_id, fc.semester, fc.schedule, fc.room, fc.is_active,
		       fc.created_at, fc.updated_at,
		       `+courseJoinColumns+`,
		       (SELECT COUNT(*) FROM enrollments e WHERE e.course_id = fc.course_id) AS student_count
		FROM faculty_courses fc
		JOIN courses c ON c.id = fc.course_id
		WHERE fc.faculty_id = $1
		ORDER BY fc.semester DESC, c.course_code`, facultyID)
	if err != nil {
		return nil, fmt.Errorf("error listing faculty courses: %w", err)
	}
	defer rows.Close()

	var assignments []*models.FacultyCourse
	for rows.Next() {
		fc := &models.FacultyCourse{Course: &models.Course{}}
		c := fc.Course
		if err := rows.Scan(
			&fc.ID, &fc.FacultyID, &fc.CourseID, &fc.Semester, &fc.Schedule, &fc.Room,
			&fc.IsActive, &fc.CreatedAt, &fc.UpdatedAt,
			&c.ID, &c.CourseCode, &c.Title, &c.Description, &c.Credits, &c.Department,
			&c.Prerequisites, &c.Capacity, &c.IsActive, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
			&fc.StudentCount,
		); err != nil {
			return nil, fmt.Errorf("error scanning faculty course: %w", err)
		}
		assignments = append(assignments, fc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// IsAssigned checks whether a faculty member teaches a course in any
// semester
func (r *FacultyCourseRepository) IsAssigned(ctx context.Context, facultyID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM faculty_courses WHERE faculty_id = $1 AND course_id = $2)`,
		facultyID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking teaching assignment: %w", err)
	}
	return exists, nil
}
