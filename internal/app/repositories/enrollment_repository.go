package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
	"github.com/emrekoc/campushub/internal/pkg/dberrors"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Create inserts an enrollment row. The unique constraint on
// (student_id, course_id) is the last line of defense against concurrent
// double enrollment.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO enrollments (student_id, course_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, enrollment_date`,
		enrollment.StudentID, enrollment.CourseID, enrollment.Status,
	).Scan(&enrollment.ID, &enrollment.EnrollmentDate)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyEnrolled
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}
	return nil
}

// Delete removes the enrollment for a (student, course) pair
func (r *EnrollmentRepository) Delete(ctx context.Context, studentID, courseID int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM enrollments WHERE student_id = $1 AND course_id = $2`,
		studentID, courseID)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}

// Exists checks whether a (student, course) enrollment exists
func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}
	return exists, nil
}

// CountByCourse returns the number of enrollments for a course
func (r *EnrollmentRepository) CountByCourse(ctx context.Context, courseID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM enrollments WHERE course_id = $1`,
		courseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}
	return count, nil
}

// ListByStudent retrieves a student's enrollments with the joined course
// snapshot
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.student_id, e.course_id, e.enrollment_date, e.status,
		       `+courseJoinColumns+`
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = $1
		ORDER BY e.enrollment_date DESC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment := &models.Enrollment{Course: &models.Course{}}
		c := enrollment.Course
		if err := rows.Scan(
			&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID,
			&enrollment.EnrollmentDate, &enrollment.Status,
			&c.ID, &c.CourseCode, &c.Title, &c.Description, &c.Credits, &c.Department,
			&c.Prerequisites, &c.Capacity, &c.IsActive, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning enrollment: %w", err)
		}
		enrollments = append(enrollments, enrollment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// EnrolledCourseCodes returns the course codes of a student's current
// enrollments. Used by the prerequisite check.
func (r *EnrollmentRepository) EnrolledCourseCodes(ctx context.Context, studentID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.course_code
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = $1`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrolled course codes: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("error scanning course code: %w", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return codes, nil
}

// ListStudentsByCourse retrieves the student profiles enrolled in a course
func (r *EnrollmentRepository) ListStudentsByCourse(ctx context.Context, courseID int64) ([]*models.StudentProfile, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.user_id, s.student_id, s.program, s.year_level,
		       u.id, u.email, u.first_name, u.last_name, u.role, u.access_code
		FROM enrollments e
		JOIN students s ON s.id = e.student_id
		JOIN users u ON u.id = s.user_id
		WHERE e.course_id = $1
		ORDER BY u.last_name, u.first_name`, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing course roster: %w", err)
	}
	defer rows.Close()

	var students []*models.StudentProfile
	for rows.Next() {
		profile := &models.StudentProfile{User: &models.User{}}
		u := profile.User
		if err := rows.Scan(
			&profile.ID, &profile.UserID, &profile.StudentID, &profile.Program, &profile.YearLevel,
			&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.AccessCode,
		); err != nil {
			return nil, fmt.Errorf("error scanning roster entry: %w", err)
		}
		students = append(students, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
