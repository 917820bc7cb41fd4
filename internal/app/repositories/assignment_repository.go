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

const submissionColumns = `id, assignment_id, student_id, file_name, file_path, file_size, file_type, submission_date, is_late, comments, status, grade, feedback, graded_by, graded_at`

// AssignmentRepository handles database operations for assignments and
// their submissions
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{
		db: db,
	}
}

// Create inserts an assignment
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO assignments (course_id, title, description, due_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		assignment.CourseID, assignment.Title, assignment.Description, assignment.DueDate,
	).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating assignment: %w", err)
	}
	return nil
}

// GetByID retrieves an assignment
func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*models.Assignment, error) {
	assignment := &models.Assignment{}
	err := r.db.QueryRow(ctx, `
		SELECT id, course_id, title, description, due_date, created_at, updated_at
		FROM assignments
		WHERE id = $1`, id).Scan(
		&assignment.ID, &assignment.CourseID, &assignment.Title, &assignment.Description,
		&assignment.DueDate, &assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("error retrieving assignment: %w", err)
	}
	return assignment, nil
}

// ListByCourse retrieves assignments for a course ordered by due date
func (r *AssignmentRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Assignment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, course_id, title, description, due_date, created_at, updated_at
		FROM assignments
		WHERE course_id = $1
		ORDER BY due_date`, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		assignment := &models.Assignment{}
		if err := rows.Scan(
			&assignment.ID, &assignment.CourseID, &assignment.Title, &assignment.Description,
			&assignment.DueDate, &assignment.CreatedAt, &assignment.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning assignment: %w", err)
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// ListByStudentCourses retrieves assignments across the courses a student
// is enrolled in
func (r *AssignmentRepository) ListByStudentCourses(ctx context.Context, studentID int64) ([]*models.Assignment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.course_id, a.title, a.description, a.due_date, a.created_at, a.updated_at
		FROM assignments a
		JOIN enrollments e ON e.course_id = a.course_id
		WHERE e.student_id = $1
		ORDER BY a.due_date`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing student assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		assignment := &models.Assignment{}
		if err := rows.Scan(
			&assignment.ID, &assignment.CourseID, &assignment.Title, &assignment.Description,
			&assignment.DueDate, &assignment.CreatedAt, &assignment.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning assignment: %w", err)
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// UpsertSubmission stores a student's submission. Resubmission for the
// same (assignment, student) pair overwrites the previous one and resets
// any grading.
func (r *AssignmentRepository) UpsertSubmission(ctx context.Context, submission *models.AssignmentSubmission) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO assignment_submissions (assignment_id, student_id, file_name, file_path, file_size, file_type, is_late, comments, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (assignment_id, student_id) DO UPDATE
		SET file_name = EXCLUDED.file_name,
		    file_path = EXCLUDED.file_path,
		    file_size = EXCLUDED.file_size,
		    file_type = EXCLUDED.file_type,
		    submission_date = now(),
		    is_late = EXCLUDED.is_late,
		    comments = EXCLUDED.comments,
		    status = EXCLUDED.status,
		    grade = NULL,
		    feedback = NULL,
		    graded_by = NULL,
		    graded_at = NULL
		RETURNING id, submission_date`,
		submission.AssignmentID, submission.StudentID, submission.FileName,
		submission.FilePath, submission.FileSize, submission.FileType,
		submission.IsLate, submission.Comments, submission.Status,
	).Scan(&submission.ID, &submission.SubmissionDate)
	if err != nil {
		return fmt.Errorf("error storing submission: %w", err)
	}
	return nil
}

// GetSubmission retrieves the current submission for an (assignment,
// student) pair
func (r *AssignmentRepository) GetSubmission(ctx context.Context, assignmentID, studentID int64) (*models.AssignmentSubmission, error) {
	return r.scanSubmission(r.db.QueryRow(ctx, `
		SELECT `+submissionColumns+`
		FROM assignment_submissions
		WHERE assignment_id = $1 AND student_id = $2`, assignmentID, studentID))
}

// GetSubmissionByID retrieves a submission by its ID
func (r *AssignmentRepository) GetSubmissionByID(ctx context.Context, id int64) (*models.AssignmentSubmission, error) {
	return r.scanSubmission(r.db.QueryRow(ctx, `
		SELECT `+submissionColumns+`
		FROM assignment_submissions
		WHERE id = $1`, id))
}

func (r *AssignmentRepository) scanSubmission(row pgx.Row) (*models.AssignmentSubmission, error) {
	submission := &models.AssignmentSubmission{}
	err := row.Scan(
		&submission.ID, &submission.AssignmentID, &submission.StudentID,
		&submission.FileName, &submission.FilePath, &submission.FileSize,
		&submission.FileType, &submission.SubmissionDate, &submission.IsLate,
		&submission.Comments, &submission.Status, &submission.Grade,
		&submission.Feedback, &submission.GradedBy, &submission.GradedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("error scanning submission: %w", err)
	}
	return submission, nil
}

// ListSubmissions retrieves all submissions for an assignment
func (r *AssignmentRepository) ListSubmissions(ctx context.Context, assignmentID int64) ([]*models.AssignmentSubmission, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+submissionColumns+`
		FROM assignment_submissions
		WHERE assignment_id = $1
		ORDER BY submission_date`, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("error listing submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*models.AssignmentSubmission
	for rows.Next() {
		submission := &models.AssignmentSubmission{}
		if err := rows.Scan(
			&submission.ID, &submission.AssignmentID, &submission.StudentID,
			&submission.FileName, &submission.FilePath, &submission.FileSize,
			&submission.FileType, &submission.SubmissionDate, &submission.IsLate,
			&submission.Comments, &submission.Status, &submission.Grade,
			&submission.Feedback, &submission.GradedBy, &submission.GradedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning submission: %w", err)
		}
		submissions = append(submissions, submission)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return submissions, nil
}

// GradeSubmission records a grade and feedback for a submission
func (r *AssignmentRepository) GradeSubmission(ctx context.Context, id int64, grade float64, feedback *string, gradedBy int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE assignment_submissions
		SET grade = $1, feedback = $2, graded_by = $3, graded_at = $4, status = $5
		WHERE id = $6`,
		grade, feedback, gradedBy, time.Now(), models.SubmissionStatusGraded, id)
	if err != nil {
		return fmt.Errorf("error grading submission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSubmissionNotFound
	}
	return nil
}
