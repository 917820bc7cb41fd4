package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrekoc/campushub/internal/app/models"
)

// DepartmentStats aggregates course and enrollment activity for one
// department
type DepartmentStats struct {
	Department       string
	CourseCount      int
	ActiveCourses    int
	EnrollmentCount  int
	PendingApprovals int
	ApprovedCourses  int
	RejectedCourses  int
}

// PopularCourse is a course ranked by its enrollment count
type PopularCourse struct {
	CourseID    int64
	CourseCode  string
	Title       string
	Enrollments int
}

// AnalyticsRepository computes department-level aggregates
type AnalyticsRepository struct {
	db *pgxpool.Pool
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{
		db: db,
	}
}

// DepartmentStats aggregates courses, enrollments and approval outcomes
// for a department
func (r *AnalyticsRepository) DepartmentStats(ctx context.Context, department string) (*DepartmentStats, error) {
	stats := &DepartmentStats{Department: department}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_active),
		       COALESCE((SELECT COUNT(*) FROM enrollments e JOIN courses c2 ON c2.id = e.course_id WHERE c2.department = $1), 0)
		FROM courses
		WHERE department = $1`,
		department).Scan(&stats.CourseCount, &stats.ActiveCourses, &stats.EnrollmentCount)
	if err != nil {
		return nil, fmt.Errorf("error aggregating department courses: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE ca.status = $2),
		       COUNT(*) FILTER (WHERE ca.status = $3),
		       COUNT(*) FILTER (WHERE ca.status = $4)
		FROM course_approvals ca
		JOIN courses c ON c.id = ca.course_id
		WHERE c.department = $1`,
		department, models.ApprovalPending, models.ApprovalApproved, models.ApprovalRejected,
	).Scan(&stats.PendingApprovals, &stats.ApprovedCourses, &stats.RejectedCourses)
	if err != nil {
		return nil, fmt.Errorf("error aggregating department approvals: %w", err)
	}

	return stats, nil
}

// PopularCourses returns the department's most-enrolled courses
func (r *AnalyticsRepository) PopularCourses(ctx context.Context, department string, limit int) ([]PopularCourse, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.course_code, c.title, COUNT(e.id) AS enrollments
		FROM courses c
		LEFT JOIN enrollments e ON e.course_id = c.id
		WHERE c.department = $1
		GROUP BY c.id, c.course_code, c.title
		ORDER BY enrollments DESC, c.course_code
		LIMIT $2`, department, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing popular courses: %w", err)
	}
	defer rows.Close()

	var popular []PopularCourse
	for rows.Next() {
		var entry PopularCourse
		if err := rows.Scan(&entry.CourseID, &entry.CourseCode, &entry.Title, &entry.Enrollments); err != nil {
			return nil, fmt.Errorf("error scanning popular course: %w", err)
		}
		popular = append(popular, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return popular, nil
}
