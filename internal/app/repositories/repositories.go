package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	CourseRepository        *CourseRepository
	ApprovalRepository      *ApprovalRepository
	EnrollmentRepository    *EnrollmentRepository
	FacultyCourseRepository *FacultyCourseRepository
	AttendanceRepository    *AttendanceRepository
	MaterialRepository      *MaterialRepository
	AssignmentRepository    *AssignmentRepository
	NotificationRepository  *NotificationRepository
	PolicyRepository        *PolicyRepository
	ReportRepository        *ReportRepository
	AnalyticsRepository     *AnalyticsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		CourseRepository:        NewCourseRepository(db),
		ApprovalRepository:      NewApprovalRepository(db),
		EnrollmentRepository:    NewEnrollmentRepository(db),
		FacultyCourseRepository: NewFacultyCourseRepository(db),
		AttendanceRepository:    NewAttendanceRepository(db),
		MaterialRepository:      NewMaterialRepository(db),
		AssignmentRepository:    NewAssignmentRepository(db),
		NotificationRepository:  NewNotificationRepository(db),
		PolicyRepository:        NewPolicyRepository(db),
		ReportRepository:        NewReportRepository(db),
		AnalyticsRepository:     NewAnalyticsRepository(db),
	}
}
