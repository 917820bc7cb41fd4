package services

import (
	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/repositories"
	"github.com/emrekoc/campushub/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService         *AuthService
	UserService         *UserService
	CourseService       *CourseService
	ApprovalService     *ApprovalService
	EnrollmentService   *EnrollmentService
	TeachingService     *TeachingService
	AssignmentService   *AssignmentService
	NotificationService *NotificationService
	PolicyService       *PolicyService
	ReportService       *ReportService
}

// NewServices wires all services to the repository layer
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, logger zerolog.Logger) *Services {
	notificationService := NewNotificationService(repos.NotificationRepository, logger)

	return &Services{
		AuthService:         NewAuthService(repos.UserRepository, jwtService, logger),
		UserService:         NewUserService(repos.UserRepository, logger),
		CourseService:       NewCourseService(repos.CourseRepository, logger),
		ApprovalService:     NewApprovalService(repos.ApprovalRepository, notificationService, logger),
		EnrollmentService:   NewEnrollmentService(repos.EnrollmentRepository, repos.CourseRepository, repos.UserRepository, logger),
		TeachingService: NewTeachingService(
			repos.FacultyCourseRepository,
			repos.AttendanceRepository,
			repos.MaterialRepository,
			repos.EnrollmentRepository,
			repos.CourseRepository,
			repos.UserRepository,
			logger,
		),
		AssignmentService: NewAssignmentService(
			repos.AssignmentRepository,
			repos.EnrollmentRepository,
			repos.FacultyCourseRepository,
			repos.UserRepository,
			logger,
		),
		NotificationService: notificationService,
		PolicyService:       NewPolicyService(repos.PolicyRepository, logger),
		ReportService:       NewReportService(repos.ReportRepository, repos.AnalyticsRepository, logger),
	}
}
