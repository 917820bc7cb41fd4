// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/app/models/dto"
	"github.com/emrekoc/campushub/internal/app/services"
	"github.com/emrekoc/campushub/internal/middleware"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
)

// Controllers holds all HTTP controllers
type Controllers struct {
	Auth         *AuthController
	User         *UserController
	Course       *CourseController
	Approval     *ApprovalController
	Enrollment   *EnrollmentController
	Teaching     *TeachingController
	Assignment   *AssignmentController
	Notification *NotificationController
	Policy       *PolicyController
	Report       *ReportController
}

// NewControllers creates all controllers wired to their services
func NewControllers(svcs *services.Services, logger zerolog.Logger) *Controllers {
	return &Controllers{
		Auth:         NewAuthController(svcs.AuthService, logger),
		User:         NewUserController(svcs.UserService, logger),
		Course:       NewCourseController(svcs.CourseService, logger),
		Approval:     NewApprovalController(svcs.ApprovalService, logger),
		Enrollment:   NewEnrollmentController(svcs.EnrollmentService, logger),
		Teaching:     NewTeachingController(svcs.TeachingService, logger),
		Assignment:   NewAssignmentController(svcs.AssignmentService, logger),
		Notification: NewNotificationController(svcs.NotificationService, logger),
		Policy:       NewPolicyController(svcs.PolicyService, logger),
		Report:       NewReportController(svcs.ReportService, logger),
	}
}

// pathID parses a positive int64 path parameter, writing the standard
// validation error on failure
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").
			WithDetails("ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// currentUserID reads the authenticated user ID set by the JWT middleware
func currentUserID(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return 0, false
	}
	return userID, true
}

// currentRole reads the authenticated role set by the JWT middleware
func currentRole(ctx *gin.Context) (models.RoleType, bool) {
	role, ok := middleware.Role(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return "", false
	}
	return role, true
}
