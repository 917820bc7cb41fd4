package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrekoc/campushub/internal/app/models/dto"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
	"github.com/emrekoc/campushub/internal/pkg/logger"
)

// HandleAPIError maps service errors to the HTTP error envelope. Every
// controller funnels failures through here so the error taxonomy stays
// in one place.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	// 400 - validation
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidEmail),
		errors.Is(err, apperrors.ErrInvalidPassword),
		errors.Is(err, apperrors.ErrInvalidRole),
		errors.Is(err, apperrors.ErrInvalidApprovalAction),
		errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()))

	case errors.Is(err, apperrors.ErrInvalidReportContent):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, "Report content must be valid JSON"))

	// 400 - enrollment rule failures
	case errors.Is(err, apperrors.ErrCourseInactive):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeCourseInactive, "Course is not active"))
	case errors.Is(err, apperrors.ErrCourseFull):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeCourseFull, "Course has reached its capacity"))
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeAlreadyEnrolled, "Already enrolled in this course"))
	case errors.Is(err, apperrors.ErrMissingPrerequisite):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeMissingPrerequisite, err.Error()))

	// 401
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid email or password"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		respond(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"))

	// 403
	case errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrNotAssignedToCourse),
		errors.Is(err, apperrors.ErrNotEnrolled):
		respond(c, http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, err.Error()))

	// 404
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrProfileNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrApprovalNotFound),
		errors.Is(err, apperrors.ErrEnrollmentNotFound),
		errors.Is(err, apperrors.ErrFacultyCourseNotFound),
		errors.Is(err, apperrors.ErrAttendanceNotFound),
		errors.Is(err, apperrors.ErrMaterialNotFound),
		errors.Is(err, apperrors.ErrAssignmentNotFound),
		errors.Is(err, apperrors.ErrSubmissionNotFound),
		errors.Is(err, apperrors.ErrNotificationNotFound),
		errors.Is(err, apperrors.ErrPolicyNotFound),
		errors.Is(err, apperrors.ErrReportNotFound):
		respond(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()))

	// 409
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists"))
	case errors.Is(err, apperrors.ErrCourseCodeAlreadyExists):
		respond(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Course with this code already exists"))
	case errors.Is(err, apperrors.ErrFacultyCourseAlreadyExists):
		respond(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()))
	case errors.Is(err, apperrors.ErrAttendanceAlreadyRecorded):
		respond(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()))
	case errors.Is(err, apperrors.ErrApprovalAlreadyDecided):
		respond(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeApprovalDecided, "Approval request has already been decided"))
	case errors.Is(err, apperrors.ErrPasswordAlreadySet):
		respond(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Password has already been set"))
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respond(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()))

	default:
		// Unknown errors never leak internals to the client
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		respond(c, http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

func respond(c *gin.Context, status int, errorDetail *dto.ErrorDetail) {
	c.JSON(status, dto.NewAPIError(errorDetail))
}
