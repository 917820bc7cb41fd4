package dto

import (
	"time"

	"github.com/emrekoc/campushub/internal/app/models"
)

// EnrollRequest represents an enrollment request
type EnrollRequest struct {
	CourseID int64 `json:"courseId" binding:"required,min=1"`
}

// EnrollmentResponse represents an enrollment with its course snapshot
type EnrollmentResponse struct {
	ID             int64           `json:"id"`
	StudentID      int64           `json:"studentId"`
	CourseID       int64           `json:"courseId"`
	EnrollmentDate time.Time       `json:"enrollmentDate"`
	Status         string          `json:"status"`
	Course         *CourseResponse `json:"course,omitempty"`
}

// EnrollmentListResponse represents a student's enrollments
type EnrollmentListResponse struct {
	Enrollments []EnrollmentResponse `json:"enrollments"`
}

// FromEnrollment converts a models.Enrollment to an EnrollmentResponse
func FromEnrollment(enrollment *models.Enrollment) EnrollmentResponse {
	resp := EnrollmentResponse{
		ID:             enrollment.ID,
		StudentID:      enrollment.StudentID,
		CourseID:       enrollment.CourseID,
		EnrollmentDate: enrollment.EnrollmentDate,
		Status:         enrollment.Status,
	}
	if enrollment.Course != nil {
		course := FromCourse(enrollment.Course)
		resp.Course = &course
	}
	return resp
}
