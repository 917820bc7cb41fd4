package dto

import (
	"time"

	"github.com/emrekoc/campushub/internal/app/models"
)

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	CourseCode    string  `json:"courseCode" binding:"required"`
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	Credits       int     `json:"credits" binding:"required,min=1"`
	Department    string  `json:"department" binding:"required"`
	Prerequisites *string `json:"prerequisites,omitempty"`
	Capacity      int     `json:"capacity" binding:"required,min=1"`
}

// UpdateCourseRequest represents course update data. Nil fields are left
// unchanged.
type UpdateCourseRequest struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	Credits       *int    `json:"credits,omitempty"`
	Department    *string `json:"department,omitempty"`
	Prerequisites *string `json:"prerequisites,omitempty"`
	Capacity      *int    `json:"capacity,omitempty"`
}

// CourseFilterRequest represents course list filters, combined with AND
// semantics
type CourseFilterRequest struct {
	Department  *string `form:"department,omitempty"`
	IsActive    *bool   `form:"isActive,omitempty"`
	Search      *string `form:"search,omitempty"` // Matches code, title or description
	Credits     *int    `form:"credits,omitempty"`
	MinCapacity *int    `form:"minCapacity,omitempty"`
	MaxCapacity *int    `form:"maxCapacity,omitempty"`
}

// CourseResponse represents a course record
type CourseResponse struct {
	ID            int64     `json:"id"`
	CourseCode    string    `json:"courseCode"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Credits       int       `json:"credits"`
	Department    string    `json:"department"`
	Prerequisites *string   `json:"prerequisites,omitempty"`
	Capacity      int       `json:"capacity"`
	IsActive      bool      `json:"isActive"`
	CreatedBy     int64     `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CourseListResponse represents a list of courses
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}

// CreateCourseResponse represents a newly created course together with the
// approval request opened for it, if any. Admin-created courses are active
// immediately and carry no approval.
type CreateCourseResponse struct {
	Course   CourseResponse    `json:"course"`
	Approval *ApprovalResponse `json:"approval,omitempty"`
}

// FromCourse converts a models.Course to a CourseResponse
func FromCourse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:            course.ID,
		CourseCode:    course.CourseCode,
		Title:         course.Title,
		Description:   course.Description,
		Credits:       course.Credits,
		Department:    course.Department,
		Prerequisites: course.Prerequisites,
		Capacity:      course.Capacity,
		IsActive:      course.IsActive,
		CreatedBy:     course.CreatedBy,
		CreatedAt:     course.CreatedAt,
	}
}

// ApprovalActionRequest represents an approve/reject decision
type ApprovalActionRequest struct {
	Action   string  `json:"action" binding:"required,oneof=approve reject"`
	Comments *string `json:"comments,omitempty"`
}

// ApprovalResponse represents a course approval record
type ApprovalResponse struct {
	ID          int64           `json:"id"`
	CourseID    int64           `json:"courseId"`
	RequestedBy int64           `json:"requestedBy"`
	ApprovedBy  *int64          `json:"approvedBy,omitempty"`
	Status      string          `json:"status"`
	Comments    *string         `json:"comments,omitempty"`
	RequestedAt time.Time       `json:"requestedAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Course      *CourseResponse `json:"course,omitempty"`
}

// FromApproval converts a models.CourseApproval to an ApprovalResponse
func FromApproval(approval *models.CourseApproval) ApprovalResponse {
	resp := ApprovalResponse{
		ID:          approval.ID,
		CourseID:    approval.CourseID,
		RequestedBy: approval.RequestedBy,
		ApprovedBy:  approval.ApprovedBy,
		Status:      string(approval.Status),
		Comments:    approval.Comments,
		RequestedAt: approval.RequestedAt,
		UpdatedAt:   approval.UpdatedAt,
	}
	if approval.Course != nil {
		course := FromCourse(approval.Course)
		resp.Course = &course
	}
	return resp
}
