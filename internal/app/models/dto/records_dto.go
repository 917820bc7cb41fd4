package dto

import (
	"time"

	"github.com/emrekoc/campushub/internal/app/models"
)

// CreateNotificationRequest represents a notification sent to a user
type CreateNotificationRequest struct {
	UserID  int64   `json:"userId" binding:"required,min=1"`
	Title   string  `json:"title" binding:"required"`
	Message string  `json:"message" binding:"required"`
	Type    string  `json:"type" binding:"required"`
	Link    *string `json:"link,omitempty"`
}

// NotificationResponse represents a notification record
type NotificationResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Link      *string   `json:"link,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationListResponse represents a user's notifications with the
// unread count
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

// UnreadCountResponse represents the number of unread notifications
type UnreadCountResponse struct {
	UnreadCount int `json:"unreadCount"`
}

// FromNotification converts a models.Notification to a NotificationResponse
func FromNotification(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Link:      n.Link,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// CreatePolicyRequest represents department policy creation data
type CreatePolicyRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content" binding:"required"`
	Department  string `json:"department" binding:"required"`
}

// UpdatePolicyRequest represents department policy update data
type UpdatePolicyRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Content     *string `json:"content,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// PolicyResponse represents a department policy record
type PolicyResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Department  string    `json:"department"`
	IsActive    bool      `json:"isActive"`
	CreatedBy   int64     `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PolicyListResponse represents a list of policies
type PolicyListResponse struct {
	Policies []PolicyResponse `json:"policies"`
}

// FromPolicy converts a models.Policy to a PolicyResponse
func FromPolicy(p *models.Policy) PolicyResponse {
	return PolicyResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Content:     p.Content,
		Department:  p.Department,
		IsActive:    p.IsActive,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
	}
}

// CreateReportRequest represents report creation data. Content must be a
// valid JSON document.
type CreateReportRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Type        string  `json:"type" binding:"required"`
	Content     string  `json:"content" binding:"required"`
	Summary     *string `json:"summary,omitempty"`
	DateRange   *string `json:"dateRange,omitempty"`
	Department  string  `json:"department" binding:"required"`
}

// UpdateReportRequest represents report update data
type UpdateReportRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Content     *string `json:"content,omitempty"`
	Summary     *string `json:"summary,omitempty"`
	DateRange   *string `json:"dateRange,omitempty"`
}

// ReportResponse represents a report record
type ReportResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Content     string    `json:"content"`
	Summary     *string   `json:"summary,omitempty"`
	DateRange   *string   `json:"dateRange,omitempty"`
	Department  string    `json:"department"`
	CreatedBy   int64     `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ReportListResponse represents a list of reports
type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
}

// FromReport converts a models.Report to a ReportResponse
func FromReport(r *models.Report) ReportResponse {
	return ReportResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Type:        string(r.Type),
		Content:     r.Content,
		Summary:     r.Summary,
		DateRange:   r.DateRange,
		Department:  r.Department,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
	}
}

// DepartmentAnalyticsResponse aggregates per-department activity
type DepartmentAnalyticsResponse struct {
	Department       string               `json:"department"`
	CourseCount      int                  `json:"courseCount"`
	ActiveCourses    int                  `json:"activeCourses"`
	EnrollmentCount  int                  `json:"enrollmentCount"`
	PendingApprovals int                  `json:"pendingApprovals"`
	ApprovedCourses  int                  `json:"approvedCourses"`
	RejectedCourses  int                  `json:"rejectedCourses"`
	PopularCourses   []PopularCourseEntry `json:"popularCourses"`
}

// PopularCourseEntry is a course ranked by enrollment count
type PopularCourseEntry struct {
	CourseID    int64  `json:"courseId"`
	CourseCode  string `json:"courseCode"`
	Title       string `json:"title"`
	Enrollments int    `json:"enrollments"`
}
