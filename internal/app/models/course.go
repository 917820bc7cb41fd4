package models

import (
	"strings"
	"time"
)

// ApprovalStatus defines the lifecycle state of a course approval request
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// Decided reports whether the approval has reached a terminal state.
func (s ApprovalStatus) Decided() bool {
	return s == ApprovalApproved || s == ApprovalRejected
}

// Course defines the course model based on the 'courses' table
type Course struct {
	ID            int64     `json:"id" db:"id"`
	CourseCode    string    `json:"courseCode" db:"course_code" example:"CS101"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	Credits       int       `json:"credits" db:"credits" example:"3"`
	Department    string    `json:"department" db:"department"`
	Prerequisites *string   `json:"prerequisites,omitempty" db:"prerequisites"` // Comma-separated course codes (nullable)
	Capacity      int       `json:"capacity" db:"capacity" example:"30"`
	IsActive      bool      `json:"isActive" db:"is_active"` // Derived from the approval decision
	CreatedBy     int64     `json:"createdBy" db:"created_by"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// PrerequisiteCodes parses the prerequisite column into course codes.
// The legacy conventions "none" and empty string mean no prerequisites.
func (c *Course) PrerequisiteCodes() []string {
	if c.Prerequisites == nil {
		return nil
	}
	raw := strings.TrimSpace(*c.Prerequisites)
	if raw == "" || strings.EqualFold(raw, "none") {
		return nil
	}

	var codes []string
	for _, part := range strings.Split(raw, ",") {
		code := strings.TrimSpace(part)
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// CourseApproval defines the decision record gating course activation
type CourseApproval struct {
	ID          int64          `json:"id" db:"id"`
	CourseID    int64          `json:"courseId" db:"course_id"`
	RequestedBy int64          `json:"requestedBy" db:"requested_by"`
	ApprovedBy  *int64         `json:"approvedBy,omitempty" db:"approved_by"` // Nullable until decided
	Status      ApprovalStatus `json:"status" db:"status"`
	Comments    *string        `json:"comments,omitempty" db:"comments"`
	RequestedAt time.Time      `json:"requestedAt" db:"requested_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
	Course      *Course        `json:"course,omitempty"` // Relation, no db tag
}
