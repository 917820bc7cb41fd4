package dto

import (
	"time"

	"github.com/emrekoc/campushub/internal/app/models"
)

// CreateAssignmentRequest represents assignment creation data
type CreateAssignmentRequest struct {
	CourseID    int64  `json:"courseId" binding:"required,min=1"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate" binding:"required"` // RFC 3339
}

// AssignmentResponse represents an assignment record
type AssignmentResponse struct {
	ID          int64     `json:"id"`
	CourseID    int64     `json:"courseId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AssignmentListResponse represents a list of assignments
type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
}

// FromAssignment converts a models.Assignment to an AssignmentResponse
func FromAssignment(assignment *models.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:          assignment.ID,
		CourseID:    assignment.CourseID,
		Title:       assignment.Title,
		Description: assignment.Description,
		DueDate:     assignment.DueDate,
		CreatedAt:   assignment.CreatedAt,
	}
}

// SubmitAssignmentRequest represents a submission. File metadata is
// recorded as given; no upload is performed.
type SubmitAssignmentRequest struct {
	FileName string  `json:"fileName" binding:"required"`
	FilePath string  `json:"filePath" binding:"required"`
	FileSize int64   `json:"fileSize" binding:"min=0"`
	FileType string  `json:"fileType"`
	Comments *string `json:"comments,omitempty"`
}

// GradeSubmissionRequest represents a grading action
type GradeSubmissionRequest struct {
	Grade    float64 `json:"grade" binding:"min=0,max=100"`
	Feedback *string `json:"feedback,omitempty"`
}

// SubmissionResponse represents an assignment submission
type SubmissionResponse struct {
	ID             int64      `json:"id"`
	AssignmentID   int64      `json:"assignmentId"`
	StudentID      int64      `json:"studentId"`
	FileName       string     `json:"fileName"`
	FilePath       string     `json:"filePath"`
	FileSize       int64      `json:"fileSize"`
	FileType       string     `json:"fileType"`
	SubmissionDate time.Time  `json:"submissionDate"`
	IsLate         bool       `json:"isLate"`
	Comments       *string    `json:"comments,omitempty"`
	Status         string     `json:"status"`
	Grade          *float64   `json:"grade,omitempty"`
	Feedback       *string    `json:"feedback,omitempty"`
	GradedBy       *int64     `json:"gradedBy,omitempty"`
	GradedAt       *time.Time `json:"gradedAt,omitempty"`
}

// SubmissionListResponse represents submissions for an assignment
type SubmissionListResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
}

// FromSubmission converts a models.AssignmentSubmission to a SubmissionResponse
func FromSubmission(submission *models.AssignmentSubmission) SubmissionResponse {
	return SubmissionResponse{
		ID:             submission.ID,
		AssignmentID:   submission.AssignmentID,
		StudentID:      submission.StudentID,
		FileName:       submission.FileName,
		FilePath:       submission.FilePath,
		FileSize:       submission.FileSize,
		FileType:       submission.FileType,
		SubmissionDate: submission.SubmissionDate,
		IsLate:         submission.IsLate,
		Comments:       submission.Comments,
		Status:         submission.Status,
		Grade:          submission.Grade,
		Feedback:       submission.Feedback,
		GradedBy:       submission.GradedBy,
		GradedAt:       submission.GradedAt,
	}
}
