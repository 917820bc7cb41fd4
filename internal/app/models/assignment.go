package models

import (
	"time"
)

// Assignment defines the assignment model based on the 'assignments' table
type Assignment struct {
	ID          int64     `json:"id" db:"id"`
	CourseID    int64     `json:"courseId" db:"course_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	DueDate     time.Time `json:"dueDate" db:"due_date"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// SubmissionStatus values for an assignment submission.
const (
	SubmissionStatusSubmitted = "submitted"
	SubmissionStatusGraded    = "graded"
)

// AssignmentSubmission defines a student's submission for an assignment.
// At most one current submission exists per (assignment, student);
// resubmission overwrites the previous one.
type AssignmentSubmission struct {
	ID             int64      `json:"id" db:"id"`
	AssignmentID   int64      `json:"assignmentId" db:"assignment_id"`
	StudentID      int64      `json:"studentId" db:"student_id"` // References students.id
	FileName       string     `json:"fileName" db:"file_name"`
	FilePath       string     `json:"filePath" db:"file_path"`
	FileSize       int64      `json:"fileSize" db:"file_size"` // In bytes
	FileType       string     `json:"fileType" db:"file_type"`
	SubmissionDate time.Time  `json:"submissionDate" db:"submission_date"`
	IsLate         bool       `json:"isLate" db:"is_late"`
	Comments       *string    `json:"comments,omitempty" db:"comments"`
	Status         string     `json:"status" db:"status"`
	Grade          *float64   `json:"grade,omitempty" db:"grade"`
	Feedback       *string    `json:"feedback,omitempty" db:"feedback"`
	GradedBy       *int64     `json:"gradedBy,omitempty" db:"graded_by"`
	GradedAt       *time.Time `json:"gradedAt,omitempty" db:"graded_at"`
}
