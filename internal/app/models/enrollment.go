package models

import (
	"time"
)

// EnrollmentStatusEnrolled is the default status for a new enrollment.
const EnrollmentStatusEnrolled = "enrolled"

// Enrollment defines a student-to-course membership based on the 'enrollments' table
type Enrollment struct {
	ID             int64     `json:"id" db:"id"`
	StudentID      int64     `json:"studentId" db:"student_id"` // References students.id
	CourseID       int64     `json:"courseId" db:"course_id"`
	EnrollmentDate time.Time `json:"enrollmentDate" db:"enrollment_date"`
	Status         string    `json:"status" db:"status"`
	Course         *Course   `json:"course,omitempty"` // Relation, no db tag
}
