package models

import (
	"time"
)

// FacultyCourse defines a teaching assignment based on the 'faculty_courses' table.
// Unique per (faculty, course, semester).
type FacultyCourse struct {
	ID           int64     `json:"id" db:"id"`
	FacultyID    int64     `json:"facultyId" db:"faculty_id"` // References faculty_profiles.id
	CourseID     int64     `json:"courseId" db:"course_id"`
	Semester     string    `json:"semester" db:"semester" example:"Spring 2026"`
	Schedule     *string   `json:"schedule,omitempty" db:"schedule"`
	Room         *string   `json:"room,omitempty" db:"room"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
	Course       *Course   `json:"course,omitempty"`      // Relation, no db tag
	StudentCount int       `json:"studentCount,omitempty"` // Derived from enrollments
}

// AttendanceStatus defines the attendance state for a class session
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLate    AttendanceStatus = "LATE"
	AttendanceExcused AttendanceStatus = "EXCUSED"
)

// ParseAttendanceStatus validates an attendance status string.
func ParseAttendanceStatus(status string) (AttendanceStatus, bool) {
	switch AttendanceStatus(status) {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return AttendanceStatus(status), true
	}
	return "", false
}

// Attendance defines an attendance record, unique per
// (faculty course, student, date).
type Attendance struct {
	ID              int64            `json:"id" db:"id"`
	FacultyCourseID int64            `json:"facultyCourseId" db:"faculty_course_id"`
	StudentID       int64            `json:"studentId" db:"student_id"` // References students.id
	Date            time.Time        `json:"date" db:"date"`
	Status          AttendanceStatus `json:"status" db:"status"`
	Remarks         *string          `json:"remarks,omitempty" db:"remarks"`
	CreatedBy       int64            `json:"createdBy" db:"created_by"`
	CreatedAt       time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time        `json:"updatedAt" db:"updated_at"`
}

// MaterialType defines the kind of course material
type MaterialType string

const (
	MaterialLecture    MaterialType = "LECTURE"
	MaterialNotes      MaterialType = "NOTES"
	MaterialAssignment MaterialType = "ASSIGNMENT"
	MaterialResource   MaterialType = "RESOURCE"
	MaterialReading    MaterialType = "READING"
)

// ParseMaterialType validates a material type string.
func ParseMaterialType(materialType string) (MaterialType, bool) {
	switch MaterialType(materialType) {
	case MaterialLecture, MaterialNotes, MaterialAssignment, MaterialResource, MaterialReading:
		return MaterialType(materialType), true
	}
	return "", false
}

// CourseMaterial defines a course material record. File metadata is
// recorded as-is; no storage I/O is performed.
type CourseMaterial struct {
	ID           int64        `json:"id" db:"id"`
	CourseID     int64        `json:"courseId" db:"course_id"`
	Title        string       `json:"title" db:"title"`
	Description  string       `json:"description" db:"description"`
	FileName     string       `json:"fileName" db:"file_name"`
	FilePath     string       `json:"filePath" db:"file_path"`
	FileSize     int64        `json:"fileSize" db:"file_size"` // In bytes
	FileType     string       `json:"fileType" db:"file_type"`
	MaterialType MaterialType `json:"materialType" db:"material_type"`
	IsPublished  bool         `json:"isPublished" db:"is_published"`
	ReleaseDate  *time.Time   `json:"releaseDate,omitempty" db:"release_date"`
	CreatedBy    int64        `json:"createdBy" db:"created_by"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" db:"updated_at"`
	Downloads    int          `json:"downloads" db:"downloads"`
	Views        int          `json:"views" db:"views"`
}
