package dto

import (
	"time"

	"github.com/emrekoc/campushub/internal/app/models"
)

// AssignCourseRequest represents a teaching assignment request
type AssignCourseRequest struct {
	FacultyID int64   `json:"facultyId" binding:"required,min=1"`
	CourseID  int64   `json:"courseId" binding:"required,min=1"`
	Semester  string  `json:"semester" binding:"required"`
	Schedule  *string `json:"schedule,omitempty"`
	Room      *string `json:"room,omitempty"`
}

// FacultyCourseResponse represents a teaching assignment with its course
// snapshot and enrolled-student count
type FacultyCourseResponse struct {
	ID           int64           `json:"id"`
	FacultyID    int64           `json:"facultyId"`
	CourseID     int64           `json:"courseId"`
	Semester     string          `json:"semester"`
	Schedule     *string         `json:"schedule,omitempty"`
	Room         *string         `json:"room,omitempty"`
	IsActive     bool            `json:"isActive"`
	StudentCount int             `json:"studentCount"`
	Course       *CourseResponse `json:"course,omitempty"`
}

// FacultyCourseListResponse represents a faculty member's teaching assignments
type FacultyCourseListResponse struct {
	FacultyCourses []FacultyCourseResponse `json:"facultyCourses"`
}

// FromFacultyCourse converts a models.FacultyCourse to a FacultyCourseResponse
func FromFacultyCourse(fc *models.FacultyCourse) FacultyCourseResponse {
	resp := FacultyCourseResponse{
		ID:           fc.ID,
		FacultyID:    fc.FacultyID,
		CourseID:     fc.CourseID,
		Semester:     fc.Semester,
		Schedule:     fc.Schedule,
		Room:         fc.Room,
		IsActive:     fc.IsActive,
		StudentCount: fc.StudentCount,
	}
	if fc.Course != nil {
		course := FromCourse(fc.Course)
		resp.Course = &course
	}
	return resp
}

// RecordAttendanceRequest represents an attendance record for one student
// on one date
type RecordAttendanceRequest struct {
	FacultyCourseID int64   `json:"facultyCourseId" binding:"required,min=1"`
	StudentID       int64   `json:"studentId" binding:"required,min=1"`
	Date            string  `json:"date" binding:"required"` // YYYY-MM-DD
	Status          string  `json:"status" binding:"required"`
	Remarks         *string `json:"remarks,omitempty"`
}

// UpdateAttendanceRequest updates the status of an existing record
type UpdateAttendanceRequest struct {
	Status  string  `json:"status" binding:"required"`
	Remarks *string `json:"remarks,omitempty"`
}

// AttendanceResponse represents an attendance record
type AttendanceResponse struct {
	ID              int64     `json:"id"`
	FacultyCourseID int64     `json:"facultyCourseId"`
	StudentID       int64     `json:"studentId"`
	Date            time.Time `json:"date"`
	Status          string    `json:"status"`
	Remarks         *string   `json:"remarks,omitempty"`
}

// AttendanceListResponse represents attendance records for a teaching
// assignment
type AttendanceListResponse struct {
	Records []AttendanceResponse `json:"records"`
}

// FromAttendance converts a models.Attendance to an AttendanceResponse
func FromAttendance(a *models.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:              a.ID,
		FacultyCourseID: a.FacultyCourseID,
		StudentID:       a.StudentID,
		Date:            a.Date,
		Status:          string(a.Status),
		Remarks:         a.Remarks,
	}
}

// CreateMaterialRequest represents course material creation data
type CreateMaterialRequest struct {
	CourseID     int64   `json:"courseId" binding:"required,min=1"`
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	FileName     string  `json:"fileName" binding:"required"`
	FilePath     string  `json:"filePath" binding:"required"`
	FileSize     int64   `json:"fileSize" binding:"min=0"`
	FileType     string  `json:"fileType"`
	MaterialType string  `json:"materialType" binding:"required"`
	IsPublished  bool    `json:"isPublished"`
	ReleaseDate  *string `json:"releaseDate,omitempty"` // RFC 3339
}

// UpdateMaterialRequest represents course material update data
type UpdateMaterialRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPublished *bool   `json:"isPublished,omitempty"`
}

// MaterialResponse represents a course material record
type MaterialResponse struct {
	ID           int64      `json:"id"`
	CourseID     int64      `json:"courseId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	FileName     string     `json:"fileName"`
	FilePath     string     `json:"filePath"`
	FileSize     int64      `json:"fileSize"`
	FileType     string     `json:"fileType"`
	MaterialType string     `json:"materialType"`
	IsPublished  bool       `json:"isPublished"`
	ReleaseDate  *time.Time `json:"releaseDate,omitempty"`
	Downloads    int        `json:"downloads"`
	Views        int        `json:"views"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// MaterialListResponse represents materials for a course
type MaterialListResponse struct {
	Materials []MaterialResponse `json:"materials"`
}

// FromMaterial converts a models.CourseMaterial to a MaterialResponse
func FromMaterial(m *models.CourseMaterial) MaterialResponse {
	return MaterialResponse{
		ID:           m.ID,
		CourseID:     m.CourseID,
		Title:        m.Title,
		Description:  m.Description,
		FileName:     m.FileName,
		FilePath:     m.FilePath,
		FileSize:     m.FileSize,
		FileType:     m.FileType,
		MaterialType: string(m.MaterialType),
		IsPublished:  m.IsPublished,
		ReleaseDate:  m.ReleaseDate,
		Downloads:    m.Downloads,
		Views:        m.Views,
		CreatedAt:    m.CreatedAt,
	}
}
