package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/app/models/dto"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
	"github.com/emrekoc/campushub/internal/pkg/helpers"
)

// FacultyCourseStore is the persistence surface for teaching assignments
type FacultyCourseStore interface {
	Create(ctx context.Context, fc *models.FacultyCourse) error
	GetByID(ctx context.Context, id int64) (*models.FacultyCourse, error)
	ListByFaculty(ctx context.Context, facultyID int64) ([]*models.FacultyCourse, error)
	IsAssigned(ctx context.Context, facultyID, courseID int64) (bool, error)
}

// AttendanceStore is the persistence surface for attendance records
type AttendanceStore interface {
	Create(ctx context.Context, attendance *models.Attendance) error
	GetByID(ctx context.Context, id int64) (*models.Attendance, error)
	ListByFacultyCourse(ctx context.Context, facultyCourseID int64, date *time.Time) ([]*models.Attendance, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Attendance, error)
	UpdateStatus(ctx context.Context, id int64, status models.AttendanceStatus, remarks *string) error
}

// MaterialStore is the persistence surface for course materials
type MaterialStore interface {
	Create(ctx context.Context, material *models.CourseMaterial) error
	GetByID(ctx context.Context, id int64) (*models.CourseMaterial, error)
	ListByCourse(ctx context.Context, courseID int64, publishedOnly bool) ([]*models.CourseMaterial, error)
	Update(ctx context.Context, material *models.CourseMaterial) error
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) error
}

// RosterReader lists the students enrolled in a course
type RosterReader interface {
	ListStudentsByCourse(ctx context.Context, courseID int64) ([]*models.StudentProfile, error)
}

// TeachingService handles teaching assignments, attendance and course
// materials
type TeachingService struct {
	facultyCourses FacultyCourseStore
	attendance     AttendanceStore
	materials      MaterialStore
	roster         RosterReader
	courses        CourseReader
	userStore      UserStore
	logger         zerolog.Logger
}

// NewTeachingService creates a new TeachingService
func NewTeachingService(
	facultyCourses FacultyCourseStore,
	attendance AttendanceStore,
	materials MaterialStore,
	roster RosterReader,
	courses CourseReader,
	userStore UserStore,
	logger zerolog.Logger,
) *TeachingService {
	return &TeachingService{
		facultyCourses: facultyCourses,
		attendance:     attendance,
		materials:      materials,
		roster:         roster,
		courses:        courses,
		userStore:      userStore,
		logger:         logger,
	}
}

// facultyProfileID resolves a user to its faculty profile ID
func (s *TeachingService) facultyProfileID(ctx context.Context, userID int64) (int64, error) {
	profile, err := s.userStore.GetFacultyProfileByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return profile.ID, nil
}

// AssignCourse creates a teaching assignment, unique per
// (faculty, course, semester)
func (s *TeachingService) AssignCourse(ctx context.Context, req *dto.AssignCourseRequest) (*models.FacultyCourse, error) {
	course, err := s.courses.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	fc := &models.FacultyCourse{
		FacultyID: req.FacultyID,
		CourseID:  req.CourseID,
		Semester:  req.Semester,
		Schedule:  req.Schedule,
		Room:      req.Room,
		IsActive:  true,
		Course:    course,
	}
	if err := s.facultyCourses.Create(ctx, fc); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("facultyID", fc.FacultyID).
		Int64("courseID", fc.CourseID).
		Str("semester", fc.Semester).
		Msg("Teaching assignment created")

	return fc, nil
}

// MyCourses retrieves the teaching assignments of the calling faculty
// member, including enrollment counts
func (s *TeachingService) MyCourses(ctx context.Context, userID int64) ([]*models.FacultyCourse, error) {
	facultyID, err := s.facultyProfileID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.facultyCourses.ListByFaculty(ctx, facultyID)
}

// Roster lists the students enrolled in a course the faculty member
// teaches
func (s *TeachingService) Roster(ctx context.Context, userID, courseID int64) ([]*models.StudentProfile, error) {
	facultyID, err := s.facultyProfileID(ctx, userID)
	if err != nil {
		return nil, err
	}

	assigned, err := s.facultyCourses.IsAssigned(ctx, facultyID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check teaching assignment: %w", err)
	}
	if !assigned {
		return nil, apperrors.ErrNotAssignedToCourse
	}

	return s.roster.ListStudentsByCourse(ctx, courseID)
}

// RecordAttendance records attendance for one student on one date, for a
// teaching assignment owned by the caller
func (s *TeachingService) RecordAttendance(ctx context.Context, userID int64, req *dto.RecordAttendanceRequest) (*models.Attendance, error) {
	status, ok := models.ParseAttendanceStatus(req.Status)
	if !ok {
		return nil, apperrors.NewValidationError("unknown attendance status: " + req.Status)
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
	}

	facultyID, err := s.facultyProfileID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fc, err := s.facultyCourses.GetByID(ctx, req.FacultyCourseID)
	if err != nil {
		return nil, err
	}
	if fc.FacultyID != facultyID {
		return nil, apperrors.ErrNotAssignedToCourse
	}

	attendance := &models.Attendance{
		FacultyCourseID: req.FacultyCourseID,
		StudentID:       req.StudentID,
		Date:            date,
		Status:          status,
		Remarks:         req.Remarks,
		CreatedBy:       userID,
	}
	if err := s.attendance.Create(ctx, attendance); err != nil {
		return nil, err
	}

	return attendance, nil
}

// ListAttendance retrieves attendance records for a teaching assignment,
// optionally restricted to one date
func (s *TeachingService) ListAttendance(ctx context.Context, userID, facultyCourseID int64, dateStr *string) ([]*models.Attendance, error) {
	facultyID, err := s.facultyProfileID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fc, err := s.facultyCourses.GetByID(ctx, facultyCourseID)
	if err != nil {
		return nil, err
	}
	if fc.FacultyID != facultyID {
		return nil, apperrors.ErrNotAssignedToCourse
	}

	var date *time.Time
	if dateStr != nil {
		parsed, err := helpers.ParseDate(*dateStr)
		if err != nil {
			return nil, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
		}
		date = &parsed
	}

	return s.attendance.ListByFacultyCourse(ctx, facultyCourseID, date)
}

// MyAttendance retrieves the calling student's attendance records
func (s *TeachingService) MyAttendance(ctx context.Context, userID int64) ([]*models.Attendance, error) {
	profile, err := s.userStore.GetStudentProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attendance.ListByStudent(ctx, profile.ID)
}

// UpdateAttendance updates the status of an attendance record owned by
// the caller's teaching assignment
func (s *TeachingService) UpdateAttendance(ctx context.Context, userID, attendanceID int64, req *dto.UpdateAttendanceRequest) (*models.Attendance, error) {
	status, ok := models.ParseAttendanceStatus(req.Status)
	if !ok {
		return nil, apperrors.NewValidationError("unknown attendance status: " + req.Status)
	}

	facultyID, err := s.facultyProfileID(ctx, userID)
	if err != nil {
		return nil, err
	}

	attendance, err := s.attendance.GetByID(ctx, attendanceID)
	if err != nil {
		return nil, err
	}

	fc, err := s.facultyCourses.GetByID(ctx, attendance.FacultyCourseID)
	if err != nil {
		return nil, err
	}
	if fc.FacultyID != facultyID {
		return nil, apperrors.ErrNotAssignedToCourse
	}

	if err := s.attendance.UpdateStatus(ctx, attendanceID, status, req.Remarks); err != nil {
		return nil, err
	}

	return s.attendance.GetByID(ctx, attendanceID)
}

// CreateMaterial records course material metadata for a course the caller
// teaches
func (s *TeachingService) CreateMaterial(ctx context.Context, userID int64, req *dto.CreateMaterialRequest) (*models.CourseMaterial, error) {
	materialType, ok := models.ParseMaterialType(req.MaterialType)
	if !ok {
		return nil, apperrors.NewValidationError("unknown material type: " + req.MaterialType)
	}

	facultyID, err := s.facultyProfileID(ctx, userID)
	if err != nil {
		return nil, err
	}

	assigned, err := s.facultyCourses.IsAssigned(ctx, facultyID, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check teaching assignment: %w", err)
	}
	if !assigned {
		return nil, apperrors.ErrNotAssignedToCourse
	}

	var releaseDate *time.Time
	if req.ReleaseDate != nil {
		parsed, err := time.Parse(time.RFC3339, *req.ReleaseDate)
		if err != nil {
			return nil, apperrors.NewValidationError("releaseDate must be RFC 3339")
		}
		releaseDate = &parsed
	}

	material := &models.CourseMaterial{
		CourseID:     req.CourseID,
		Title:        req.Title,
		Description:  req.Description,
		FileName:     req.FileName,
		FilePath:     req.FilePath,
		FileSize:     req.FileSize,
		FileType:     req.FileType,
		MaterialType: materialType,
		IsPublished:  req.IsPublished,
		ReleaseDate:  releaseDate,
		CreatedBy:    userID,
	}
	if err := s.materials.Create(ctx, material); err != nil {
		return nil, err
	}

	return material, nil
}

// ListMaterials retrieves materials for a course. Students only see
// published ones; the material views counter is not touched by listing.
func (s *TeachingService) ListMaterials(ctx context.Context, courseID int64, role models.RoleType) ([]*models.CourseMaterial, error) {
	publishedOnly := role == models.RoleStudent
	return s.materials.ListByCourse(ctx, courseID, publishedOnly)
}

// ViewMaterial retrieves one material and bumps its view counter
func (s *TeachingService) ViewMaterial(ctx context.Context, id int64) (*models.CourseMaterial, error) {
	material, err := s.materials.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.materials.IncrementViews(ctx, id); err != nil {
		s.logger.Warn().Err(err).Int64("materialID", id).Msg("Failed to increment views")
	}
	return material, nil
}

// UpdateMaterial updates material fields for a course the caller teaches
func (s *TeachingService) UpdateMaterial(ctx context.Context, userID, materialID int64, req *dto.UpdateMaterialRequest) (*models.CourseMaterial, error) {
	material, err := s.materials.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}

	if err := s.requireTeaching(ctx, userID, material.CourseID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		material.Title = *req.Title
	}
	if req.Description != nil {
		material.Description = *req.Description
	}
	if req.IsPublished != nil {
		material.IsPublished = *req.IsPublished
	}

	if err := s.materials.Update(ctx, material); err != nil {
		return nil, err
	}

	return material, nil
}

// DeleteMaterial removes a material for a course the caller teaches
func (s *TeachingService) DeleteMaterial(ctx context.Context, userID, materialID int64) error {
	material, err := s.materials.GetByID(ctx, materialID)
	if err != nil {
		return err
	}

	if err := s.requireTeaching(ctx, userID, material.CourseID); err != nil {
		return err
	}

	return s.materials.Delete(ctx, materialID)
}

func (s *TeachingService) requireTeaching(ctx context.Context, userID, courseID int64) error {
	facultyID, err := s.facultyProfileID(ctx, userID)
	if err != nil {
		return err
	}
	assigned, err := s.facultyCourses.IsAssigned(ctx, facultyID, courseID)
	if err != nil {
		return fmt.Errorf("failed to check teaching assignment: %w", err)
	}
	if !assigned {
		return apperrors.ErrNotAssignedToCourse
	}
	return nil
}
