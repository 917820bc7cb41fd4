package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/app/models/dto"
	"github.com/emrekoc/campushub/internal/app/services"
	"github.com/emrekoc/campushub/internal/middleware"
)

func mapAttendance(records []*models.Attendance) []dto.AttendanceResponse {
	resp := make([]dto.AttendanceResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, dto.FromAttendance(record))
	}
	return resp
}

// TeachingController handles teaching assignments, rosters, attendance and
// course materials
type TeachingController struct {
	teachingService *services.TeachingService
	logger          zerolog.Logger
}

// NewTeachingController creates a new TeachingController
func NewTeachingController(teachingService *services.TeachingService, logger zerolog.Logger) *TeachingController {
	return &TeachingController{
		teachingService: teachingService,
		logger:          logger,
	}
}

// AssignCourse assigns a faculty member to teach a course for a semester
// @Summary Assign course to faculty
// @Tags teaching
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignCourseRequest true "Assignment details"
// @Success 201 {object} dto.APIResponse{data=dto.FacultyCourseResponse}
// @Failure 409 {object} dto.ErrorResponse "Faculty already assigned for this semester"
// @Router /teaching/assignments [post]
func (c *TeachingController) AssignCourse(ctx *gin.Context) {
	var req dto.AssignCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	facultyCourse, err := c.teachingService.AssignCourse(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("facultyId", req.FacultyID).
		Int64("courseId", req.CourseID).
		Str("semester", req.Semester).
		Msg("Course assigned to faculty")

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromFacultyCourse(facultyCourse), "Course assigned successfully"))
}

// MyCourses lists the authenticated faculty member's teaching assignments
// @Summary List my teaching assignments
// @Tags teaching
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.FacultyCourseResponse}
// @Router /teaching/courses [get]
func (c *TeachingController) MyCourses(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	facultyCourses, err := c.teachingService.MyCourses(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.FacultyCourseResponse, 0, len(facultyCourses))
	for _, fc := range facultyCourses {
		resp = append(resp, dto.FromFacultyCourse(fc))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Teaching assignments retrieved"))
}

// Roster lists the students enrolled in a course the caller teaches
// @Summary Get course roster
// @Tags teaching
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ExtendedUserResponse}
// @Failure 403 {object} dto.ErrorResponse "Not assigned to this course"
// @Router /teaching/courses/{courseId}/roster [get]
func (c *TeachingController) Roster(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}

	students, err := c.teachingService.Roster(ctx.Request.Context(), userID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.ExtendedUserResponse, 0, len(students))
	for _, student := range students {
		resp = append(resp, dto.FromUserExtended(student.User, student))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Roster retrieved successfully"))
}

// RecordAttendance records a student's attendance for a class date. One
// record per student per course section per date.
// @Summary Record attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecordAttendanceRequest true "Attendance details"
// @Success 201 {object} dto.APIResponse{data=dto.AttendanceResponse}
// @Failure 409 {object} dto.ErrorResponse "Attendance already recorded for this date"
// @Router /attendance [post]
func (c *TeachingController) RecordAttendance(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.RecordAttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	attendance, err := c.teachingService.RecordAttendance(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromAttendance(attendance), "Attendance recorded"))
}

// ListAttendance lists attendance for a course section the caller teaches,
// optionally restricted to a single date
// @Summary List attendance for a course section
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param facultyCourseId path int true "Faculty course ID"
// @Param date query string false "Restrict to date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]dto.AttendanceResponse}
// @Router /attendance/course/{facultyCourseId} [get]
func (c *TeachingController) ListAttendance(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	facultyCourseID, ok := pathID(ctx, "facultyCourseId")
	if !ok {
		return
	}

	var date *string
	if d := ctx.Query("date"); d != "" {
		date = &d
	}

	records, err := c.teachingService.ListAttendance(ctx.Request.Context(), userID, facultyCourseID, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(mapAttendance(records), "Attendance retrieved successfully"))
}

// MyAttendance lists the authenticated student's own attendance records
// @Summary List my attendance
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AttendanceResponse}
// @Router /attendance/me [get]
func (c *TeachingController) MyAttendance(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	records, err := c.teachingService.MyAttendance(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(mapAttendance(records), "Attendance retrieved successfully"))
}

// UpdateAttendance corrects the status of an existing attendance record
// @Summary Update attendance record
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance ID"
// @Param request body dto.UpdateAttendanceRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceResponse}
// @Router /attendance/{id} [put]
func (c *TeachingController) UpdateAttendance(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	attendance, err := c.teachingService.UpdateAttendance(ctx.Request.Context(), userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromAttendance(attendance), "Attendance updated"))
}

// CreateMaterial uploads a course material record for a course the caller
// teaches
// @Summary Create course material
// @Tags materials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMaterialRequest true "Material details"
// @Success 201 {object} dto.APIResponse{data=dto.MaterialResponse}
// @Router /materials [post]
func (c *TeachingController) CreateMaterial(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateMaterialRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	material, err := c.teachingService.CreateMaterial(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromMaterial(material), "Material created successfully"))
}

// ListMaterials lists materials for a course. Students only see published
// materials.
// @Summary List course materials
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.MaterialResponse}
// @Router /materials/course/{courseId} [get]
func (c *TeachingController) ListMaterials(ctx *gin.Context) {
	role, ok := currentRole(ctx)
	if !ok {
		return
	}
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}

	materials, err := c.teachingService.ListMaterials(ctx.Request.Context(), courseID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.MaterialResponse, 0, len(materials))
	for _, material := range materials {
		resp = append(resp, dto.FromMaterial(material))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Materials retrieved successfully"))
}

// ViewMaterial retrieves a single material and counts the view
// @Summary Get course material
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Param id path int true "Material ID"
// @Success 200 {object} dto.APIResponse{data=dto.MaterialResponse}
// @Router /materials/{id} [get]
func (c *TeachingController) ViewMaterial(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	material, err := c.teachingService.ViewMaterial(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromMaterial(material), "Material retrieved successfully"))
}

// UpdateMaterial updates a material's title, description or publish state
// @Summary Update course material
// @Tags materials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Material ID"
// @Param request body dto.UpdateMaterialRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.MaterialResponse}
// @Router /materials/{id} [put]
func (c *TeachingController) UpdateMaterial(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMaterialRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	material, err := c.teachingService.UpdateMaterial(ctx.Request.Context(), userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromMaterial(material), "Material updated successfully"))
}

// DeleteMaterial removes a material from a course the caller teaches
// @Summary Delete course material
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Param id path int true "Material ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /materials/{id} [delete]
func (c *TeachingController) DeleteMaterial(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.teachingService.DeleteMaterial(ctx.Request.Context(), userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Material deleted"}, "Material deleted successfully"))
}
