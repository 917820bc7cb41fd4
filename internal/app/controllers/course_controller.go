package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models/dto"
	"github.com/emrekoc/campushub/internal/app/services"
	"github.com/emrekoc/campushub/internal/middleware"
)

// CourseController handles course catalog operations
type CourseController struct {
	courseService *services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// CreateCourse creates a course. Admin-created courses are active
// immediately; courses created by other roles start inactive with a
// pending approval request.
// @Summary Create course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CreateCourseResponse}
// @Failure 409 {object} dto.ErrorResponse "Course code already exists"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	role, ok := currentRole(ctx)
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, approval, err := c.courseService.Create(ctx.Request.Context(), &req, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.CreateCourseResponse{Course: dto.FromCourse(course)}
	message := "Course created successfully"
	if approval != nil {
		approvalResp := dto.FromApproval(approval)
		resp.Approval = &approvalResp
		message = "Course submitted for approval"
	}

	c.logger.Info().
		Str("courseCode", course.CourseCode).
		Int64("requestedBy", userID).
		Bool("active", course.IsActive).
		Msg("Course created")

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp, message))
}

// ListCourses retrieves courses matching the given filters
// @Summary List courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param department query string false "Filter by department"
// @Param isActive query bool false "Filter by active state"
// @Param search query string false "Match code, title or description"
// @Param credits query int false "Filter by credit count"
// @Param minCapacity query int false "Minimum capacity"
// @Param maxCapacity query int false "Maximum capacity"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse}
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	var filter dto.CourseFilterRequest
	if !middleware.BindQuery(ctx, &filter) {
		return
	}

	courses, err := c.courseService.List(ctx.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.CourseListResponse{Courses: make([]dto.CourseResponse, 0, len(courses))}
	for _, course := range courses {
		resp.Courses = append(resp.Courses, dto.FromCourse(course))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Courses retrieved successfully"))
}

// GetCourse retrieves a single course
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromCourse(course), "Course retrieved successfully"))
}

// UpdateCourse updates course fields. The course code and active state
// cannot be changed here; activation happens through the approval workflow.
// @Summary Update course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromCourse(course), "Course updated successfully"))
}

// DeleteCourse removes a course and its dependent records
// @Summary Delete course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("courseId", id).Msg("Course deleted")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Course deleted"}, "Course deleted successfully"))
}
