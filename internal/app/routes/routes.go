package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/emrekoc/campushub/internal/app/auth"
	"github.com/emrekoc/campushub/internal/app/controllers"
	"github.com/emrekoc/campushub/internal/middleware"
)

// SetupRouter configures all application routes. Every protected route is
// gated by exactly one RequireOperation check against the permission table;
// ownership checks happen in the service layer.
func SetupRouter(
	router *gin.Engine,
	ctrl *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/check-user", ctrl.Auth.CheckUser)
		auth.POST("/setup-password", ctrl.Auth.SetupPassword)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authenticated.GET("/auth/me", ctrl.Auth.Me)

	users := authenticated.Group("/users")
	{
		users.GET("", authMiddleware.RequireOperation(appauth.OpUserList), ctrl.User.ListUsers)
		users.POST("", authMiddleware.RequireOperation(appauth.OpUserCreate), ctrl.User.CreateUser)
		users.GET("/access-code/:code", authMiddleware.RequireOperation(appauth.OpUserGet), ctrl.User.GetUserByAccessCode)
		users.GET("/:id", authMiddleware.RequireOperation(appauth.OpUserGet), ctrl.User.GetUserByID)
		users.PUT("/:id", authMiddleware.RequireOperation(appauth.OpUserUpdate), ctrl.User.UpdateUser)
		users.POST("/:id/reset-password", authMiddleware.RequireOperation(appauth.OpUserResetPassword), ctrl.User.ResetPassword)
		users.DELETE("/:id", authMiddleware.RequireOperation(appauth.OpUserDelete), ctrl.User.DeleteUser)
	}

	courses := authenticated.Group("/courses")
	{
		courses.GET("", authMiddleware.RequireOperation(appauth.OpCourseList), ctrl.Course.ListCourses)
		courses.POST("", authMiddleware.RequireOperation(appauth.OpCourseCreate), ctrl.Course.CreateCourse)
		courses.GET("/:id", authMiddleware.RequireOperation(appauth.OpCourseGet), ctrl.Course.GetCourse)
		courses.PUT("/:id", authMiddleware.RequireOperation(appauth.OpCourseUpdate), ctrl.Course.UpdateCourse)
		courses.DELETE("/:id", authMiddleware.RequireOperation(appauth.OpCourseDelete), ctrl.Course.DeleteCourse)
	}

	approvals := authenticated.Group("/approvals")
	{
		approvals.GET("", authMiddleware.RequireOperation(appauth.OpApprovalList), ctrl.Approval.ListApprovals)
		approvals.GET("/mine", authMiddleware.RequireOperation(appauth.OpApprovalMine), ctrl.Approval.ListMyApprovals)
		approvals.GET("/:id", authMiddleware.RequireOperation(appauth.OpApprovalGet), ctrl.Approval.GetApproval)
		approvals.PUT("/:id/decision", authMiddleware.RequireOperation(appauth.OpApprovalDecide), ctrl.Approval.DecideApproval)
	}

	enrollments := authenticated.Group("/enrollments")
	{
		enrollments.POST("", authMiddleware.RequireOperation(appauth.OpEnrollmentCreate), ctrl.Enrollment.Enroll)
		enrollments.GET("/me", authMiddleware.RequireOperation(appauth.OpEnrollmentMine), ctrl.Enrollment.MyEnrollments)
		enrollments.DELETE("/:courseId", authMiddleware.RequireOperation(appauth.OpEnrollmentDrop), ctrl.Enrollment.Drop)
	}

	teaching := authenticated.Group("/teaching")
	{
		teaching.POST("/assignments", authMiddleware.RequireOperation(appauth.OpTeachingAssign), ctrl.Teaching.AssignCourse)
		teaching.GET("/courses", authMiddleware.RequireOperation(appauth.OpTeachingListMine), ctrl.Teaching.MyCourses)
		teaching.GET("/courses/:courseId/roster", authMiddleware.RequireOperation(appauth.OpTeachingRoster), ctrl.Teaching.Roster)
	}

	attendance := authenticated.Group("/attendance")
	{
		attendance.POST("", authMiddleware.RequireOperation(appauth.OpAttendanceRecord), ctrl.Teaching.RecordAttendance)
		attendance.GET("/me", authMiddleware.RequireOperation(appauth.OpAttendanceList), ctrl.Teaching.MyAttendance)
		attendance.GET("/course/:facultyCourseId", authMiddleware.RequireOperation(appauth.OpAttendanceList), ctrl.Teaching.ListAttendance)
		attendance.PUT("/:id", authMiddleware.RequireOperation(appauth.OpAttendanceRecord), ctrl.Teaching.UpdateAttendance)
	}

	materials := authenticated.Group("/materials")
	{
		materials.POST("", authMiddleware.RequireOperation(appauth.OpMaterialUpload), ctrl.Teaching.CreateMaterial)
		materials.GET("/course/:courseId", authMiddleware.RequireOperation(appauth.OpMaterialList), ctrl.Teaching.ListMaterials)
		materials.GET("/:id", authMiddleware.RequireOperation(appauth.OpMaterialList), ctrl.Teaching.ViewMaterial)
		materials.PUT("/:id", authMiddleware.RequireOperation(appauth.OpMaterialUpdate), ctrl.Teaching.UpdateMaterial)
		materials.DELETE("/:id", authMiddleware.RequireOperation(appauth.OpMaterialDelete), ctrl.Teaching.DeleteMaterial)
	}

	assignments := authenticated.Group("/assignments")
	{
		assignments.POST("", authMiddleware.RequireOperation(appauth.OpAssignmentCreate), ctrl.Assignment.CreateAssignment)
		assignments.GET("/me", authMiddleware.RequireOperation(appauth.OpAssignmentList), ctrl.Assignment.MyAssignments)
		assignments.GET("/course/:courseId", authMiddleware.RequireOperation(appauth.OpAssignmentList), ctrl.Assignment.ListByCourse)
		assignments.POST("/:id/submissions", authMiddleware.RequireOperation(appauth.OpSubmissionCreate), ctrl.Assignment.Submit)
		assignments.GET("/:id/submissions/me", authMiddleware.RequireOperation(appauth.OpSubmissionList), ctrl.Assignment.MySubmission)
		assignments.GET("/:id/submissions", authMiddleware.RequireOperation(appauth.OpSubmissionList), ctrl.Assignment.ListSubmissions)
	}
	authenticated.PUT("/submissions/:submissionId/grade", authMiddleware.RequireOperation(appauth.OpSubmissionGrade), ctrl.Assignment.GradeSubmission)

	notifications := authenticated.Group("/notifications")
	{
		notifications.POST("", authMiddleware.RequireOperation(appauth.OpNotificationCreate), ctrl.Notification.CreateNotification)
		notifications.GET("", authMiddleware.RequireOperation(appauth.OpNotificationList), ctrl.Notification.ListNotifications)
		notifications.GET("/unread-count", authMiddleware.RequireOperation(appauth.OpNotificationList), ctrl.Notification.UnreadCount)
		notifications.PUT("/read-all", authMiddleware.RequireOperation(appauth.OpNotificationRead), ctrl.Notification.MarkAllRead)
		notifications.PUT("/:id/read", authMiddleware.RequireOperation(appauth.OpNotificationRead), ctrl.Notification.MarkRead)
		notifications.DELETE("/:id", authMiddleware.RequireOperation(appauth.OpNotificationRead), ctrl.Notification.DeleteNotification)
	}

	policies := authenticated.Group("/policies")
	{
		policies.POST("", authMiddleware.RequireOperation(appauth.OpPolicyCreate), ctrl.Policy.CreatePolicy)
		policies.GET("", authMiddleware.RequireOperation(appauth.OpPolicyList), ctrl.Policy.ListPolicies)
		policies.GET("/:id", authMiddleware.RequireOperation(appauth.OpPolicyList), ctrl.Policy.GetPolicy)
		policies.PUT("/:id", authMiddleware.RequireOperation(appauth.OpPolicyUpdate), ctrl.Policy.UpdatePolicy)
		policies.DELETE("/:id", authMiddleware.RequireOperation(appauth.OpPolicyDelete), ctrl.Policy.DeletePolicy)
	}

	reports := authenticated.Group("/reports")
	{
		reports.POST("", authMiddleware.RequireOperation(appauth.OpReportCreate), ctrl.Report.CreateReport)
		reports.GET("", authMiddleware.RequireOperation(appauth.OpReportList), ctrl.Report.ListReports)
		reports.GET("/:id", authMiddleware.RequireOperation(appauth.OpReportGet), ctrl.Report.GetReport)
		reports.PUT("/:id", authMiddleware.RequireOperation(appauth.OpReportUpdate), ctrl.Report.UpdateReport)
		reports.DELETE("/:id", authMiddleware.RequireOperation(appauth.OpReportDelete), ctrl.Report.DeleteReport)
	}

	authenticated.GET("/analytics/departments/:department", authMiddleware.RequireOperation(appauth.OpAnalyticsView), ctrl.Report.DepartmentAnalytics)
}
