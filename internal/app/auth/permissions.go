package auth

import (
	"github.com/emrekoc/campushub/internal/app/models"
)

// Operation identifies a protected API operation. Route handlers are gated by
// the permission table below rather than ad-hoc role checks, so every
// operation has exactly one authorization path.
type Operation string

const (
	// Users
	OpUserList          Operation = "user.list"
	OpUserGet           Operation = "user.get"
	OpUserCreate        Operation = "user.create"
	OpUserUpdate        Operation = "user.update"
	OpUserDelete        Operation = "user.delete"
	OpUserResetPassword Operation = "user.reset_password"

	// Courses
	OpCourseList   Operation = "course.list"
	OpCourseGet    Operation = "course.get"
	OpCourseCreate Operation = "course.create"
	OpCourseUpdate Operation = "course.update"
	OpCourseDelete Operation = "course.delete"

	// Approvals
	OpApprovalList   Operation = "approval.list"
	OpApprovalGet    Operation = "approval.get"
	OpApprovalDecide Operation = "approval.decide"
	OpApprovalMine   Operation = "approval.mine"

	// Enrollments
	OpEnrollmentCreate Operation = "enrollment.create"
	OpEnrollmentDrop   Operation = "enrollment.drop"
	OpEnrollmentMine   Operation = "enrollment.mine"

	// Teaching
	OpTeachingAssign      Operation = "teaching.assign"
	OpTeachingListMine    Operation = "teaching.list_mine"
	OpTeachingRoster      Operation = "teaching.roster"
	OpAttendanceRecord    Operation = "attendance.record"
	OpAttendanceList      Operation = "attendance.list"
	OpMaterialUpload      Operation = "material.upload"
	OpMaterialList        Operation = "material.list"
	OpMaterialUpdate      Operation = "material.update"
	OpMaterialDelete      Operation = "material.delete"

	// Assignments and submissions
	OpAssignmentCreate Operation = "assignment.create"
	OpAssignmentList   Operation = "assignment.list"
	OpSubmissionCreate Operation = "submission.create"
	OpSubmissionList   Operation = "submission.list"
	OpSubmissionGrade  Operation = "submission.grade"

	// Notifications
	OpNotificationCreate Operation = "notification.create"
	OpNotificationList   Operation = "notification.list"
	OpNotificationRead   Operation = "notification.read"

	// Policies
	OpPolicyList   Operation = "policy.list"
	OpPolicyCreate Operation = "policy.create"
	OpPolicyUpdate Operation = "policy.update"
	OpPolicyDelete Operation = "policy.delete"

	// Reports and analytics
	OpReportList    Operation = "report.list"
	OpReportCreate  Operation = "report.create"
	OpReportGet     Operation = "report.get"
	OpReportUpdate  Operation = "report.update"
	OpReportDelete  Operation = "report.delete"
	OpAnalyticsView Operation = "analytics.view"
)

// permissions maps each operation to the roles allowed to perform it.
// Ownership checks (a student reading their own submissions, a faculty member
// touching their own course) still happen in the service layer; this table is
// the coarse role gate.
var permissions = map[Operation][]models.RoleType{
	OpUserList:          {models.RoleAdmin},
	OpUserGet:           {models.RoleAdmin},
	OpUserCreate:        {models.RoleAdmin},
	OpUserUpdate:        {models.RoleAdmin},
	OpUserDelete:        {models.RoleAdmin},
	OpUserResetPassword: {models.RoleAdmin},

	OpCourseList:   {models.RoleStudent, models.RoleFaculty, models.RoleAdmin, models.RoleDepartmentHead},
	OpCourseGet:    {models.RoleStudent, models.RoleFaculty, models.RoleAdmin, models.RoleDepartmentHead},
	OpCourseCreate: {models.RoleFaculty, models.RoleAdmin, models.RoleDepartmentHead},
	OpCourseUpdate: {models.RoleFaculty, models.RoleAdmin, models.RoleDepartmentHead},
	OpCourseDelete: {models.RoleAdmin},

	OpApprovalList:   {models.RoleAdmin, models.RoleDepartmentHead},
	OpApprovalGet:    {models.RoleAdmin, models.RoleDepartmentHead},
	OpApprovalDecide: {models.RoleAdmin, models.RoleDepartmentHead},
	OpApprovalMine:   {models.RoleFaculty, models.RoleDepartmentHead},

	OpEnrollmentCreate: {models.RoleStudent},
	OpEnrollmentDrop:   {models.RoleStudent},
	OpEnrollmentMine:   {models.RoleStudent},

	OpTeachingAssign:   {models.RoleFaculty, models.RoleAdmin},
	OpTeachingListMine: {models.RoleFaculty},
	OpTeachingRoster:   {models.RoleFaculty},
	OpAttendanceRecord: {models.RoleFaculty},
	OpAttendanceList:   {models.RoleFaculty, models.RoleStudent},
	OpMaterialUpload:   {models.RoleFaculty},
	OpMaterialList:     {models.RoleFaculty, models.RoleStudent},
	OpMaterialUpdate:   {models.RoleFaculty},
	OpMaterialDelete:   {models.RoleFaculty},

	OpAssignmentCreate: {models.RoleFaculty},
	OpAssignmentList:   {models.RoleFaculty, models.RoleStudent},
	OpSubmissionCreate: {models.RoleStudent},
	OpSubmissionList:   {models.RoleFaculty, models.RoleStudent},
	OpSubmissionGrade:  {models.RoleFaculty},

	OpNotificationCreate: {models.RoleAdmin, models.RoleDepartmentHead},
	OpNotificationList:   {models.RoleStudent, models.RoleFaculty, models.RoleAdmin, models.RoleDepartmentHead},
	OpNotificationRead:   {models.RoleStudent, models.RoleFaculty, models.RoleAdmin, models.RoleDepartmentHead},

	OpPolicyList:   {models.RoleStudent, models.RoleFaculty, models.RoleAdmin, models.RoleDepartmentHead},
	OpPolicyCreate: {models.RoleAdmin, models.RoleDepartmentHead},
	OpPolicyUpdate: {models.RoleAdmin, models.RoleDepartmentHead},
	OpPolicyDelete: {models.RoleAdmin, models.RoleDepartmentHead},

	OpReportList:    {models.RoleAdmin, models.RoleDepartmentHead},
	OpReportCreate:  {models.RoleAdmin, models.RoleDepartmentHead},
	OpReportGet:     {models.RoleAdmin, models.RoleDepartmentHead},
	OpReportUpdate:  {models.RoleAdmin, models.RoleDepartmentHead},
	OpReportDelete:  {models.RoleAdmin, models.RoleDepartmentHead},
	OpAnalyticsView: {models.RoleAdmin, models.RoleDepartmentHead},
}

// Allowed reports whether role may perform op. Unknown operations are denied.
func Allowed(role models.RoleType, op Operation) bool {
	roles, ok := permissions[op]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// AllowedRoles returns the roles permitted for op, nil when op is unknown.
func AllowedRoles(op Operation) []models.RoleType {
	return permissions[op]
}
