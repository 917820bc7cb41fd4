package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emrekoc/campushub/internal/app/models"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name string
		role models.RoleType
		op   Operation
		want bool
	}{
		{"admin manages users", models.RoleAdmin, OpUserCreate, true},
		{"student cannot manage users", models.RoleStudent, OpUserCreate, false},
		{"faculty proposes courses", models.RoleFaculty, OpCourseCreate, true},
		{"department head proposes courses", models.RoleDepartmentHead, OpCourseCreate, true},
		{"student cannot create courses", models.RoleStudent, OpCourseCreate, false},
		{"only admin deletes courses", models.RoleDepartmentHead, OpCourseDelete, false},
		{"department head decides approvals", models.RoleDepartmentHead, OpApprovalDecide, true},
		{"faculty cannot decide approvals", models.RoleFaculty, OpApprovalDecide, false},
		{"faculty sees own approval requests", models.RoleFaculty, OpApprovalMine, true},
		{"student enrolls", models.RoleStudent, OpEnrollmentCreate, true},
		{"faculty cannot enroll", models.RoleFaculty, OpEnrollmentCreate, false},
		{"faculty grades submissions", models.RoleFaculty, OpSubmissionGrade, true},
		{"student cannot grade", models.RoleStudent, OpSubmissionGrade, false},
		{"everyone lists courses", models.RoleStudent, OpCourseList, true},
		{"student reads policies", models.RoleStudent, OpPolicyList, true},
		{"student cannot write policies", models.RoleStudent, OpPolicyCreate, false},
		{"department head views analytics", models.RoleDepartmentHead, OpAnalyticsView, true},
		{"faculty cannot view analytics", models.RoleFaculty, OpAnalyticsView, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.role, tt.op))
		})
	}
}

// An operation missing from the table must deny every role, including an
// admin. Permission is opt-in.
func TestUnknownOperationIsDenied(t *testing.T) {
	unknown := Operation("course.archive")

	for _, role := range []models.RoleType{
		models.RoleStudent, models.RoleFaculty, models.RoleAdmin, models.RoleDepartmentHead,
	} {
		assert.False(t, Allowed(role, unknown), "role %s", role)
	}
	assert.Nil(t, AllowedRoles(unknown))
}

func TestAllowedRejectsUnknownRole(t *testing.T) {
	assert.False(t, Allowed(models.RoleType("SUPERUSER"), OpCourseList))
}

// Every declared operation must have at least one permitted role; an empty
// entry would make the endpoint unreachable.
func TestEveryOperationHasRoles(t *testing.T) {
	for op, roles := range permissions {
		assert.NotEmpty(t, roles, "operation %s", op)
	}
}
