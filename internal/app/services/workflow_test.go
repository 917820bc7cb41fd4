package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/app/models/dto"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
)

// Exercises the full course lifecycle across services: a faculty member
// proposes a course, a department head approves it, a student enrolls,
// and the capacity limit turns the next student away.
func TestCourseProposalToEnrollmentFlow(t *testing.T) {
	users := newMemUserStore()
	catalog := newMemCatalog()
	enrollments := newMemEnrollmentStore(catalog, users)
	notifications := &memNotificationStore{}

	authSvc := NewAuthService(users, newTestJWTService(), testLogger)
	courseSvc := NewCourseService(catalog, testLogger)
	notificationSvc := NewNotificationService(notifications, testLogger)
	approvalSvc := NewApprovalService(approvalView{catalog}, notificationSvc, testLogger)
	enrollSvc := NewEnrollmentService(enrollments, catalog, users, testLogger)

	ctx := context.Background()

	department := "Computer Science"
	faculty, err := authSvc.Register(ctx, &dto.RegisterRequest{
		Email: "prof@campus.edu", Password: "secret123",
		FirstName: "Grace", LastName: "Hopper", Role: "FACULTY", Department: &department,
	})
	require.NoError(t, err)

	head, err := authSvc.Register(ctx, &dto.RegisterRequest{
		Email: "head@campus.edu", Password: "secret123",
		FirstName: "Deniz", LastName: "Kaya", Role: "DEPARTMENT_HEAD", Department: &department,
	})
	require.NoError(t, err)

	student := registerStudent(t, authSvc, "student@campus.edu")
	rival := registerStudent(t, authSvc, "rival@campus.edu")

	// Faculty proposes a single-seat seminar.
	course, approval, err := courseSvc.Create(ctx, &dto.CreateCourseRequest{
		CourseCode: "CS900",
		Title:      "Research Seminar",
		Credits:    3,
		Department: department,
		Capacity:   1,
	}, faculty.User.ID, models.RoleFaculty)
	require.NoError(t, err)
	require.NotNil(t, approval)
	assert.False(t, course.IsActive)

	// Nobody can enroll while approval is pending.
	_, err = enrollSvc.Enroll(ctx, student.User.ID, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrCourseInactive)

	// Department head approves; the course activates and the proposer is
	// notified.
	_, err = approvalSvc.Decide(ctx, approval.ID, "approve", head.User.ID, nil)
	require.NoError(t, err)

	activated, err := courseSvc.Get(ctx, course.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)

	facultyInbox, _, err := notificationSvc.List(ctx, faculty.User.ID, false)
	require.NoError(t, err)
	require.Len(t, facultyInbox, 1)
	assert.Contains(t, facultyInbox[0].Message, "CS900")

	// First student takes the only seat; the second is turned away.
	_, err = enrollSvc.Enroll(ctx, student.User.ID, course.ID)
	require.NoError(t, err)

	_, err = enrollSvc.Enroll(ctx, rival.User.ID, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrCourseFull)

	mine, err := enrollSvc.ListMine(ctx, student.User.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, course.ID, mine[0].CourseID)
}
