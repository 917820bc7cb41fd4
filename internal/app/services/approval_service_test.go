package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
)

type approvalFixture struct {
	catalog       *memCatalog
	notifications *memNotificationStore
	svc           *ApprovalService
	courseSvc     *CourseService
}

func newApprovalFixture() *approvalFixture {
	catalog := newMemCatalog()
	notifications := &memNotificationStore{}
	notifier := NewNotificationService(notifications, testLogger)
	return &approvalFixture{
		catalog:       catalog,
		notifications: notifications,
		svc:           NewApprovalService(approvalView{catalog}, notifier, testLogger),
		courseSvc:     NewCourseService(catalog, testLogger),
	}
}

func (f *approvalFixture) pendingApproval(t *testing.T, code string, requestedBy int64) (*models.Course, *models.CourseApproval) {
	t.Helper()
	course, approval, err := f.courseSvc.Create(context.Background(), newCourseRequest(code), requestedBy, models.RoleFaculty)
	require.NoError(t, err)
	require.NotNil(t, approval)
	return course, approval
}

func TestApproveActivatesCourseAndNotifiesRequester(t *testing.T) {
	f := newApprovalFixture()
	ctx := context.Background()
	course, approval := f.pendingApproval(t, "CS101", 7)

	comments := "Looks good"
	decided, err := f.svc.Decide(ctx, approval.ID, "approve", 2, &comments)
	require.NoError(t, err)

	assert.Equal(t, models.ApprovalApproved, decided.Status)
	require.NotNil(t, decided.ApprovedBy)
	assert.Equal(t, int64(2), *decided.ApprovedBy)

	refreshed, err := f.catalog.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.True(t, refreshed.IsActive)

	sent, err := f.notifications.ListByUser(ctx, 7, false)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, models.NotificationSuccess, sent[0].Type)
	assert.Contains(t, sent[0].Message, "CS101")
}

func TestRejectKeepsCourseInactive(t *testing.T) {
	f := newApprovalFixture()
	ctx := context.Background()
	course, approval := f.pendingApproval(t, "CS101", 7)

	decided, err := f.svc.Decide(ctx, approval.ID, "reject", 2, nil)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalRejected, decided.Status)

	refreshed, err := f.catalog.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.False(t, refreshed.IsActive)

	sent, err := f.notifications.ListByUser(ctx, 7, false)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, models.NotificationWarning, sent[0].Type)
}

func TestDecideIsOneShot(t *testing.T) {
	f := newApprovalFixture()
	ctx := context.Background()
	course, approval := f.pendingApproval(t, "CS101", 7)

	_, err := f.svc.Decide(ctx, approval.ID, "approve", 2, nil)
	require.NoError(t, err)

	_, err = f.svc.Decide(ctx, approval.ID, "reject", 3, nil)
	assert.ErrorIs(t, err, apperrors.ErrApprovalAlreadyDecided)

	// The first decision must survive the rejected retry.
	refreshed, err := f.catalog.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.True(t, refreshed.IsActive)
}

func TestDecideRejectsUnknownAction(t *testing.T) {
	f := newApprovalFixture()
	_, approval := f.pendingApproval(t, "CS101", 7)

	_, err := f.svc.Decide(context.Background(), approval.ID, "escalate", 2, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidApprovalAction)
}

func TestDecideUnknownApproval(t *testing.T) {
	f := newApprovalFixture()

	_, err := f.svc.Decide(context.Background(), 404, "approve", 2, nil)
	assert.ErrorIs(t, err, apperrors.ErrApprovalNotFound)
}

func TestListApprovalsByStatusAndRequester(t *testing.T) {
	f := newApprovalFixture()
	ctx := context.Background()
	_, first := f.pendingApproval(t, "CS101", 7)
	f.pendingApproval(t, "CS102", 8)

	_, err := f.svc.Decide(ctx, first.ID, "approve", 2, nil)
	require.NoError(t, err)

	status := string(models.ApprovalPending)
	pending, err := f.svc.List(ctx, &status)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(8), pending[0].RequestedBy)

	mine, err := f.svc.ListMine(ctx, 7)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, models.ApprovalApproved, mine[0].Status)

	all, err := f.svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
