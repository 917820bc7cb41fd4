package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/app/models/dto"
	"github.com/emrekoc/campushub/internal/app/repositories"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
)

func TestNotificationLifecycle(t *testing.T) {
	store := &memNotificationStore{}
	svc := NewNotificationService(store, testLogger)
	ctx := context.Background()

	first, err := svc.Create(ctx, &dto.CreateNotificationRequest{
		UserID:  1,
		Title:   "Enrollment open",
		Message: "Fall 2026 enrollment is now open.",
		Type:    "INFO",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &dto.CreateNotificationRequest{
		UserID:  1,
		Title:   "Deadline",
		Message: "Drop deadline is Friday.",
		Type:    "WARNING",
	})
	require.NoError(t, err)

	unread, err := svc.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	require.NoError(t, svc.MarkRead(ctx, first.ID, 1))

	unreadList, unread, err := svc.List(ctx, 1, true)
	require.NoError(t, err)
	assert.Len(t, unreadList, 1)
	assert.Equal(t, 1, unread)

	require.NoError(t, svc.MarkAllRead(ctx, 1))
	unread, err = svc.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestNotificationCreateRejectsUnknownType(t *testing.T) {
	svc := NewNotificationService(&memNotificationStore{}, testLogger)

	_, err := svc.Create(context.Background(), &dto.CreateNotificationRequest{
		UserID: 1, Title: "x", Message: "y", Type: "SHOUT",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

// Read and delete operations are scoped to the owning user.
func TestNotificationOwnershipScoping(t *testing.T) {
	store := &memNotificationStore{}
	svc := NewNotificationService(store, testLogger)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateNotificationRequest{
		UserID: 1, Title: "x", Message: "y", Type: "INFO",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.MarkRead(ctx, created.ID, 2), apperrors.ErrNotificationNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID, 2), apperrors.ErrNotificationNotFound)
	assert.NoError(t, svc.Delete(ctx, created.ID, 1))
}

func TestPolicyLifecycle(t *testing.T) {
	svc := NewPolicyService(newMemPolicyStore(), testLogger)
	ctx := context.Background()

	policy, err := svc.Create(ctx, &dto.CreatePolicyRequest{
		Title:      "Late submission policy",
		Content:    "Submissions lose 10% per day late.",
		Department: "Computer Science",
	}, 2)
	require.NoError(t, err)
	assert.True(t, policy.IsActive)
	assert.Equal(t, int64(2), policy.CreatedBy)

	inactive := false
	updated, err := svc.Update(ctx, policy.ID, &dto.UpdatePolicyRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	active, err := svc.List(ctx, nil, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.List(ctx, nil, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(ctx, policy.ID))
	_, err = svc.Get(ctx, policy.ID)
	assert.ErrorIs(t, err, apperrors.ErrPolicyNotFound)
}

func TestPolicyListFiltersByDepartment(t *testing.T) {
	svc := NewPolicyService(newMemPolicyStore(), testLogger)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreatePolicyRequest{
		Title: "A", Content: "x", Department: "Computer Science",
	}, 2)
	require.NoError(t, err)
	_, err = svc.Create(ctx, &dto.CreatePolicyRequest{
		Title: "B", Content: "y", Department: "Mathematics",
	}, 2)
	require.NoError(t, err)

	department := "Mathematics"
	matched, err := svc.List(ctx, &department, false)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "B", matched[0].Title)
}

func newReportRequest() *dto.CreateReportRequest {
	return &dto.CreateReportRequest{
		Title:      "Fall enrollment",
		Type:       "ENROLLMENT",
		Content:    `{"total": 120}`,
		Department: "Computer Science",
	}
}

func TestReportCreateValidatesContentJSON(t *testing.T) {
	svc := NewReportService(newMemReportStore(), &memAnalyticsStore{}, testLogger)
	ctx := context.Background()

	report, err := svc.Create(ctx, newReportRequest(), 2)
	require.NoError(t, err)
	assert.Equal(t, models.ReportEnrollment, report.Type)

	bad := newReportRequest()
	bad.Content = "{not json"
	_, err = svc.Create(ctx, bad, 2)
	assert.ErrorIs(t, err, apperrors.ErrInvalidReportContent)

	badType := newReportRequest()
	badType.Type = "GOSSIP"
	_, err = svc.Create(ctx, badType, 2)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestReportUpdateValidatesContentJSON(t *testing.T) {
	svc := NewReportService(newMemReportStore(), &memAnalyticsStore{}, testLogger)
	ctx := context.Background()

	report, err := svc.Create(ctx, newReportRequest(), 2)
	require.NoError(t, err)

	badContent := "{broken"
	_, err = svc.Update(ctx, report.ID, &dto.UpdateReportRequest{Content: &badContent})
	assert.ErrorIs(t, err, apperrors.ErrInvalidReportContent)

	goodContent := `{"total": 140}`
	summary := "Enrollment grew by 20 students."
	updated, err := svc.Update(ctx, report.ID, &dto.UpdateReportRequest{
		Content: &goodContent,
		Summary: &summary,
	})
	require.NoError(t, err)
	assert.Equal(t, goodContent, updated.Content)
	require.NotNil(t, updated.Summary)
}

func TestReportListFilters(t *testing.T) {
	svc := NewReportService(newMemReportStore(), &memAnalyticsStore{}, testLogger)
	ctx := context.Background()

	_, err := svc.Create(ctx, newReportRequest(), 2)
	require.NoError(t, err)

	custom := newReportRequest()
	custom.Title = "Lab usage"
	custom.Type = "RESOURCES"
	custom.Department = "Physics"
	_, err = svc.Create(ctx, custom, 2)
	require.NoError(t, err)

	reportType := "RESOURCES"
	matched, err := svc.List(ctx, nil, &reportType)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Lab usage", matched[0].Title)

	department := "Computer Science"
	matched, err = svc.List(ctx, &department, nil)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Fall enrollment", matched[0].Title)
}

func TestDepartmentAnalytics(t *testing.T) {
	analytics := &memAnalyticsStore{
		stats: map[string]*repositories.DepartmentStats{
			"Computer Science": {
				Department:       "Computer Science",
				CourseCount:      12,
				ActiveCourses:    9,
				EnrollmentCount:  230,
				PendingApprovals: 2,
				ApprovedCourses:  9,
				RejectedCourses:  1,
			},
		},
		popular: map[string][]repositories.PopularCourse{
			"Computer Science": {
				{CourseID: 1, CourseCode: "CS101", Title: "Introduction to Algorithms", Enrollments: 45},
			},
		},
	}
	svc := NewReportService(newMemReportStore(), analytics, testLogger)

	resp, err := svc.DepartmentAnalytics(context.Background(), "Computer Science")
	require.NoError(t, err)
	assert.Equal(t, 12, resp.CourseCount)
	assert.Equal(t, 230, resp.EnrollmentCount)
	require.Len(t, resp.PopularCourses, 1)
	assert.Equal(t, "CS101", resp.PopularCourses[0].CourseCode)
}
