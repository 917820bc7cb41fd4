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

type enrollmentFixture struct {
	users       *memUserStore
	catalog     *memCatalog
	enrollments *memEnrollmentStore
	svc         *EnrollmentService
	authSvc     *AuthService
	courseSvc   *CourseService
}

func newEnrollmentFixture() *enrollmentFixture {
	users := newMemUserStore()
	catalog := newMemCatalog()
	enrollments := newMemEnrollmentStore(catalog, users)
	return &enrollmentFixture{
		users:       users,
		catalog:     catalog,
		enrollments: enrollments,
		svc:         NewEnrollmentService(enrollments, catalog, users, testLogger),
		authSvc:     NewAuthService(users, newTestJWTService(), testLogger),
		courseSvc:   NewCourseService(catalog, testLogger),
	}
}

func (f *enrollmentFixture) student(t *testing.T, email string) int64 {
	t.Helper()
	resp := registerStudent(t, f.authSvc, email)
	return resp.User.ID
}

func (f *enrollmentFixture) activeCourse(t *testing.T, code string, capacity int, prerequisites *string) *models.Course {
	t.Helper()
	req := newCourseRequest(code)
	req.Capacity = capacity
	req.Prerequisites = prerequisites
	course, _, err := f.courseSvc.Create(context.Background(), req, 1, models.RoleAdmin)
	require.NoError(t, err)
	return course
}

func TestEnrollSuccess(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()
	userID := f.student(t, "ada@campus.edu")
	course := f.activeCourse(t, "CS101", 30, nil)

	enrollment, err := f.svc.Enroll(ctx, userID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusEnrolled, enrollment.Status)
	assert.Equal(t, course.ID, enrollment.CourseID)

	mine, err := f.svc.ListMine(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestEnrollUnknownCourse(t *testing.T) {
	f := newEnrollmentFixture()
	userID := f.student(t, "ada@campus.edu")

	_, err := f.svc.Enroll(context.Background(), userID, 404)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestEnrollRejectsInactiveCourse(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()
	userID := f.student(t, "ada@campus.edu")

	// Faculty-created course awaiting approval stays inactive.
	course, _, err := f.courseSvc.Create(ctx, newCourseRequest("CS101"), 7, models.RoleFaculty)
	require.NoError(t, err)

	_, err = f.svc.Enroll(ctx, userID, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrCourseInactive)
}

func TestEnrollRejectsDuplicate(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()
	userID := f.student(t, "ada@campus.edu")
	course := f.activeCourse(t, "CS101", 30, nil)

	_, err := f.svc.Enroll(ctx, userID, course.ID)
	require.NoError(t, err)

	_, err = f.svc.Enroll(ctx, userID, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
}

func TestEnrollEnforcesCapacity(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()
	first := f.student(t, "first@campus.edu")
	second := f.student(t, "second@campus.edu")
	course := f.activeCourse(t, "CS101", 1, nil)

	_, err := f.svc.Enroll(ctx, first, course.ID)
	require.NoError(t, err)

	_, err = f.svc.Enroll(ctx, second, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrCourseFull)
}

func TestEnrollChecksPrerequisites(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()
	userID := f.student(t, "ada@campus.edu")

	intro := f.activeCourse(t, "CS101", 30, nil)
	advanced := f.activeCourse(t, "CS201", 30, strPtr("CS101"))

	_, err := f.svc.Enroll(ctx, userID, advanced.ID)
	assert.ErrorIs(t, err, apperrors.ErrMissingPrerequisite)

	_, err = f.svc.Enroll(ctx, userID, intro.ID)
	require.NoError(t, err)

	_, err = f.svc.Enroll(ctx, userID, advanced.ID)
	assert.NoError(t, err)
}

// Courses carrying the legacy "none" or blank prerequisite markers must
// behave exactly like a course with no prerequisites.
func TestEnrollTreatsLegacyPrerequisiteMarkersAsNone(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()
	userID := f.student(t, "ada@campus.edu")

	for i, legacy := range []string{"none", "NONE", "", "   "} {
		course := f.activeCourse(t, "CS10"+string(rune('a'+i)), 30, nil)
		marker := legacy
		course.Prerequisites = &marker

		_, err := f.svc.Enroll(ctx, userID, course.ID)
		assert.NoError(t, err, "marker %q must not block enrollment", legacy)
	}
}

func TestEnrollRequiresStudentProfile(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()
	course := f.activeCourse(t, "CS101", 30, nil)

	department := "Computer Science"
	resp, err := f.authSvc.Register(ctx, &dto.RegisterRequest{
		Email:      "prof@campus.edu",
		Password:   "secret123",
		FirstName:  "Grace",
		LastName:   "Hopper",
		Role:       "FACULTY",
		Department: &department,
	})
	require.NoError(t, err)

	_, err = f.svc.Enroll(ctx, resp.User.ID, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestDropEnrollment(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()
	userID := f.student(t, "ada@campus.edu")
	course := f.activeCourse(t, "CS101", 30, nil)

	_, err := f.svc.Enroll(ctx, userID, course.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Drop(ctx, userID, course.ID))

	mine, err := f.svc.ListMine(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, mine)

	assert.ErrorIs(t, f.svc.Drop(ctx, userID, course.ID), apperrors.ErrEnrollmentNotFound)
}

// Dropping frees the seat for the next student.
func TestDropReleasesCapacity(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()
	first := f.student(t, "first@campus.edu")
	second := f.student(t, "second@campus.edu")
	course := f.activeCourse(t, "CS101", 1, nil)

	_, err := f.svc.Enroll(ctx, first, course.ID)
	require.NoError(t, err)
	require.NoError(t, f.svc.Drop(ctx, first, course.ID))

	_, err = f.svc.Enroll(ctx, second, course.ID)
	assert.NoError(t, err)
}
