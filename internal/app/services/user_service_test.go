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

func TestCreateUserWithoutPasswordStaysUnclaimed(t *testing.T) {
	users := newMemUserStore()
	svc := NewUserService(users, testLogger)
	authSvc := NewAuthService(users, newTestJWTService(), testLogger)
	ctx := context.Background()

	program := "Software Engineering"
	created, err := svc.Create(ctx, &dto.CreateUserRequest{
		Email:     "new.student@campus.edu",
		FirstName: "Nilay",
		LastName:  "Demir",
		Role:      "STUDENT",
		Program:   &program,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.AccessCode)

	// The account exists but has no credentials until the owner claims it.
	check, err := authSvc.CheckUser(ctx, "new.student@campus.edu")
	require.NoError(t, err)
	assert.True(t, check.Exists)
	assert.False(t, check.PasswordSet)

	_, err = authSvc.SetupPassword(ctx, &dto.SetupPasswordRequest{
		Email:    "new.student@campus.edu",
		Password: "chosen-pass1",
	})
	assert.NoError(t, err)
}

func TestCreateUserWithPassword(t *testing.T) {
	users := newMemUserStore()
	svc := NewUserService(users, testLogger)
	authSvc := NewAuthService(users, newTestJWTService(), testLogger)
	ctx := context.Background()

	password := "secret123"
	_, err := svc.Create(ctx, &dto.CreateUserRequest{
		Email:     "head@campus.edu",
		Password:  &password,
		FirstName: "Deniz",
		LastName:  "Kaya",
		Role:      "DEPARTMENT_HEAD",
	})
	require.NoError(t, err)

	_, err = authSvc.Login(ctx, &dto.LoginRequest{Email: "head@campus.edu", Password: "secret123"})
	assert.NoError(t, err)
}

func TestCreateUserRejectsDuplicateEmailAndBadRole(t *testing.T) {
	users := newMemUserStore()
	svc := NewUserService(users, testLogger)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateUserRequest{
		Email: "a@campus.edu", FirstName: "A", LastName: "B", Role: "STUDENT",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &dto.CreateUserRequest{
		Email: "a@campus.edu", FirstName: "C", LastName: "D", Role: "FACULTY",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	_, err = svc.Create(ctx, &dto.CreateUserRequest{
		Email: "b@campus.edu", FirstName: "C", LastName: "D", Role: "WIZARD",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestGetByAccessCode(t *testing.T) {
	users := newMemUserStore()
	svc := NewUserService(users, testLogger)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateUserRequest{
		Email: "a@campus.edu", FirstName: "A", LastName: "B", Role: "STUDENT",
	})
	require.NoError(t, err)

	found, err := svc.GetByAccessCode(ctx, created.AccessCode)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetByAccessCode(ctx, "no-such-code")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestResetPasswordIssuesTemporaryCredential(t *testing.T) {
	users := newMemUserStore()
	svc := NewUserService(users, testLogger)
	authSvc := NewAuthService(users, newTestJWTService(), testLogger)
	ctx := context.Background()

	registered := registerStudent(t, authSvc, "ada@campus.edu")

	reset, err := svc.ResetPassword(ctx, registered.User.ID)
	require.NoError(t, err)
	require.NotEmpty(t, reset.TemporaryPassword)

	// The old password no longer works, the temporary one does.
	_, err = authSvc.Login(ctx, &dto.LoginRequest{Email: "ada@campus.edu", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = authSvc.Login(ctx, &dto.LoginRequest{Email: "ada@campus.edu", Password: reset.TemporaryPassword})
	assert.NoError(t, err)
}

func TestResetPasswordUnknownUser(t *testing.T) {
	svc := NewUserService(newMemUserStore(), testLogger)

	_, err := svc.ResetPassword(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateUserProfile(t *testing.T) {
	users := newMemUserStore()
	svc := NewUserService(users, testLogger)
	authSvc := NewAuthService(users, newTestJWTService(), testLogger)

	registered := registerStudent(t, authSvc, "ada@campus.edu")

	updated, err := svc.Update(context.Background(), registered.User.ID, &dto.UpdateUserRequest{
		FirstName: "Ada",
		LastName:  "King",
		Email:     "ada.king@campus.edu",
	})
	require.NoError(t, err)
	assert.Equal(t, "King", updated.LastName)
	assert.Equal(t, "ada.king@campus.edu", updated.Email)
}

func TestListUsersFiltersByRole(t *testing.T) {
	users := newMemUserStore()
	svc := NewUserService(users, testLogger)
	authSvc := NewAuthService(users, newTestJWTService(), testLogger)
	ctx := context.Background()

	registerStudent(t, authSvc, "s1@campus.edu")
	registerStudent(t, authSvc, "s2@campus.edu")

	department := "Computer Science"
	_, err := authSvc.Register(ctx, &dto.RegisterRequest{
		Email: "prof@campus.edu", Password: "secret123",
		FirstName: "Grace", LastName: "Hopper", Role: "FACULTY", Department: &department,
	})
	require.NoError(t, err)

	role := "STUDENT"
	resp, err := svc.List(ctx, &dto.UserFilterRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.PaginationInfo.TotalItems)
	for _, u := range resp.Users {
		assert.Equal(t, string(models.RoleStudent), u.Role)
	}

	badRole := "WIZARD"
	_, err = svc.List(ctx, &dto.UserFilterRequest{Role: &badRole})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestDeleteUser(t *testing.T) {
	users := newMemUserStore()
	svc := NewUserService(users, testLogger)
	authSvc := NewAuthService(users, newTestJWTService(), testLogger)

	registered := registerStudent(t, authSvc, "ada@campus.edu")

	require.NoError(t, svc.Delete(context.Background(), registered.User.ID))
	_, err := svc.Get(context.Background(), registered.User.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestAccessCodesStayUniqueAcrossDeletions(t *testing.T) {
	users := newMemUserStore()
	svc := NewUserService(users, testLogger)
	authSvc := NewAuthService(users, newTestJWTService(), testLogger)
	ctx := context.Background()

	// Same email local part on every account, with a deletion in between.
	first := registerStudent(t, authSvc, "john@a.campus.edu")
	registerStudent(t, authSvc, "john@b.campus.edu")
	require.NoError(t, svc.Delete(ctx, first.User.ID))
	registerStudent(t, authSvc, "john@c.campus.edu")

	seen := make(map[string]string)
	for _, u := range users.users {
		holder, taken := seen[u.AccessCode]
		require.Falsef(t, taken, "accounts %s and %s share access code %q", holder, u.Email, u.AccessCode)
		seen[u.AccessCode] = u.Email
	}
}
