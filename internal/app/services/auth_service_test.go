package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/app/models/dto"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
	"github.com/emrekoc/campushub/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key-for-unit-tests",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campushub-test",
	})
}

func newAuthService(users *memUserStore) *AuthService {
	return NewAuthService(users, newTestJWTService(), testLogger)
}

func registerStudent(t *testing.T, svc *AuthService, email string) *dto.AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     email,
		Password:  "secret123",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      "STUDENT",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterCreatesUserWithProfile(t *testing.T) {
	users := newMemUserStore()
	svc := newAuthService(users)

	resp := registerStudent(t, svc, "ada@campus.edu")

	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, "STUDENT", resp.User.Role)
	assert.NotEmpty(t, resp.User.AccessCode)

	profile, err := users.GetStudentProfileByUserID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, profile.UserID)
	assert.NotEmpty(t, profile.StudentID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newAuthService(newMemUserStore())

	registerStudent(t, svc, "ada@campus.edu")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "ada@campus.edu",
		Password:  "secret123",
		FirstName: "Other",
		LastName:  "Person",
		Role:      "FACULTY",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(newMemUserStore())
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.RegisterRequest
		want error
	}{
		{
			name: "bad email",
			req:  dto.RegisterRequest{Email: "not-an-email", Password: "secret123", FirstName: "A", LastName: "B", Role: "STUDENT"},
			want: apperrors.ErrInvalidEmail,
		},
		{
			name: "short password",
			req:  dto.RegisterRequest{Email: "a@campus.edu", Password: "ab1", FirstName: "A", LastName: "B", Role: "STUDENT"},
			want: apperrors.ErrInvalidPassword,
		},
		{
			name: "password without digit",
			req:  dto.RegisterRequest{Email: "a@campus.edu", Password: "abcdefgh", FirstName: "A", LastName: "B", Role: "STUDENT"},
			want: apperrors.ErrInvalidPassword,
		},
		{
			name: "unknown role",
			req:  dto.RegisterRequest{Email: "a@campus.edu", Password: "secret123", FirstName: "A", LastName: "B", Role: "SUPERUSER"},
			want: apperrors.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	users := newMemUserStore()
	svc := newAuthService(users)
	registered := registerStudent(t, svc, "ada@campus.edu")

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ada@campus.edu",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token.AccessToken)

	user, err := users.GetByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.NotNil(t, user.LastLogin)
}

// The login error must not reveal whether the email or the password was
// wrong.
func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newAuthService(newMemUserStore())
	registerStudent(t, svc, "ada@campus.edu")
	ctx := context.Background()

	_, unknownErr := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@campus.edu", Password: "secret123"})
	_, wrongErr := svc.Login(ctx, &dto.LoginRequest{Email: "ada@campus.edu", Password: "wrong-pass1"})

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLoginRejectsAccountWithoutPassword(t *testing.T) {
	users := newMemUserStore()
	svc := newAuthService(users)

	// Pre-provisioned account with no password yet.
	user := &models.User{Email: "new@campus.edu", Role: models.RoleStudent, AccessCode: "new1"}
	require.NoError(t, users.CreateWithProfile(context.Background(), user, &models.StudentProfile{StudentID: "SNEW1"}))

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "new@campus.edu", Password: "anything1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestCheckUser(t *testing.T) {
	users := newMemUserStore()
	svc := newAuthService(users)
	registerStudent(t, svc, "ada@campus.edu")

	user := &models.User{Email: "pending@campus.edu", Role: models.RoleStudent, AccessCode: "pend1"}
	require.NoError(t, users.CreateWithProfile(context.Background(), user, &models.StudentProfile{StudentID: "SPEND1"}))

	ctx := context.Background()

	resp, err := svc.CheckUser(ctx, "ada@campus.edu")
	require.NoError(t, err)
	assert.True(t, resp.Exists)
	assert.True(t, resp.PasswordSet)

	resp, err = svc.CheckUser(ctx, "pending@campus.edu")
	require.NoError(t, err)
	assert.True(t, resp.Exists)
	assert.False(t, resp.PasswordSet)

	resp, err = svc.CheckUser(ctx, "nobody@campus.edu")
	require.NoError(t, err)
	assert.False(t, resp.Exists)
	assert.False(t, resp.PasswordSet)
}

func TestSetupPasswordClaimsProvisionedAccount(t *testing.T) {
	users := newMemUserStore()
	svc := newAuthService(users)
	ctx := context.Background()

	user := &models.User{Email: "pending@campus.edu", Role: models.RoleStudent, AccessCode: "pend1"}
	require.NoError(t, users.CreateWithProfile(ctx, user, &models.StudentProfile{StudentID: "SPEND1"}))

	resp, err := svc.SetupPassword(ctx, &dto.SetupPasswordRequest{Email: "pending@campus.edu", Password: "chosen-pass1"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token.AccessToken)

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "pending@campus.edu", Password: "chosen-pass1"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, login.User.ID)
}

func TestSetupPasswordNeverCreatesAccounts(t *testing.T) {
	users := newMemUserStore()
	svc := newAuthService(users)

	_, err := svc.SetupPassword(context.Background(), &dto.SetupPasswordRequest{
		Email:    "ghost@campus.edu",
		Password: "chosen-pass1",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	count, _ := users.CountUsers(context.Background())
	assert.Zero(t, count)
}

func TestSetupPasswordRejectsAlreadySetPassword(t *testing.T) {
	svc := newAuthService(newMemUserStore())
	registerStudent(t, svc, "ada@campus.edu")

	_, err := svc.SetupPassword(context.Background(), &dto.SetupPasswordRequest{
		Email:    "ada@campus.edu",
		Password: "replacement1",
	})
	assert.ErrorIs(t, err, apperrors.ErrPasswordAlreadySet)
}

func TestGetProfileReturnsRoleProfile(t *testing.T) {
	users := newMemUserStore()
	svc := newAuthService(users)

	department := "Computer Science"
	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:      "prof@campus.edu",
		Password:   "secret123",
		FirstName:  "Grace",
		LastName:   "Hopper",
		Role:       "FACULTY",
		Department: &department,
	})
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "FACULTY", profile.Role)
	require.NotNil(t, profile.Profile)
}
