package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/app/models/dto"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
	"github.com/emrekoc/campushub/internal/pkg/auth"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// UserStore is the persistence surface the auth and user services need
type UserStore interface {
	CreateWithProfile(ctx context.Context, user *models.User, profile interface{}) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByAccessCode(ctx context.Context, accessCode string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, role *models.RoleType, email, name *string, limit, offset int) ([]*models.User, int, error)
	UpdateProfile(ctx context.Context, userID int64, firstName, lastName, email string) error
	UpdateLastLogin(ctx context.Context, userID int64) error
	SetPassword(ctx context.Context, userID int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	GetStudentProfileByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error)
	GetFacultyProfileByUserID(ctx context.Context, userID int64) (*models.FacultyProfile, error)
	GetAdminProfileByUserID(ctx context.Context, userID int64) (*models.AdminProfile, error)
	GetDepartmentHeadProfileByUserID(ctx context.Context, userID int64) (*models.DepartmentHeadProfile, error)
}

// AuthService handles registration, login and the first-login password
// setup flow
type AuthService struct {
	userStore  UserStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userStore UserStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userStore:  userStore,
		jwtService: jwtService,
		logger:     logger,
	}
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	if !emailRegex.MatchString(email) {
		return apperrors.ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", apperrors.ErrInvalidPassword)
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}
	if !hasLetter {
		return fmt.Errorf("%w: password must contain at least one letter", apperrors.ErrInvalidPassword)
	}
	if !hasDigit {
		return fmt.Errorf("%w: password must contain at least one digit", apperrors.ErrInvalidPassword)
	}

	return nil
}

// buildProfile creates the role-specific profile record for a new user.
// The profile identifier is derived from the access code so that both
// stay unique together.
func buildProfile(role models.RoleType, accessCode string, req *dto.RegisterRequest) interface{} {
	switch role {
	case models.RoleStudent:
		return &models.StudentProfile{
			StudentID: "S" + strings.ToUpper(accessCode),
			Program:   req.Program,
			YearLevel: req.YearLevel,
		}
	case models.RoleFaculty:
		return &models.FacultyProfile{
			FacultyID:  "F" + strings.ToUpper(accessCode),
			Department: req.Department,
			Position:   req.Position,
		}
	case models.RoleAdmin:
		return &models.AdminProfile{
			AdminID:    "A" + strings.ToUpper(accessCode),
			Department: req.Department,
		}
	case models.RoleDepartmentHead:
		department := ""
		if req.Department != nil {
			department = *req.Department
		}
		return &models.DepartmentHeadProfile{
			Department: department,
		}
	}
	return nil
}

// Register creates a user account with its role profile and returns an
// authenticated session
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	role, ok := models.ParseRoleType(req.Role)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidRole, req.Role)
	}

	exists, err := s.userStore.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	accessCode := auth.GenerateAccessCode(req.Email)

	user := &models.User{
		Email:      req.Email,
		Password:   hash,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Role:       role,
		AccessCode: accessCode,
	}
	profile := buildProfile(role, accessCode, req)

	if err := s.userStore.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(role)).Msg("User registered")

	return s.issueSession(ctx, user)
}

// Login verifies credentials and returns an authenticated session. The
// error never reveals which of email or password was wrong.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userStore.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.PasswordSet() {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.userStore.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login")
	}

	return s.issueSession(ctx, user)
}

func (s *AuthService) issueSession(_ context.Context, user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: dto.FromUser(user),
	}, nil
}

// CheckUser reports whether an account exists for the email and whether
// its password has been set
func (s *AuthService) CheckUser(ctx context.Context, email string) (*dto.CheckUserResponse, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		return &dto.CheckUserResponse{Exists: false, PasswordSet: false}, nil
	}

	return &dto.CheckUserResponse{Exists: true, PasswordSet: user.PasswordSet()}, nil
}

// SetupPassword sets the initial password for an existing account whose
// password is unset. It never creates an account.
func (s *AuthService) SetupPassword(ctx context.Context, req *dto.SetupPasswordRequest) (*dto.AuthResponse, error) {
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if user.PasswordSet() {
		return nil, apperrors.ErrPasswordAlreadySet
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userStore.SetPassword(ctx, user.ID, hash); err != nil {
		return nil, err
	}
	user.Password = hash

	s.logger.Info().Int64("userID", user.ID).Msg("Initial password set")

	return s.issueSession(ctx, user)
}

// GetProfile returns the user together with its role profile
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.ExtendedUserResponse, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.loadProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	resp := dto.FromUserExtended(user, profile)
	return &resp, nil
}

func (s *AuthService) loadProfile(ctx context.Context, user *models.User) (interface{}, error) {
	switch user.Role {
	case models.RoleStudent:
		return s.userStore.GetStudentProfileByUserID(ctx, user.ID)
	case models.RoleFaculty:
		return s.userStore.GetFacultyProfileByUserID(ctx, user.ID)
	case models.RoleAdmin:
		return s.userStore.GetAdminProfileByUserID(ctx, user.ID)
	case models.RoleDepartmentHead:
		return s.userStore.GetDepartmentHeadProfileByUserID(ctx, user.ID)
	}
	return nil, apperrors.ErrInvalidRole
}
