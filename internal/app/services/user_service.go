package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/app/models/dto"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
	"github.com/emrekoc/campushub/internal/pkg/auth"
)

// UserService handles the admin-facing user directory operations
type UserService struct {
	userStore UserStore
	logger    zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userStore UserStore, logger zerolog.Logger) *UserService {
	return &UserService{
		userStore: userStore,
		logger:    logger,
	}
}

// List retrieves users matching the filter with pagination
func (s *UserService) List(ctx context.Context, filter *dto.UserFilterRequest) (*dto.UserListResponse, error) {
	var role *models.RoleType
	if filter.Role != nil {
		parsed, ok := models.ParseRoleType(*filter.Role)
		if !ok {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidRole, *filter.Role)
		}
		role = &parsed
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 10
	}

	users, total, err := s.userStore.List(ctx, role, filter.Email, filter.Name, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	resp := &dto.UserListResponse{
		Users: make([]dto.ExtendedUserResponse, 0, len(users)),
		PaginationInfo: dto.PaginationInfo{
			CurrentPage: page,
			PageSize:    pageSize,
			TotalItems:  total,
			TotalPages:  (total + pageSize - 1) / pageSize,
		},
	}
	for _, user := range users {
		resp.Users = append(resp.Users, dto.FromUserExtended(user, nil))
	}

	return resp, nil
}

// Create provisions an account on a user's behalf. When no password is
// given the account is created unclaimed and the user sets one through the
// password setup flow.
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.ExtendedUserResponse, error) {
	if err := validateEmail(req.Email); err != nil {
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

	hash := ""
	if req.Password != nil {
		if err := validatePassword(*req.Password); err != nil {
			return nil, err
		}
		if hash, err = auth.HashPassword(*req.Password); err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
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
	profile := buildProfile(role, accessCode, &dto.RegisterRequest{
		Program:    req.Program,
		YearLevel:  req.YearLevel,
		Department: req.Department,
		Position:   req.Position,
	})

	if err := s.userStore.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(role)).Msg("User provisioned by admin")

	return s.Get(ctx, user.ID)
}

// Get retrieves a user with its role profile
func (s *UserService) Get(ctx context.Context, id int64) (*dto.ExtendedUserResponse, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile, err := s.loadProfile(ctx, user)
	if err != nil && !errors.Is(err, apperrors.ErrProfileNotFound) {
		return nil, err
	}

	resp := dto.FromUserExtended(user, profile)
	return &resp, nil
}

// GetByAccessCode retrieves a user via its out-of-band access code
func (s *UserService) GetByAccessCode(ctx context.Context, accessCode string) (*dto.ExtendedUserResponse, error) {
	user, err := s.userStore.GetByAccessCode(ctx, accessCode)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, user.ID)
}

func (s *UserService) loadProfile(ctx context.Context, user *models.User) (interface{}, error) {
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

// Update updates a user's basic information
func (s *UserService) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*dto.ExtendedUserResponse, error) {
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}

	if err := s.userStore.UpdateProfile(ctx, id, req.FirstName, req.LastName, req.Email); err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// ResetPassword issues a new temporary password for the user
func (s *UserService) ResetPassword(ctx context.Context, id int64) (*dto.ResetPasswordResponse, error) {
	if _, err := s.userStore.GetByID(ctx, id); err != nil {
		return nil, err
	}

	temporary := auth.GenerateTemporaryPassword()
	hash, err := auth.HashPassword(temporary)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userStore.SetPassword(ctx, id, hash); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", id).Msg("Password reset by admin")

	return &dto.ResetPasswordResponse{TemporaryPassword: temporary}, nil
}

// Delete removes a user and its role profile
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.userStore.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", id).Msg("User deleted")
	return nil
}
