package dto

import (
	"time"

	"github.com/emrekoc/campushub/internal/app/models"
)

// ExtendedUserResponse represents detailed user information including
// the role-specific profile
type ExtendedUserResponse struct {
	ID         int64       `json:"id"`
	Email      string      `json:"email"`
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	Role       string      `json:"role"`
	AccessCode string      `json:"accessCode"`
	CreatedAt  time.Time   `json:"createdAt"`
	LastLogin  *time.Time  `json:"lastLogin,omitempty"`
	Profile    interface{} `json:"profile,omitempty"`
}

// UserFilterRequest represents user filtering parameters
type UserFilterRequest struct {
	Role     *string `form:"role,omitempty"`
	Email    *string `form:"email,omitempty"`
	Name     *string `form:"name,omitempty"` // Matches first or last name
	Page     int     `form:"page,default=1" binding:"min=1"`
	PageSize int     `form:"pageSize,default=10" binding:"min=1,max=100"`
}

// UserListResponse represents a list of users with pagination
type UserListResponse struct {
	Users []ExtendedUserResponse `json:"users"`
	PaginationInfo
}

// CreateUserRequest represents an admin-created account. Password is
// optional; accounts provisioned without one are claimed later through the
// password setup flow.
type CreateUserRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Password  *string `json:"password,omitempty"`
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Role      string  `json:"role" binding:"required"`

	Program    *string `json:"program,omitempty"`
	YearLevel  *int    `json:"yearLevel,omitempty"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
}

// UpdateUserRequest represents user update data
type UpdateUserRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

// ResetPasswordResponse carries the admin-issued temporary password
type ResetPasswordResponse struct {
	TemporaryPassword string `json:"temporaryPassword"`
}

// FromUserExtended converts a models.User (and optional profile) to an
// ExtendedUserResponse
func FromUserExtended(user *models.User, profile interface{}) ExtendedUserResponse {
	return ExtendedUserResponse{
		ID:         user.ID,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Role:       string(user.Role),
		AccessCode: user.AccessCode,
		CreatedAt:  user.CreatedAt,
		LastLogin:  user.LastLogin,
		Profile:    profile,
	}
}
