package models

import (
	"time"
)

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent        RoleType = "STUDENT"
	RoleFaculty        RoleType = "FACULTY"
	RoleAdmin          RoleType = "ADMIN"
	RoleDepartmentHead RoleType = "DEPARTMENT_HEAD"
)

// ParseRoleType validates a role string against the enumerated set.
func ParseRoleType(role string) (RoleType, bool) {
	switch RoleType(role) {
	case RoleStudent, RoleFaculty, RoleAdmin, RoleDepartmentHead:
		return RoleType(role), true
	}
	return "", false
}

// User defines the user model based on the 'users' table
type User struct {
	ID         int64      `json:"id" db:"id" example:"1"`
	Email      string     `json:"email" db:"email" example:"user@campus.edu"`
	Password   string     `json:"-" db:"password_hash"` // Hashed password (excluded from JSON)
	FirstName  string     `json:"firstName" db:"first_name" example:"John"`
	LastName   string     `json:"lastName" db:"last_name" example:"Doe"`
	Role       RoleType   `json:"role" db:"role" example:"STUDENT"`
	AccessCode string     `json:"accessCode" db:"access_code" example:"jdoe3f9a1c"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`
	LastLogin  *time.Time `json:"lastLogin,omitempty" db:"last_login"` // Timestamp of the last login (nullable)
}

// PasswordSet reports whether the account has completed password setup.
func (u *User) PasswordSet() bool {
	return u.Password != ""
}

// StudentProfile defines the student model based on the 'students' table
type StudentProfile struct {
	ID        int64   `json:"id" db:"id"`
	UserID    int64   `json:"userId" db:"user_id"`
	StudentID string  `json:"studentId" db:"student_id"`
	Program   *string `json:"program,omitempty" db:"program"`
	YearLevel *int    `json:"yearLevel,omitempty" db:"year_level"`
	User      *User   `json:"user,omitempty"` // Relation, no db tag
}

// FacultyProfile defines the faculty model based on the 'faculty_profiles' table
type FacultyProfile struct {
	ID         int64   `json:"id" db:"id"`
	UserID     int64   `json:"userId" db:"user_id"`
	FacultyID  string  `json:"facultyId" db:"faculty_id"`
	Department *string `json:"department,omitempty" db:"department"`
	Position   *string `json:"position,omitempty" db:"position"`
	User       *User   `json:"user,omitempty"` // Relation, no db tag
}

// AdminProfile defines the admin model based on the 'admins' table
type AdminProfile struct {
	ID         int64   `json:"id" db:"id"`
	UserID     int64   `json:"userId" db:"user_id"`
	AdminID    string  `json:"adminId" db:"admin_id"`
	Department *string `json:"department,omitempty" db:"department"`
	User       *User   `json:"user,omitempty"` // Relation, no db tag
}

// DepartmentHeadProfile defines the model based on the 'department_heads' table
type DepartmentHeadProfile struct {
	ID         int64  `json:"id" db:"id"`
	UserID     int64  `json:"userId" db:"user_id"`
	Department string `json:"department" db:"department"`
	User       *User  `json:"user,omitempty"` // Relation, no db tag
}
