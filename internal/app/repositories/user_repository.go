package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/db"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
	"github.com/emrekoc/campushub/internal/pkg/dberrors"
)

const userColumns = `id, email, password_hash, first_name, last_name, role, access_code, created_at, updated_at, last_login`

// UserRepository handles database operations for users and their role profiles
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Role, &user.AccessCode, &user.CreatedAt, &user.UpdatedAt, &user.LastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return user, nil
}

// CreateWithProfile creates a user and its role profile in one transaction.
// Both writes succeed or neither does.
func (r *UserRepository) CreateWithProfile(ctx context.Context, user *models.User, profile interface{}) error {
	return db.WithTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO users (email, password_hash, first_name, last_name, role, access_code)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at`,
			user.Email, user.Password, user.FirstName, user.LastName, user.Role, user.AccessCode,
		).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
				return apperrors.ErrEmailAlreadyExists
			}
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrConflict
			}
			return fmt.Errorf("error creating user: %w", err)
		}

		switch p := profile.(type) {
		case *models.StudentProfile:
			p.UserID = user.ID
			err = tx.QueryRow(ctx, `
				INSERT INTO students (user_id, student_id, program, year_level)
				VALUES ($1, $2, $3, $4)
				RETURNING id`,
				p.UserID, p.StudentID, p.Program, p.YearLevel).Scan(&p.ID)
		case *models.FacultyProfile:
			p.UserID = user.ID
			err = tx.QueryRow(ctx, `
				INSERT INTO faculty_profiles (user_id, faculty_id, department, position)
				VALUES ($1, $2, $3, $4)
				RETURNING id`,
				p.UserID, p.FacultyID, p.Department, p.Position).Scan(&p.ID)
		case *models.AdminProfile:
			p.UserID = user.ID
			err = tx.QueryRow(ctx, `
				INSERT INTO admins (user_id, admin_id, department)
				VALUES ($1, $2, $3)
				RETURNING id`,
				p.UserID, p.AdminID, p.Department).Scan(&p.ID)
		case *models.DepartmentHeadProfile:
			p.UserID = user.ID
			err = tx.QueryRow(ctx, `
				INSERT INTO department_heads (user_id, department)
				VALUES ($1, $2)
				RETURNING id`,
				p.UserID, p.Department).Scan(&p.ID)
		default:
			return fmt.Errorf("unknown profile type %T: %w", profile, apperrors.ErrInvalidRole)
		}
		if err != nil {
			return fmt.Errorf("error creating role profile: %w", err)
		}

		return nil
	})
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1`, id))
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1`, email))
}

// GetByAccessCode retrieves a user by its access code
func (r *UserRepository) GetByAccessCode(ctx context.Context, accessCode string) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE access_code = $1`, accessCode))
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// List retrieves users matching the optional role/email/name filters
func (r *UserRepository) List(ctx context.Context, role *models.RoleType, email, name *string, limit, offset int) ([]*models.User, int, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if role != nil {
		where += fmt.Sprintf(" AND role = $%d", argPos)
		args = append(args, *role)
		argPos++
	}
	if email != nil {
		where += fmt.Sprintf(" AND email ILIKE $%d", argPos)
		args = append(args, "%"+*email+"%")
		argPos++
	}
	if name != nil {
		where += fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+*name+"%")
		argPos++
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting users: %w", err)
	}

	query := `SELECT ` + userColumns + ` FROM users` + where +
		fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
			&user.Role, &user.AccessCode, &user.CreatedAt, &user.UpdatedAt, &user.LastLogin,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// UpdateProfile updates a user's basic profile information
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, firstName, lastName, email string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, updated_at = $4
		WHERE id = $5`,
		firstName, lastName, email, time.Now(), userID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating user profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateLastLogin updates the last login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET last_login = $1 WHERE id = $2`,
		time.Now(), userID)
	if err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}

// SetPassword stores a new password hash for the user
func (r *UserRepository) SetPassword(ctx context.Context, userID int64, passwordHash string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`,
		passwordHash, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("error setting password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Delete removes a user. Role profiles are removed by the cascade rule.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// GetStudentProfileByUserID retrieves the student profile for a user
func (r *UserRepository) GetStudentProfileByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	profile := &models.StudentProfile{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, student_id, program, year_level
		FROM students
		WHERE user_id = $1`, userID).Scan(
		&profile.ID, &profile.UserID, &profile.StudentID, &profile.Program, &profile.YearLevel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}
	return profile, nil
}

// GetFacultyProfileByUserID retrieves the faculty profile for a user
func (r *UserRepository) GetFacultyProfileByUserID(ctx context.Context, userID int64) (*models.FacultyProfile, error) {
	profile := &models.FacultyProfile{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, faculty_id, department, position
		FROM faculty_profiles
		WHERE user_id = $1`, userID).Scan(
		&profile.ID, &profile.UserID, &profile.FacultyID, &profile.Department, &profile.Position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty profile: %w", err)
	}
	return profile, nil
}

// GetAdminProfileByUserID retrieves the admin profile for a user
func (r *UserRepository) GetAdminProfileByUserID(ctx context.Context, userID int64) (*models.AdminProfile, error) {
	profile := &models.AdminProfile{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, admin_id, department
		FROM admins
		WHERE user_id = $1`, userID).Scan(
		&profile.ID, &profile.UserID, &profile.AdminID, &profile.Department)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving admin profile: %w", err)
	}
	return profile, nil
}

// GetDepartmentHeadProfileByUserID retrieves the department head profile for a user
func (r *UserRepository) GetDepartmentHeadProfileByUserID(ctx context.Context, userID int64) (*models.DepartmentHeadProfile, error) {
	profile := &models.DepartmentHeadProfile{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, department
		FROM department_heads
		WHERE user_id = $1`, userID).Scan(
		&profile.ID, &profile.UserID, &profile.Department)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving department head profile: %w", err)
	}
	return profile, nil
}
