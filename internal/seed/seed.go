// Package seed creates the default records the application expects on a
// fresh database.
package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/app/repositories"
	"github.com/emrekoc/campushub/internal/config"
	"github.com/emrekoc/campushub/internal/pkg/auth"
)

// CreateDefaultData provisions the initial admin account if no account
// exists for the configured email. When no password is configured a random
// one is generated and logged once; it should be rotated on first login.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	email := cfg.Seed.AdminEmail
	if email == "" {
		lgr.Info().Msg("No seed admin email configured, skipping default admin")
		return nil
	}

	exists, err := userRepo.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check seed admin: %w", err)
	}
	if exists {
		lgr.Info().Str("email", email).Msg("Admin account already exists, skipping seed")
		return nil
	}

	password := cfg.Seed.AdminPassword
	generated := false
	if password == "" {
		password = auth.GenerateTemporaryPassword()
		generated = true
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	accessCode := auth.GenerateAccessCode(email)

	admin := &models.User{
		Email:      email,
		Password:   hash,
		FirstName:  "System",
		LastName:   "Administrator",
		Role:       models.RoleAdmin,
		AccessCode: accessCode,
	}
	profile := &models.AdminProfile{
		AdminID: "A" + strings.ToUpper(accessCode),
	}

	if err := userRepo.CreateWithProfile(ctx, admin, profile); err != nil {
		return fmt.Errorf("failed to create seed admin: %w", err)
	}

	event := lgr.Info().Int64("adminID", admin.ID).Str("email", email)
	if generated {
		// Logged once so the operator can complete the first login.
		event = event.Str("temporaryPassword", password)
	}
	event.Msg("Default admin account created")

	return nil
}
