package auth

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the password hashing cost
const BcryptCost = 12

// HashPassword hashes a password for storing
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a stored hash against a provided password
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

var accessCodeCleaner = regexp.MustCompile(`[^a-zA-Z0-9]`)

// GenerateAccessCode derives an access code from the email local part with
// a random suffix. The suffix keeps codes unique regardless of account
// churn; counters would repeat a surviving code after a deletion.
func GenerateAccessCode(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	local = accessCodeCleaner.ReplaceAllString(local, "")
	if len(local) > 10 {
		local = local[:10]
	}
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
	return strings.ToLower(local) + suffix
}

// GenerateTemporaryPassword produces a random one-time password for
// admin-initiated resets.
func GenerateTemporaryPassword() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}
