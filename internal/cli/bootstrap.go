package cli

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spanteq/console/internal/db"
	"github.com/spanteq/console/internal/models"
	"github.com/spanteq/console/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const temporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

// RunCreateAdminCommand creates the first admin account. The password is
// read from the terminal without echo; an empty entry falls back to a
// generated temporary password printed once.
func RunCreateAdminCommand(dbPath string, email string) error {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath, zerolog.Nop())
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	var existing models.User
	err = database.Where("lower(trim(email)) = ?", normalizedEmail).First(&existing).Error
	if err == nil {
		return fmt.Errorf("user %s already exists", normalizedEmail)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("load user: %w", err)
	}

	password, generated, err := resolvePassword()
	if err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	admin := models.User{
		Email:        normalizedEmail,
		PasswordHash: string(passwordHash),
		Name:         "Administrator",
		Role:         models.RoleAdmin,
	}
	if err := database.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	fmt.Printf("Admin user %s created\n", normalizedEmail)
	if generated {
		fmt.Printf("Temporary password: %s\n", password)
		fmt.Println("Change it after first login.")
	}
	return nil
}

func resolvePassword() (string, bool, error) {
	fmt.Print("Password (leave empty to generate): ")
	entered, err := readPasswordNoEcho(os.Stdin)
	fmt.Println()
	if err != nil {
		return "", false, fmt.Errorf("read password: %w", err)
	}

	password := strings.TrimSpace(string(entered))
	if password == "" {
		generatedPassword, err := security.RandomString(14, temporaryPasswordAlphabet)
		if err != nil {
			return "", false, fmt.Errorf("generate temporary password: %w", err)
		}
		return generatedPassword, true, nil
	}

	if len(password) < 8 {
		return "", false, errors.New("password must be at least 8 characters")
	}
	return password, false, nil
}
