package services

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/spanteq/console/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")

type AuthUserStore interface {
	FindByID(userID uint) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	Create(user *models.User) error
	ListAll() ([]models.User, error)
}

type AuthService struct {
	users AuthUserStore
}

func NewAuthService(users AuthUserStore) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

// Authenticate checks credentials and returns the user. It answers with
// the same error for unknown email and wrong password.
func (service *AuthService) Authenticate(email string, password string) (models.User, error) {
	normalized := NormalizeEmail(email)
	if normalized == "" || password == "" {
		return models.User{}, ErrAuthCredentialsInvalid
	}

	user, err := service.users.FindByNormalizedEmail(normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrAuthCredentialsInvalid
		}
		return models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	return user, nil
}

// CreateUser registers a platform user. Admin-only at the transport; the
// service only validates shape.
func (service *AuthService) CreateUser(requester models.User, email string, password string, name string, role string) (models.User, error) {
	if requester.Role != models.RoleAdmin {
		return models.User{}, NewPermissionError("only admins may create users")
	}

	validation := NewValidationError("invalid user")
	normalized := NormalizeEmail(email)
	if normalized == "" {
		validation.WithField("email", "Email is required")
	} else if _, err := mail.ParseAddress(normalized); err != nil {
		validation.WithField("email", "Email is not a valid address")
	}
	if len(password) < 8 {
		validation.WithField("password", "Password must be at least 8 characters")
	}
	if !models.IsKnownRole(role) {
		validation.WithField("role", "Unknown role: "+role)
	}
	if validation.HasFields() {
		return models.User{}, validation
	}

	exists, err := service.users.ExistsByNormalizedEmail(normalized)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, NewConflictError("email already registered")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        normalized,
		PasswordHash: string(passwordHash),
		Name:         strings.TrimSpace(name),
		Role:         role,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) ListUsers(requester models.User) ([]models.User, error) {
	if requester.Role != models.RoleAdmin {
		return nil, NewPermissionError("only admins may list users")
	}
	return service.users.ListAll()
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
