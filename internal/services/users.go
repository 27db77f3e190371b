package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"seo-forge/internal/auth"
	"seo-forge/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsersService handles account registration and credential checks.
type UsersService struct {
	db *gorm.DB
}

// NewUsersService creates a new users service.
func NewUsersService(db *gorm.DB) *UsersService {
	return &UsersService{db: db}
}

// Register creates an account with a bcrypt-hashed password.
func (s *UsersService) Register(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if len(username) < 3 {
		return nil, fmt.Errorf("username must be at least 3 characters")
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}

	var existing int64
	s.db.Model(&models.User{}).Where("username = ? OR email = ?", username, email).Count(&existing)
	if existing > 0 {
		return nil, fmt.Errorf("username or email already taken")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies a username/password pair and stamps the login time.
func (s *UsersService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ? AND is_active = ?", strings.TrimSpace(username), true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid credentials")
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.db.Model(&user).Update("last_login_at", now).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Profile returns a user by ID.
func (s *UsersService) Profile(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
