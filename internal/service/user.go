package service

import (
	"errors"
	"fmt"

	"advisory-portal-backend/internal/database/models"
	apperrors "advisory-portal-backend/internal/errors"
	"advisory-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles user business logic
type UserService struct {
	userRepo  repository.UserRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repository.UserRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	validator *validator.Validate,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Username string     `json:"username" validate:"required,min=3,max=100"`
	Email    string     `json:"email" validate:"required,email,max=200"`
	Password string     `json:"password" validate:"required,min=8,max=72"`
	FullName string     `json:"full_name" validate:"max=200"`
	TeamID   *uuid.UUID `json:"team_id,omitempty"`
	IsAdmin  bool       `json:"is_admin"`
}

// UpdateUserRequest represents the request to update a user
type UpdateUserRequest struct {
	Email    *string    `json:"email,omitempty" validate:"omitempty,email,max=200"`
	FullName *string    `json:"full_name,omitempty" validate:"omitempty,max=200"`
	TeamID   *uuid.UUID `json:"team_id,omitempty"`
	IsActive *bool      `json:"is_active,omitempty"`
	IsAdmin  *bool      `json:"is_admin,omitempty"`
}

// Create creates a new user with a bcrypt password hash
func (s *UserService) Create(req *CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.userRepo.GetByUsername(req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewValidationError("username", "username already exists")
	}

	if req.TeamID != nil {
		if _, err := s.teamRepo.GetByID(*req.TeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to verify team: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		TeamID:       req.TeamID,
		IsAdmin:      req.IsAdmin,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetAll retrieves users with pagination
func (s *UserService) GetAll(page, pageSize int) ([]models.User, int64, error) {
	offset := (page - 1) * pageSize
	return s.userRepo.GetAll(pageSize, offset)
}

// Update updates a user's mutable fields
func (s *UserService) Update(id uuid.UUID, req *UpdateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.TeamID != nil {
		if _, err := s.teamRepo.GetByID(*req.TeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to verify team: %w", err)
		}
		user.TeamID = req.TeamID
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// ChangePassword replaces the user's password hash
func (s *UserService) ChangePassword(id uuid.UUID, newPassword string) error {
	if len(newPassword) < 8 {
		return apperrors.NewValidationError("password", "password must be at least 8 characters")
	}
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	return s.userRepo.Update(user)
}

// Delete removes a user
func (s *UserService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.userRepo.Delete(id)
}
