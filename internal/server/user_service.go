package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/internmatch/internal/config"
	"github.com/jonathan/internmatch/internal/db"
	"github.com/jonathan/internmatch/internal/types"
)

// UserStore is the subset of database operations the user service needs.
type UserStore interface {
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, name, email, phone string, role db.Role, organization string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// UserService provides business logic for account registration and login.
type UserService struct {
	db             UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(db UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             db,
		passwordConfig: passwordConfig,
	}
}

// convertDBUserToTypesUser converts db.User to types.User, excluding password hash
func convertDBUserToTypesUser(dbUser *db.User) *types.User {
	if dbUser == nil {
		return nil
	}
	return &types.User{
		ID:           dbUser.ID,
		Name:         dbUser.Name,
		Email:        dbUser.Email,
		Phone:        dbUser.Phone,
		Role:         string(dbUser.Role),
		Organization: dbUser.Organization,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}

// Register creates a new account with password authentication.
// Admin accounts cannot self-register; company accounts must name an
// organization.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	role := db.Role(req.Role)
	if role == db.RoleAdmin {
		return nil, &ErrForbidden{Reason: "admin accounts cannot be self-registered"}
	}
	if role == db.RoleCompany && req.Organization == "" {
		return nil, &ErrValidation{Field: "organization", Message: "required for company accounts"}
	}

	exists, err := s.db.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Create user, then set password (two-step)
	userID, err := s.db.CreateUser(ctx, req.Name, req.Email, req.Phone, role, req.Organization)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.db.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if dbUser == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}

	return convertDBUserToTypesUser(dbUser), nil
}

// Login authenticates a user and returns user data
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	dbUser, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Security: always return a generic error whether the user is missing
	// or the password is wrong
	if dbUser == nil {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.passwordConfig.VerifyPassword(req.Password, dbUser.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return convertDBUserToTypesUser(dbUser), nil
}

// UpdatePassword updates a user's password
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return &ErrUserNotFound{UserID: userID}
	}

	if !s.passwordConfig.VerifyPassword(currentPassword, dbUser.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	newPasswordHash, err := s.passwordConfig.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.db.UpdatePassword(ctx, userID, newPasswordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
