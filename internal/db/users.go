package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, phone, role, organization, COALESCE(password_hash, ''), created_at, updated_at`

// CreateUser creates a new user account and returns its ID
func (db *DB) CreateUser(ctx context.Context, name, email, phone string, role Role, organization string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, phone, role, organization)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		name, email, phone, role, organization,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// GetUser retrieves a user by ID, or nil if not found
func (db *DB) GetUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	var u User
	err := db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Organization, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// GetUserByEmail retrieves a user by email, or nil if not found
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Organization, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &u, nil
}

// CheckEmailExists reports whether an account with the email already exists
func (db *DB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

// UpdatePassword sets a user's password hash
func (db *DB) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`,
		passwordHash, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", userID)
	}
	return nil
}
