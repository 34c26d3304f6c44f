// Package middleware provides HTTP middleware for authentication and authorization.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// userIDKey is the context key for storing the authenticated user ID.
const userIDKey ContextKey = "userID"

// roleKey is the context key for storing the authenticated user's role.
const roleKey ContextKey = "role"

// TokenValidator is an interface for validating JWT tokens.
// This allows the middleware to work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (ClaimsGetter, error)
}

// ClaimsGetter is an interface for extracting identity from token claims.
type ClaimsGetter interface {
	GetUserID() uuid.UUID
	GetRole() string
}

// AuthMiddleware creates middleware that validates JWT tokens and adds the
// user ID and role to the request context.
func AuthMiddleware(jwtService TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// Handle case-insensitive "Bearer" prefix
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.GetUserID())
			ctx = context.WithValue(ctx, roleKey, claims.GetRole())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole wraps a handler and rejects requests whose authenticated role
// is not one of the allowed roles. Must run after AuthMiddleware.
func RequireRole(next http.Handler, roles ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := GetRole(r)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				next.ServeHTTP(w, r)
				return
			}
		}
		http.Error(w, "Forbidden", http.StatusForbidden)
	})
}

// GetUserID extracts the authenticated user ID from the request context.
func GetUserID(r *http.Request) (uuid.UUID, error) {
	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("user ID not found in request context")
	}
	return userID, nil
}

// GetRole extracts the authenticated user's role from the request context.
func GetRole(r *http.Request) (string, error) {
	role, ok := r.Context().Value(roleKey).(string)
	if !ok {
		return "", fmt.Errorf("role not found in request context")
	}
	return role, nil
}

// WithIdentity returns a context carrying the given user ID and role.
// Intended for handler tests that bypass AuthMiddleware.
func WithIdentity(ctx context.Context, userID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}
