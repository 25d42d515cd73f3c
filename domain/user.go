package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// A user can register, login, and author threads, comments and replies.
type User struct {
	ID        string    // Unique identifier
	Username  string    // Login username (unique)
	Password  string    // Bcrypt hashed password
	Fullname  string    // Display name
	CreatedAt time.Time // Account creation timestamp
}

// AddedUser is the public part of a freshly registered user
type AddedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// AddUser creates a new user account.
	AddUser(ctx context.Context, u User) (AddedUser, error)

	// VerifyAvailableUsername returns ErrConflict if the username is taken.
	VerifyAvailableUsername(ctx context.Context, username string) error

	// GetByUsername retrieves a user by their username.
	// Used during login to verify credentials.
	// Returns ErrNotFound if the user doesn't exist.
	GetByUsername(ctx context.Context, username string) (User, error)
}

// UserUsecase defines the business logic contract for user operations.
type UserUsecase interface {
	// Register creates a new user account.
	// Returns ErrConflict if the username already exists.
	Register(ctx context.Context, username, password, fullname string) (AddedUser, error)

	// Login verifies user credentials and returns a JWT token.
	// Returns ErrUnauthorized if the user doesn't exist or the password is incorrect.
	Login(ctx context.Context, username, password string) (string, error)
}

// TokenManager issues and verifies access tokens
type TokenManager interface {
	NewToken(userID string) (string, error)
	// ParseToken returns the user id carried by a valid token.
	ParseToken(token string) (string, error)
}
