package core

import (
	"context"
	"io"
)

// Ports define interfaces for external dependencies

// ============================================
// STORAGE PORTS
// ============================================

// UserStorage defines user-related database operations.
//
// CreateUser must return ErrUserExists when the email is already taken;
// lookups return ErrUserNotFound when no row matches.
type UserStorage interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUserImage(ctx context.Context, id, locator string) error
}

// BlobStorage persists uploaded byte streams under opaque keys.
type BlobStorage interface {
	Save(ctx context.Context, key, contentType string, r io.Reader) error
	Delete(ctx context.Context, key string) error
}

// ============================================
// SERVICE PORTS (for HTTP adapters)
// ============================================

// AuthProvider provides the identity flows for HTTP adapters
type AuthProvider interface {
	SignUp(ctx context.Context, input SignUpInput) (*PublicUser, error)
	SignIn(ctx context.Context, input SignInInput) (*SignInResult, error)
	CurrentUser(ctx context.Context, userID string) (*PublicUser, error)
}

// AssetProvider provides the upload binding flow for HTTP adapters
type AssetProvider interface {
	Bind(ctx context.Context, userID, filename, contentType string, r io.Reader) (string, error)
	Image(ctx context.Context, userID string) (string, error)
}

// TokenVerifier checks a presented token and returns its subject.
// Any failure means the token must not be trusted.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
