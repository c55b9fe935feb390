package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nbarth/gatehouse/core"
	"github.com/nbarth/gatehouse/pkg/crypto"
	"github.com/nbarth/gatehouse/pkg/token"
)

// AuthService implements the identity flows: account creation,
// credential verification with token issuance, and the gated
// current-user lookup.
type AuthService struct {
	store     core.UserStorage
	passwords crypto.PasswordHandler
	tokens    *token.Issuer
}

// Ensure AuthService implements AuthProvider
var _ core.AuthProvider = (*AuthService)(nil)

func NewAuthService(store core.UserStorage, passwords crypto.PasswordHandler, tokens *token.Issuer) *AuthService {
	return &AuthService{
		store:     store,
		passwords: passwords,
		tokens:    tokens,
	}
}

// SignUp registers a new user with username, email and password.
// It never authenticates: no token is issued and no hash is returned.
func (s *AuthService) SignUp(ctx context.Context, input core.SignUpInput) (*core.PublicUser, error) {
	// Step 1: Validate input
	if input.Username == "" {
		return nil, core.ErrUsernameRequired
	}
	if input.Email == "" {
		return nil, core.ErrEmailRequired
	}
	if input.Password == "" {
		return nil, core.ErrPasswordRequired
	}

	// Step 2: Hash the password
	hashedPassword, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Step 3: Create the user; the store enforces email uniqueness
	user := &core.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, core.ErrUserExists) {
			return nil, core.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user.Public(), nil
}

// SignIn authenticates a user by email and password and issues a token.
func (s *AuthService) SignIn(ctx context.Context, input core.SignInInput) (*core.SignInResult, error) {
	// Step 1: Validate input
	if input.Email == "" {
		return nil, core.ErrEmailRequired
	}
	if input.Password == "" {
		return nil, core.ErrPasswordRequired
	}

	// Step 2: Find the user by email
	user, err := s.store.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return nil, core.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// Step 3: Verify the password
	valid, err := s.passwords.Verify(input.Password, user.PasswordHash)
	if err != nil || !valid {
		return nil, core.ErrInvalidCredentials
	}

	// Step 4: Issue the identity token
	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &core.SignInResult{
		Token: tok,
		User:  user.Public(),
	}, nil
}

// CurrentUser resolves the gate-attached subject to its public record.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*core.PublicUser, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return nil, core.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user.Public(), nil
}
