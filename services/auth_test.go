package services

import (
	"context"
	"errors"
	"testing"

	"github.com/nbarth/gatehouse/core"
	"github.com/nbarth/gatehouse/pkg/crypto"
	"github.com/nbarth/gatehouse/pkg/token"
)

func newTestAuthService(storage *FakeUserStorage) *AuthService {
	issuer := token.NewIssuer([]byte("test-secret-test-secret-test-sec"), 0)
	return NewAuthService(storage, crypto.NewArgon2(), issuer)
}

// Requirement: SignUp creates a new user account without issuing a token.
func TestAuthService_SignUp(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		setup    func(*FakeUserStorage) // optional setup before SignUp
		wantErr  error
	}{
		{
			name:     "creates user for valid input",
			username: "alice",
			email:    "alice@example.com",
			password: "SecurePass123!",
		},
		{
			name:     "returns error for empty username",
			username: "",
			email:    "alice@example.com",
			password: "SecurePass123!",
			wantErr:  core.ErrUsernameRequired,
		},
		{
			name:     "returns error for empty email",
			username: "alice",
			email:    "",
			password: "SecurePass123!",
			wantErr:  core.ErrEmailRequired,
		},
		{
			name:     "returns error for empty password",
			username: "alice",
			email:    "alice@example.com",
			password: "",
			wantErr:  core.ErrPasswordRequired,
		},
		{
			name:     "returns conflict for duplicate email",
			username: "alice2",
			email:    "alice@example.com",
			password: "SecurePass123!",
			setup: func(storage *FakeUserStorage) {
				_ = storage.CreateUser(context.Background(), &core.User{
					ID:    "existing-user",
					Email: "alice@example.com",
				})
			},
			wantErr: core.ErrUserExists,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			storage := NewFakeUserStorage()
			if test.setup != nil {
				test.setup(storage)
			}
			service := newTestAuthService(storage)

			// Act
			result, err := service.SignUp(context.Background(), core.SignUpInput{
				Username: test.username,
				Email:    test.email,
				Password: test.password,
			})

			// Assert
			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("SignUp() error = %v, want %v", err, test.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SignUp() error = %v", err)
			}
			if result == nil || result.ID == "" {
				t.Fatal("SignUp() should return a user with an assigned ID")
			}
			if result.Username != test.username {
				t.Errorf("SignUp() username = %q, want %q", result.Username, test.username)
			}
		})
	}
}

// Requirement: SignUp stores a salted hash, never the plaintext password.
func TestAuthService_SignUp_NeverStoresPlaintext(t *testing.T) {
	// Arrange
	storage := NewFakeUserStorage()
	service := newTestAuthService(storage)

	// Act
	result, err := service.SignUp(context.Background(), core.SignUpInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "SecurePass123!",
	})
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	// Assert
	stored, err := storage.GetUserByID(context.Background(), result.ID)
	if err != nil {
		t.Fatalf("GetUserByID() error = %v", err)
	}
	if stored.PasswordHash == "SecurePass123!" {
		t.Error("SignUp() stored the plaintext password")
	}
	ok, err := crypto.NewArgon2().Verify("SecurePass123!", stored.PasswordHash)
	if err != nil || !ok {
		t.Errorf("stored hash should verify against the original password, ok=%v err=%v", ok, err)
	}
}

// Requirement: a duplicate signup creates no second record.
func TestAuthService_SignUp_DuplicateCreatesNothing(t *testing.T) {
	// Arrange
	storage := NewFakeUserStorage()
	service := newTestAuthService(storage)
	input := core.SignUpInput{Username: "alice", Email: "alice@example.com", Password: "pw1pw1pw1"}

	// Act
	if _, err := service.SignUp(context.Background(), input); err != nil {
		t.Fatalf("first SignUp() error = %v", err)
	}
	_, err := service.SignUp(context.Background(), input)

	// Assert
	if !errors.Is(err, core.ErrUserExists) {
		t.Fatalf("second SignUp() error = %v, want ErrUserExists", err)
	}
	if n := storage.Count("alice@example.com"); n != 1 {
		t.Errorf("store has %d records for the email, want 1", n)
	}
}

// Requirement: SignIn verifies credentials and issues a token whose
// subject is the user's identifier; failures issue no token.
func TestAuthService_SignIn(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "authenticates with correct credentials",
			email:    "alice@example.com",
			password: "SecurePass123!",
		},
		{
			name:     "unknown email fails with not found",
			email:    "nobody@example.com",
			password: "SecurePass123!",
			wantErr:  core.ErrUserNotFound,
		},
		{
			name:     "wrong password fails with invalid credentials",
			email:    "alice@example.com",
			password: "WrongPass!",
			wantErr:  core.ErrInvalidCredentials,
		},
		{
			name:     "empty email fails validation",
			email:    "",
			password: "SecurePass123!",
			wantErr:  core.ErrEmailRequired,
		},
		{
			name:     "empty password fails validation",
			email:    "alice@example.com",
			password: "",
			wantErr:  core.ErrPasswordRequired,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			storage := NewFakeUserStorage()
			service := newTestAuthService(storage)
			signedUp, err := service.SignUp(context.Background(), core.SignUpInput{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "SecurePass123!",
			})
			if err != nil {
				t.Fatalf("SignUp() error = %v", err)
			}

			// Act
			result, err := service.SignIn(context.Background(), core.SignInInput{
				Email:    test.email,
				Password: test.password,
			})

			// Assert
			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("SignIn() error = %v, want %v", err, test.wantErr)
				}
				if result != nil {
					t.Error("SignIn() must not return a result on failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("SignIn() error = %v", err)
			}
			if result.Token == "" {
				t.Error("SignIn() should return a token")
			}
			if result.User == nil || result.User.ID != signedUp.ID {
				t.Errorf("SignIn() user = %+v, want ID %q", result.User, signedUp.ID)
			}
		})
	}
}

// Requirement: the token issued by SignIn verifies back to the user's ID.
func TestAuthService_SignIn_TokenSubject(t *testing.T) {
	// Arrange
	storage := NewFakeUserStorage()
	issuer := token.NewIssuer([]byte("test-secret-test-secret-test-sec"), 0)
	service := NewAuthService(storage, crypto.NewArgon2(), issuer)
	signedUp, err := service.SignUp(context.Background(), core.SignUpInput{
		Username: "alice", Email: "alice@example.com", Password: "pw1pw1pw1",
	})
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	// Act
	result, err := service.SignIn(context.Background(), core.SignInInput{
		Email: "alice@example.com", Password: "pw1pw1pw1",
	})
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}

	// Assert
	subject, err := issuer.Verify(result.Token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if subject != signedUp.ID {
		t.Errorf("token subject = %q, want %q", subject, signedUp.ID)
	}
}

// Requirement: CurrentUser resolves the gate subject and reports a gone
// user as not found.
func TestAuthService_CurrentUser(t *testing.T) {
	// Arrange
	storage := NewFakeUserStorage()
	service := newTestAuthService(storage)
	signedUp, err := service.SignUp(context.Background(), core.SignUpInput{
		Username: "alice", Email: "alice@example.com", Password: "pw1pw1pw1",
	})
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	// Act & Assert
	got, err := service.CurrentUser(context.Background(), signedUp.ID)
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if got.Username != "alice" {
		t.Errorf("CurrentUser() username = %q, want alice", got.Username)
	}

	_, err = service.CurrentUser(context.Background(), "deleted-user")
	if !errors.Is(err, core.ErrUserNotFound) {
		t.Fatalf("CurrentUser() error = %v, want ErrUserNotFound", err)
	}
}
