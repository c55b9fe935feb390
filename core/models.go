package core

import "time"

// User represents a registered account.
//
// This is the internal record - it carries the password hash and is
// never serialized to a client. Handlers respond with PublicUser.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Image        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the client-facing projection of a User.
// It is the only user shape that ever crosses the HTTP boundary.
type PublicUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public returns the client-facing view of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// SignUpInput contains the data needed to register a new user
type SignUpInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInInput contains the credentials presented on sign-in
type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResult contains the issued token and the authenticated user
type SignInResult struct {
	Token string      `json:"token"`
	User  *PublicUser `json:"user"`
}

// UploadResult acknowledges a bound upload with its storage locator
type UploadResult struct {
	Image string `json:"image"`
}
