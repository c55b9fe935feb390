package core

import "errors"

// Authentication Related Errors
var (
	// User errors
	ErrUserExists         = errors.New("email already registered") // 409 Conflict
	ErrUserNotFound       = errors.New("user not found")           // 404 Not Found
	ErrInvalidCredentials = errors.New("wrong credentials")        // 401 Unauthorized
)

// Gate errors
var (
	ErrMissingCredential = errors.New("missing authorization credential") // 401
	ErrInvalidToken      = errors.New("invalid token")                    // 403
)

// Asset errors
var (
	ErrNoFile  = errors.New("no file uploaded")  // 400
	ErrNoImage = errors.New("user has no image") // 404
)

// Validation errors (client input)
var (
	ErrUsernameRequired = errors.New("username is required") // 400
	ErrEmailRequired    = errors.New("email is required")    // 400
	ErrPasswordRequired = errors.New("password is required") // 400
)

// Config errors (server-side configuration)
var (
	ErrSecretRequired = errors.New("secret is required")       // fatal at startup
	ErrSecretTooShort = errors.New("secret too short")         // fatal at startup
	ErrUnknownBackend = errors.New("unknown storage backend")  // fatal at startup
	ErrDSNRequired    = errors.New("database DSN is required") // fatal at startup
)
