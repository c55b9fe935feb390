package core

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const minSecretLen = 32

// Storage backend selectors for uploaded images.
const (
	BackendDisk = "disk"
	BackendS3   = "s3"
)

// Config holds runtime settings for the gatehouse server.
//
// The JWT secret must be a stable, confidential byte string: it is the
// only thing tying token issuance to token verification. TokenTTL of
// zero issues tokens without an expiry claim.
type Config struct {
	Addr        string        `env:"ADDR" envDefault:":3000"`
	DatabaseDSN string        `env:"DATABASE_DSN"`
	JWTSecret   string        `env:"JWT_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"0"`

	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"disk"`
	UploadDir      string `env:"UPLOAD_DIR" envDefault:"uploads"`

	S3Bucket       string `env:"S3_BUCKET"`
	S3Region       string `env:"S3_REGION" envDefault:"us-east-1"`
	S3AccessKey    string `env:"S3_ACCESS_KEY"`
	S3SecretKey    string `env:"S3_SECRET_KEY"`
	S3BaseEndpoint string `env:"S3_BASE_ENDPOINT"`
}

// LoadConfig builds a Config from the environment and validates the
// settings the server cannot run without.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.DatabaseDSN == "" {
		return nil, ErrDSNRequired
	}
	if cfg.JWTSecret == "" {
		return nil, ErrSecretRequired
	}
	if len(cfg.JWTSecret) < minSecretLen {
		return nil, fmt.Errorf("%w - minimum of %d characters", ErrSecretTooShort, minSecretLen)
	}
	if cfg.StorageBackend != BackendDisk && cfg.StorageBackend != BackendS3 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.StorageBackend)
	}

	return cfg, nil
}
