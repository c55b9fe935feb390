package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/nbarth/gatehouse/adapters/disk"
	httpadapter "github.com/nbarth/gatehouse/adapters/fiber"
	pgxadapter "github.com/nbarth/gatehouse/adapters/pgx"
	s3adapter "github.com/nbarth/gatehouse/adapters/s3"
	"github.com/nbarth/gatehouse/core"
	"github.com/nbarth/gatehouse/pkg/crypto"
	"github.com/nbarth/gatehouse/pkg/token"
	"github.com/nbarth/gatehouse/services"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment variables")
	}

	cfg, err := core.LoadConfig()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *core.Config, logger *slog.Logger) error {
	// A credential store that cannot be reached at startup is fatal;
	// everything after this point degrades per request instead.
	if err := pgxadapter.Migrate(ctx, cfg.DatabaseDSN); err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	store := pgxadapter.New(pool)

	var blobs core.BlobStorage
	switch cfg.StorageBackend {
	case core.BackendS3:
		blobs, err = s3adapter.New(ctx, cfg)
		if err != nil {
			return err
		}
	default:
		blobs = disk.New(cfg.UploadDir)
	}

	issuer := token.NewIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)
	authService := services.NewAuthService(store, crypto.NewArgon2(), issuer)
	assetService := services.NewAssetService(store, blobs, logger)

	app := fiber.New()
	httpadapter.New(app, authService, assetService, issuer).RegisterRoutes()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}()

	logger.Info("starting server", "addr", cfg.Addr, "storage", cfg.StorageBackend)
	return app.Listen(cfg.Addr)
}
