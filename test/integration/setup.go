package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"loja-api/internal/auth"
	"loja-api/internal/config"
	"loja-api/internal/database"
	"loja-api/internal/handler"
	"loja-api/internal/repository"
	"loja-api/internal/router"
	"loja-api/internal/service"
	"loja-api/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

const (
	testJWTKey  = "segredo-de-teste"
	testBaseURL = "http://localhost:3000"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
}

// SetupTestDB creates a PostgreSQL test container, a pool with at most
// maxConns connections, and the application schema.
func SetupTestDB(t *testing.T, maxConns int) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("loja"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "testuser",
		Password:        "testpass",
		Database:        "loja",
		MaxConnections:  maxConns,
		MinConnections:  1,
		MaxConnLifetime: 300,
	}

	logger := zerolog.Nop()
	pool, err := database.NewPool(ctx, dbConfig, logger)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
	}
}

// TestApp is the full HTTP stack wired against a test database.
type TestApp struct {
	Handler   http.Handler
	Tokens    *auth.TokenService
	UploadDir string
}

// NewTestApp wires repositories, services, handlers and router the same way
// the api binary does, storing uploads in a temporary directory.
func NewTestApp(t *testing.T, db *TestDB) *TestApp {
	t.Helper()

	logger := zerolog.Nop()
	uploadDir := t.TempDir()

	productRepo := repository.NewProductRepository(db.Pool, logger)
	orderRepo := repository.NewOrderRepository(db.Pool, logger)
	userRepo := repository.NewUserRepository(db.Pool, logger)

	images, err := storage.NewFileStore(uploadDir, logger)
	if err != nil {
		t.Fatalf("failed to create file store: %v", err)
	}

	tokens, err := auth.NewTokenService(testJWTKey)
	if err != nil {
		t.Fatalf("failed to create token service: %v", err)
	}

	const maxUpload = 10 * 1024 * 1024

	handlers := router.Handlers{
		Products: handler.NewProductHandler(
			service.NewProductService(productRepo, images, maxUpload, logger),
			testBaseURL, maxUpload, logger,
		),
		Orders: handler.NewOrderHandler(
			service.NewOrderService(orderRepo, productRepo, logger),
			testBaseURL, logger,
		),
		Users: handler.NewUserHandler(
			service.NewUserService(userRepo, auth.NewBcryptHasher(bcrypt.MinCost), tokens, logger),
			logger,
		),
	}

	return &TestApp{
		Handler:   router.New(handlers, tokens, router.Options{UploadDir: uploadDir, Health: db.Pool}, logger),
		Tokens:    tokens,
		UploadDir: uploadDir,
	}
}

// CleanupDB empties all tables and restarts their id sequences.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "TRUNCATE usuarios, produtos, pedidos RESTART IDENTITY"); err != nil {
		t.Fatalf("failed to clean tables: %v", err)
	}
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(), fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}
