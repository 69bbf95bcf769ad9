package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"eventHub/internal/config"
	"fmt"
	"github.com/lib/pq"
	"time"
)

//go:embed schema.sql
var schemaSQL string

// foreignKeyViolation is the SQLSTATE postgres reports when a purchase
// references a missing event.
const foreignKeyViolation = "23503"

type Storage struct {
	DB *sql.DB
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	const op = "storage.postgres.InitDB"

	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	s, err := Open(connStr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.DB.SetMaxOpenConns(dbCfg.MaxOpenConns)
	s.DB.SetMaxIdleConns(dbCfg.MaxIdleConns)
	s.DB.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)

	return s, nil
}

// Open connects using a libpq connection string or URL and verifies the
// connection.
func Open(connStr string) (*Storage, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

// Migrate creates the events and purchases tables when they do not exist.
func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.postgres.Migrate"

	if _, err := s.DB.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
