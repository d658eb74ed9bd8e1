package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgStore is the Postgres implementation of Store, backed by the kv_entries
// table created by migration 00001.
type pgStore struct {
	db db
}

// NewPostgresStore constructs a Store backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPostgresStore(db db) Store {
	return &pgStore{db: db}
}

func (s *pgStore) Get(ctx context.Context, key string) (string, error) {
	const q = `SELECT value FROM kv_entries WHERE key = @key`

	var value string
	err := s.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("kv.pgStore.Get: %w", err)
	}
	return value, nil
}

// Set upserts the key. updated_at is refreshed on every write so operators
// can see when a profile was last active.
func (s *pgStore) Set(ctx context.Context, key, value string) error {
	const q = `
		INSERT INTO kv_entries (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()`

	if _, err := s.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "value": value}); err != nil {
		return fmt.Errorf("kv.pgStore.Set: %w", err)
	}
	return nil
}

func (s *pgStore) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM kv_entries WHERE key = @key`

	if _, err := s.db.Exec(ctx, q, pgx.NamedArgs{"key": key}); err != nil {
		return fmt.Errorf("kv.pgStore.Delete: %w", err)
	}
	return nil
}
