package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

// PostgresStore хранит значения в таблице (key TEXT PRIMARY KEY, value TEXT, updated_at)
type PostgresStore struct {
	db    DBExecutor
	table string
}

// NewPostgresStore создает хранилище поверх *sqlx.DB
func NewPostgresStore(db DBExecutor, table string) *PostgresStore {
	return &PostgresStore{db: db, table: table}
}

// EnsureSchema создает таблицу, если ее нет
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`, s.table)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table %s: %v", ErrWrite, s.table, err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	query, args, err := s.selectQuery(key)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	if err := s.db.GetContext(ctx, &value, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: Get - select %s: %v", ErrRead, key, err)
	}
	return []byte(value), nil
}

// Set вставляет значение или перезаписывает существующее (upsert)
func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrInvalidKey
	}

	query, args, err := s.upsertQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - upsert %s: %v", ErrWrite, key, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrInvalidKey
	}

	query, args, err := psqlbuilder.Delete(s.table).Where(squirrel.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - delete %s: %v", ErrWrite, key, err)
	}
	return nil
}

func (s *PostgresStore) selectQuery(key string) (string, []interface{}, error) {
	return psqlbuilder.Select("value").
		From(s.table).
		Where(squirrel.Eq{"key": key}).
		ToSql()
}

func (s *PostgresStore) upsertQuery(key string, value []byte) (string, []interface{}, error) {
	return psqlbuilder.Insert(s.table).
		Columns("key", "value", "updated_at").
		Values(key, string(value), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
}
