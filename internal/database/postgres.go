package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seams for tests.
var (
	parsePGConfig = pgxpool.ParseConfig
	newPGPool     = pgxpool.NewWithConfig
	pingPGPool    = func(ctx context.Context, pool *pgxpool.Pool) error { return pool.Ping(ctx) }
	closePGPool   = func(pool *pgxpool.Pool) { pool.Close() }
	queryTables   = func(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
		rows, err := pool.Query(ctx, listTablesSQL)
		if err != nil {
			return nil, err
		}
		return pgx.CollectRows(rows, pgx.RowTo[string])
	}
)

const listTablesSQL = `SELECT table_name
	FROM information_schema.tables
	WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
	ORDER BY table_name`

// PostgresDB is the optional database the diagnostic endpoint reports on.
// Nothing else in the service reads from it.
type PostgresDB struct {
	Pool *pgxpool.Pool
	name string
}

// NewPostgresDB connects to dsn. name overrides the database name reported
// by Name; when empty the name from the DSN is used.
func NewPostgresDB(dsn, name string) (*PostgresDB, error) {
	config, err := parsePGConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	config.MaxConns = 5
	config.MinConns = 0
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = time.Minute

	if name == "" && config.ConnConfig != nil {
		name = config.ConnConfig.Database
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := newPGPool(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pingPGPool(ctx, pool); err != nil {
		closePGPool(pool)
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresDB{Pool: pool, name: name}, nil
}

func (db *PostgresDB) Close() {
	if db.Pool != nil {
		closePGPool(db.Pool)
	}
}

func (db *PostgresDB) Health(ctx context.Context) error {
	return pingPGPool(ctx, db.Pool)
}

func (db *PostgresDB) Name() string {
	return db.name
}

// ListTables returns the base tables of the current schema, sorted.
func (db *PostgresDB) ListTables(ctx context.Context) ([]string, error) {
	tables, err := queryTables(ctx, db.Pool)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	return tables, nil
}
