package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

type PostgresPrefsRepository struct {
	db *sql.DB
}

func NewPostgresPrefsDB(db *sql.DB) *PostgresPrefsRepository {
	return &PostgresPrefsRepository{db: db}
}

// OpenDB connects to Postgres and creates the preferences table.
// sslmode=require is appended when the DSN does not set a mode.
func OpenDB(ctx context.Context, connStr string) (*sql.DB, error) {
	db, err := sql.Open("postgres", withSSLMode(connStr))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS preferences (
    client_id  TEXT PRIMARY KEY,
    theme      TEXT NOT NULL DEFAULT '',
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create preferences table: %w", err)
	}
	return db, nil
}

// withSSLMode appends sslmode=require to a URL or key=value DSN that does
// not choose a mode itself.
func withSSLMode(connStr string) string {
	if strings.Contains(connStr, "sslmode=") {
		return connStr
	}
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		sep := "?"
		if strings.Contains(connStr, "?") {
			sep = "&"
		}
		return connStr + sep + "sslmode=require"
	}
	return connStr + " sslmode=require"
}

func (r *PostgresPrefsRepository) GetTheme(ctx context.Context, clientID string) (Theme, error) {
	var theme string
	query := "SELECT theme FROM preferences WHERE client_id=$1"
	err := r.db.QueryRowContext(ctx, query, clientID).Scan(&theme)
	if err != nil {
		if err == sql.ErrNoRows {
			return ThemeSystem, nil
		}
		return ThemeSystem, err
	}
	return Theme(theme), nil
}

func (r *PostgresPrefsRepository) SetTheme(ctx context.Context, clientID string, theme Theme) error {
	query := `INSERT INTO preferences (client_id, theme) VALUES ($1, $2)
ON CONFLICT (client_id) DO UPDATE SET theme = EXCLUDED.theme, updated_at = now()`
	_, err := r.db.ExecContext(ctx, query, clientID, string(theme))
	return err
}
