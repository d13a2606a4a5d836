package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-meet/internal/config"
	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB is the shared PostgreSQL handle. It is created once at startup,
// passed explicitly to every repository and closed on shutdown.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(20)
	conn.SetMaxIdleConns(5)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return newDB(conn, log), nil
}

func newDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// Close releases the connection pool.
func (db *DB) Close() error {
	db.logger.Info().Str("func", "*DB.Close").Msg("closing database")
	return db.DB.Close()
}
