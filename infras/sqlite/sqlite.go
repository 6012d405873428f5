package sqlite

import (
	"fmt"
	"mountmix/config"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const (
	DriverName = "sqlite"

	dirPermissions = 0o755
)

func init() {
	// The modernc driver takes ? placeholders; named queries are rebound to it.
	sqlx.BindDriver(DriverName, sqlx.QUESTION)
}

// Connection wraps the single shared handle to the file-backed database.
type Connection struct {
	DB *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		DB: CreateSQLiteConn(config.DB.SQLite.Path),
	}
}

// DSN builds the connection string for the given database file.
func DSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_time_format=sqlite", path)
}

// CreateSQLiteConn opens the database file, creating its directory when missing.
func CreateSQLiteConn(path string) *sqlx.DB {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			log.Fatal().Err(err).Str("dir", dir).Msg("Failed to create database directory")
		}
	}

	sqlDB, err := sqlx.Connect(DriverName, DSN(path))
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to open database")
	}

	// SQLite allows one writer at a time; a single pooled connection keeps
	// writes from tripping over SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	log.
		Info().
		Str("path", path).
		Msg("Connected to database")

	return sqlDB
}
