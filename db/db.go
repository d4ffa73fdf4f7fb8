// Package db holds the embedded schema migrations and applies them at
// startup.
package db

import (
	"database/sql"
	"embed"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SetupPostgres runs all pending goose migrations over a short-lived
// database/sql connection. url must not carry pool parameters.
func SetupPostgres(url string, logger *zap.Logger) error {
	pg, err := sql.Open("pgx", url)

	if err != nil {
		return err
	}
	defer pg.Close()

	goose.SetBaseFS(migrations)

	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err = goose.Up(pg, "migrations"); err != nil {
		return err
	}

	logger.Info("migrations applied")
	return nil
}
