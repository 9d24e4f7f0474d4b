package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"reflect"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	_ "modernc.org/sqlite"

	"github.com/padraicbc/runlog/config"
	"github.com/padraicbc/runlog/models"
)

// Setup opens the configured database and fails hard if it is unreachable.
func Setup(cfg *config.Config) *bun.DB {
	var (
		db  *bun.DB
		err error
	)
	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err = OpenSQLite(cfg.SQLitePath)
	default:
		db = OpenPostgres(cfg.PostgresDSN())
	}
	if err != nil {
		log.Fatal("failed to open database:", err)
	}

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	return db
}

// OpenPostgres returns a bun handle over pgdriver. It does not ping.
func OpenPostgres(dsn string) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

// OpenSQLite opens a SQLite database at path (":memory:" for a private
// in-memory database). A single connection is used so that in-memory
// databases survive between queries and writers never contend.
func OpenSQLite(path string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	// A numeric column has NUMERIC affinity in SQLite, which rewrites decimal
	// text as an 8-byte REAL. TEXT affinity stores the digits as given.
	db.Table(reflect.TypeOf((*models.Run)(nil)).Elem()).FieldMap["distance"].CreateTableSQLType = "TEXT"
	return db, nil
}

// CreateTables creates all tables if they do not already exist.
func CreateTables(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.User)(nil),
		(*models.Run)(nil),
	}

	for _, model := range tables {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}

	if _, err := db.NewCreateIndex().
		Model((*models.Run)(nil)).
		Index("runs_rdate_idx").
		Column("rdate").
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("creating rdate index: %w", err)
	}

	return nil
}
