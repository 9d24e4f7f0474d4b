// cmd/migrate/main.go
// Moves runs into and out of the run log database.
//
// Usage:
//
//	MYSQL_DSN="user:pass@tcp(host:3306)/running?parseTime=true" go run ./cmd/migrate mysql
//	go run ./cmd/migrate yaml runs.yaml
//	go run ./cmd/migrate export -o runs.yaml
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/padraicbc/runlog/config"
	bundb "github.com/padraicbc/runlog/db"
	applog "github.com/padraicbc/runlog/logger"
)

// env is what every subcommand needs once configuration is loaded.
type env struct {
	cfg *config.Config
	db  *bun.DB
	log *zap.Logger
}

func (e *env) close() {
	_ = e.db.Close()
	_ = e.log.Sync()
}

func setup(ctx context.Context) (*env, error) {
	cfg := config.Load()
	logger, err := applog.New(cfg.LogLevel, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	db := bundb.Setup(cfg)
	if err := bundb.CreateTables(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return &env{cfg: cfg, db: db, log: logger}, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Import and export runs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMySQLCmd())
	root.AddCommand(newYAMLCmd())
	root.AddCommand(newExportCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
