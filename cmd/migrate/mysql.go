package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	_ "github.com/go-sql-driver/mysql"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/padraicbc/runlog/store"
)

func newMySQLCmd() *cobra.Command {
	var table string
	cmd := &cobra.Command{
		Use:   "mysql",
		Short: "Import runs from a legacy MySQL database (MYSQL_DSN)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := setup(ctx)
			if err != nil {
				return err
			}
			defer e.close()

			if e.cfg.MySQLDSN == "" {
				return errors.New("MYSQL_DSN required, e.g.: user:pass@tcp(host:3306)/running?parseTime=true")
			}
			myDB, err := sql.Open("mysql", e.cfg.MySQLDSN)
			if err != nil {
				return fmt.Errorf("open mysql: %w", err)
			}
			defer myDB.Close()
			myDB.SetMaxOpenConns(4)
			if err := myDB.PingContext(ctx); err != nil {
				return fmt.Errorf("ping mysql: %w", err)
			}
			e.log.Info("connected to MySQL", zap.String("table", table))

			im := newImporter(store.New(e.db), e.log)
			if err := importMySQL(ctx, myDB, table, im); err != nil {
				return fmt.Errorf("migrate runs: %w", err)
			}
			im.done("mysql import")
			return nil
		},
	}
	cmd.Flags().StringVar(&table, "table", "runs", "legacy table holding the runs")
	return cmd
}

var tableNameRE = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// importMySQL reads every row of the legacy runs table. Columns match the
// run payload names.
func importMySQL(ctx context.Context, myDB *sql.DB, table string, im *importer) error {
	if !tableNameRE.MatchString(table) {
		return fmt.Errorf("invalid table name %q: use letters, digits and underscores", table)
	}
	rows, err := myDB.QueryContext(ctx, fmt.Sprintf(
		"SELECT runid, rdate, timeofday, distance, units, elapsed, effort, comment FROM `%s` ORDER BY runid",
		table,
	))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			runid     int64
			rdate     sql.NullTime
			timeofday sql.NullString
			distance  sql.NullString
			units     sql.NullString
			elapsed   sql.NullString
			effort    sql.NullString
			comment   sql.NullString
		)
		if err := rows.Scan(&runid, &rdate, &timeofday, &distance, &units, &elapsed, &effort, &comment); err != nil {
			return err
		}

		rec := map[string]any{}
		if rdate.Valid {
			rec["rdate"] = rdate.Time
		}
		for k, v := range map[string]sql.NullString{
			"timeofday": timeofday,
			"distance":  distance,
			"units":     units,
			"elapsed":   elapsed,
		} {
			if v.Valid {
				rec[k] = v.String
			}
		}
		rec["effort"] = effort.String
		rec["comment"] = comment.String

		if err := im.add(ctx, fmt.Sprintf("%s#%d", table, runid), rec); err != nil {
			return err
		}
	}
	return rows.Err()
}
