package db

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicbc/runlog/models"
)

func TestCreateTablesIsIdempotent(t *testing.T) {
	ctx := context.Background()
	bdb, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bdb.Close() })

	require.NoError(t, CreateTables(ctx, bdb))
	require.NoError(t, CreateTables(ctx, bdb))

	n, err := bdb.NewSelect().Model((*models.Run)(nil)).Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestSQLiteKeepsDistanceDigits(t *testing.T) {
	ctx := context.Background()
	bdb, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bdb.Close() })
	require.NoError(t, CreateTables(ctx, bdb))

	run := &models.Run{
		RDate:     models.NewDate(2020, time.June, 1),
		TimeOfDay: models.AM,
		Distance:  decimal.RequireFromString("12345678901234567.5"),
		Units:     models.Meters,
		Elapsed:   models.Elapsed(time.Hour),
	}
	_, err = bdb.NewInsert().Model(run).Exec(ctx)
	require.NoError(t, err)

	var storage, digits string
	require.NoError(t, bdb.NewRaw("SELECT typeof(distance), distance FROM runs WHERE runid = ?", run.RunID).
		Scan(ctx, &storage, &digits))
	assert.Equal(t, "text", storage)
	assert.Equal(t, "12345678901234567.5", digits)
}
