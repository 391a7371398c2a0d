package inmemdb_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/classtrack/classtrack/storage/record"
	inmemdb "github.com/classtrack/classtrack/storage/record/inmem"
)

func TestDBConcurrentReadsOnFreshTables(t *testing.T) {
	db := inmemdb.Open()
	ctx := context.Background()

	// Readers hitting tables that do not exist yet must not mutate shared state.
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < 8; i++ {
		i := i
		g.Go(func() error {
			table := fmt.Sprintf("table_%d", i%4)
			if _, err := db.List(ctx, table); err != nil {
				return err
			}
			if _, err := db.Get(ctx, table, "missing"); err != record.ErrNotFound {
				return fmt.Errorf("expected not found, got %v", err)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// Reads on an absent table leave it absent; a later Create still works.
	recs, err := db.List(ctx, "table_0")
	require.NoError(t, err)
	assert.Empty(t, recs)

	created, err := db.Create(ctx, "table_0", record.Record{"name": "Emma"})
	require.NoError(t, err)
	assert.NotEmpty(t, created["id"])

	recs, err = db.List(ctx, "table_0")
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}
