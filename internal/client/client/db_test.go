package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RitishHUB/polling-frountend/internal/client/repositories/storage"
)

func TestInitDatabase_MigratesAndPersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "pollhub.db")

	db, err := InitDatabase(ctx, path)
	require.NoError(t, err)

	repo := storage.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, "currentUser", []byte(`{"token":"t"}`)))
	require.NoError(t, db.Close())

	db, err = InitDatabase(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	v, err := storage.NewSQLiteRepository(db).Get(ctx, "currentUser")
	require.NoError(t, err)
	require.JSONEq(t, `{"token":"t"}`, string(v))
}
