package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
	"github.com/coopwheel/coopwheel/internal/wheel/store"
	"github.com/coopwheel/coopwheel/internal/wheel/store/drivers/sqlite"
	"github.com/coopwheel/coopwheel/pkg/idx"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a fresh sqlite database in the test's temp dir and runs
// migrations against it.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st store.Store, steamID, name string) domain.User {
	t.Helper()

	now := time.Now()
	u := domain.User{
		ID:          idx.New().String(),
		SteamID:     steamID,
		DisplayName: name,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}
