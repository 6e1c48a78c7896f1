package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driver-buddy/internal/domain"
	"driver-buddy/internal/model"
	"driver-buddy/internal/repository"
	"driver-buddy/internal/repository/sqlite"
)

func TestSelectorRoutesByStorageMode(t *testing.T) {
	ctx := context.Background()
	localDB, err := sqlite.Open(filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	defer localDB.Close()
	cloudDB, err := sqlite.Open(filepath.Join(t.TempDir(), "cloud.db"))
	require.NoError(t, err)
	defer cloudDB.Close()

	settings := sqlite.NewSqliteSettingsRepo(localDB)
	local, cloud := sqlite.NewStore(localDB), sqlite.NewStore(cloudDB)
	sel := repository.NewSelector(settings, local, cloud)

	require.NoError(t, sel.SavePay(ctx, 1, model.DailyPay{ID: "local-1", Date: "2024-06-10"}))

	s := model.DefaultSettings()
	s.StorageMode = model.StorageCloud
	require.NoError(t, settings.SaveSettings(ctx, 1, s))
	require.NoError(t, sel.SavePay(ctx, 1, model.DailyPay{ID: "cloud-1", Date: "2024-06-10"}))

	localPays, err := local.ListPays(ctx, 1)
	require.NoError(t, err)
	cloudPays, err := cloud.ListPays(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, localPays, 1)
	assert.Len(t, cloudPays, 1)
	assert.Equal(t, "cloud-1", cloudPays[0].ID)

	viaSelector, err := sel.ListPays(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, cloudPays, viaSelector)
}

func TestSelectorCloudUnavailable(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	defer db.Close()

	settings := sqlite.NewSqliteSettingsRepo(db)
	s := model.DefaultSettings()
	s.StorageMode = model.StorageCloud
	require.NoError(t, settings.SaveSettings(ctx, 9, s))

	sel := repository.NewSelector(settings, sqlite.NewStore(db), nil)
	_, err = sel.ListPays(ctx, 9)
	assert.ErrorIs(t, err, domain.ErrCloudUnavailable)
}
