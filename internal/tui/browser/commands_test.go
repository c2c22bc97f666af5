package browser

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/worldview/internal/preferences"
	"github.com/alexisbeaulieu97/worldview/internal/theme"
	apperrors "github.com/alexisbeaulieu97/worldview/pkg/errors"
)

func TestLoadCountriesCmd(t *testing.T) {
	cmd := loadCountriesCmd(context.Background(), newFakeService(), 7)
	require.NotNil(t, cmd)

	loaded, ok := cmd().(CountriesLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, uint64(7), loaded.Generation)
	assert.Len(t, loaded.Countries, 5)
}

func TestLoadCountriesCmd_NilService(t *testing.T) {
	failed, ok := loadCountriesCmd(context.Background(), nil, 1)().(CountriesErrorMsg)
	require.True(t, ok)
	assert.ErrorIs(t, failed.Err, errNoService)
}

func TestLoadCountryCmd(t *testing.T) {
	loaded, ok := loadCountryCmd(context.Background(), newFakeService(), 3, "DEU")().(CountryLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, uint64(3), loaded.Generation)
	assert.Equal(t, "DEU", loaded.Code)
	assert.Equal(t, "Germany", loaded.Country.Name.Common)
}

func TestLoadCountryCmd_NotFound(t *testing.T) {
	failed, ok := loadCountryCmd(context.Background(), newFakeService(), 1, "ZZZ")().(CountryErrorMsg)
	require.True(t, ok)
	assert.True(t, failed.NotFound)
	assert.ErrorIs(t, failed.Err, apperrors.ErrNotFound)
}

func TestLoadCountryCmd_StatusErrorIsNotNotFound(t *testing.T) {
	svc := newFakeService()
	svc.getErr = apperrors.NewStatusError("get country", "", 503)

	failed, ok := loadCountryCmd(context.Background(), svc, 1, "FRA")().(CountryErrorMsg)
	require.True(t, ok)
	assert.False(t, failed.NotFound)
}

func TestLoadCountryCmd_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	failed, ok := loadCountryCmd(ctx, newFakeService(), 1, "FRA")().(CountryErrorMsg)
	require.True(t, ok)
	assert.ErrorIs(t, failed.Err, context.Canceled)
}

func TestToggleThemeCmd(t *testing.T) {
	prefs, err := preferences.NewStore(filepath.Join(t.TempDir(), "preferences.yaml"))
	require.NoError(t, err)
	store := theme.New(prefs, theme.Fixed(theme.Dark))

	changed, ok := toggleThemeCmd(store)().(ThemeChangedMsg)
	require.True(t, ok)
	assert.NoError(t, changed.Err)
	assert.Equal(t, theme.Light, changed.Mode)
	assert.Equal(t, theme.Light, store.Mode())
}
