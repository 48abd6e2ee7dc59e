package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	require.NoError(t, LoadConfig())

	assert.Equal(t, "csv", GlobalConfig.CatalogSource)
	assert.Equal(t, "music_data.csv", GlobalConfig.DataFile)
	assert.Equal(t, 10, GlobalConfig.DefaultTopN)
	assert.Equal(t, 50, GlobalConfig.MaxTopN)
	assert.Equal(t, 50, GlobalConfig.SearchLimit)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "sqlite")
	t.Setenv("RECOMMEND_DEFAULT_TOP_N", "5")
	t.Setenv("SEARCH_RESULT_LIMIT", "25")

	require.NoError(t, LoadConfig())
	assert.Equal(t, "sqlite", GlobalConfig.CatalogSource)
	assert.Equal(t, 5, GlobalConfig.DefaultTopN)
	assert.Equal(t, 25, GlobalConfig.SearchLimit)
}

func TestLoadConfigRejectsBadNumbers(t *testing.T) {
	t.Setenv("RECOMMEND_MAX_TOP_N", "not-a-number")
	t.Setenv("RECOMMEND_DEFAULT_TOP_N", "-4")

	require.NoError(t, LoadConfig())
	assert.Equal(t, 50, GlobalConfig.MaxTopN)
	assert.Equal(t, 10, GlobalConfig.DefaultTopN)
}
