package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "flights.txt", cfg.Storage.FlightsFile)
	assert.Equal(t, "bookingHistory.txt", cfg.Storage.HistoryFile)
	assert.Equal(t, "tickets", cfg.Storage.TicketsDir)
	assert.Equal(t, 0.5, cfg.Pricing.OccupancySurcharge)
	assert.Equal(t, 30, cfg.Cabin.EconomySeats)
	assert.Equal(t, 1000.0, cfg.Cabin.EconomyBasePrice)
	assert.Equal(t, 10, cfg.Cabin.BusinessSeats)
	assert.Equal(t, 2500.0, cfg.Cabin.BusinessBasePrice)
	assert.NotEmpty(t, cfg.Admin.Password)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "storage:\n  flights_file: data/flights.txt\nadmin:\n  password: hunter2\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "data/flights.txt", cfg.Storage.FlightsFile)
	assert.Equal(t, "hunter2", cfg.Admin.Password)
	assert.Equal(t, "bookingHistory.txt", cfg.Storage.HistoryFile)
	assert.Equal(t, 30, cfg.Cabin.EconomySeats)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: ["), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
