package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sravanipallapu19/healthComp/internal/config"
)

func TestNewStore_SQLite(t *testing.T) {
	cfg := config.NewForTesting()
	cfg.SQLitePath = filepath.Join(t.TempDir(), "j.db")

	s, err := NewStore(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()
	assert.NoError(t, s.HealthPing(context.Background()))
}

func TestNewStore_Errors(t *testing.T) {
	cfg := config.NewForTesting()
	cfg.DBDriver = "postgres"
	cfg.PostgresDSN = ""
	_, err := NewStore(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)

	cfg.DBDriver = "mysql"
	_, err = NewStore(context.Background(), cfg, zerolog.Nop())
	assert.ErrorContains(t, err, "unknown DB_DRIVER")
}
