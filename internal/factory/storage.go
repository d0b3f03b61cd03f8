package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sravanipallapu19/healthComp/internal/config"
	storepkg "github.com/sravanipallapu19/healthComp/internal/store"
	storepg "github.com/sravanipallapu19/healthComp/internal/store/postgres"
	storesqlite "github.com/sravanipallapu19/healthComp/internal/store/sqlite"
)

// NewStore returns the store.Store selected by cfg.DBDriver with its schema in place.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.DBDriver {
	case "sqlite":
		s, err := storesqlite.New(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		log.Info().Str("driver", cfg.DBDriver).Str("path", cfg.SQLitePath).Msg("store opened")
		return s, nil
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("JOURNAL_SERVICE_POSTGRES_DSN is required when DB_DRIVER=postgres")
		}
		s, err := storepg.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		log.Info().Str("driver", cfg.DBDriver).Msg("store opened")
		return s, nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
