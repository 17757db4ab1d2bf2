package system

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mairapenna/nutriplan_backend/config"
	"github.com/mairapenna/nutriplan_backend/internal/storage"
	redispkg "github.com/mairapenna/nutriplan_backend/pkg/redis"
)

// openBackend reads config via the root --config flag and connects the
// configured storage backend.
func openBackend(cmd *cobra.Command) (storage.Storage, *config.Config, error) {
	cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config: %w", err)
	}

	switch cfg.Storage.Backend {
	case "file":
		backend, err := storage.NewFileStorage(cfg.Storage.Dir)
		if err != nil {
			return nil, nil, err
		}
		return backend, cfg, nil
	case "redis", "":
		rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedisStorage(rdb), cfg, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
