package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/cipherkit/internal/configs"
	"github.com/PolarWolf314/cipherkit/internal/history"
)

// loadConfig returns cfg when set and the on-disk configuration otherwise.
func loadConfig(cfg *configs.Config) (*configs.Config, error) {
	if cfg != nil {
		return cfg, nil
	}
	loaded, err := configs.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return loaded, nil
}

// record appends a history entry when history is enabled.
func record(cfg *configs.Config, entry history.Entry) {
	if !cfg.History.Enabled {
		return
	}
	history.Log(entry)
}

func checkContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ctx.Err()
}
