package workflows

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/PolarWolf314/cipherkit/internal/configs"
	kerrors "github.com/PolarWolf314/cipherkit/internal/errors"
)

// ConfigInitOptions configures the config init workflow.
type ConfigInitOptions struct {
	// Force overwrites an existing config file.
	Force bool
}

// ConfigInitResult reports where the default config was written.
type ConfigInitResult struct {
	Path string

	// Overwritten is true when an existing file was replaced.
	Overwritten bool
}

// ConfigInit writes the default configuration to the config path.
//
// Returns ErrConfigExists if a file is already present and Force is unset.
func ConfigInit(ctx context.Context, opts ConfigInitOptions) (*ConfigInitResult, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	path := configs.UserSettings.ConfigPath()
	exists, err := fileExists(path)
	if err != nil {
		return nil, err
	}
	if exists && !opts.Force {
		return nil, fmt.Errorf("%s: %w", path, kerrors.ErrConfigExists)
	}

	if err := configs.Save(configs.Defaults()); err != nil {
		return nil, err
	}

	return &ConfigInitResult{Path: path, Overwritten: exists}, nil
}

// ConfigShowResult holds the effective configuration.
type ConfigShowResult struct {
	Path   string
	Config *configs.Config

	// FromFile is false when no config file exists and defaults are shown.
	FromFile bool

	// Unknown lists keys in the file that match no setting and were ignored.
	Unknown []string
}

// ConfigShow loads the effective configuration.
func ConfigShow(ctx context.Context) (*ConfigShowResult, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	path := configs.UserSettings.ConfigPath()
	exists, err := fileExists(path)
	if err != nil {
		return nil, err
	}

	cfg, unknown, err := configs.Inspect(path)
	if err != nil {
		return nil, err
	}

	return &ConfigShowResult{Path: path, Config: cfg, FromFile: exists, Unknown: unknown}, nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", path, err)
}
