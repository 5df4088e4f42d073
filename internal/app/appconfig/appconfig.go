package appconfig

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"exusiai.dev/shufflestat/internal/app/appcontext"
	"exusiai.dev/shufflestat/internal/constant"
	"exusiai.dev/shufflestat/internal/pkg/projectpath"
)

func Parse(ctx appcontext.Ctx) (*Config, error) {
	err := godotenv.Load(filepath.Join(projectpath.Root, ".env"))
	if err != nil {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var config ConfigSpec
	err = envconfig.Process(constant.EnvPrefix, &config)
	if err != nil {
		_ = envconfig.Usage(constant.EnvPrefix, &config)
		return nil, fmt.Errorf("failed to parse configuration: %w. More info on how to configure this service is located at https://pkg.go.dev/exusiai.dev/shufflestat/internal/app/appconfig#ConfigSpec", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}

func (c *ConfigSpec) validate() error {
	if c.DefaultTopK < constant.MinTopK || c.DefaultTopK > constant.MaxTopK {
		return fmt.Errorf("DefaultTopK must be within [%d, %d], got %d", constant.MinTopK, constant.MaxTopK, c.DefaultTopK)
	}
	if c.ChartCacheSize <= 0 {
		return fmt.Errorf("ChartCacheSize must be positive, got %d", c.ChartCacheSize)
	}
	if c.SnapshotTTL < 0 {
		return fmt.Errorf("SnapshotTTL must not be negative, got %s", c.SnapshotTTL)
	}
	return nil
}
