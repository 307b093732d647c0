// Package config loads kit settings from an optional .env file and the
// process environment. Real environment variables win over .env entries.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

// Config holds the settings shared by all commands.
type Config struct {
	APIBaseURL  string        `env:"KIT_API_BASE_URL"`
	AccessToken string        `env:"KIT_ACCESS_TOKEN"`
	HTTPTimeout time.Duration `env:"KIT_HTTP_TIMEOUT" envDefault:"10s"`

	AvatarDefault    string   `env:"KIT_AVATAR_DEFAULT" envDefault:"/img/avatar.png"`
	UseBoringAvatars bool     `env:"KIT_AVATAR_BORING" envDefault:"true"`
	UseJdenticon     bool     `env:"KIT_AVATAR_JDENTICON" envDefault:"false"`
	ColorPalette     []string `env:"KIT_AVATAR_PALETTE" envSeparator:","`

	LogLevel string `env:"KIT_LOG_LEVEL" envDefault:"warn"`
}

// Load reads DotEnvFile from the working directory, if any, then the
// environment.
func Load() (*Config, error) {
	return LoadFiles(DotEnvFile)
}

// LoadFiles is Load with explicit dotenv paths. Missing files are skipped.
func LoadFiles(files ...string) (*Config, error) {
	vars := map[string]string{}
	for _, f := range files {
		m, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f, err)
		}
		for k, v := range m {
			vars[k] = v
		}
	}
	for k, v := range env.ToMap(os.Environ()) {
		vars[k] = v
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("invalid configuration: KIT_HTTP_TIMEOUT must be positive, got %s", cfg.HTTPTimeout)
	}
	return cfg, nil
}
