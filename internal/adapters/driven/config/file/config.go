package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Storage backend identifiers accepted in configuration.
const (
	BackendSQLite  = "sqlite"
	BackendElastic = "elastic"
)

// Config is the full application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Sources SourcesConfig `toml:"sources"`
	Buses   BusesConfig   `toml:"buses"`
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	Backend string        `toml:"backend" validate:"oneof=sqlite elastic"`
	DataDir string        `toml:"data_dir"`
	Elastic ElasticConfig `toml:"elastic"`
}

// ElasticConfig holds Elasticsearch connection settings. Only consulted when
// the backend is "elastic".
type ElasticConfig struct {
	Addresses []string `toml:"addresses" validate:"omitempty,dive,url"`
	Username  string   `toml:"username"`
	Password  string   `toml:"password"`
	Index     string   `toml:"index"`
}

// SourcesConfig orders and configures the external stop and bus sources.
type SourcesConfig struct {
	// Order lists source names in resolution order. Unknown names are
	// rejected at load time rather than at first lookup.
	Order []string `toml:"order" validate:"min=1,dive,oneof=irail stationfile"`

	IRail       IRailConfig       `toml:"irail"`
	StationFile StationFileConfig `toml:"stationfile"`
}

// IRailConfig configures the iRail API client.
type IRailConfig struct {
	BaseURL           string  `toml:"base_url" validate:"omitempty,url"`
	UserAgent         string  `toml:"user_agent"`
	RequestsPerSecond float64 `toml:"requests_per_second" validate:"gt=0"`
}

// StationFileConfig configures the offline station dataset source.
type StationFileConfig struct {
	Path string `toml:"path"`
}

// BusesConfig configures bus board behaviour.
type BusesConfig struct {
	Sort  string `toml:"sort" validate:"oneof=time line route lineroute timelineroute"`
	Limit int    `toml:"limit" validate:"gte=0"`
}

var validate = validator.New()

// Default returns the configuration used when no file or overrides exist.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Elastic: ElasticConfig{Index: "stops"},
		},
		Sources: SourcesConfig{
			Order: []string{"irail"},
			IRail: IRailConfig{
				BaseURL:           "https://api.irail.be",
				UserAgent:         "stopline-cli (https://github.com/stopline-labs/stopline-cli)",
				RequestsPerSecond: 3,
			},
		},
		Buses: BusesConfig{
			Sort:  "time",
			Limit: 20,
		},
	}
}

// Load reads configuration from configDir/config.toml, applies environment
// overrides and validates the result. If configDir is empty, defaults to
// ~/.stopline. A missing config file is not an error; defaults apply.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".stopline")
	}

	// Pick up a local .env if present. Never overrides real env vars.
	_ = godotenv.Load()

	cfg := Default()

	path := filepath.Join(configDir, "config.toml")
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Storage.Backend == BackendElastic && len(cfg.Storage.Elastic.Addresses) == 0 {
		return nil, fmt.Errorf("invalid configuration: elastic backend requires storage.elastic.addresses")
	}
	return cfg, nil
}

// applyEnvOverrides lets STOPLINE_* variables win over file values, mainly
// so credentials stay out of the config file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("STOPLINE_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("STOPLINE_DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("STOPLINE_ELASTIC_ADDRESSES"); v != "" {
		cfg.Storage.Elastic.Addresses = splitAndTrim(v)
	}
	if v := os.Getenv("STOPLINE_ELASTIC_USERNAME"); v != "" {
		cfg.Storage.Elastic.Username = v
	}
	if v := os.Getenv("STOPLINE_ELASTIC_PASSWORD"); v != "" {
		cfg.Storage.Elastic.Password = v
	}
	if v := os.Getenv("STOPLINE_SOURCES"); v != "" {
		cfg.Sources.Order = splitAndTrim(v)
	}
	if v := os.Getenv("STOPLINE_STATIONFILE_PATH"); v != "" {
		cfg.Sources.StationFile.Path = v
	}
}

// splitAndTrim splits a comma-separated list, dropping empty entries.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
