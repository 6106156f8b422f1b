// Package config loads lite's settings from defaults, an optional YAML file
// and LITE_* environment variables, in increasing priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/lite/internal/domain"
	"github.com/alexanderramin/lite/internal/ranking"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// ConfigPathEnvVar names an explicit config file.
	ConfigPathEnvVar = "LITE_CONFIG"
	envPrefix        = "LITE_"

	BackendSQLite = "sqlite"
	BackendBadger = "badger"

	ContextAuto = "auto"
)

type Config struct {
	Storage StorageConfig `koanf:"storage"`
	Catalog CatalogConfig `koanf:"catalog"`
	Logging LoggingConfig `koanf:"logging"`
	Ranking RankingConfig `koanf:"ranking"`
	Viewing ViewingConfig `koanf:"viewing"`
}

type StorageConfig struct {
	Backend string `koanf:"backend" validate:"oneof=sqlite badger"`
	// Path is the SQLite file or the Badger directory. Empty selects a
	// per-backend default under ~/.lite.
	Path string `koanf:"path"`
}

type CatalogConfig struct {
	// Path to a YAML catalog. Empty uses the built-in catalog.
	Path string `koanf:"path"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled off"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

type RankingConfig struct {
	PopularityWeight     float64 `koanf:"popularity_weight" validate:"gte=0"`
	EngagementThreshold  float64 `koanf:"engagement_threshold" validate:"gte=0"`
	FavoriteThreshold    float64 `koanf:"favorite_threshold" validate:"gte=0"`
	RepeatWatchThreshold int     `koanf:"repeat_watch_threshold" validate:"gte=1"`
	RepeatWatchBonus     float64 `koanf:"repeat_watch_bonus" validate:"gte=0"`
	BucketBonus          float64 `koanf:"bucket_bonus" validate:"gte=0"`
	ContextBonus         float64 `koanf:"context_bonus" validate:"gte=0"`
	ScoreScale           float64 `koanf:"score_scale" validate:"gt=0"`
	ProbabilityFloor     int     `koanf:"probability_floor" validate:"gte=0,lte=100"`
	ProbabilityCeiling   int     `koanf:"probability_ceiling" validate:"gte=0,lte=100,gtefield=ProbabilityFloor"`
}

type ViewingConfig struct {
	// Context is auto, day or night. Auto follows the clock.
	Context     string `koanf:"context" validate:"oneof=auto day night"`
	DayStarts   int    `koanf:"day_starts" validate:"gte=0,lte=23"`
	NightStarts int    `koanf:"night_starts" validate:"gte=0,lte=23,gtfield=DayStarts"`
}

func defaultConfig() *Config {
	p := ranking.DefaultParams()
	return &Config{
		Storage: StorageConfig{Backend: BackendSQLite},
		Logging: LoggingConfig{Level: "warn", Format: "console"},
		Ranking: RankingConfig{
			PopularityWeight:     p.PopularityWeight,
			EngagementThreshold:  p.EngagementThreshold,
			FavoriteThreshold:    p.FavoriteThreshold,
			RepeatWatchThreshold: p.RepeatWatchThreshold,
			RepeatWatchBonus:     p.RepeatWatchBonus,
			BucketBonus:          p.BucketBonus,
			ContextBonus:         p.ContextBonus,
			ScoreScale:           p.ScoreScale,
			ProbabilityFloor:     p.ProbabilityFloor,
			ProbabilityCeiling:   p.ProbabilityCeiling,
		},
		Viewing: ViewingConfig{
			Context:     ContextAuto,
			DayStarts:   6,
			NightStarts: 18,
		},
	}
}

// Load builds the configuration. A config file is optional; when
// LITE_CONFIG names one it must exist.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	path, err := findConfigFile()
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.resolvePaths(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *Config) resolvePaths() error {
	if c.Storage.Path != "" {
		return nil
	}
	dir, err := DataDir()
	if err != nil {
		return err
	}
	switch c.Storage.Backend {
	case BackendBadger:
		c.Storage.Path = filepath.Join(dir, "badger")
	default:
		c.Storage.Path = filepath.Join(dir, "lite.db")
	}
	return nil
}

// DataDir is ~/.lite.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".lite"), nil
}

func findConfigFile() (string, error) {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("config file from %s: %w", ConfigPathEnvVar, err)
		}
		return p, nil
	}

	candidates := []string{"lite.yaml"}
	if dir, err := DataDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "config.yaml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// envTransformFunc maps LITE_SECTION_SOME_KEY to section.some_key. Variables
// without a section, such as LITE_CONFIG, are skipped.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	section, rest, ok := strings.Cut(key, "_")
	if !ok || rest == "" {
		return ""
	}
	return section + "." + rest
}

// Params converts the ranking section for the engine.
func (r RankingConfig) Params() ranking.Params {
	return ranking.Params{
		PopularityWeight:     r.PopularityWeight,
		EngagementThreshold:  r.EngagementThreshold,
		FavoriteThreshold:    r.FavoriteThreshold,
		RepeatWatchThreshold: r.RepeatWatchThreshold,
		RepeatWatchBonus:     r.RepeatWatchBonus,
		BucketBonus:          r.BucketBonus,
		ContextBonus:         r.ContextBonus,
		ScoreScale:           r.ScoreScale,
		ProbabilityFloor:     r.ProbabilityFloor,
		ProbabilityCeiling:   r.ProbabilityCeiling,
	}
}

// Fixed returns the configured context unless it is auto.
func (v ViewingConfig) Fixed() (domain.ViewingContext, bool) {
	switch v.Context {
	case string(domain.ContextDay):
		return domain.ContextDay, true
	case string(domain.ContextNight):
		return domain.ContextNight, true
	default:
		return "", false
	}
}
