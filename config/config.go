// Package config loads Kairos's process-wide defaults — cache
// capacities, the default locale, business-day weekend/iteration
// settings, and custom holiday rule sets — from built-in defaults, then a
// YAML file, then environment variables, each layer overriding the one
// before it.
//
// Grounded on the teacher's config.go/manager.go ConfigManager: same
// search-path-then-environment-override-then-validate shape and the
// same gopkg.in/yaml.v3 dependency, re-keyed from GoHoliday's
// per-country settings to Kairos's cache/business/locale domain.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kairos-go/kairos/holiday"
)

// Config is Kairos's top-level configuration structure.
type Config struct {
	General  GeneralConfig             `yaml:"general"`
	Caches   CacheConfig               `yaml:"caches"`
	Business BusinessConfig            `yaml:"business"`
	Holidays map[string][]CustomHolidayRule `yaml:"custom_holidays"` // keyed by region, "*" for global
	Logging  LoggingConfig             `yaml:"logging"`
}

// GeneralConfig contains general library defaults.
type GeneralConfig struct {
	DefaultLocale      string   `yaml:"default_locale"`
	SupportedLocales   []string `yaml:"supported_locales"`
	Environment        string   `yaml:"environment"` // dev, staging, prod
	LocalOffsetMinutes int64    `yaml:"local_offset_minutes"`
}

// CacheConfig holds cache capacities read from configuration. The
// library's caches do not read it; their capacities are fixed in each
// package (e.g. parse.DefaultCacheCapacity).
type CacheConfig struct {
	ParseCacheCapacity   int `yaml:"parse_cache_capacity"`
	HolidayCacheCapacity int `yaml:"holiday_cache_capacity"`
	RegexCacheCapacity   int `yaml:"regex_cache_capacity"`
}

// BusinessConfig holds business-day settings read from configuration.
// business.Calendar does not read it; a Calendar's settings come from the
// business.Config passed to business.New.
type BusinessConfig struct {
	Weekends      []int `yaml:"weekends"` // 0=Sunday..6=Saturday
	MaxIterations int   `yaml:"max_iterations"`
}

// CustomHolidayRule is the YAML-serializable mirror of holiday.Rule's
// fixed/nth-weekday/easter-based/relative variants (Custom/Lunar rules
// carry a Go function or external collaborator and so cannot round-trip
// through YAML; they must be registered in code).
type CustomHolidayRule struct {
	Name         string   `yaml:"name"`
	ID           string   `yaml:"id,omitempty"`
	Type         string   `yaml:"type"` // fixed|nth_weekday|easter_based|relative
	DurationDays int      `yaml:"duration_days,omitempty"`
	Regions      []string `yaml:"regions,omitempty"`
	Active       *bool    `yaml:"active,omitempty"`
	Category     string   `yaml:"category,omitempty"`

	Month   int `yaml:"month,omitempty"`
	Day     int `yaml:"day,omitempty"`
	Weekday int `yaml:"weekday,omitempty"`
	Nth     int `yaml:"nth,omitempty"`

	RelativeTo string `yaml:"relative_to,omitempty"`
	OffsetDays int    `yaml:"offset_days,omitempty"`

	Observed *ObservedRuleYAML `yaml:"observed,omitempty"`
}

// ObservedRuleYAML mirrors holiday.ObservedRule for YAML round-tripping.
type ObservedRuleYAML struct {
	Type      string `yaml:"type"`
	Weekends  []int  `yaml:"weekends,omitempty"`
	Direction string `yaml:"direction"`
}

// ToRule converts a YAML-loaded rule into holiday.Rule. Returns an error
// for an unrecognized Type (Custom/Lunar rules are not expressible here).
func (c CustomHolidayRule) ToRule() (holiday.Rule, error) {
	active := true
	if c.Active != nil {
		active = *c.Active
	}
	r := holiday.Rule{
		Name:         c.Name,
		ID:           c.ID,
		DurationDays: c.DurationDays,
		Regions:      c.Regions,
		Active:       active,
		Category:     c.Category,
		Month:        c.Month,
		Day:          c.Day,
		Weekday:      c.Weekday,
		Nth:          c.Nth,
		RelativeTo:   c.RelativeTo,
		OffsetDays:   c.OffsetDays,
	}
	switch c.Type {
	case "fixed":
		r.Type = holiday.TypeFixed
	case "nth_weekday":
		r.Type = holiday.TypeNthWeekday
	case "easter_based":
		r.Type = holiday.TypeEasterBased
	case "relative":
		r.Type = holiday.TypeRelative
	default:
		return holiday.Rule{}, fmt.Errorf("config: unsupported custom holiday type %q (lunar/custom rules must be registered in code)", c.Type)
	}
	if c.Observed != nil {
		weekends := make(map[int]bool, len(c.Observed.Weekends))
		for _, d := range c.Observed.Weekends {
			weekends[d] = true
		}
		var direction holiday.Direction
		switch c.Observed.Direction {
		case "forward":
			direction = holiday.DirectionForward
		case "backward":
			direction = holiday.DirectionBackward
		default:
			direction = holiday.DirectionNearest
		}
		var subType holiday.SubstitutionType
		switch c.Observed.Type {
		case "bridge":
			subType = holiday.SubstitutionBridge
		case "nearest_weekday":
			subType = holiday.SubstitutionNearestWeekday
		default:
			subType = holiday.SubstitutionSubstitute
		}
		r.Observed = &holiday.ObservedRule{Type: subType, Weekends: weekends, Direction: direction}
	}
	return r, nil
}

// LoggingConfig controls logging behavior, unchanged in shape from the
// teacher's LoggingConfig.
type LoggingConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	Format     string `yaml:"format"` // json, text
	Output     string `yaml:"output"` // stdout, stderr, file path
	EnableFile bool   `yaml:"enable_file"`
	MaxSize    int    `yaml:"max_size"` // max log file size in MB
}

// Manager handles configuration loading and validation.
type Manager struct {
	config *Config
	paths  []string
}

// NewManager creates a Manager that searches the conventional config
// file locations, mirroring the teacher's search-path list.
func NewManager() *Manager {
	return &Manager{
		paths: []string{
			"kairos.yaml",
			"kairos.yml",
			"config/kairos.yaml",
			"config/kairos.yml",
			"/etc/kairos/config.yaml",
			filepath.Join(os.Getenv("HOME"), ".kairos.yaml"),
		},
	}
}

// Load loads configuration from defaults, then the first existing search
// path, then environment variable overrides, then validates the result.
func (m *Manager) Load() (*Config, error) {
	cfg := defaultConfig()
	for _, path := range m.paths {
		if err := loadFromFile(path, cfg); err == nil {
			break
		}
	}
	loadFromEnvironment(cfg)
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	m.config = cfg
	return cfg, nil
}

// LoadFromFile loads configuration from a specific file, bypassing the
// search path.
func (m *Manager) LoadFromFile(path string) (*Config, error) {
	cfg := defaultConfig()
	if err := loadFromFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	loadFromEnvironment(cfg)
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	m.config = cfg
	return cfg, nil
}

// Config returns the currently loaded configuration, loading the default
// search path first if nothing has been loaded yet.
func (m *Manager) Config() *Config {
	if m.config == nil {
		cfg, _ := m.Load()
		return cfg
	}
	return m.config
}

func defaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			DefaultLocale:    "en-US",
			SupportedLocales: []string{"en-US", "de-DE", "fr-FR", "es-ES", "it-IT", "pt-BR", "ru-RU", "zh-CN", "ja-JP", "tr-TR"},
			Environment:      "prod",
		},
		Caches: CacheConfig{
			ParseCacheCapacity:   2048,
			HolidayCacheCapacity: 4096,
			RegexCacheCapacity:   256,
		},
		Business: BusinessConfig{
			Weekends:      []int{0, 6},
			MaxIterations: 1000,
		},
		Holidays: make(map[string][]CustomHolidayRule),
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     "stdout",
			EnableFile: false,
			MaxSize:    100,
		},
	}
}

func loadFromFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func loadFromEnvironment(cfg *Config) {
	if v := os.Getenv("KAIROS_DEFAULT_LOCALE"); v != "" {
		cfg.General.DefaultLocale = v
	}
	if v := os.Getenv("KAIROS_ENVIRONMENT"); v != "" {
		cfg.General.Environment = v
	}
	if v := os.Getenv("KAIROS_LOCAL_OFFSET_MINUTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.General.LocalOffsetMinutes = n
		}
	}
	if v := os.Getenv("KAIROS_PARSE_CACHE_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Caches.ParseCacheCapacity = n
		}
	}
	if v := os.Getenv("KAIROS_HOLIDAY_CACHE_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Caches.HolidayCacheCapacity = n
		}
	}
	if v := os.Getenv("KAIROS_MAX_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Business.MaxIterations = n
		}
	}
	if v := os.Getenv("KAIROS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

func validate(cfg *Config) error {
	validEnvs := []string{"dev", "development", "staging", "prod", "production"}
	if !contains(validEnvs, cfg.General.Environment) {
		return fmt.Errorf("invalid environment: %s (must be one of: %v)", cfg.General.Environment, validEnvs)
	}
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, strings.ToLower(cfg.Logging.Level)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %v)", cfg.Logging.Level, validLevels)
	}
	if cfg.Caches.ParseCacheCapacity <= 0 || cfg.Caches.HolidayCacheCapacity <= 0 {
		return fmt.Errorf("cache capacities must be positive")
	}
	if len(cfg.Business.Weekends) >= 7 {
		return fmt.Errorf("business.weekends cannot mark every weekday as a weekend")
	}
	if cfg.Business.MaxIterations < 1 {
		return fmt.Errorf("business.max_iterations must be at least 1")
	}
	return nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// Save writes the current configuration to path as YAML.
func (m *Manager) Save(path string) error {
	if m.config == nil {
		return fmt.Errorf("no configuration loaded")
	}
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// CustomHolidaysForRegion returns the custom holiday rules configured
// for region, merged with any rules registered under the wildcard "*"
// region.
func (m *Manager) CustomHolidaysForRegion(region string) ([]holiday.Rule, error) {
	cfg := m.Config()
	var out []holiday.Rule
	for _, key := range []string{region, "*"} {
		for _, raw := range cfg.Holidays[key] {
			r, err := raw.ToRule()
			if err != nil {
				return nil, err
			}
			out = append(out, r)
		}
	}
	return out, nil
}

// Default is the process-wide configuration manager instance, matching
// the teacher's package-level DefaultConfigManager.
var Default = NewManager()
