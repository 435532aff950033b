package app

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"diffimp/internal/domain"
	"diffimp/internal/stackup"
)

// Config holds runtime options for building the app.
type Config struct {
	DefaultCopperCount int             `yaml:"default_copper_count"`
	Geometry           GeometryConfig  `yaml:"geometry"`
	Templates          TemplatesConfig `yaml:"templates"`
	Logging            LoggingConfig   `yaml:"logging"`
}

// GeometryConfig holds default trace geometry as text, exactly as a user
// would type it ("0.2" or "0,2").
type GeometryConfig struct {
	W            string `yaml:"w"`
	Gap          string `yaml:"gap"`
	S            string `yaml:"s"`
	Target       string `yaml:"target"`
	TolerancePct string `yaml:"tolerance_pct"`
}

// TemplatesConfig sets the thickness and Dk of freshly generated layers.
type TemplatesConfig struct {
	Copper     LayerTemplate `yaml:"copper"`
	SolderMask LayerTemplate `yaml:"solder_mask"`
	Prepreg    LayerTemplate `yaml:"prepreg"`
	Core       LayerTemplate `yaml:"core"`
}

// LayerTemplate is one layer default.
type LayerTemplate struct {
	ThicknessMM float64 `yaml:"thickness_mm"`
	Er          float64 `yaml:"er,omitempty"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultPath is the config file used when --config is not given.
func DefaultPath() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".diffimp", "config.yaml"), nil
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	t := stackup.DefaultTemplates()
	return &Config{
		DefaultCopperCount: 6,
		Geometry: GeometryConfig{
			W:            "0.2",
			Gap:          "0.2",
			S:            "1.0",
			Target:       "100.0",
			TolerancePct: "10.0",
		},
		Templates: TemplatesConfig{
			Copper:     LayerTemplate{ThicknessMM: t.Copper.ThicknessMM},
			SolderMask: LayerTemplate{ThicknessMM: t.SolderMask.ThicknessMM, Er: t.SolderMask.Er},
			Prepreg:    LayerTemplate{ThicknessMM: t.Prepreg.ThicknessMM, Er: t.Prepreg.Er},
			Core:       LayerTemplate{ThicknessMM: t.Core.ThicknessMM, Er: t.Core.Er},
		},
		Logging: LoggingConfig{Level: "warn"},
	}
}

// LoadConfig reads path over the defaults. A missing file yields the
// defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks values that would make every later operation fail.
func (c *Config) Validate() error {
	if !domain.IsSupportedCopperCount(c.DefaultCopperCount) {
		return fmt.Errorf("default_copper_count %d not in %v", c.DefaultCopperCount, domain.SupportedCopperCounts)
	}
	for name, t := range map[string]LayerTemplate{
		"copper":      c.Templates.Copper,
		"solder_mask": c.Templates.SolderMask,
		"prepreg":     c.Templates.Prepreg,
		"core":        c.Templates.Core,
	} {
		if t.ThicknessMM < 0 || t.Er < 0 {
			return fmt.Errorf("templates.%s: thickness and er must not be negative", name)
		}
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// StackupTemplates converts the template section for stackup.Generate.
func (c *Config) StackupTemplates() stackup.Templates {
	conv := func(t LayerTemplate) stackup.Template {
		return stackup.Template{ThicknessMM: t.ThicknessMM, Er: t.Er}
	}
	return stackup.Templates{
		Copper:     conv(c.Templates.Copper),
		SolderMask: conv(c.Templates.SolderMask),
		Prepreg:    conv(c.Templates.Prepreg),
		Core:       conv(c.Templates.Core),
	}
}

// GeometryInput returns the configured default geometry.
func (c *Config) GeometryInput() domain.GeometryInput {
	return domain.GeometryInput{
		W:            c.Geometry.W,
		Gap:          c.Geometry.Gap,
		S:            c.Geometry.S,
		Target:       c.Geometry.Target,
		TolerancePct: c.Geometry.TolerancePct,
	}
}
