package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"

	"github.com/piwi3910/ClosetCut/internal/model"
)

// AppConfig holds application-wide preferences and default settings.
// Fields can be overridden through CLOSETCUT_* environment variables.
type AppConfig struct {
	DefaultDividerThickness float64 `json:"default_divider_thickness" envconfig:"DIVIDER_THICKNESS"`
	DefaultMinSectionWidth  float64 `json:"default_min_section_width" envconfig:"MIN_SECTION_WIDTH"`
	DefaultMinSectionHeight float64 `json:"default_min_section_height" envconfig:"MIN_SECTION_HEIGHT"`
	DefaultPanelThickness   float64 `json:"default_panel_thickness" envconfig:"PANEL_THICKNESS"`
	DefaultBackThickness    float64 `json:"default_back_thickness" envconfig:"BACK_THICKNESS"`
	DefaultDepth            float64 `json:"default_depth" envconfig:"DEPTH"`
	SlackPolicy             string  `json:"slack_policy" envconfig:"SLACK_POLICY"` // "error" or "warn"

	RecentProjects []string `json:"recent_projects" ignored:"true"`
}

// DefaultAppConfig returns an AppConfig populated with the values from
// model.DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := model.DefaultSettings()
	return AppConfig{
		DefaultDividerThickness: defaults.DividerThickness,
		DefaultMinSectionWidth:  defaults.MinSectionWidth,
		DefaultMinSectionHeight: defaults.MinSectionHeight,
		DefaultPanelThickness:   defaults.PanelThickness,
		DefaultBackThickness:    defaults.BackThickness,
		DefaultDepth:            defaults.DefaultDepth,
		SlackPolicy:             string(defaults.SlackPolicy),
		RecentProjects:          []string{},
	}
}

// ApplyToSettings copies the configured defaults into a LayoutSettings.
// Used when a project file carries no settings of its own.
func (c AppConfig) ApplyToSettings(s *model.LayoutSettings) {
	s.DividerThickness = c.DefaultDividerThickness
	s.MinSectionWidth = c.DefaultMinSectionWidth
	s.MinSectionHeight = c.DefaultMinSectionHeight
	s.PanelThickness = c.DefaultPanelThickness
	s.BackThickness = c.DefaultBackThickness
	s.DefaultDepth = c.DefaultDepth
	s.SlackPolicy = model.SlackPolicy(c.SlackPolicy)
	s.Normalize()
}

// DefaultConfigPath returns the default app config location,
// ~/.closetcut/config.json.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".closetcut", "config.json"), nil
}

// SaveAppConfig writes the config to the specified JSON file, creating
// parent directories if they do not exist.
func SaveAppConfig(path string, cfg AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads the config from the specified JSON file. If the file
// does not exist, it returns the defaults and saves them.
func LoadAppConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultAppConfig()
			if saveErr := SaveAppConfig(path, cfg); saveErr != nil {
				return cfg, saveErr
			}
			return cfg, nil
		}
		return AppConfig{}, err
	}
	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	if cfg.RecentProjects == nil {
		cfg.RecentProjects = []string{}
	}
	return cfg, nil
}

// LoadOrCreateAppConfig loads the config from the default path and applies
// CLOSETCUT_* environment overrides on top.
func LoadOrCreateAppConfig() (AppConfig, string, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return DefaultAppConfig(), "", err
	}
	cfg, err := LoadAppConfig(path)
	if err != nil {
		return cfg, path, err
	}
	if err := envconfig.Process("closetcut", &cfg); err != nil {
		return cfg, path, err
	}
	return cfg, path, nil
}

// AddRecentProject prepends a path to the recent list, dropping duplicates
// and keeping at most ten entries.
func (c *AppConfig) AddRecentProject(path string) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	c.RecentProjects = recent
}
