package config

import (
	"fmt"
	"strings"

	"github.com/2beens/climbstats/internal/strava"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// strava api
	StravaAuthURL       string `toml:"strava_auth_url"`
	StravaActivitiesURL string `toml:"strava_activities_url"`
	HTTPTimeoutSeconds  int    `toml:"http_timeout_seconds"`
	// dashboard
	ActivityTypes  []string `toml:"activity_types"`
	LookbackMonths int      `toml:"lookback_months"`
	OutputPath     string   `toml:"output_path"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlFile Toml
	if _, err := toml.DecodeFile(path, &tomlFile); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := tomlFile.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env %q missing", env)
	}

	cfg.Environment = env
	cfg.setDefaults()

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.StravaAuthURL == "" {
		c.StravaAuthURL = strava.DefaultAuthURL
	}
	if c.StravaActivitiesURL == "" {
		c.StravaActivitiesURL = strava.DefaultActivitiesURL
	}
	if c.HTTPTimeoutSeconds <= 0 {
		c.HTTPTimeoutSeconds = 60
	}
	if len(c.ActivityTypes) == 0 {
		// foot-travel activities, the ones with honest elevation gain
		c.ActivityTypes = []string{"Run", "Walk", "Hike"}
	}
	if c.LookbackMonths <= 0 {
		// 12-month histogram plus the partial current month
		c.LookbackMonths = 13
	}
	if c.OutputPath == "" {
		c.OutputPath = "strava_dashboard.html"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
