package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"training-dashboard/internal/models"
)

type Config struct {
	Files    FilesConfig    `yaml:"files"`
	Display  DisplayConfig  `yaml:"display"`
	Greeting GreetingConfig `yaml:"greeting"`
	Weather  WeatherConfig  `yaml:"weather"`
	Workouts WorkoutsConfig `yaml:"workouts"`
	News     NewsConfig     `yaml:"news"`
	Log      LogConfig      `yaml:"log"`
}

type FilesConfig struct {
	Workouts string `yaml:"workouts"`
	Schedule string `yaml:"schedule"`
	Font     string `yaml:"font"`
}

type DisplayConfig struct {
	Width            float32       `yaml:"width"`
	Height           float32       `yaml:"height"`
	Fullscreen       bool          `yaml:"fullscreen"`
	ViewTimeout      time.Duration `yaml:"view_timeout"`
	GreetingInterval time.Duration `yaml:"greeting_interval"`
	RefreshInterval  time.Duration `yaml:"refresh_interval"`
}

type GreetingConfig struct {
	Name string `yaml:"name"`
}

type WeatherConfig struct {
	BaseURL string        `yaml:"base_url"`
	City    string        `yaml:"city"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
	Hours   int           `yaml:"hours"`
}

type WorkoutsConfig struct {
	Groups       []string `yaml:"groups"`
	Conditioning []string `yaml:"conditioning"`
}

type NewsConfig struct {
	Headlines []models.Headline `yaml:"headlines"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Files: FilesConfig{
			Workouts: "data/workouts.json",
			Schedule: "data/schedule.json",
		},
		Display: DisplayConfig{
			Width:            1920,
			Height:           1080,
			ViewTimeout:      20 * time.Second,
			GreetingInterval: time.Minute,
			RefreshInterval:  30 * time.Minute,
		},
		Weather: WeatherConfig{
			BaseURL: "https://api.openweathermap.org",
			City:    "Houston",
			Timeout: 10 * time.Second,
			Hours:   8,
		},
		Workouts: WorkoutsConfig{
			Groups:       []string{"Upper A", "Upper B", "Lower A", "Lower B"},
			Conditioning: []string{"Conditioning A", "Conditioning B"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads config from a YAML file layered over Default, loads a .env file
// if one exists next to the working directory, then applies environment
// variable overrides. A missing config file is not an error.
//
//	DASHBOARD_WORKOUTS_FILE, DASHBOARD_SCHEDULE_FILE, DASHBOARD_FONT_FILE,
//	DASHBOARD_WEATHER_API_KEY, DASHBOARD_WEATHER_CITY, DASHBOARD_WEATHER_URL,
//	DASHBOARD_GREETING_NAME, DASHBOARD_FULLSCREEN, LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DASHBOARD_WORKOUTS_FILE"); v != "" {
		cfg.Files.Workouts = v
	}
	if v := os.Getenv("DASHBOARD_SCHEDULE_FILE"); v != "" {
		cfg.Files.Schedule = v
	}
	if v := os.Getenv("DASHBOARD_FONT_FILE"); v != "" {
		cfg.Files.Font = v
	}
	if v := os.Getenv("DASHBOARD_WEATHER_API_KEY"); v != "" {
		cfg.Weather.APIKey = v
	}
	if v := os.Getenv("DASHBOARD_WEATHER_CITY"); v != "" {
		cfg.Weather.City = v
	}
	if v := os.Getenv("DASHBOARD_WEATHER_URL"); v != "" {
		cfg.Weather.BaseURL = v
	}
	if v := os.Getenv("DASHBOARD_GREETING_NAME"); v != "" {
		cfg.Greeting.Name = v
	}
	if v := os.Getenv("DASHBOARD_FULLSCREEN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Display.Fullscreen = b
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func (c *Config) validate() error {
	if c.Files.Workouts == "" {
		return NewValidationError("files.workouts", c.Files.Workouts, "path is required")
	}
	if c.Files.Schedule == "" {
		return NewValidationError("files.schedule", c.Files.Schedule, "path is required")
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return NewValidationError("display", fmt.Sprintf("%gx%g", c.Display.Width, c.Display.Height), "window size must be positive")
	}
	if c.Display.ViewTimeout <= 0 {
		return NewValidationError("display.view_timeout", c.Display.ViewTimeout, "must be positive")
	}
	if c.Display.GreetingInterval <= 0 {
		return NewValidationError("display.greeting_interval", c.Display.GreetingInterval, "must be positive")
	}
	if c.Display.RefreshInterval <= 0 {
		return NewValidationError("display.refresh_interval", c.Display.RefreshInterval, "must be positive")
	}
	if c.Weather.Hours < 1 {
		return NewValidationError("weather.hours", c.Weather.Hours, "must be at least 1")
	}
	if c.Weather.Timeout <= 0 {
		return NewValidationError("weather.timeout", c.Weather.Timeout, "must be positive")
	}
	return nil
}

// ValidationError reports a config value that failed validation.
type ValidationError struct {
	Parameter string
	Value     interface{}
	Message   string
}

func NewValidationError(parameter string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Parameter: parameter,
		Value:     value,
		Message:   message,
	}
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for parameter '%s' with value '%v': %s",
		ve.Parameter, ve.Value, ve.Message)
}
