package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/ynabflow/internal/model"
)

// DateFormat is the layout of StartDate.
const DateFormat = "2006-01-02"

// FileName is the default config file name.
const FileName = "ynabflow.yaml"

// Environment variables read by ApplyEnv.
const (
	EnvRegister      = "YNABFLOW_REGISTER"
	EnvFormat        = "YNABFLOW_FORMAT"
	EnvAccountFilter = "YNABFLOW_ACCOUNT_FILTER"
	EnvStartDate     = "YNABFLOW_START_DATE"
	EnvGroupBy       = "YNABFLOW_GROUP_BY"
	EnvOutput        = "YNABFLOW_OUTPUT"
	EnvTitle         = "YNABFLOW_TITLE"
)

// ErrInvalidStartDate is returned by Validate for a malformed start date.
var ErrInvalidStartDate = errors.New("invalid start date")

// Config represents the ynabflow.yaml configuration.
type Config struct {
	Register      string `yaml:"register"`       // register CSV export
	Format        string `yaml:"format"`         // parser name, e.g. "ynab"
	AccountFilter string `yaml:"account_filter"` // account filter YAML
	StartDate     string `yaml:"start_date"`     // "YYYY-MM-DD", inclusive
	GroupBy       string `yaml:"group_by"`       // "Category Group" or "Category"
	Output        string `yaml:"output"`         // .html or .json
	Title         string `yaml:"title"`
}

// Load reads a config file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Register:      "register.csv",
		Format:        "ynab",
		AccountFilter: "account-filter.yaml",
		StartDate:     fmt.Sprintf("%04d-01-01", time.Now().Year()),
		GroupBy:       string(model.GroupByCategoryGroup),
		Output:        "cashflow.html",
		Title:         "YNAB Cash Flow",
	}
}

// ApplyEnv loads envFile (or ./.env when empty) if it exists and overrides
// fields from YNABFLOW_* variables. A named envFile that cannot be read is an
// error; a missing ./.env is not.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("loading env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	override(&c.Register, EnvRegister)
	override(&c.Format, EnvFormat)
	override(&c.AccountFilter, EnvAccountFilter)
	override(&c.StartDate, EnvStartDate)
	override(&c.GroupBy, EnvGroupBy)
	override(&c.Output, EnvOutput)
	override(&c.Title, EnvTitle)
	return nil
}

func override(field *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*field = v
	}
}

// ResolvePaths anchors relative file paths at dir, the directory holding the
// config file they were read from.
func (c *Config) ResolvePaths(dir string) {
	for _, p := range []*string{&c.Register, &c.AccountFilter, &c.Output} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// Start parses StartDate.
func (c *Config) Start() (time.Time, error) {
	t, err := time.Parse(DateFormat, c.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %w", ErrInvalidStartDate, c.StartDate, err)
	}
	return t, nil
}

// Grouping parses GroupBy.
func (c *Config) Grouping() (model.GroupBy, error) {
	return model.ParseGroupBy(c.GroupBy)
}

// Validate checks the fields the report command depends on.
func (c *Config) Validate() error {
	var errs []error
	if c.Register == "" {
		errs = append(errs, errors.New("register path is required"))
	}
	if c.AccountFilter == "" {
		errs = append(errs, errors.New("account filter path is required"))
	}
	if _, err := c.Start(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Grouping(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
