package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mutasi-dev/mutasi/internal/model"
)

// DefaultPath is where commands look for a profile when --config is not given.
const DefaultPath = "mutasi.yaml"

// Config is the statement layout profile stored in mutasi.yaml.
type Config struct {
	Bank     string         `yaml:"bank"`
	Input    string         `yaml:"input"` // used when convert gets no arguments
	Currency CurrencyConfig `yaml:"currency"`
	Colors   ColorsConfig   `yaml:"colors"`
	Layout   LayoutConfig   `yaml:"layout"`
	Keywords []string       `yaml:"keywords"`
	Output   OutputConfig   `yaml:"output"`
}

// CurrencyConfig describes how amounts are printed on the statement.
type CurrencyConfig struct {
	Code   string `yaml:"code"`   // ISO-4217, e.g. "IDR"
	Marker string `yaml:"marker"` // literal prefix before amounts, e.g. "Rp"
}

// Color is an RGB triple in 0-255 channels.
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// RGB converts to the model color type.
func (c Color) RGB() model.RGB {
	return model.RGB{R: c.R, G: c.G, B: c.B}
}

// ColorsConfig maps amount text colors to directions.
type ColorsConfig struct {
	Outbound  Color `yaml:"outbound"`
	Inbound   Color `yaml:"inbound"`
	Tolerance int   `yaml:"tolerance"` // per channel, exclusive
}

// LayoutConfig holds the geometric and textual rules of the statement.
type LayoutConfig struct {
	RowTolerance float64  `yaml:"row_tolerance"` // points
	DateLayouts  []string `yaml:"date_layouts"`  // Go reference layouts
}

// OutputConfig controls what convert writes.
type OutputConfig struct {
	Format     string `yaml:"format"`
	DateFormat string `yaml:"date_format"`
	Preview    int    `yaml:"preview"`
}

// Load reads a mutasi.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
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

// Validate checks values that would make the pipeline misbehave.
func (c *Config) Validate() error {
	var errs []error
	if c.Currency.Marker == "" {
		errs = append(errs, errors.New("currency.marker must not be empty"))
	}
	if c.Colors.Tolerance <= 0 {
		errs = append(errs, fmt.Errorf("colors.tolerance must be positive, got %d", c.Colors.Tolerance))
	}
	if c.Layout.RowTolerance <= 0 {
		errs = append(errs, fmt.Errorf("layout.row_tolerance must be positive, got %v", c.Layout.RowTolerance))
	}
	if len(c.Layout.DateLayouts) == 0 {
		errs = append(errs, errors.New("layout.date_layouts must not be empty"))
	}
	if c.Output.Preview < 0 {
		errs = append(errs, fmt.Errorf("output.preview must not be negative, got %d", c.Output.Preview))
	}
	return errors.Join(errs...)
}

// Default returns the PermataBank mutasi layout.
func Default() *Config {
	return &Config{
		Bank:  "permata",
		Input: "permata_aug_2025.pdf",
		Currency: CurrencyConfig{
			Code:   "IDR",
			Marker: "Rp",
		},
		Colors: ColorsConfig{
			Outbound:  Color{R: 220, G: 13, B: 38},
			Inbound:   Color{R: 6, G: 140, B: 120},
			Tolerance: 20,
		},
		Layout: LayoutConfig{
			RowTolerance: 5,
			DateLayouts: []string{
				"2 January 2006",
				"2 Jan 2006",
				"2/1/2006",
				"2006-01-02",
			},
		},
		Keywords: []string{
			"TRF", "PAY", "QR", "BIAYA", "DBT", "CRD", "TRANSFER",
			"PAYMENT", "PURCHASE", "TARIK", "SETOR", "BALEN", "ADM",
		},
		Output: OutputConfig{
			Format:     "csv",
			DateFormat: "2006-01-02",
			Preview:    5,
		},
	}
}
