package config

import (
	"fmt"
	"time"

	"meal-plan-seeder/internal/fixture"
	"meal-plan-seeder/internal/meal"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the inputs of a single generation run.
type Config struct {
	Preset      string `validate:"required"`
	UserID      string `validate:"required,uuid"`
	StartDate   time.Time
	EndDate     time.Time
	SurgeryDate time.Time
	SurgeryType meal.SurgeryType
	Brackets    meal.Brackets
	Catalog     meal.Catalog  `validate:"-"`
	Style       fixture.Style `validate:"oneof=insert upsert"`
	OutputDir   string        `validate:"required"`
	OutputFile  string        `validate:"required"`
	LogLevel    string        `validate:"oneof=debug info warn error"`
	LogFormat   string        `validate:"oneof=console json"`
}

// Load creates a Config from a named preset, applying MEAL_SEEDER_* environment overrides.
// MEAL_SEEDER_SURGERY_TYPE swaps the preset brackets for a surgery protocol.
func Load(presetName string) (*Config, error) {
	if presetName == "" {
		presetName = DefaultPreset
	}
	preset, err := LookupPreset(presetName)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("MEAL_SEEDER")
	v.AutomaticEnv()
	v.SetDefault("user_id", DefaultUserID)
	v.SetDefault("output_dir", ".")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("surgery_type", "")

	cfg := &Config{
		Preset:      preset.Name,
		UserID:      v.GetString("user_id"),
		StartDate:   preset.StartDate,
		EndDate:     preset.EndDate,
		SurgeryDate: preset.SurgeryDate,
		Brackets:    preset.Brackets,
		Catalog:     preset.Catalog(),
		Style:       preset.Style,
		OutputDir:   v.GetString("output_dir"),
		OutputFile:  preset.OutputFile,
		LogLevel:    v.GetString("log_level"),
		LogFormat:   v.GetString("log_format"),
	}

	if surgery := v.GetString("surgery_type"); surgery != "" {
		if err := cfg.ApplySurgeryType(surgery); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplySurgeryType replaces the preset brackets with those of a surgery protocol.
func (c *Config) ApplySurgeryType(name string) error {
	b, err := meal.ProtocolBrackets(meal.SurgeryType(name))
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	c.SurgeryType = meal.SurgeryType(name)
	c.Brackets = b
	return nil
}

// Validate checks the config can drive a generation run.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.StartDate.IsZero() || c.EndDate.IsZero() || c.SurgeryDate.IsZero() {
		return fmt.Errorf("invalid configuration: start, end and surgery dates are required")
	}
	if err := c.Brackets.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := c.Catalog.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
