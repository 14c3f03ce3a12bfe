// Package config turns viper settings into a validated application config.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/expense-tally/internal/common"
	"github.com/Veraticus/expense-tally/internal/ledger"
	"github.com/Veraticus/expense-tally/internal/model"
	"github.com/spf13/viper"
)

// Config keys.
const (
	KeyLogLevel        = "logging.level"
	KeyLogFormat       = "logging.format"
	KeyLogFile         = "logging.file"
	KeyCategoryPreset  = "categories.preset"
	KeyCategoryList    = "categories.list"
	KeyClearFields     = "form.clear_fields"
	KeyCurrency        = "display.currency"
	KeyTimestampFormat = "display.timestamp_format"
)

// DefaultTimestampFormat renders capture times as day/month/year hour:minute.
const DefaultTimestampFormat = "02/01/2006 15:04"

// App is the resolved application configuration.
type App struct {
	Categories      model.CategorySet
	Currency        string
	TimestampFormat string
	Logging         Logging
	ClearFields     bool
}

// Logging holds logger settings.
type Logging struct {
	Format string
	File   string
	Level  slog.Level
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyCategoryPreset, model.PresetExtended)
	v.SetDefault(KeyClearFields, true)
	v.SetDefault(KeyCurrency, ledger.DefaultCurrency)
	v.SetDefault(KeyTimestampFormat, DefaultTimestampFormat)
}

// Load reads and validates the settings held by v.
func Load(v *viper.Viper) (App, error) {
	level, err := common.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return App{}, err
	}

	format := v.GetString(KeyLogFormat)
	if format != "console" && format != "json" {
		return App{}, fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, format)
	}

	categories, err := loadCategories(v)
	if err != nil {
		return App{}, err
	}

	currency := strings.ToUpper(strings.TrimSpace(v.GetString(KeyCurrency)))
	if currency == "" {
		return App{}, fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyCurrency)
	}
	if !ledger.KnownCurrency(currency) {
		return App{}, fmt.Errorf("%w: unknown currency %q", common.ErrInvalidConfig, currency)
	}

	tsFormat := v.GetString(KeyTimestampFormat)
	if strings.TrimSpace(tsFormat) == "" {
		tsFormat = DefaultTimestampFormat
	}

	return App{
		Categories:      categories,
		Currency:        currency,
		TimestampFormat: tsFormat,
		ClearFields:     v.GetBool(KeyClearFields),
		Logging: Logging{
			Level:  level,
			Format: format,
			File:   ExpandPath(v.GetString(KeyLogFile)),
		},
	}, nil
}

// loadCategories prefers an explicit list over the named preset.
func loadCategories(v *viper.Viper) (model.CategorySet, error) {
	if list := v.GetStringSlice(KeyCategoryList); len(list) > 0 {
		set, err := model.NewCategorySet(list...)
		if err != nil {
			return model.CategorySet{}, fmt.Errorf("%w: %s: %w", common.ErrInvalidConfig, KeyCategoryList, err)
		}
		return set, nil
	}

	set, err := model.PresetCategories(v.GetString(KeyCategoryPreset))
	if err != nil {
		return model.CategorySet{}, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	return set, nil
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
