package main

import (
	"github.com/Veraticus/expense-tally/internal/config"
	"github.com/Veraticus/expense-tally/internal/ledger"
	"github.com/Veraticus/expense-tally/internal/tui/viewmodel"
	"github.com/spf13/viper"
)

// loadApp resolves the global viper settings into an application config.
func loadApp() (config.App, error) {
	v := viper.GetViper()
	config.SetDefaults(v)
	return config.Load(v)
}

func newLedger(app config.App) *ledger.Ledger {
	return ledger.New(app.Categories)
}

func newFormatter(app config.App) viewmodel.Formatter {
	return viewmodel.NewFormatter(app.Currency, app.TimestampFormat)
}
