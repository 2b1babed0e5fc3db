// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/flatmap/irisviz/plotting"
)

// config holds the defaults for irisplot's flags.
type config struct {
	Input     string
	By        string
	Output    string
	Format    string
	PlotlyURL string `mapstructure:"plotly_url"`
	Open      string
}

// loadConfig reads defaults from the TOML file named by
// $IRISPLOT_CONFIG, or ~/.config/irisplot/config.toml, and from
// IRISPLOT_* environment variables. A missing file is not an error.
func loadConfig() (config, error) {
	v := viper.New()
	v.SetDefault("input", "-")
	v.SetDefault("by", "Species")
	v.SetDefault("output", "")
	v.SetDefault("format", "html")
	v.SetDefault("plotly_url", plotting.DefaultPlotlyURL)
	v.SetDefault("open", "")

	v.SetConfigType("toml")
	if path := os.Getenv("IRISPLOT_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		home, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(home, ".config", "irisplot"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("IRISPLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var c config
	if err := v.Unmarshal(&c); err != nil {
		return config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
