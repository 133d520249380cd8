// Config loading for the brandsass CLI. An optional per-project
// _brandsass.yml supplies defaults for the generate flags so a project can
// pin its target surface and output path without repeating them on every
// invocation. Flags given on the command line always win.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFileName = "_brandsass"
	configFileType = "yaml"

	cfgKeyTarget = "target"
	cfgKeyKey    = "key"
	cfgKeyOut    = "out"
	cfgKeyBrand  = "brand"
)

// loadConfig reads _brandsass.yml from the project root using Viper.
// A missing config file is not an error.
func loadConfig(projectRoot string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(projectRoot)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// applyConfig fills flag values the user did not set on the command line
// from the project config.
func applyConfig(v *viper.Viper, cmd *cobra.Command) {
	if flagBrandFile == "" {
		flagBrandFile = v.GetString(cfgKeyBrand)
	}
	if cmd != generateCmd {
		return
	}
	if v.IsSet(cfgKeyTarget) && !cmd.Flags().Changed("target") {
		flagTarget = v.GetString(cfgKeyTarget)
	}
	if v.IsSet(cfgKeyKey) && !cmd.Flags().Changed("key") {
		flagKey = v.GetString(cfgKeyKey)
	}
	if flagOut == "" {
		flagOut = v.GetString(cfgKeyOut)
	}
}
