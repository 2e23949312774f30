// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/paper-assistant/pkg/types"
)

const (
	configName = "paper-assistant"
	envPrefix  = "PAPER_ASSISTANT"
)

// configure sets defaults, the environment mapping, and the config file
// search path on v, then reads the file if one exists. Environment
// variables use the key path in upper case with "." replaced by "_",
// e.g. PAPER_ASSISTANT_LLM_PROVIDER.
func configure(v *viper.Viper, cfgFile string) error {
	d := types.DefaultConfig()
	v.SetDefault("http.timeout", d.HTTP.Timeout)
	v.SetDefault("http.user_agent", d.HTTP.UserAgent)
	v.SetDefault("llm.provider", string(d.LLM.Provider))
	v.SetDefault("llm.model", d.LLM.Model)
	v.SetDefault("llm.base_url", d.LLM.BaseURL)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("pdf.validate", d.PDF.Validate)
	v.SetDefault("output.format", string(d.Output.Format))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// loadConfig decodes v into an AppConfig and applies --verbose.
func loadConfig(v *viper.Viper) (types.AppConfig, error) {
	var cfg types.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if v.GetBool("verbose") {
		cfg.Log.Level = "debug"
	}

	switch cfg.Output.Format {
	case types.OutputText, types.OutputYAML, types.OutputJSON:
	default:
		return cfg, fmt.Errorf("unknown output format %q (want text, yaml, or json)", cfg.Output.Format)
	}
	return cfg, nil
}
