package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"lesiw.io/file"
)

const envPrefix = "fileinfo"

type config struct {
	Faults  file.Faults
	Retries int
	Verbose bool
}

// loadConfig reads configuration from FILEINFO_* environment variables.
func loadConfig() (config, error) {
	var cfg config

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("fault_odds", file.DefaultOdds)
	v.SetDefault("retries", 0)
	v.SetDefault("verbose", false)

	odds, err := cast.ToInt64E(v.Get("fault_odds"))
	if err != nil {
		return cfg, errors.Wrap(err, "invalid fault odds")
	}
	if odds < 0 || odds > int64(^uint32(0)) {
		return cfg, errors.Errorf("invalid fault odds: %d", odds)
	}
	cfg.Faults = file.OneIn(uint32(odds))

	cfg.Retries, err = cast.ToIntE(v.Get("retries"))
	if err != nil {
		return cfg, errors.Wrap(err, "invalid retry count")
	}
	if cfg.Retries < 0 {
		return cfg, errors.Errorf("invalid retry count: %d", cfg.Retries)
	}

	cfg.Verbose, err = cast.ToBoolE(v.Get("verbose"))
	if err != nil {
		return cfg, errors.Wrap(err, "invalid verbose flag")
	}

	return cfg, nil
}
