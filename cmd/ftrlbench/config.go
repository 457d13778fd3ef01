package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/evilmucedin/SIMDNumber/hwy/contrib/ftrl"
)

// loadConfig builds the hyperparameters for a run. Precedence, lowest
// first: ftrl.DefaultConfig, the --config YAML file, FTRL_* environment
// variables, explicitly set flags.
func loadConfig(cmd *cobra.Command) (ftrl.Config, error) {
	cfg := ftrl.DefaultConfig()

	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return ftrl.Config{}, fmt.Errorf("reading config: %w", err)
		}
		cfg, err = ftrl.ParseConfig(data)
		if err != nil {
			return ftrl.Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	overrides := []struct {
		flag string
		env  string
		dst  *float32
	}{
		{"alpha", "FTRL_ALPHA", &cfg.Alpha},
		{"beta", "FTRL_BETA", &cfg.Beta},
		{"lambda1", "FTRL_LAMBDA1", &cfg.Lambda1},
		{"lambda2", "FTRL_LAMBDA2", &cfg.Lambda2},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			*o.dst, _ = cmd.Flags().GetFloat32(o.flag)
			continue
		}
		if v, ok, err := getEnvFloat32(o.env); err != nil {
			return ftrl.Config{}, err
		} else if ok {
			*o.dst = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return ftrl.Config{}, err
	}
	return cfg, nil
}

// getEnvFloat32 returns the environment variable as float32 and whether it
// was set.
func getEnvFloat32(key string) (float32, bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(val, 32)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", key, err)
	}
	return float32(f), true, nil
}
