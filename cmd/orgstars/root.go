package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"orgstars/internal/config"
)

const envPrefix = "ORGSTARS"

// options holds the resolved command-line settings
type options struct {
	ConfigPath string
	Debug      bool
	LogFile    string
}

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "orgstars",
		Short: "Browse and star an organization's GitHub repositories",
		Long: `orgstars lists the first repositories of a GitHub organization and lets
you star or unstar them and select rows locally.

The token is read from the environment variable named by github.token_env
(GITHUB_TOKEN by default) or from ORGSTARS_TOKEN. A .env file in the working
directory is loaded first.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bindEnv(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options{
				ConfigPath: v.GetString("config"),
				Debug:      v.GetBool("debug"),
				LogFile:    v.GetString("log-file"),
			}

			cfg, svc, err := loadConfig(v, opts.ConfigPath)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, svc, opts)
		},
	}

	flags := cmd.Flags()
	flags.String("org", "", "organization login (default from config)")
	flags.Int("first", 0, fmt.Sprintf("number of repositories to fetch, 1..%d", config.MaxFirst))
	flags.String("config", "", "config file (default is $XDG_CONFIG_HOME/orgstars/config.toml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("log-file", "orgstars.log", "log file path")

	return cmd
}

// bindEnv loads .env files and binds flags and ORGSTARS_* variables to viper
func bindEnv(cmd *cobra.Command, v *viper.Viper) error {
	for _, envFile := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("token"); err != nil {
		return err
	}
	return v.BindPFlags(cmd.Flags())
}

// loadConfig reads the config file, creating it with defaults when absent,
// then layers flags and environment on top
func loadConfig(v *viper.Viper, path string) (*config.Config, config.ConfigService, error) {
	svc := config.NewConfigService()
	if path != "" {
		svc = config.NewConfigServiceAt(path)
	}

	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if _, statErr := os.Stat(svc.Path()); errors.Is(statErr, os.ErrNotExist) {
		if err := svc.Save(cfg); err != nil {
			return nil, nil, fmt.Errorf("failed to write default config: %w", err)
		}
	}

	applyOverrides(cfg, v)
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, svc, nil
}

// applyOverrides copies flag and environment values that were set into cfg
func applyOverrides(cfg *config.Config, v *viper.Viper) {
	if org := v.GetString("org"); org != "" {
		cfg.Organization = org
	}
	if first := v.GetInt("first"); first > 0 {
		cfg.First = first
	}

	cfg.Token = os.Getenv(cfg.GitHub.TokenEnv)
	if cfg.Token == "" {
		cfg.Token = v.GetString("token")
	}
}
