package cli

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultDatabase = "gravsearch.db"
	defaultFormat   = "text"
	envPrefix       = "GRAVSEARCH"
)

// Config mirrors the persistent flags. Keys match the flag names.
type Config struct {
	Database string `mapstructure:"db"`
	Format   string `mapstructure:"format"`
	Verbose  bool   `mapstructure:"verbose"`
	APIURL   string `mapstructure:"api-url"`
}

// configKeys are the persistent flags that can also come from the
// environment or a config file.
var configKeys = []string{"db", "format", "verbose", "api-url"}

// newViper creates a viper instance with defaults, the config file search
// path and GRAVSEARCH_* environment overrides.
func newViper(configFile string) *viper.Viper {
	v := viper.New()

	v.SetDefault("db", defaultDatabase)
	v.SetDefault("format", defaultFormat)
	v.SetDefault("verbose", false)
	v.SetDefault("api-url", "")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("gravsearch")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "gravsearch"))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// loadConfig resolves opts from flags, environment and config file.
// Flags set on the command line win, then GRAVSEARCH_* variables, then
// the config file, then defaults.
func loadConfig(cmd *cobra.Command, opts *RootOptions) error {
	v := newViper(opts.ConfigFile)

	var bindErr error
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if bindErr != nil || !slices.Contains(configKeys, flag.Name) {
			return
		}
		bindErr = v.BindPFlag(flag.Name, flag)
	})
	if bindErr != nil {
		return bindErr
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return err
	}

	opts.Database = cfg.Database
	opts.Format = cfg.Format
	opts.Verbose = cfg.Verbose
	opts.APIURL = cfg.APIURL
	return nil
}
