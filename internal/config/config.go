package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"emperror.dev/errors"
	"github.com/spf13/viper"
)

const (
	KeyCheckoutBranch = "checkout_branch"
	KeyExplain        = "explain"
	KeyDebug          = "debug"

	EnvPrefix = "NEWBRANCH"

	DefaultCheckoutBranch = "dev"
)

type Config struct {
	CheckoutBranch string `mapstructure:"checkout_branch"`
	Explain        bool   `mapstructure:"explain"`
	Debug          bool   `mapstructure:"debug"`
}

// New returns a viper instance with defaults and NEWBRANCH_* environment
// lookups registered. Flags are bound by the caller.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyCheckoutBranch, DefaultCheckoutBranch)
	v.SetDefault(KeyExplain, false)
	v.SetDefault(KeyDebug, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile loads path into v. With an empty path the default config
// directory is searched and a missing file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config %s", path)
		}
		return nil
	}

	dir, err := Dir()
	if err != nil {
		return err
	}
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "failed to read config")
	}
	return nil
}

// Load resolves the settings. Values that were supplied are kept verbatim,
// even blank ones; DefaultCheckoutBranch only applies when nothing was set.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// Dir is the per-user config directory. It is not created.
func Dir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "newbranch"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", "newbranch"), nil
	default:
		xdgConfig := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfig == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			xdgConfig = filepath.Join(home, ".config")
		}
		return filepath.Join(xdgConfig, "newbranch"), nil
	}
}
