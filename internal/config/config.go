// Package config loads user defaults from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Configuration keys. Each key is also the flag it binds to.
const (
	KeyFormat       = "format"
	KeySelector     = "selector"
	KeyPolicy       = "policy"
	KeyInversions   = "inversions"
	KeyExtended     = "extended"
	KeyProgressions = "progressions"
	KeyAccessible   = "accessible"
	KeyPlain        = "plain"
	KeyParallel     = "parallel"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. MODUS_FORMAT=json.
	EnvPrefix = "MODUS"
	// FileName is the config file looked up in the home directory, without extension.
	FileName = ".modus"
)

// Config holds the resolved settings.
type Config struct {
	Format       string `mapstructure:"format"`
	Selector     string `mapstructure:"selector"`
	Policy       string `mapstructure:"policy"`
	Inversions   bool   `mapstructure:"inversions"`
	Extended     bool   `mapstructure:"extended"`
	Progressions bool   `mapstructure:"progressions"`
	Accessible   bool   `mapstructure:"accessible"`
	Plain        bool   `mapstructure:"plain"`
	Parallel     int    `mapstructure:"parallel"`
}

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyFormat, "text")
	v.SetDefault(KeySelector, "list")
	v.SetDefault(KeyPolicy, "strict")
	v.SetDefault(KeyInversions, true)
	v.SetDefault(KeyExtended, false)
	v.SetDefault(KeyProgressions, false)
	v.SetDefault(KeyAccessible, false)
	v.SetDefault(KeyPlain, false)
	v.SetDefault(KeyParallel, 4)
}

// Load reads the config file. An explicit file must exist; the default
// $HOME/.modus.yaml is optional.
func Load(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil //nolint:nilerr // no home directory means no default config file
		}

		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(FileName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// Decode resolves every key into a Config.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}
