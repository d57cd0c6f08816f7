// Package config resolves command settings from flags, environment variables
// and an optional config file, in that order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ukaji3/htmltable-go/pkg/numgen"
	"github.com/ukaji3/htmltable-go/pkg/tablescrape/fetch"
	"github.com/ukaji3/htmltable-go/pkg/tablescrape/output"
)

// Scrape holds the settings of the tablescrape command.
type Scrape struct {
	Format    string        `mapstructure:"format"`
	UserAgent string        `mapstructure:"user_agent"`
	Selector  string        `mapstructure:"selector"`
	Render    bool          `mapstructure:"render"`
	CRLF      bool          `mapstructure:"crlf"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Verbose   bool          `mapstructure:"verbose"`
}

// Numgen holds the settings of the numgen command.
type Numgen struct {
	File    string `mapstructure:"file"`
	Count   int    `mapstructure:"count"`
	Seed    uint64 `mapstructure:"seed"`
	Verbose bool   `mapstructure:"verbose"`
}

// Primecount holds the settings of the primecount command.
type Primecount struct {
	File    string `mapstructure:"file"`
	Verbose bool   `mapstructure:"verbose"`
}

// LoadScrape reads tablescrape settings. Environment variables use the
// TABLESCRAPE_ prefix, e.g. TABLESCRAPE_USER_AGENT.
func LoadScrape(flags *pflag.FlagSet, configFile string) (*Scrape, error) {
	v := viper.New()
	v.SetDefault("format", string(output.FormatCSV))
	v.SetDefault("user_agent", fetch.DefaultUserAgent)
	v.SetDefault("selector", "")
	v.SetDefault("render", false)
	v.SetDefault("crlf", true)
	v.SetDefault("timeout", 0)
	v.SetDefault("verbose", false)

	if err := prepare(v, "TABLESCRAPE", configFile, flags); err != nil {
		return nil, err
	}

	var cfg Scrape
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// LoadNumgen reads numgen settings. Environment variables use the NUMGEN_
// prefix, e.g. NUMGEN_COUNT.
func LoadNumgen(flags *pflag.FlagSet, configFile string) (*Numgen, error) {
	v := viper.New()
	v.SetDefault("file", numgen.DefaultPath)
	v.SetDefault("count", numgen.DefaultCount)
	v.SetDefault("seed", 0)
	v.SetDefault("verbose", false)

	if err := prepare(v, "NUMGEN", configFile, flags); err != nil {
		return nil, err
	}

	var cfg Numgen
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// LoadPrimecount reads primecount settings. Environment variables use the
// PRIMECOUNT_ prefix.
func LoadPrimecount(flags *pflag.FlagSet, configFile string) (*Primecount, error) {
	v := viper.New()
	v.SetDefault("file", numgen.DefaultPath)
	v.SetDefault("verbose", false)

	if err := prepare(v, "PRIMECOUNT", configFile, flags); err != nil {
		return nil, err
	}

	var cfg Primecount
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// prepare wires env lookup, the optional config file and flag bindings.
// Flag names use dashes; their keys use underscores.
func prepare(v *viper.Viper, envPrefix, configFile string, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags == nil {
		return nil
	}

	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Name == "config" {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			bindErr = fmt.Errorf("failed to bind flag %q: %w", f.Name, err)
		}
	})
	return bindErr
}
