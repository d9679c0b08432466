// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"strings"

	"github.com/jjtimmons/phynex/internal/align"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable overrides, ie PHYNEX_MRBAYES_NGEN
const EnvPrefix = "PHYNEX"

// MrBayesConfig is the MCMC setup written to the end of NEXUS output
type MrBayesConfig struct {
	// whether to append the "begin mrbayes;" block at all
	Enabled bool `mapstructure:"enabled"`

	// number of MCMC generations
	Generations int `mapstructure:"ngen"`

	// how often to print chain progress
	PrintFreq int `mapstructure:"printfreq"`

	// how often to sample the chain
	SampleFreq int `mapstructure:"samplefreq"`

	// how often to compute convergence diagnostics
	DiagnFreq int `mapstructure:"diagnfreq"`

	// number of chains
	Chains int `mapstructure:"nchains"`
}

// LogConfig is for the stderr logger
type LogConfig struct {
	// debug, info, warn or error
	Level string `mapstructure:"level"`

	// text or json
	Format string `mapstructure:"format"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment
// and those available from the command line
type Config struct {
	// MrBayes block settings
	MrBayes MrBayesConfig `mapstructure:"mrbayes"`

	// Log settings
	Log LogConfig `mapstructure:"log"`

	// Verbose forces debug logging
	Verbose bool `mapstructure:"verbose"`
}

// SetDefaults registers the default settings on v. The MrBayes values are
// the ones the NEXUS writer has always used.
func SetDefaults(v *viper.Viper) {
	mb := align.DefaultMrBayes()
	v.SetDefault("mrbayes.enabled", true)
	v.SetDefault("mrbayes.ngen", mb.Generations)
	v.SetDefault("mrbayes.printfreq", mb.PrintFreq)
	v.SetDefault("mrbayes.samplefreq", mb.SampleFreq)
	v.SetDefault("mrbayes.diagnfreq", mb.DiagnFreq)
	v.SetDefault("mrbayes.nchains", mb.Chains)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("verbose", false)
}

// New returns a Config populated from v: defaults, the settings file (if
// settings isn't empty), PHYNEX_* environment variables and any flags bound to v.
func New(v *viper.Viper, settings string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if settings != "" {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %v", settings, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %v", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Analysis returns the MrBayes block for NEXUS output, nil if it's disabled
func (c *Config) Analysis() *align.MrBayes {
	if !c.MrBayes.Enabled {
		return nil
	}
	return &align.MrBayes{
		Generations: c.MrBayes.Generations,
		PrintFreq:   c.MrBayes.PrintFreq,
		SampleFreq:  c.MrBayes.SampleFreq,
		DiagnFreq:   c.MrBayes.DiagnFreq,
		Chains:      c.MrBayes.Chains,
	}
}

// LogLevel is the configured level, or debug when Verbose is set
func (c *Config) LogLevel() string {
	if c.Verbose {
		return "debug"
	}
	return c.Log.Level
}

func (c *Config) validate() error {
	counts := []struct {
		key string
		val int
	}{
		{"mrbayes.ngen", c.MrBayes.Generations},
		{"mrbayes.printfreq", c.MrBayes.PrintFreq},
		{"mrbayes.samplefreq", c.MrBayes.SampleFreq},
		{"mrbayes.diagnfreq", c.MrBayes.DiagnFreq},
		{"mrbayes.nchains", c.MrBayes.Chains},
	}
	for _, count := range counts {
		if count.val < 1 {
			return fmt.Errorf("%s must be a positive integer, got %d", count.key, count.val)
		}
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be 'text' or 'json', got %q", c.Log.Format)
	}
	return nil
}
