// Package config holds the settings shared by the genviz command line tool
// and the terminal browser.
package config

import (
	"errors"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"genviz/internal/viewer"
)

// DefaultPath is read when no config path is given.
const DefaultPath = "config.json"

type Config struct {
	InputFasta  string `mapstructure:"input_fasta"`
	OutputJSON  string `mapstructure:"output_json"`
	LogFile     string `mapstructure:"log_file"`
	LogLevel    string `mapstructure:"log_level"`
	Concurrency int    `mapstructure:"concurrency"`
	LineWidth   int    `mapstructure:"line_width"`
}

// New returns a viper instance with genviz defaults and GENVIZ_* environment
// overrides. Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("input_fasta", "")
	v.SetDefault("output_json", "")
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("concurrency", runtime.NumCPU())
	v.SetDefault("line_width", viewer.DefaultWidth)
	v.SetEnvPrefix("genviz")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the JSON config at path into v and decodes it. If path is
// empty, ./config.json is tried. A missing file is not an error: defaults,
// environment and bound flags still apply.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		if !isNotExist(err) {
			return nil, err
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	if c.Concurrency <= 0 {
		c.Concurrency = runtime.NumCPU()
	}
	if c.LineWidth <= 0 {
		c.LineWidth = viewer.DefaultWidth
	}
	return &c, nil
}

// LoadConfig is Load with a fresh viper instance.
func LoadConfig(path string) (*Config, error) {
	return Load(New(), path)
}

func isNotExist(err error) bool {
	var nf viper.ConfigFileNotFoundError
	if errors.As(err, &nf) {
		return true
	}
	if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
		return true
	}
	return false
}
