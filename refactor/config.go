// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

type Config struct {
	// UppercaseParams also canonicalizes macro parameter names.
	UppercaseParams bool `koanf:"uppercase_params"`

	// Strict turns name collisions into errors.
	Strict bool `koanf:"strict"`

	// Jobs bounds the number of files planned concurrently.
	// Zero means GOMAXPROCS.
	Jobs int `koanf:"jobs"`

	// Extensions lists the file extensions, with leading dot, that are
	// picked up when walking a directory.
	Extensions []string `koanf:"extensions"`

	// Color is auto, on, or off.
	Color string `koanf:"color"`
}

// ConfigFiles are the names looked for when no config file is given.
var ConfigFiles = []string{".defstyle.yaml", ".defstyle.yml", "defstyle.yaml"}

// EnvPrefix prefixes the environment variables that override the config file.
const EnvPrefix = "DEFSTYLE_"

// flagKeys maps command-line flag names to config keys.
// Flags not listed here do not affect the Config.
var flagKeys = map[string]string{
	"uppercase-params": "uppercase_params",
	"strict":           "strict",
	"jobs":             "jobs",
	"ext":              "extensions",
	"color":            "color",
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Extensions: []string{".c", ".h", ".cc", ".cpp", ".hpp", ".hh", ".ino"},
		Color:      "auto",
	}
}

// LoadConfig loads the configuration for a rewrite in dir.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// If cfgFile is empty, the first of ConfigFiles found in dir is used, if any.
// It returns the config file used, or "".
func LoadConfig(dir, cfgFile string, flags *pflag.FlagSet) (Config, string, error) {
	k := koanf.New(".")

	def := DefaultConfig()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"uppercase_params": def.UppercaseParams,
		"strict":           def.Strict,
		"jobs":             def.Jobs,
		"extensions":       def.Extensions,
		"color":            def.Color,
	}, "."), nil); err != nil {
		return Config{}, "", fmt.Errorf("loading defaults: %w", err)
	}

	if cfgFile != "" && !filepath.IsAbs(cfgFile) {
		cfgFile = filepath.Join(dir, cfgFile)
	}
	if cfgFile == "" {
		for _, name := range ConfigFiles {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				cfgFile = filepath.Join(dir, name)
				break
			}
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return Config{}, "", fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	}

	// DEFSTYLE_UPPERCASE_PARAMS -> uppercase_params
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return Config{}, "", fmt.Errorf("loading environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return Config{}, "", fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, "", fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, "", err
	}
	return cfg, cfgFile, nil
}

// Validate checks that the configuration values are usable.
func (c Config) Validate() error {
	switch c.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("invalid color %q: want auto, on, or off", c.Color)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("invalid jobs %d: must not be negative", c.Jobs)
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("invalid extension %q: must start with a dot", ext)
		}
	}
	return nil
}

func (c Config) hasExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range c.Extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
