// Package config resolves mdwrap settings from defaults, an optional config
// file, MDWRAP_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"pkt.systems/mdtidy"
)

const (
	// EnvPrefix is the prefix for environment overrides (MDWRAP_WIDTH, ...).
	EnvPrefix = "mdwrap"
	// FileName is the config file base name searched for without --config.
	FileName = ".mdwrap"
	// DefaultDir is the directory reflowed when none is configured.
	DefaultDir = "docs/plans"
)

// Keys.
const (
	KeyDir          = "dir"
	KeyWidth        = "width"
	KeyPattern      = "pattern"
	KeyFrontMatter  = "front_matter"
	KeyTaskCheckbox = "task_checkbox"
)

// Config is the resolved mdwrap configuration.
type Config struct {
	Dir          string
	Width        int
	Pattern      string
	FrontMatter  bool
	TaskCheckbox bool
}

// Option describes one configuration key and its default.
type Option struct {
	Key     string
	Default any
	Comment string
}

// Options returns every configuration key with its default and meaning.
func Options() []Option {
	return []Option{
		{Key: KeyDir, Default: DefaultDir, Comment: "Directory whose Markdown files are reflowed (not recursive)"},
		{Key: KeyWidth, Default: mdtidy.DefaultWidth, Comment: "Maximum line width"},
		{Key: KeyPattern, Default: mdtidy.DefaultPattern, Comment: "File name pattern matched inside dir"},
		{Key: KeyFrontMatter, Default: false, Comment: "Copy a leading front matter block through unchanged"},
		{Key: KeyTaskCheckbox, Default: false, Comment: "Hang task list continuation lines under the task text"},
	}
}

// Load resolves configuration with precedence defaults < file < env < flags
// bound to v. When file is empty, FileName is looked up in searchPaths and a
// missing file is not an error.
func Load(v *viper.Viper, file string, searchPaths ...string) (Config, error) {
	for _, o := range Options() {
		v.SetDefault(o.Key, o.Default)
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName(FileName)
		for _, p := range searchPaths {
			v.AddConfigPath(p)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := Config{
		Dir:          ExpandHome(strings.TrimSpace(v.GetString(KeyDir))),
		Width:        v.GetInt(KeyWidth),
		Pattern:      strings.TrimSpace(v.GetString(KeyPattern)),
		FrontMatter:  v.GetBool(KeyFrontMatter),
		TaskCheckbox: v.GetBool(KeyTaskCheckbox),
	}
	return cfg, Validate(cfg)
}

// Validate reports every problem with cfg at once.
func Validate(cfg Config) error {
	var errs []error
	if cfg.Dir == "" {
		errs = append(errs, errors.New("dir is required"))
	}
	if cfg.Width < 1 {
		errs = append(errs, fmt.Errorf("width must be greater than 0, got %d", cfg.Width))
	}
	if cfg.Pattern == "" {
		errs = append(errs, errors.New("pattern is required"))
	} else if strings.ContainsRune(cfg.Pattern, '/') {
		errs = append(errs, fmt.Errorf("pattern %q must not contain '/'", cfg.Pattern))
	}
	return errors.Join(errs...)
}

// ReflowOptions converts cfg into options for mdtidy.Reflow.
func (c Config) ReflowOptions() []mdtidy.ReflowOption {
	return []mdtidy.ReflowOption{
		mdtidy.WithWidth(c.Width),
		mdtidy.WithFrontMatter(c.FrontMatter),
		mdtidy.WithTaskCheckbox(c.TaskCheckbox),
	}
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
