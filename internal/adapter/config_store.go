package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the preferences file.
const (
	EnvTuning         = "DAILY_SCALE_TUNING"
	EnvScales         = "DAILY_SCALE_SCALES"
	EnvRootNotes      = "DAILY_SCALE_ROOT_NOTES"
	EnvStartingFrets  = "DAILY_SCALE_STARTING_FRETS"
	EnvFullRandomness = "DAILY_SCALE_FULL_RANDOMNESS"
	EnvUncolored      = "DAILY_SCALE_UNCOLORED"
	EnvNoColor        = "NO_COLOR"
)

// Preferences holds the user's defaults. Values are kept as the raw names
// accepted on the command line; parsing happens in the caller.
type Preferences struct {
	Tuning         string   `yaml:"tuning"`
	Scales         []string `yaml:"scales"`
	RootNotes      []string `yaml:"root_notes"`
	StartingFrets  []int    `yaml:"starting_frets"`
	FullRandomness bool     `yaml:"full_randomness"`
	Uncolored      bool     `yaml:"uncolored"`
	Parallel       int      `yaml:"parallel"`
}

// ConfigStore loads preferences.
type ConfigStore interface {
	Load(path string) (Preferences, error)
}

type configStore struct {
	getenv     func(string) string
	dotenvPath string
}

// NewConfigStore returns a ConfigStore reading YAML from disk and overrides
// from the process environment and a .env file in the working directory.
func NewConfigStore() ConfigStore {
	return &configStore{getenv: os.Getenv, dotenvPath: ".env"}
}

// NewConfigStoreWithEnv is NewConfigStore with an explicit environment
// lookup and .env path.
func NewConfigStoreWithEnv(getenv func(string) string, dotenvPath string) ConfigStore {
	return &configStore{getenv: getenv, dotenvPath: dotenvPath}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/dailyscale/config.yaml or the
// platform equivalent. It returns an empty path when no config dir exists.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "dailyscale", "config.yaml")
}

// Load reads the preferences file at path, if any, and applies environment
// overrides. A missing file is not an error.
func (c *configStore) Load(path string) (Preferences, error) {
	var prefs Preferences

	if path != "" {
		data, err := os.ReadFile(path)

		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return prefs, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &prefs); err != nil {
				return prefs, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	env, err := c.environment()
	if err != nil {
		return prefs, err
	}

	return applyEnv(prefs, env)
}

// environment merges the .env file under the process environment.
func (c *configStore) environment() (func(string) string, error) {
	dotenv := map[string]string{}

	if c.dotenvPath != "" {
		values, err := godotenv.Read(c.dotenvPath)

		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read %s: %w", c.dotenvPath, err)
		default:
			dotenv = values
		}
	}

	return func(key string) string {
		if v := c.getenv(key); v != "" {
			return v
		}

		return dotenv[key]
	}, nil
}

func applyEnv(prefs Preferences, getenv func(string) string) (Preferences, error) {
	if v := getenv(EnvTuning); v != "" {
		prefs.Tuning = v
	}

	if v := getenv(EnvScales); v != "" {
		prefs.Scales = splitList(v)
	}

	if v := getenv(EnvRootNotes); v != "" {
		prefs.RootNotes = splitList(v)
	}

	if v := getenv(EnvStartingFrets); v != "" {
		frets := make([]int, 0)

		for _, s := range splitList(v) {
			fret, err := strconv.Atoi(s)
			if err != nil {
				return prefs, fmt.Errorf("%s: %q is not a number", EnvStartingFrets, s)
			}

			frets = append(frets, fret)
		}

		prefs.StartingFrets = frets
	}

	if v := getenv(EnvFullRandomness); v != "" {
		prefs.FullRandomness = v == "true" || v == "1"
	}

	if v := getenv(EnvUncolored); v != "" {
		prefs.Uncolored = v == "true" || v == "1"
	}

	if getenv(EnvNoColor) != "" {
		prefs.Uncolored = true
	}

	return prefs, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
