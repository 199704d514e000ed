package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFile is read from the working directory when --config is
// not given. Its absence is not an error.
const DefaultConfigFile = "quirkurl.toml"

// DefaultHistoryDB is the history database used when neither the flag nor
// the config file names one.
const DefaultHistoryDB = "quirkurl.db"

// Config holds defaults read from a TOML file:
//
//	format = "json"
//	verbose = true
//	history = "/var/lib/quirkurl/history.db"
//
// Command-line flags always win.
type Config struct {
	Format  string `toml:"format"`
	Verbose *bool  `toml:"verbose"`
	History string `toml:"history"`
}

// LoadConfig reads the config file at path. An empty path reads
// DefaultConfigFile if it exists and returns an empty Config otherwise.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parsing config %s: unknown key %q", path, undecoded[0].String())
	}
	return &cfg, nil
}
