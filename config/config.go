/*
Package config provides a way to find and load optional ssss defaults.

The command line always wins; the file only supplies defaults for options
an operator sets the same way every time, such as the share token or the
quiet flags.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const configFileName = ".ssss.yaml"

// File holds the defaults an operator may persist. Pointer fields
// distinguish "absent" from an explicit false.
type File struct {
	// Token is prepended to every share line emitted by split.
	Token string `yaml:"token"`
	// Quiet suppresses prompts and banners.
	Quiet bool `yaml:"quiet"`
	// Diffusion toggles the plaintext permutation on both sides.
	Diffusion *bool `yaml:"diffusion"`
}

// lookupPath returns the config file to load: $SSSS_CONFIG when set, then
// the working directory, then the home directory. An empty string means no
// file was found.
func lookupPath() string {
	if p := os.Getenv("SSSS_CONFIG"); p != "" {
		return p
	}
	if wd, err := os.Getwd(); err == nil {
		p := filepath.Join(wd, configFileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if home, err := homedir.Dir(); err == nil {
		p := filepath.Join(home, configFileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Load reads the defaults file, if any. When no file is found an empty
// File is returned with no error; a file named by $SSSS_CONFIG that cannot
// be read, or a present but malformed file, is an error, since the
// operator clearly meant it to apply.
func Load() (*File, error) {
	path := lookupPath()
	if path == "" {
		return &File{}, nil
	}
	return loadFile(path)
}

func loadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f := &File{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, err
	}
	return f, nil
}
