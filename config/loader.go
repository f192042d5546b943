package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the file name searched for when no path is given.
const DefaultConfigFile = ".rast-html.yaml"

// LoadFile reads a report file and applies defaults to every report.
// A missing file returns ErrConfigNotFound.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return Parse(data, filepath.Dir(path))
}

// Parse decodes a report file. Relative input and output paths
// are resolved against dir; an empty dir leaves them unchanged.
func Parse(data []byte, dir string) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	for i, r := range f.Reports {
		r = r.WithDefaults()
		if dir != "" {
			r.Input = resolve(dir, r.Input)
			r.Output = resolve(dir, r.Output)
		}
		f.Reports[i] = r
	}

	return &f, nil
}

// Find returns the report named name.
func (f *File) Find(name string) (Report, error) {
	for _, r := range f.Reports {
		if r.Name == name {
			return r, nil
		}
	}
	return Report{}, fmt.Errorf("%w: %q", ErrReportNotFound, name)
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// FindConfigFile searches for the configuration file in the following order:
//  1. configPath, when given
//  2. .rast-html.yaml in the current directory
//  3. config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := []string{
		DefaultConfigFile,
		filepath.Join(XDGConfigDir(), "config.yaml"),
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}

	return ""
}
