package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Preferences are the user settings that survive restarts
type Preferences struct {
	DarkMode bool `yaml:"dark_mode"`
}

// PreferenceFile reads and writes Preferences as YAML at Path
type PreferenceFile struct {
	Path string
}

// NewPreferenceFile returns a PreferenceFile rooted at path
func NewPreferenceFile(path string) *PreferenceFile {
	return &PreferenceFile{Path: path}
}

// Load returns the stored preferences. A missing file yields the zero value.
func (p *PreferenceFile) Load() (Preferences, error) {
	var prefs Preferences
	data, err := os.ReadFile(p.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("read preferences: %w", err)
	}
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("parse preferences %s: %w", p.Path, err)
	}
	return prefs, nil
}

// Save writes prefs, creating the parent directory if needed
func (p *PreferenceFile) Save(prefs Preferences) error {
	if err := os.MkdirAll(filepath.Dir(p.Path), 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}
	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	return os.WriteFile(p.Path, data, 0o644)
}

// SaveDarkMode persists only the theme flag
func (p *PreferenceFile) SaveDarkMode(dark bool) error {
	prefs, err := p.Load()
	if err != nil {
		return err
	}
	prefs.DarkMode = dark
	return p.Save(prefs)
}
