// Package config loads and validates YAML configuration for document
// conversion. Config files are discovered by name in standard locations
// or loaded directly by path.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2tex/internal/fileutil"
	"github.com/alnah/go-md2tex/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxLanguageLength = 50   // Syntax highlighting language name
	MaxPathLength     = 2048 // Filesystem paths
)

// Config holds all configuration for Markdown to LaTeX conversion.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	Code     CodeConfig     `yaml:"code"`
	Template TemplateConfig `yaml:"template"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Stdout     bool   `yaml:"stdout"`     // Print to stdout instead of writing files
}

// DocumentConfig defines LaTeX document rendering options.
type DocumentConfig struct {
	Class      string `yaml:"class"`      // "article" or "book" (default: "article")
	Unnumbered bool   `yaml:"unnumbered"` // Starred sectioning commands plus TOC entries
	Quotes     string `yaml:"quotes"`     // "english" or "french" (default: "english")
	Notes      string `yaml:"notes"`      // "footnote" or "endnote" (default: "footnote")
}

// CodeConfig defines syntax highlighting options.
type CodeConfig struct {
	Language string `yaml:"language"` // Default language for code without an info string
	Force    bool   `yaml:"force"`    // Apply Language even when blocks declare their own
}

// TemplateConfig defines complete-document output options.
type TemplateConfig struct {
	Complete bool   `yaml:"complete"` // Wrap the body in a document template
	Path     string `yaml:"path"`     // Custom template file (empty = embedded default)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks enum fields and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if c.Document.Class != "" {
		switch c.Document.Class {
		case "article", "book":
			// valid
		default:
			return fmt.Errorf("document.class: invalid value %q (must be article or book)", c.Document.Class)
		}
	}
	if c.Document.Quotes != "" {
		switch c.Document.Quotes {
		case "english", "french":
			// valid
		default:
			return fmt.Errorf("document.quotes: invalid value %q (must be english or french)", c.Document.Quotes)
		}
	}
	if c.Document.Notes != "" {
		switch c.Document.Notes {
		case "footnote", "endnote":
			// valid
		default:
			return fmt.Errorf("document.notes: invalid value %q (must be footnote or endnote)", c.Document.Notes)
		}
	}

	if err := validateFieldLength("code.language", c.Code.Language, MaxLanguageLength); err != nil {
		return err
	}
	if err := validateFieldLength("template.path", c.Template.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration matching the zero-flag CLI.
func DefaultConfig() *Config {
	return &Config{
		Document: DocumentConfig{
			Class:  "article",
			Quotes: "english",
			Notes:  "footnote",
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2tex/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2tex", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
