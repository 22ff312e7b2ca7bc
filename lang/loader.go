package lang

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed configs/*.toml
var embeddedConfigs embed.FS

var (
	loadOnce sync.Once
	loaded   map[string]LanguageConfig
	loadErr  error
)

func loadEmbeddedConfigs() (map[string]LanguageConfig, error) {
	entries, err := embeddedConfigs.ReadDir("configs")
	if err != nil {
		return nil, fmt.Errorf("lang: reading embedded configs: %w", err)
	}

	configs := make(map[string]LanguageConfig, len(entries))
	for _, e := range entries {
		data, err := embeddedConfigs.ReadFile("configs/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("lang: reading %s: %w", e.Name(), err)
		}
		var cfg LanguageConfig
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("lang: parsing %s: %w", e.Name(), err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("lang: validating %s: %w", e.Name(), err)
		}
		configs[cfg.Metadata.Code] = cfg
	}
	return configs, nil
}

// GetLanguageConfig returns the embedded LanguageConfig for code (e.g.
// "en", "ja"), or an error if no such language is bundled.
func GetLanguageConfig(code string) (LanguageConfig, error) {
	loadOnce.Do(func() {
		loaded, loadErr = loadEmbeddedConfigs()
	})
	if loadErr != nil {
		return LanguageConfig{}, loadErr
	}
	cfg, ok := loaded[code]
	if !ok {
		return LanguageConfig{}, fmt.Errorf("lang: unsupported language %q", code)
	}
	return cfg, nil
}

// ListAvailableLanguages returns every bundled language code, sorted.
func ListAvailableLanguages() ([]string, error) {
	loadOnce.Do(func() {
		loaded, loadErr = loadEmbeddedConfigs()
	})
	if loadErr != nil {
		return nil, loadErr
	}
	codes := make([]string, 0, len(loaded))
	for code := range loaded {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

// NewRules is a convenience that loads the embedded config for code and
// builds a ConfigurableLanguageRules from it in one call.
func NewRules(code string) (*ConfigurableLanguageRules, error) {
	cfg, err := GetLanguageConfig(code)
	if err != nil {
		return nil, err
	}
	return NewConfigurableLanguageRules(cfg)
}

// LoadLanguageConfigFile parses and validates a LanguageConfig from an
// arbitrary TOML file on disk, for callers supplying their own language
// definition rather than using one of the embedded ones (the `validate`
// CLI subcommand's only job).
func LoadLanguageConfigFile(path string) (LanguageConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LanguageConfig{}, fmt.Errorf("lang: reading %s: %w", path, err)
	}
	var cfg LanguageConfig
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return LanguageConfig{}, fmt.Errorf("lang: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return LanguageConfig{}, fmt.Errorf("lang: validating %s: %w", path, err)
	}
	return cfg, nil
}

// NewRulesFromFile loads and validates a LanguageConfig from path and builds
// a ConfigurableLanguageRules from it in one call.
func NewRulesFromFile(path string) (*ConfigurableLanguageRules, error) {
	cfg, err := LoadLanguageConfigFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfigurableLanguageRules(cfg)
}
