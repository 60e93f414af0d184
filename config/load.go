package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SEARCH_INDEX_"

// Load reads a YAML settings file (if provided) on top of Default(), applies
// environment-variable overrides and validates the result.
func Load(path string) (Settings, error) {
	settings := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return Settings{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(&settings)
	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config file %q: %w", path, err)
	}
	return settings, nil
}

// applyEnvOverrides reads SEARCH_INDEX_* environment variables and overrides
// the corresponding settings. Unparseable values are ignored.
func applyEnvOverrides(settings *Settings) {
	if v := os.Getenv(EnvPrefix + "CASE_SENSITIVE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			settings.CaseSensitive = b
		}
	}
	if v := os.Getenv(EnvPrefix + "SEARCH_TYPE"); v != "" {
		settings.SearchType = SearchType(v)
	}
	if v := os.Getenv(EnvPrefix + "AUTOCOMPLETE_TYPE"); v != "" {
		settings.AutocompleteType = AutocompleteType(v)
	}
	if v := os.Getenv(EnvPrefix + "MAXIMUM_SEARCH_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			settings.MaximumSearchResults = n
		}
	}
	if v := os.Getenv(EnvPrefix + "MAXIMUM_AUTOCOMPLETE_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			settings.MaximumAutocompleteResults = n
		}
	}
	if v := os.Getenv(EnvPrefix + "MAXIMUM_KEYS_PER_KEYWORD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			settings.MaximumKeysPerKeyword = n
		}
	}
	if v := os.Getenv(EnvPrefix + "FUZZY_METRIC"); v != "" {
		settings.Fuzzy.Metric = Metric(v)
	}
	if v := os.Getenv(EnvPrefix + "FUZZY_MINIMUM_SCORE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			settings.Fuzzy.MinimumScore = f
		}
	}
	if v := os.Getenv(EnvPrefix + "FUZZY_PREFIX_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			settings.Fuzzy.PrefixLength = n
		}
	}
}
