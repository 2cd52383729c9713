// Package config loads runtime configuration from the environment, with an
// optional YAML file for the job-search settings. Fail-fast: malformed
// values abort startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults mirror what the service was tuned for originally.
const (
	defaultPort           = 8000
	defaultLocation       = "India"
	defaultResultsPerRole = 50
)

var defaultSources = []string{"indeed", "linkedin", "google"}

// Search holds everything the job aggregation needs to reach the boards.
type Search struct {
	APIURL         string   `yaml:"api_url"`
	APIKey         string   `yaml:"-"`
	Location       string   `yaml:"location"`
	Sources        []string `yaml:"sources"`
	ResultsPerRole int      `yaml:"results_per_role"`
}

type Config struct {
	Port        int
	GenProvider string // "gemini" or "openai"
	GeminiKey   string
	OpenAIKey   string
	Search      Search
}

// Load reads the environment and, when SEARCH_CONFIG names a YAML file,
// applies its overrides on top of the env-derived search settings.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        defaultPort,
		GenProvider: "gemini",
		GeminiKey:   os.Getenv("GEMINI_KEY"),
		OpenAIKey:   os.Getenv("OPENAI_KEY"),
		Search: Search{
			APIURL:         os.Getenv("JOBS_API_URL"),
			APIKey:         os.Getenv("JOBS_API_KEY"),
			Location:       defaultLocation,
			Sources:        defaultSources,
			ResultsPerRole: defaultResultsPerRole,
		},
	}

	if s := os.Getenv("PORT"); s != "" {
		port, err := strconv.Atoi(s)
		if err != nil || port < 1 {
			return nil, fmt.Errorf("PORT must be a positive integer, got %q", s)
		}
		cfg.Port = port
	}

	if p := os.Getenv("GEN_PROVIDER"); p != "" {
		if p != "gemini" && p != "openai" {
			return nil, fmt.Errorf("GEN_PROVIDER must be gemini or openai, got %q", p)
		}
		cfg.GenProvider = p
	}

	if loc := os.Getenv("JOB_LOCATION"); loc != "" {
		cfg.Search.Location = loc
	}
	if srcs := os.Getenv("JOB_SOURCES"); srcs != "" {
		cfg.Search.Sources = splitSources(srcs)
	}
	if s := os.Getenv("RESULTS_PER_ROLE"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("RESULTS_PER_ROLE must be a positive integer, got %q", s)
		}
		cfg.Search.ResultsPerRole = n
	}

	if path := os.Getenv("SEARCH_CONFIG"); path != "" {
		if err := applyFile(path, &cfg.Search); err != nil {
			return nil, err
		}
	}

	if cfg.Search.APIURL == "" {
		return nil, fmt.Errorf("JOBS_API_URL is required")
	}

	return cfg, nil
}

func applyFile(path string, search *Search) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var file Search
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if file.APIURL != "" {
		search.APIURL = file.APIURL
	}
	if file.Location != "" {
		search.Location = file.Location
	}
	if len(file.Sources) > 0 {
		search.Sources = file.Sources
	}
	if file.ResultsPerRole > 0 {
		search.ResultsPerRole = file.ResultsPerRole
	}
	return nil
}

func splitSources(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if src := strings.TrimSpace(part); src != "" {
			out = append(out, src)
		}
	}
	return out
}
