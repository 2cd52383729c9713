package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GEN_PROVIDER", "GEMINI_KEY", "OPENAI_KEY",
		"JOBS_API_URL", "JOBS_API_KEY", "JOB_LOCATION", "JOB_SOURCES",
		"RESULTS_PER_ROLE", "SEARCH_CONFIG",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JOBS_API_URL", "http://jobs.local/search")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8000 {
		t.Errorf("Port = %d, want 8000", cfg.Port)
	}
	if cfg.GenProvider != "gemini" {
		t.Errorf("GenProvider = %q, want gemini", cfg.GenProvider)
	}
	if cfg.Search.Location != "India" {
		t.Errorf("Location = %q, want India", cfg.Search.Location)
	}
	if len(cfg.Search.Sources) != 3 || cfg.Search.Sources[0] != "indeed" {
		t.Errorf("Sources = %v, want default three", cfg.Search.Sources)
	}
	if cfg.Search.ResultsPerRole != 50 {
		t.Errorf("ResultsPerRole = %d, want 50", cfg.Search.ResultsPerRole)
	}
}

func TestLoadMissingJobsURL(t *testing.T) {
	clearEnv(t)

	if _, err := Load(); err == nil {
		t.Fatal("expected error when JOBS_API_URL is unset")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("JOBS_API_URL", "http://jobs.local/search")
	t.Setenv("PORT", "9090")
	t.Setenv("GEN_PROVIDER", "openai")
	t.Setenv("JOB_LOCATION", "Remote")
	t.Setenv("JOB_SOURCES", "indeed, glassdoor")
	t.Setenv("RESULTS_PER_ROLE", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9090 || cfg.GenProvider != "openai" || cfg.Search.Location != "Remote" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if len(cfg.Search.Sources) != 2 || cfg.Search.Sources[1] != "glassdoor" {
		t.Errorf("Sources = %v, want [indeed glassdoor]", cfg.Search.Sources)
	}
	if cfg.Search.ResultsPerRole != 25 {
		t.Errorf("ResultsPerRole = %d, want 25", cfg.Search.ResultsPerRole)
	}
}

func TestLoadBadValues(t *testing.T) {
	cases := map[string][2]string{
		"bad port":     {"PORT", "eight"},
		"bad provider": {"GEN_PROVIDER", "bard"},
		"bad results":  {"RESULTS_PER_ROLE", "-1"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("JOBS_API_URL", "http://jobs.local/search")
			t.Setenv(kv[0], kv[1])
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", kv[0], kv[1])
			}
		})
	}
}

func TestLoadYAMLOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("JOBS_API_URL", "http://jobs.local/search")

	path := filepath.Join(t.TempDir(), "search.yaml")
	body := strings.Join([]string{
		"location: Berlin",
		"sources:",
		"  - linkedin",
		"results_per_role: 10",
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SEARCH_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Search.Location != "Berlin" {
		t.Errorf("Location = %q, want Berlin", cfg.Search.Location)
	}
	if len(cfg.Search.Sources) != 1 || cfg.Search.Sources[0] != "linkedin" {
		t.Errorf("Sources = %v, want [linkedin]", cfg.Search.Sources)
	}
	if cfg.Search.ResultsPerRole != 10 {
		t.Errorf("ResultsPerRole = %d, want 10", cfg.Search.ResultsPerRole)
	}
	// env URL survives when file omits it
	if cfg.Search.APIURL != "http://jobs.local/search" {
		t.Errorf("APIURL = %q", cfg.Search.APIURL)
	}
}

func TestLoadYAMLMissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("JOBS_API_URL", "http://jobs.local/search")
	t.Setenv("SEARCH_CONFIG", "/nonexistent/search.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
