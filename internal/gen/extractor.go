package gen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/MohanKrishnaTeja/jobAnalyzer/internal/cleaner"
)

var (
	// ErrUnavailable means the provider never initialized; every call on an
	// unavailable Extractor degrades to this without a network round trip.
	ErrUnavailable = errors.New("generative backend unavailable")
	// ErrEmpty means the call succeeded but returned nothing usable.
	// Callers must treat it as "extraction failed", not "zero skills found".
	ErrEmpty = errors.New("generative backend returned no usable result")
)

const (
	callTimeout = 30 * time.Second
	maxRoles    = 4
)

// Extractor wraps a Provider behind typed extraction and generation calls.
// Each method is exactly one round trip: no retries, no caching.
type Extractor struct {
	provider Provider
}

// NewExtractor accepts a nil provider; the result is a valid but
// unavailable Extractor whose calls all fail soft.
func NewExtractor(p Provider) *Extractor {
	return &Extractor{provider: p}
}

func (e *Extractor) Available() bool {
	return e.provider != nil
}

func (e *Extractor) generate(ctx context.Context, prompt string) (string, error) {
	if e.provider == nil {
		return "", ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	start := time.Now()
	out, err := e.provider.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	slog.Debug("generation round trip",
		"duration_ms", time.Since(start).Milliseconds(),
		"response_length", len(out))

	return cleaner.CleanResponse(out), nil
}

// ExtractSkills pulls a skill list out of free curriculum text.
func (e *Extractor) ExtractSkills(ctx context.Context, text string) ([]string, error) {
	out, err := e.generate(ctx, curriculumSkillsPrompt+text)
	if err != nil {
		slog.Error("skill extraction failed", "error", err)
		return nil, err
	}
	skills := splitList(out)
	if len(skills) == 0 {
		return nil, ErrEmpty
	}
	return skills, nil
}

// ExtractSkillsFromSummary pulls the job-market skill list out of a summary.
func (e *Extractor) ExtractSkillsFromSummary(ctx context.Context, summary string) ([]string, error) {
	out, err := e.generate(ctx, fmt.Sprintf(summarySkillsPrompt, summary))
	if err != nil {
		slog.Error("summary skill extraction failed", "error", err)
		return nil, err
	}
	skills := splitList(out)
	if len(skills) == 0 {
		return nil, ErrEmpty
	}
	return skills, nil
}

// IdentifyRoles maps a skill list to at most four job roles, in the order
// the backend ranked them. No local reordering.
func (e *Extractor) IdentifyRoles(ctx context.Context, skills []string) ([]string, error) {
	out, err := e.generate(ctx, fmt.Sprintf(jobRolePrompt, strings.Join(skills, ", ")))
	if err != nil {
		slog.Error("role identification failed", "error", err)
		return nil, err
	}
	roles := splitList(out)
	if len(roles) == 0 {
		return nil, ErrEmpty
	}
	if len(roles) > maxRoles {
		roles = roles[:maxRoles]
	}
	return roles, nil
}

// SummarizeJobs builds a single structured summary from job descriptions.
// Descriptions are stripped of HTML before prompting.
func (e *Extractor) SummarizeJobs(ctx context.Context, descriptions []string) (string, error) {
	cleaned := make([]string, 0, len(descriptions))
	for _, d := range descriptions {
		cleaned = append(cleaned, cleaner.CleanHTML(d))
	}
	out, err := e.generate(ctx, jobSummaryPrompt+strings.Join(cleaned, "\n\n"))
	if err != nil {
		slog.Error("job summary generation failed", "error", err)
		return "", err
	}
	if out == "" {
		return "", ErrEmpty
	}
	return out, nil
}

// The Generate* methods return the backend's raw text, or a literal error
// string on failure. They never return an error value: project generation
// output goes straight into a human-readable payload either way.

func (e *Extractor) GenerateProject(ctx context.Context, skill string) string {
	out, err := e.generate(ctx, fmt.Sprintf(projectPrompt, skill))
	if err != nil {
		slog.Error("project generation failed", "skill", skill, "error", err)
		return "Error generating project: " + err.Error()
	}
	return out
}

func (e *Extractor) GenerateMajorProject(ctx context.Context, skills []string) string {
	out, err := e.generate(ctx, fmt.Sprintf(majorProjectPrompt, strings.Join(skills, ", ")))
	if err != nil {
		slog.Error("major project generation failed", "error", err)
		return "Error generating major project: " + err.Error()
	}
	return out
}

func (e *Extractor) GenerateJobProject(ctx context.Context, summary string) string {
	out, err := e.generate(ctx, fmt.Sprintf(jobProjectPrompt, summary))
	if err != nil {
		slog.Error("job-based project generation failed", "error", err)
		return "Error generating job-based project: " + err.Error()
	}
	return out
}

func (e *Extractor) GenerateMiniProjects(ctx context.Context, summary string) string {
	out, err := e.generate(ctx, fmt.Sprintf(miniProjectsPrompt, summary))
	if err != nil {
		slog.Error("mini project generation failed", "error", err)
		return "Error generating job-based mini projects: " + err.Error()
	}
	return out
}

// CompareSkills computes which market skills the curriculum lacks. The
// difference is deterministic and local: case-folded, trimmed comparison,
// market order preserved, near-duplicates within the result collapsed.
func CompareSkills(curriculumSkills, marketSkills []string) []string {
	have := make(map[string]bool, len(curriculumSkills))
	for _, s := range curriculumSkills {
		have[normalizeSkill(s)] = true
	}

	missing := []string{}
	seen := make(map[string]bool)
	for _, s := range marketSkills {
		key := normalizeSkill(s)
		if key == "" || have[key] || seen[key] {
			continue
		}
		seen[key] = true
		missing = append(missing, strings.TrimSpace(s))
	}
	return missing
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func splitList(out string) []string {
	var items []string
	for _, part := range strings.Split(out, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}
