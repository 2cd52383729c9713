// Package pipeline runs the eight-stage curriculum analysis and streams
// each stage's outcome as it completes.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MohanKrishnaTeja/jobAnalyzer/internal/format"
	"github.com/MohanKrishnaTeja/jobAnalyzer/internal/gen"
	"github.com/MohanKrishnaTeja/jobAnalyzer/internal/jobs"
	"github.com/MohanKrishnaTeja/jobAnalyzer/pkg/types"
)

// Step identifiers, in emission order. fetching_jobs repeats once per role.
const (
	StepExtractingSkills      = "extracting_skills"
	StepSkillsExtracted       = "skills_extracted"
	StepIdentifyingRoles      = "identifying_roles"
	StepRolesIdentified       = "roles_identified"
	StepFetchingJobs          = "fetching_jobs"
	StepJobsFetched           = "jobs_fetched"
	StepGeneratingSummary     = "generating_summary"
	StepSummaryGenerated      = "summary_generated"
	StepAnalyzingGaps         = "analyzing_gaps"
	StepGapsAnalyzed          = "gaps_analyzed"
	StepGeneratingProjects    = "generating_projects"
	StepMajorProjectGenerated = "major_project_generated"
	StepMiniProjectsGenerated = "mini_projects_generated"
	StepComplete              = "complete"
)

// Event is one unit of the progress stream. Exactly one of the three
// shapes is populated: {step,message}, {step,data}, or {error}.
type Event struct {
	Step    string `json:"step,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Err     string `json:"error,omitempty"`
}

// SkillService is the slice of the generative adapter the pipeline uses.
type SkillService interface {
	ExtractSkills(ctx context.Context, text string) ([]string, error)
	ExtractSkillsFromSummary(ctx context.Context, summary string) ([]string, error)
	IdentifyRoles(ctx context.Context, skills []string) ([]string, error)
	SummarizeJobs(ctx context.Context, descriptions []string) (string, error)
	GenerateJobProject(ctx context.Context, summary string) string
	GenerateMiniProjects(ctx context.Context, summary string) string
}

// JobService is the slice of the aggregator the pipeline uses.
type JobService interface {
	SearchAll(ctx context.Context, roles []string, onRole func(string)) (jobs.Collection, error)
}

// How many listing descriptions feed the summary stage.
const summaryJobs = 12

type Pipeline struct {
	gen    SkillService
	search JobService
}

func New(gen SkillService, search JobService) *Pipeline {
	return &Pipeline{gen: gen, search: search}
}

// Run starts the analysis in its own goroutine and returns the event
// stream. The channel closes after the complete event or the first error
// event. Cancelling ctx stops the run; no event is emitted after that.
func (p *Pipeline) Run(ctx context.Context, curriculumText string) <-chan Event {
	events := make(chan Event, 1)
	go func() {
		defer close(events)
		defer func() {
			if r := recover(); r != nil {
				slog.Error("analysis pipeline panicked", "panic", r)
				p.emit(ctx, events, Event{Err: fmt.Sprint(r)})
			}
		}()
		p.run(ctx, curriculumText, events)
	}()
	return events
}

func (p *Pipeline) run(ctx context.Context, curriculumText string, out chan<- Event) {
	// Stage 1: curriculum skills
	if !p.emit(ctx, out, Event{Step: StepExtractingSkills, Message: "Analyzing your curriculum..."}) {
		return
	}
	curriculumSkills, err := p.gen.ExtractSkills(ctx, curriculumText)
	if err != nil {
		p.fail(ctx, out, "Could not extract skills from curriculum", err)
		return
	}
	if !p.emit(ctx, out, Event{Step: StepSkillsExtracted, Data: curriculumSkills}) {
		return
	}

	// Stage 2: roles
	if !p.emit(ctx, out, Event{Step: StepIdentifyingRoles, Message: "Identifying relevant job roles..."}) {
		return
	}
	roles, err := p.gen.IdentifyRoles(ctx, curriculumSkills)
	if err != nil {
		p.fail(ctx, out, "Could not identify relevant job roles", err)
		return
	}
	if !p.emit(ctx, out, Event{Step: StepRolesIdentified, Data: roles}) {
		return
	}

	// Stage 3: per-role job searches
	if !p.emit(ctx, out, Event{Step: StepFetchingJobs, Message: "Fetching relevant job listings..."}) {
		return
	}
	listings, err := p.search.SearchAll(ctx, roles, func(role string) {
		p.emit(ctx, out, Event{Step: StepFetchingJobs, Message: fmt.Sprintf("Searching for %s positions...", role)})
	})
	if err != nil {
		if errors.Is(err, jobs.ErrNoJobsFound) {
			p.fail(ctx, out, "No jobs found", err)
		} else {
			p.fail(ctx, out, err.Error(), err)
		}
		return
	}

	// Stage 4: deduplicated top listings
	if !p.emit(ctx, out, Event{Step: StepJobsFetched, Data: []types.JobListing(listings)}) {
		return
	}

	// Stage 5: summary
	if !p.emit(ctx, out, Event{Step: StepGeneratingSummary, Message: "Analyzing job requirements..."}) {
		return
	}
	summary, err := p.gen.SummarizeJobs(ctx, listings.Descriptions(summaryJobs))
	if err != nil {
		p.fail(ctx, out, "Could not generate job summary", err)
		return
	}
	if !p.emit(ctx, out, Event{Step: StepSummaryGenerated, Data: summary}) {
		return
	}

	// Stage 6: skill gaps
	if !p.emit(ctx, out, Event{Step: StepAnalyzingGaps, Message: "Analyzing skill gaps..."}) {
		return
	}
	marketSkills, err := p.gen.ExtractSkillsFromSummary(ctx, summary)
	if err != nil {
		p.fail(ctx, out, "Could not extract skills from job summary", err)
		return
	}
	gaps := types.GapAnalysis{
		MissingSkills:   gen.CompareSkills(curriculumSkills, marketSkills),
		JobMarketSkills: marketSkills,
	}
	if !p.emit(ctx, out, Event{Step: StepGapsAnalyzed, Data: gaps}) {
		return
	}

	// Stage 7: projects. The major project table becomes a point list; the
	// mini projects stay raw text.
	if !p.emit(ctx, out, Event{Step: StepGeneratingProjects, Message: "Generating project recommendations..."}) {
		return
	}
	major := format.TableToPoints(p.gen.GenerateJobProject(ctx, summary))
	if !p.emit(ctx, out, Event{Step: StepMajorProjectGenerated, Data: major}) {
		return
	}
	mini := p.gen.GenerateMiniProjects(ctx, summary)
	if !p.emit(ctx, out, Event{Step: StepMiniProjectsGenerated, Data: mini}) {
		return
	}

	// Stage 8: done
	p.emit(ctx, out, Event{Step: StepComplete, Message: "Analysis complete!"})
}

func (p *Pipeline) fail(ctx context.Context, out chan<- Event, msg string, err error) {
	slog.Error("analysis pipeline halted", "reason", msg, "error", err)
	p.emit(ctx, out, Event{Err: msg})
}

func (p *Pipeline) emit(ctx context.Context, out chan<- Event, ev Event) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
