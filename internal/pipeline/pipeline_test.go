package pipeline

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/MohanKrishnaTeja/jobAnalyzer/internal/gen"
	"github.com/MohanKrishnaTeja/jobAnalyzer/internal/jobs"
	"github.com/MohanKrishnaTeja/jobAnalyzer/pkg/types"
)

type fakeGen struct {
	skills       []string
	skillsErr    error
	roles        []string
	rolesErr     error
	summary      string
	summaryErr   error
	marketSkills []string
	marketErr    error
	majorProject string
	miniProjects string

	summarizedWith []string
}

func (f *fakeGen) ExtractSkills(context.Context, string) ([]string, error) {
	return f.skills, f.skillsErr
}

func (f *fakeGen) ExtractSkillsFromSummary(context.Context, string) ([]string, error) {
	return f.marketSkills, f.marketErr
}

func (f *fakeGen) IdentifyRoles(context.Context, []string) ([]string, error) {
	return f.roles, f.rolesErr
}

func (f *fakeGen) SummarizeJobs(_ context.Context, descriptions []string) (string, error) {
	f.summarizedWith = descriptions
	return f.summary, f.summaryErr
}

func (f *fakeGen) GenerateJobProject(context.Context, string) string { return f.majorProject }

func (f *fakeGen) GenerateMiniProjects(context.Context, string) string { return f.miniProjects }

type fakeSearch struct {
	collection jobs.Collection
	err        error
	roles      []string
}

func (f *fakeSearch) SearchAll(_ context.Context, roles []string, onRole func(string)) (jobs.Collection, error) {
	f.roles = roles
	for _, r := range roles {
		if onRole != nil {
			onRole(r)
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.collection, nil
}

func happyGen() *fakeGen {
	return &fakeGen{
		skills:       []string{"Python", "SQL"},
		roles:        []string{"Data Analyst"},
		summary:      "market summary",
		marketSkills: []string{"SQL", "Tableau"},
		majorProject: "| Project Title | X |\n|---|---|\n| Foo | Bar |",
		miniProjects: "1. Mini project list",
	}
}

func happySearch() *fakeSearch {
	return &fakeSearch{collection: jobs.Collection{
		{Title: "Analyst", Company: "Acme", Location: "Remote", Description: "desc"},
	}}
}

func collect(t *testing.T, p *Pipeline, text string) []Event {
	t.Helper()
	var events []Event
	for ev := range p.Run(context.Background(), text) {
		events = append(events, ev)
	}
	return events
}

func steps(events []Event) []string {
	out := make([]string, 0, len(events))
	for _, ev := range events {
		if ev.Err != "" {
			out = append(out, "error")
			continue
		}
		out = append(out, ev.Step)
	}
	return out
}

func TestRunFullSequence(t *testing.T) {
	g := happyGen()
	s := happySearch()
	events := collect(t, New(g, s), "Python, SQL")

	want := []string{
		StepExtractingSkills,
		StepSkillsExtracted,
		StepIdentifyingRoles,
		StepRolesIdentified,
		StepFetchingJobs,
		StepFetchingJobs, // one per role
		StepJobsFetched,
		StepGeneratingSummary,
		StepSummaryGenerated,
		StepAnalyzingGaps,
		StepGapsAnalyzed,
		StepGeneratingProjects,
		StepMajorProjectGenerated,
		StepMiniProjectsGenerated,
		StepComplete,
	}
	if got := steps(events); !reflect.DeepEqual(got, want) {
		t.Errorf("step sequence = %v, want %v", got, want)
	}

	if !reflect.DeepEqual(s.roles, []string{"Data Analyst"}) {
		t.Errorf("search received roles %v", s.roles)
	}
	if !reflect.DeepEqual(g.summarizedWith, []string{"desc"}) {
		t.Errorf("summary built from %v, want listing descriptions", g.summarizedWith)
	}

	last := events[len(events)-1]
	if last.Message != "Analysis complete!" || last.Data != nil {
		t.Errorf("complete event = %+v, want message-only", last)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	first := steps(collect(t, New(happyGen(), happySearch()), "Python, SQL"))
	second := steps(collect(t, New(happyGen(), happySearch()), "Python, SQL"))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different sequences: %v vs %v", first, second)
	}
}

func TestRunPerRoleMessages(t *testing.T) {
	g := happyGen()
	g.roles = []string{"Data Analyst", "Data Engineer"}
	events := collect(t, New(g, happySearch()), "text")

	var roleMessages []string
	for _, ev := range events {
		if ev.Step == StepFetchingJobs && strings.HasPrefix(ev.Message, "Searching for ") {
			roleMessages = append(roleMessages, ev.Message)
		}
	}
	want := []string{
		"Searching for Data Analyst positions...",
		"Searching for Data Engineer positions...",
	}
	if !reflect.DeepEqual(roleMessages, want) {
		t.Errorf("per-role messages = %v, want %v", roleMessages, want)
	}
}

func TestRunEmptySkillsHaltsImmediately(t *testing.T) {
	g := happyGen()
	g.skillsErr = gen.ErrEmpty
	events := collect(t, New(g, happySearch()), "text")

	want := []string{StepExtractingSkills, "error"}
	if got := steps(events); !reflect.DeepEqual(got, want) {
		t.Errorf("steps = %v, want %v (nothing after the error)", got, want)
	}
	if events[1].Err != "Could not extract skills from curriculum" {
		t.Errorf("error = %q", events[1].Err)
	}
}

func TestRunEmptyRolesHalts(t *testing.T) {
	g := happyGen()
	g.rolesErr = gen.ErrEmpty
	events := collect(t, New(g, happySearch()), "text")

	want := []string{StepExtractingSkills, StepSkillsExtracted, StepIdentifyingRoles, "error"}
	if got := steps(events); !reflect.DeepEqual(got, want) {
		t.Errorf("steps = %v, want %v", got, want)
	}
	if events[3].Err != "Could not identify relevant job roles" {
		t.Errorf("error = %q", events[3].Err)
	}
}

func TestRunNoJobsFound(t *testing.T) {
	s := &fakeSearch{err: jobs.ErrNoJobsFound}
	events := collect(t, New(happyGen(), s), "text")

	last := events[len(events)-1]
	if last.Err != "No jobs found" {
		t.Errorf("last event = %+v, want the no-jobs error", last)
	}
	for _, ev := range events {
		if ev.Step == StepJobsFetched {
			t.Error("jobs_fetched must not follow an empty aggregation")
		}
	}
}

func TestRunMajorProjectConverted(t *testing.T) {
	events := collect(t, New(happyGen(), happySearch()), "text")

	for _, ev := range events {
		if ev.Step != StepMajorProjectGenerated {
			continue
		}
		data, ok := ev.Data.(string)
		if !ok {
			t.Fatalf("major project data is %T, want string", ev.Data)
		}
		if data != "**Project 1: Foo**\n- **X:** Bar\n" {
			t.Errorf("major project = %q, want point-formatted table", data)
		}
		return
	}
	t.Fatal("major_project_generated event missing")
}

func TestRunGapsPayload(t *testing.T) {
	events := collect(t, New(happyGen(), happySearch()), "text")

	for _, ev := range events {
		if ev.Step != StepGapsAnalyzed {
			continue
		}
		gaps, ok := ev.Data.(types.GapAnalysis)
		if !ok {
			t.Fatalf("gaps data is %T", ev.Data)
		}
		// Python/SQL curriculum against SQL+Tableau market leaves Tableau.
		if !reflect.DeepEqual(gaps.MissingSkills, []string{"Tableau"}) {
			t.Errorf("missing skills = %v", gaps.MissingSkills)
		}
		if !reflect.DeepEqual(gaps.JobMarketSkills, []string{"SQL", "Tableau"}) {
			t.Errorf("market skills = %v", gaps.JobMarketSkills)
		}
		return
	}
	t.Fatal("gaps_analyzed event missing")
}

func TestRunTransportErrorSurfacesOnce(t *testing.T) {
	s := &fakeSearch{err: errors.New("searching \"A\": connection refused")}
	events := collect(t, New(happyGen(), s), "text")

	var errCount int
	for _, ev := range events {
		if ev.Err != "" {
			errCount++
		}
	}
	if errCount != 1 {
		t.Errorf("error events = %d, want exactly 1", errCount)
	}
	if last := events[len(events)-1]; last.Err == "" {
		t.Error("stream must end with the error event")
	}
}

func TestRunCancelledContextStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(happyGen(), happySearch())
	ch := p.Run(ctx, "text")

	var events []Event
	for ev := range ch {
		events = append(events, ev)
	}
	if len(events) != 0 {
		t.Errorf("got %d events after cancellation, want none", len(events))
	}
}
