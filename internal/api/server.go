// Package api exposes the analysis pipeline over HTTP: a streaming
// progress endpoint plus point endpoints for each stage.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/MohanKrishnaTeja/jobAnalyzer/internal/jobs"
	"github.com/MohanKrishnaTeja/jobAnalyzer/internal/pipeline"
)

// GenService is everything the point endpoints need from the generative
// adapter. The pipeline carries its own narrower view.
type GenService interface {
	Available() bool
	ExtractSkills(ctx context.Context, text string) ([]string, error)
	ExtractSkillsFromSummary(ctx context.Context, summary string) ([]string, error)
	IdentifyRoles(ctx context.Context, skills []string) ([]string, error)
	SummarizeJobs(ctx context.Context, descriptions []string) (string, error)
	GenerateProject(ctx context.Context, skill string) string
	GenerateMajorProject(ctx context.Context, skills []string) string
	GenerateJobProject(ctx context.Context, summary string) string
	GenerateMiniProjects(ctx context.Context, summary string) string
}

// JobService mirrors the aggregator surface the handlers use.
type JobService interface {
	SearchAll(ctx context.Context, roles []string, onRole func(string)) (jobs.Collection, error)
}

// Streamer produces the progress event stream for one analysis run.
type Streamer interface {
	Run(ctx context.Context, curriculumText string) <-chan pipeline.Event
}

type Server struct {
	port   int
	gen    GenService
	jobs   JobService
	stream Streamer
}

func NewServer(port int, gen GenService, jobs JobService, stream Streamer) *Server {
	return &Server{
		port:   port,
		gen:    gen,
		jobs:   jobs,
		stream: stream,
	}
}

func chain(h http.HandlerFunc, methods ...string) http.HandlerFunc {
	return RequestID(Logger(Recover(CORS(MethodChecker(methods...)(h)))))
}

// Handler builds the route table. Split from Start so tests can mount it
// on httptest servers.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analysis/complete", chain(s.handleAnalysis, http.MethodGet, http.MethodPost))
	mux.HandleFunc("/api/curriculum/analyze", chain(s.handleCurriculum, http.MethodPost))
	mux.HandleFunc("/api/jobs/analyze", chain(s.handleJobs, http.MethodPost))
	mux.HandleFunc("/api/projects/generate", chain(s.handleProjects, http.MethodPost))
	mux.HandleFunc("/api/skills/compare", chain(s.handleCompare, http.MethodPost))
	return mux
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("Starting API server", "port", s.port)
	return http.ListenAndServe(addr, s.Handler())
}
