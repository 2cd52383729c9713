package api

import (
	"encoding/json"
	"errors"
	"net/http"

	apierrors "github.com/MohanKrishnaTeja/jobAnalyzer/pkg/errors"
	"github.com/MohanKrishnaTeja/jobAnalyzer/pkg/logger"
	"github.com/MohanKrishnaTeja/jobAnalyzer/pkg/types"

	"github.com/MohanKrishnaTeja/jobAnalyzer/internal/format"
	"github.com/MohanKrishnaTeja/jobAnalyzer/internal/gen"
	"github.com/MohanKrishnaTeja/jobAnalyzer/internal/jobs"
)

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		requestID := logger.GetRequestID(r.Context())
		RespondWithError(w, apierrors.ErrBadRequest("Invalid request body").WithRequestID(requestID))
		return false
	}
	return true
}

func (s *Server) respondGenError(w http.ResponseWriter, r *http.Request, err error, detail string) {
	requestID := logger.GetRequestID(r.Context())
	if errors.Is(err, gen.ErrUnavailable) {
		RespondWithError(w, apierrors.ErrServiceUnavailable("Generative backend unavailable").WithRequestID(requestID))
		return
	}
	RespondWithError(w, apierrors.ErrGenProcessing(detail).WithRequestID(requestID))
}

// handleCurriculum extracts a skill list from raw curriculum text.
func (s *Server) handleCurriculum(w http.ResponseWriter, r *http.Request) {
	var request struct {
		CurriculumText string `json:"curriculum_text"`
	}
	if !decodeJSON(w, r, &request) {
		return
	}
	if request.CurriculumText == "" {
		requestID := logger.GetRequestID(r.Context())
		RespondWithError(w, apierrors.ErrBadRequest("No curriculum text provided").WithRequestID(requestID))
		return
	}

	skills, err := s.gen.ExtractSkills(r.Context(), request.CurriculumText)
	if err != nil {
		s.respondGenError(w, r, err, "Failed to extract skills from curriculum")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]any{"extracted_skills": skills})
}

// handleJobs identifies roles for a skill list, searches the boards for
// each and summarizes what came back.
func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Skills []string `json:"skills"`
	}
	if !decodeJSON(w, r, &request) {
		return
	}
	requestID := logger.GetRequestID(r.Context())
	if len(request.Skills) == 0 {
		RespondWithError(w, apierrors.ErrBadRequest("No skills provided").WithRequestID(requestID))
		return
	}

	roles, err := s.gen.IdentifyRoles(r.Context(), request.Skills)
	if err != nil {
		if errors.Is(err, gen.ErrEmpty) {
			RespondWithError(w, apierrors.ErrBadRequest("Could not identify job roles from skills").WithRequestID(requestID))
			return
		}
		s.respondGenError(w, r, err, "Failed to identify job roles")
		return
	}

	listings, err := s.jobs.SearchAll(r.Context(), roles, nil)
	if err != nil {
		if errors.Is(err, jobs.ErrNoJobsFound) {
			RespondWithError(w, apierrors.ErrNotFound("No jobs found").WithRequestID(requestID))
			return
		}
		RespondWithError(w, apierrors.ErrInternalServer("Job search failed").WithRequestID(requestID))
		return
	}

	summary, err := s.gen.SummarizeJobs(r.Context(), listings.Descriptions(summaryDescriptions))
	if err != nil {
		s.respondGenError(w, r, err, "Failed to summarize job listings")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"identified_roles": roles,
		"jobs":             []types.JobListing(listings),
		"job_summary":      summary,
	})
}

// How many descriptions the point endpoints feed into the summary. Matches
// the streaming pipeline.
const summaryDescriptions = 12

// handleProjects generates project recommendations. skills is required
// either way; a job summary switches to one market-aligned major project
// plus a mini-project list, otherwise it is one project per skill plus a
// combined major project.
func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	var request struct {
		JobSummary string   `json:"job_summary"`
		Skills     []string `json:"skills"`
	}
	if !decodeJSON(w, r, &request) {
		return
	}
	requestID := logger.GetRequestID(r.Context())

	if len(request.Skills) == 0 {
		RespondWithError(w, apierrors.ErrBadRequest("No skills provided").WithRequestID(requestID))
		return
	}

	if request.JobSummary != "" {
		major := format.TableToPoints(s.gen.GenerateJobProject(r.Context(), request.JobSummary))
		mini := s.gen.GenerateMiniProjects(r.Context(), request.JobSummary)
		RespondWithJSON(w, http.StatusOK, map[string]any{
			"major_project": major,
			"mini_projects": mini,
		})
		return
	}

	perSkill := make(map[string]string, len(request.Skills))
	for _, skill := range request.Skills {
		perSkill[skill] = s.gen.GenerateProject(r.Context(), skill)
	}
	major := format.TableToPoints(s.gen.GenerateMajorProject(r.Context(), request.Skills))

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"major_project": major,
		"mini_projects": perSkill,
	})
}

// handleCompare diffs curriculum skills against the skills extracted from
// a job-market summary.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var request struct {
		CurriculumSkills []string `json:"curriculum_skills"`
		JobSummary       string   `json:"job_summary"`
	}
	if !decodeJSON(w, r, &request) {
		return
	}
	requestID := logger.GetRequestID(r.Context())
	if request.JobSummary == "" {
		RespondWithError(w, apierrors.ErrBadRequest("No job summary provided").WithRequestID(requestID))
		return
	}

	marketSkills, err := s.gen.ExtractSkillsFromSummary(r.Context(), request.JobSummary)
	if err != nil {
		if errors.Is(err, gen.ErrEmpty) {
			RespondWithError(w, apierrors.ErrBadRequest("No skills found in job summary").WithRequestID(requestID))
			return
		}
		s.respondGenError(w, r, err, "Failed to extract skills from job summary")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"missing_skills":              gen.CompareSkills(request.CurriculumSkills, marketSkills),
		"extracted_job_market_skills": marketSkills,
	})
}
