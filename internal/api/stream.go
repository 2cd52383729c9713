package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/MohanKrishnaTeja/jobAnalyzer/internal/pipeline"
	apierrors "github.com/MohanKrishnaTeja/jobAnalyzer/pkg/errors"
	"github.com/MohanKrishnaTeja/jobAnalyzer/pkg/logger"
)

// handleAnalysis serves the full analysis. GET streams progress as
// server-sent events; POST validates the input and acknowledges, clients
// follow up with GET.
func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		var request struct {
			CurriculumText string `json:"curriculum_text"`
		}
		if !decodeJSON(w, r, &request) {
			return
		}
		if request.CurriculumText == "" {
			requestID := logger.GetRequestID(r.Context())
			RespondWithError(w, apierrors.ErrBadRequest("curriculum_text is required").WithRequestID(requestID))
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Analysis started"})
		return
	}
	s.streamAnalysis(w, r)
}

func (s *Server) streamAnalysis(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		slog.Error("response writer does not support streaming")
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	// Proxies must not buffer the stream.
	w.Header().Set("X-Accel-Buffering", "no")

	curriculumText := r.URL.Query().Get("curriculum_text")
	if curriculumText == "" {
		writeEvent(w, flusher, pipeline.Event{Err: "curriculum_text is required"})
		return
	}

	requestID := logger.GetRequestID(r.Context())
	slog.Info("analysis stream opened", "request_id", requestID, "text_length", len(curriculumText))

	for ev := range s.stream.Run(r.Context(), curriculumText) {
		writeEvent(w, flusher, ev)
	}

	slog.Info("analysis stream closed", "request_id", requestID)
}

func writeEvent(w http.ResponseWriter, flusher http.Flusher, ev pipeline.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		slog.Error("failed to encode stream event", "err", err, "step", ev.Step)
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", payload)
	flusher.Flush()
}
