package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aumai/edumentor/internal/assess"
	"github.com/aumai/edumentor/internal/catalog"
	"github.com/aumai/edumentor/internal/learner"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSubjects(w http.ResponseWriter, r *http.Request) {
	type subjectCount struct {
		Subject string `json:"subject"`
		Units   int    `json:"units"`
	}
	var out []subjectCount
	for _, subject := range s.lib.AllSubjects() {
		out = append(out, subjectCount{
			Subject: subject,
			Units:   len(s.lib.Search(subject, catalog.SearchFilter{})),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSearchContent(w http.ResponseWriter, r *http.Request) {
	subject := r.URL.Query().Get("subject")
	if subject == "" {
		writeJSON(w, http.StatusOK, s.lib.AllContent())
		return
	}

	filter := catalog.SearchFilter{
		Difficulty: catalog.Difficulty(r.URL.Query().Get("difficulty")),
	}
	if filter.Difficulty != "" && !filter.Difficulty.Valid() {
		writeError(w, http.StatusBadRequest, "unknown difficulty %q", filter.Difficulty)
		return
	}
	if g := r.URL.Query().Get("grade"); g != "" {
		grade, err := strconv.Atoi(g)
		if err != nil || grade < 1 || grade > 12 {
			writeError(w, http.StatusBadRequest, "grade must be an integer in [1, 12]")
			return
		}
		filter.Grade = grade
	}

	results := s.lib.Search(subject, filter)
	if results == nil {
		results = []catalog.Content{}
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleAddContent(w http.ResponseWriter, r *http.Request) {
	var c catalog.Content
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "bad json: %v", err)
		return
	}
	if err := s.lib.Add(c); err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}
	s.log.Info("content added", "content_id", c.ContentID, "subject", c.Subject)
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleGeneratePath(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Learner json.RawMessage `json:"learner"`
		Subject string          `json:"subject"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json: %v", err)
		return
	}
	if len(req.Learner) == 0 || req.Subject == "" {
		writeError(w, http.StatusBadRequest, "learner and subject required")
		return
	}

	profile, err := learner.ParseProfile(req.Learner)
	if err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}

	path := s.generator.Generate(profile, req.Subject)
	s.log.Info("path generated",
		"learner_id", profile.LearnerID,
		"subject", req.Subject,
		"units", len(path.ContentSequence))
	writeJSON(w, http.StatusOK, path)
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LearnerID string          `json:"learner_id"`
		Subject   string          `json:"subject"`
		Answers   json.RawMessage `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json: %v", err)
		return
	}
	if req.LearnerID == "" || req.Subject == "" {
		writeError(w, http.StatusBadRequest, "learner_id and subject required")
		return
	}

	// Absent or null answers score as an empty submission.
	var answers []assess.Answer
	if len(req.Answers) > 0 && string(req.Answers) != "null" {
		var err error
		answers, err = assess.ParseAnswers(req.Answers)
		if err != nil {
			writeError(w, http.StatusBadRequest, "%v", err)
			return
		}
	}

	result := s.engine.Evaluate(req.LearnerID, req.Subject, answers)
	s.log.Info("assessment evaluated",
		"learner_id", req.LearnerID,
		"subject", req.Subject,
		"score", result.Score)
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, map[string]string{"error": fmt.Sprintf(format, args...)})
}
