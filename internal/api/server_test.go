package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aumai/edumentor/internal/assess"
	"github.com/aumai/edumentor/internal/catalog"
	"github.com/aumai/edumentor/internal/pathgen"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := NewServer(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, url, body string, out any) int {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealthz(t *testing.T) {
	srv := testServer(t)

	var body map[string]string
	status := getJSON(t, srv.URL+"/healthz", &body)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", body["status"])
}

func TestSubjects(t *testing.T) {
	srv := testServer(t)

	var subjects []struct {
		Subject string `json:"subject"`
		Units   int    `json:"units"`
	}
	status := getJSON(t, srv.URL+"/subjects", &subjects)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, subjects, 5)

	counts := map[string]int{}
	for _, s := range subjects {
		counts[s.Subject] = s.Units
	}
	require.Equal(t, 10, counts["math"])
	require.Equal(t, 6, counts["science"])
	require.Equal(t, 3, counts["english"])
}

func TestSearchContent(t *testing.T) {
	srv := testServer(t)

	var all []catalog.Content
	status := getJSON(t, srv.URL+"/content", &all)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, all, 25)

	var math []catalog.Content
	status = getJSON(t, srv.URL+"/content?subject=math&difficulty=beginner", &math)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, math)
	for _, c := range math {
		require.Equal(t, "math", c.Subject)
		require.Equal(t, catalog.DifficultyBeginner, c.Difficulty)
	}

	var none []catalog.Content
	status = getJSON(t, srv.URL+"/content?subject=astronomy", &none)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, none)
}

func TestSearchContentRejectsBadParams(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name  string
		query string
	}{
		{"unknown difficulty", "?subject=math&difficulty=impossible"},
		{"grade not a number", "?subject=math&grade=seven"},
		{"grade out of range", "?subject=math&grade=13"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errBody map[string]string
			status := getJSON(t, srv.URL+"/content"+tt.query, &errBody)
			require.Equal(t, http.StatusBadRequest, status)
			require.NotEmpty(t, errBody["error"])
		})
	}
}

func TestAddContent(t *testing.T) {
	srv := testServer(t)

	body := `{
		"content_id": "math-custom-100",
		"subject": "math",
		"topic": "Probability",
		"difficulty": "advanced",
		"content_type": "text",
		"content": "Introduction to probability and chance.",
		"ncf_alignment": "NCF 2023 - Mathematics",
		"grade_level": 8
	}`
	var created catalog.Content
	status := postJSON(t, srv.URL+"/content", body, &created)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "math-custom-100", created.ContentID)

	var results []catalog.Content
	status = getJSON(t, srv.URL+"/content?subject=math&difficulty=advanced&grade=8", &results)
	require.Equal(t, http.StatusOK, status)
	found := false
	for _, c := range results {
		if c.ContentID == "math-custom-100" {
			found = true
		}
	}
	require.True(t, found)
}

func TestAddContentRejectsInvalid(t *testing.T) {
	srv := testServer(t)

	var errBody map[string]string
	status := postJSON(t, srv.URL+"/content", `{"subject": "math"}`, &errBody)
	require.Equal(t, http.StatusBadRequest, status)
	require.NotEmpty(t, errBody["error"])
}

func TestGeneratePath(t *testing.T) {
	srv := testServer(t)

	body := `{
		"subject": "math",
		"learner": {
			"learner_id": "stu-001",
			"name": "Asha",
			"age": 12,
			"grade": 7,
			"weaknesses": ["math"],
			"learning_style": "visual"
		}
	}`
	var path pathgen.Path
	status := postJSON(t, srv.URL+"/paths", body, &path)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "stu-001", path.Learner.LearnerID)
	require.NotEmpty(t, path.ContentSequence)
	require.Equal(t, "math-007", path.ContentSequence[0].ContentID)
	require.Zero(t, path.ProgressPct)
}

func TestGeneratePathRejectsBadRequests(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing learner", `{"subject": "math"}`},
		{"missing subject", `{"learner": {"learner_id": "x", "name": "X", "age": 10, "grade": 5}}`},
		{"invalid profile", `{"subject": "math", "learner": {"learner_id": "x", "name": "X", "age": 99, "grade": 5}}`},
		{"bad json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errBody map[string]string
			status := postJSON(t, srv.URL+"/paths", tt.body, &errBody)
			require.Equal(t, http.StatusBadRequest, status)
			require.NotEmpty(t, errBody["error"])
		})
	}
}

func TestEvaluate(t *testing.T) {
	srv := testServer(t)

	body := `{
		"learner_id": "stu-001",
		"subject": "math",
		"answers": [
			{"question_id": "q1", "correct": true, "topic": "Fractions"},
			{"question_id": "q2", "correct": true, "topic": "Decimals"}
		]
	}`
	var result assess.Result
	status := postJSON(t, srv.URL+"/assessments", body, &result)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 100.0, result.Score)
	require.Equal(t, []string{assess.MsgExcellent}, result.AreasToImprove)
}

func TestEvaluateEmptyAnswers(t *testing.T) {
	srv := testServer(t)

	for _, body := range []string{
		`{"learner_id": "stu-001", "subject": "math"}`,
		`{"learner_id": "stu-001", "subject": "math", "answers": null}`,
		`{"learner_id": "stu-001", "subject": "math", "answers": []}`,
	} {
		var result assess.Result
		status := postJSON(t, srv.URL+"/assessments", body, &result)
		require.Equal(t, http.StatusOK, status)
		require.Zero(t, result.Score)
		require.Equal(t, []string{assess.MsgNoAnswers}, result.AreasToImprove)
	}
}

func TestEvaluateRejectsBadRequests(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing learner_id", `{"subject": "math", "answers": []}`},
		{"missing subject", `{"learner_id": "x", "answers": []}`},
		{"answers missing question_id", `{"learner_id": "x", "subject": "math", "answers": [{"correct": true}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errBody map[string]string
			status := postJSON(t, srv.URL+"/assessments", tt.body, &errBody)
			require.Equal(t, http.StatusBadRequest, status)
			require.NotEmpty(t, errBody["error"])
		})
	}
}
