package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HammerMeetNail/syncin/internal/models"
	"github.com/HammerMeetNail/syncin/internal/services"
	"github.com/HammerMeetNail/syncin/internal/testutil"
)

func newRealDiscoverHandler() *DiscoverHandler {
	return NewDiscoverHandler(services.NewCatalogService(), services.NewEvaluatorService())
}

func TestDiscoverHandler_Tests(t *testing.T) {
	handler := newRealDiscoverHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/discover/tests", nil)
	rr := httptest.NewRecorder()

	handler.Tests(rr, req)

	testutil.AssertStatusCode(t, rr, http.StatusOK)

	var tests []models.DiscoverTest
	if err := json.Unmarshal(rr.Body.Bytes(), &tests); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	want := []string{"personality", "interests", "strengths", "aptitude", "prefs"}
	if len(tests) != len(want) {
		t.Fatalf("expected %d tests, got %d", len(want), len(tests))
	}
	for i, id := range want {
		if tests[i].ID != id {
			t.Errorf("test %d: expected id %q, got %q", i, id, tests[i].ID)
		}
	}
	if tests[1].Questions[0].Type != models.QuestionMulti {
		t.Errorf("expected interests question to be multi, got %q", tests[1].Questions[0].Type)
	}
}

func TestDiscoverHandler_Evaluate(t *testing.T) {
	handler := newRealDiscoverHandler()

	req := testutil.NewTestRequest(http.MethodPost, "/api/discover/evaluate",
		strings.NewReader(`{"answers":{"i1":["AI/Data","Apps/Web"],"p1":"Curious hacker","s1":"Logic"}}`))
	rr := httptest.NewRecorder()

	handler.Evaluate(rr, req)

	testutil.AssertStatusCode(t, rr, http.StatusOK)

	var result models.EvaluationResult
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	wantBest := []string{"Software Developer", "Data Scientist", "Finance Analyst"}
	for i, career := range wantBest {
		if result.BestFitCareers[i] != career {
			t.Errorf("best fit %d: expected %q, got %q", i, career, result.BestFitCareers[i])
		}
	}
	wantAvoid := []string{"Content Strategist", "Doctor"}
	for i, career := range wantAvoid {
		if result.CareersToAvoid[i] != career {
			t.Errorf("avoid %d: expected %q, got %q", i, career, result.CareersToAvoid[i])
		}
	}

	keys := result.CoursesToStartNow.Keys()
	if strings.Join(keys, "|") != strings.Join(wantBest, "|") {
		t.Errorf("expected course keys %v, got %v", wantBest, keys)
	}
}

func TestDiscoverHandler_Evaluate_CourseKeyOrderOnWire(t *testing.T) {
	handler := newRealDiscoverHandler()

	req := testutil.NewTestRequest(http.MethodPost, "/api/discover/evaluate",
		strings.NewReader(`{"answers":{"i1":["Medicine"],"s1":"Empathy"}}`))
	rr := httptest.NewRecorder()

	handler.Evaluate(rr, req)

	testutil.AssertStatusCode(t, rr, http.StatusOK)

	body := rr.Body.String()
	doctor := strings.Index(body, `"Doctor":`)
	designer := strings.Index(body, `"Product Designer":`)
	developer := strings.Index(body, `"Software Developer":`)
	if doctor < 0 || designer < 0 || developer < 0 {
		t.Fatalf("expected all three best-fit careers in courses, got %s", body)
	}
	if !(doctor < designer && designer < developer) {
		t.Errorf("courses_to_start_now keys out of rank order: %s", body)
	}
}

func TestDiscoverHandler_Evaluate_EmptyAnswers(t *testing.T) {
	handler := newRealDiscoverHandler()

	req := testutil.NewTestRequest(http.MethodPost, "/api/discover/evaluate", strings.NewReader(`{"answers":{}}`))
	rr := httptest.NewRecorder()

	handler.Evaluate(rr, req)

	testutil.AssertStatusCode(t, rr, http.StatusOK)

	var result models.EvaluationResult
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if strings.Join(result.BestFitCareers, "|") != "Software Developer|Data Scientist|Product Designer" {
		t.Errorf("unexpected best fit for empty answers: %v", result.BestFitCareers)
	}
	if strings.Join(result.CareersToAvoid, "|") != "Content Strategist|Doctor" {
		t.Errorf("unexpected avoid list for empty answers: %v", result.CareersToAvoid)
	}
	if result.AskSalaryPrompt == "" || result.AskFullRoadmapPrompt == "" || result.AskCounselorPrompt == "" {
		t.Error("expected prompts to be populated")
	}
}

func TestDiscoverHandler_Evaluate_PassesAnswers(t *testing.T) {
	var got models.AnswerSet
	handler := NewDiscoverHandler(&mockCatalogService{}, &mockEvaluatorService{
		EvaluateFunc: func(answers models.AnswerSet) *models.EvaluationResult {
			got = answers
			return &models.EvaluationResult{}
		},
	})

	req := testutil.NewTestRequest(http.MethodPost, "/api/discover/evaluate",
		strings.NewReader(`{"answers":{"p1":"Calm planner","i1":["Design"],"a1":16,"w1":null}}`))
	rr := httptest.NewRecorder()

	handler.Evaluate(rr, req)

	testutil.AssertStatusCode(t, rr, http.StatusOK)
	if got.Get("p1").Text() != "Calm planner" {
		t.Errorf("expected p1 text, got %q", got.Get("p1").Text())
	}
	if got.Get("i1").Kind() != models.AnswerList {
		t.Errorf("expected i1 to decode as a list, got %v", got.Get("i1").Kind())
	}
	if got.Get("a1").Kind() != models.AnswerNumber {
		t.Errorf("expected a1 to decode as a number, got %v", got.Get("a1").Kind())
	}
	if got.Get("w1").Kind() != models.AnswerAbsent {
		t.Errorf("expected null w1 to be absent, got %v", got.Get("w1").Kind())
	}
}

func TestDiscoverHandler_Evaluate_InvalidBodies(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed json", `{"answers":`, http.StatusBadRequest},
		{"missing answers", `{}`, http.StatusUnprocessableEntity},
		{"answers not an object", `{"answers":["Logic"]}`, http.StatusUnprocessableEntity},
		{"body not an object", `"answers"`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newRealDiscoverHandler()

			req := testutil.NewTestRequest(http.MethodPost, "/api/discover/evaluate", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.Evaluate(rr, req)

			testutil.AssertStatusCode(t, rr, tt.status)
		})
	}
}
