package handlers

import (
	"context"

	"github.com/HammerMeetNail/syncin/internal/models"
)

type mockRoadmapService struct {
	GenerateFunc func(query models.CareerQuery) *models.SuggestionBundle
}

func (m *mockRoadmapService) Generate(query models.CareerQuery) *models.SuggestionBundle {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(query)
	}
	return &models.SuggestionBundle{Career: query.Career, Meta: query}
}

type mockCatalogService struct {
	ListTestsFunc func() []models.DiscoverTest
}

func (m *mockCatalogService) ListTests() []models.DiscoverTest {
	if m.ListTestsFunc != nil {
		return m.ListTestsFunc()
	}
	return nil
}

type mockEvaluatorService struct {
	EvaluateFunc func(answers models.AnswerSet) *models.EvaluationResult
}

func (m *mockEvaluatorService) Evaluate(answers models.AnswerSet) *models.EvaluationResult {
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(answers)
	}
	return &models.EvaluationResult{}
}

type mockDiagnosticService struct {
	ReportFunc func(ctx context.Context) models.DiagnosticReport
}

func (m *mockDiagnosticService) Report(ctx context.Context) models.DiagnosticReport {
	if m.ReportFunc != nil {
		return m.ReportFunc(ctx)
	}
	return models.DiagnosticReport{}
}
