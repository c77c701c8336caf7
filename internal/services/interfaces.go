package services

import (
	"context"

	"github.com/HammerMeetNail/syncin/internal/models"
)

// RoadmapServiceInterface defines the contract for roadmap generation.
type RoadmapServiceInterface interface {
	Generate(query models.CareerQuery) *models.SuggestionBundle
}

// CatalogServiceInterface defines the contract for the discovery quiz bank.
type CatalogServiceInterface interface {
	ListTests() []models.DiscoverTest
}

// EvaluatorServiceInterface defines the contract for scoring quiz answers.
type EvaluatorServiceInterface interface {
	Evaluate(answers models.AnswerSet) *models.EvaluationResult
}

// DiagnosticServiceInterface defines the contract for the /test report.
type DiagnosticServiceInterface interface {
	Report(ctx context.Context) models.DiagnosticReport
}

var (
	_ RoadmapServiceInterface    = (*RoadmapService)(nil)
	_ CatalogServiceInterface    = (*CatalogService)(nil)
	_ EvaluatorServiceInterface  = (*EvaluatorService)(nil)
	_ DiagnosticServiceInterface = (*DiagnosticService)(nil)
)
