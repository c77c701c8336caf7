package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HammerMeetNail/syncin/internal/models"
)

func TestCatalogService_ListTests(t *testing.T) {
	tests := NewCatalogService().ListTests()

	require.Len(t, tests, 5)

	ids := make([]string, len(tests))
	for i, test := range tests {
		ids[i] = test.ID
	}
	assert.Equal(t, []string{"personality", "interests", "strengths", "aptitude", "prefs"}, ids)

	var questionIDs []string
	for _, test := range tests {
		for _, q := range test.Questions {
			questionIDs = append(questionIDs, q.ID)
			assert.NotEmpty(t, q.Options, "question %s has no options", q.ID)
		}
	}
	assert.Equal(t, []string{"p1", "p2", "i1", "s1", "a1", "w1", "w2"}, questionIDs)

	interests := tests[1].Questions[0]
	assert.Equal(t, models.QuestionMulti, interests.Type)
	assert.Equal(t, []string{"Apps/Web", "AI/Data", "Design", "Finance", "Marketing", "Medicine", "Content"}, interests.Options)
}

func TestCatalogService_ListTests_Idempotent(t *testing.T) {
	svc := NewCatalogService()
	assert.Equal(t, svc.ListTests(), svc.ListTests())
}

func TestCatalogService_ListTests_ReturnsCopy(t *testing.T) {
	svc := NewCatalogService()

	first := svc.ListTests()
	first[0].Title = "changed"
	first[0].Questions[0].Text = "changed"
	first[0].Questions[0].Options[0] = "changed"

	second := svc.ListTests()
	require.Len(t, second, 5)
	assert.Equal(t, "Personality Splash", second[0].Title)
	assert.Equal(t, "Pick your energy", second[0].Questions[0].Text)
	assert.Equal(t, "Calm planner", second[0].Questions[0].Options[0])
	assert.Equal(t, "interests", second[1].ID)
}

func TestCatalog_CoversEvaluatorRules(t *testing.T) {
	var interestOptions []string
	for _, test := range NewCatalogService().ListTests() {
		for _, q := range test.Questions {
			if q.ID == QuestionInterests {
				interestOptions = q.Options
			}
		}
	}

	for _, rule := range interestRules {
		found := false
		for _, opt := range interestOptions {
			if lower(opt) == rule.interest {
				found = true
			}
		}
		assert.True(t, found, "interest rule %q has no matching option", rule.interest)
	}
}
