package services

import (
	"sort"
	"strings"

	"github.com/HammerMeetNail/syncin/internal/models"
)

const (
	CareerSoftwareDeveloper = "Software Developer"
	CareerDataScientist     = "Data Scientist"
	CareerProductDesigner   = "Product Designer"
	CareerDigitalMarketer   = "Digital Marketer"
	CareerFinanceAnalyst    = "Finance Analyst"
	CareerContentStrategist = "Content Strategist"
	CareerDoctor            = "Doctor"
)

// Careers is the score table's insertion order. Ties in the ranking keep
// this order.
var Careers = []string{
	CareerSoftwareDeveloper,
	CareerDataScientist,
	CareerProductDesigner,
	CareerDigitalMarketer,
	CareerFinanceAnalyst,
	CareerContentStrategist,
	CareerDoctor,
}

const (
	bestFitCount = 3
	avoidCount   = 2

	interestWeight = 2
	personaWeight  = 1
	strengthWeight = 1
)

// interest option (lower-cased) -> career
var interestRules = []struct {
	interest string
	career   string
}{
	{"apps/web", CareerSoftwareDeveloper},
	{"ai/data", CareerDataScientist},
	{"design", CareerProductDesigner},
	{"marketing", CareerDigitalMarketer},
	{"finance", CareerFinanceAnalyst},
	{"content", CareerContentStrategist},
	{"medicine", CareerDoctor},
}

// Persona rules match by substring and can all fire for one persona.
var personaRules = []struct {
	keywords []string
	careers  []string
}{
	{[]string{"curious", "hacker"}, []string{CareerSoftwareDeveloper, CareerDataScientist}},
	{[]string{"aesthetic"}, []string{CareerProductDesigner}},
	{[]string{"people"}, []string{CareerDigitalMarketer}},
}

// Strength rules match the whole answer.
var strengthRules = []struct {
	strengths []string
	careers   []string
}{
	{[]string{"logic", "numbers"}, []string{CareerSoftwareDeveloper, CareerDataScientist, CareerFinanceAnalyst}},
	{[]string{"creativity", "storytelling"}, []string{CareerProductDesigner, CareerDigitalMarketer, CareerContentStrategist}},
	{[]string{"empathy"}, []string{CareerDoctor, CareerProductDesigner}},
}

const (
	salaryPrompt    = "Want to see salary ranges for these roles?"
	roadmapPrompt   = "Want a complete personalized roadmap?"
	counselorPrompt = "Prefer a real human to guide you? We got you."
)

// ExtractSignals normalises raw answers. Interests only count when i1 is a
// list; persona and strength take the stringified answer.
func ExtractSignals(answers models.AnswerSet) models.Signals {
	signals := models.Signals{Interests: make(map[string]struct{})}

	for _, interest := range answers.Get(QuestionInterests).List() {
		signals.Interests[strings.ToLower(interest)] = struct{}{}
	}
	signals.Persona = strings.ToLower(answers.Get(QuestionPersona).Text())
	signals.Strength = strings.ToLower(answers.Get(QuestionStrength).Text())

	return signals
}

// Score applies every rule to signals and returns the table in insertion
// order.
func Score(signals models.Signals) []models.ScoreEntry {
	scores := make(map[string]int, len(Careers))

	for _, rule := range interestRules {
		if signals.HasInterest(rule.interest) {
			scores[rule.career] += interestWeight
		}
	}

	for _, rule := range personaRules {
		if containsAny(signals.Persona, rule.keywords) {
			for _, career := range rule.careers {
				scores[career] += personaWeight
			}
		}
	}

	for _, rule := range strengthRules {
		if equalsAny(signals.Strength, rule.strengths) {
			for _, career := range rule.careers {
				scores[career] += strengthWeight
			}
		}
	}

	table := make([]models.ScoreEntry, len(Careers))
	for i, career := range Careers {
		table[i] = models.ScoreEntry{Career: career, Score: scores[career]}
	}
	return table
}

// Rank scores signals and orders the careers by score, highest first.
func Rank(signals models.Signals) []models.ScoreEntry {
	ranked := Score(signals)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func equalsAny(s string, options []string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}

type EvaluatorService struct{}

func NewEvaluatorService() *EvaluatorService {
	return &EvaluatorService{}
}

// Evaluate turns quiz answers into career suggestions. Missing or oddly
// shaped answers simply contribute nothing.
func (s *EvaluatorService) Evaluate(answers models.AnswerSet) *models.EvaluationResult {
	ranked := Rank(ExtractSignals(answers))

	best := make([]string, 0, bestFitCount)
	for _, entry := range ranked[:bestFitCount] {
		best = append(best, entry.Career)
	}

	avoid := make([]string, 0, avoidCount)
	for _, entry := range ranked[len(ranked)-avoidCount:] {
		avoid = append(avoid, entry.Career)
	}

	result := &models.EvaluationResult{
		BestFitCareers:       best,
		CareersToAvoid:       avoid,
		AskSalaryPrompt:      salaryPrompt,
		AskFullRoadmapPrompt: roadmapPrompt,
		AskCounselorPrompt:   counselorPrompt,
	}
	for _, career := range best {
		result.CoursesToStartNow.Set(career, CourseSuggestions(career))
	}

	return result
}
