package services

import "github.com/HammerMeetNail/syncin/internal/models"

// Question ids the evaluator reads.
const (
	QuestionPersona   = "p1"
	QuestionInterests = "i1"
	QuestionStrength  = "s1"
)

var discoverTests = []models.DiscoverTest{
	{
		ID:    "personality",
		Title: "Personality Splash",
		Vibe:  "Are you the strategist, the builder, or the vibe curator?",
		Questions: []models.QuizQuestion{
			{ID: QuestionPersona, Text: "Pick your energy", Type: models.QuestionSingle, Options: []string{"Calm planner", "Curious hacker", "People magnet", "Aesthetic nerd"}},
			{ID: "p2", Text: "You’re happiest when…", Type: models.QuestionSingle, Options: []string{"Solving puzzles", "Designing visuals", "Leading a team", "Analysing trends"}},
		},
	},
	{
		ID:    "interests",
		Title: "Interest Finder",
		Vibe:  "What topics make you lose track of time?",
		Questions: []models.QuizQuestion{
			{ID: QuestionInterests, Text: "Choose 2 that excite you", Type: models.QuestionMulti, Options: []string{"Apps/Web", "AI/Data", "Design", "Finance", "Marketing", "Medicine", "Content"}},
		},
	},
	{
		ID:    "strengths",
		Title: "Strengths Map",
		Vibe:  "Your natural power-ups",
		Questions: []models.QuizQuestion{
			{ID: QuestionStrength, Text: "Your top strength", Type: models.QuestionSingle, Options: []string{"Logic", "Creativity", "Empathy", "Numbers", "Storytelling"}},
		},
	},
	{
		ID:    "aptitude",
		Title: "Aptitude Mini-Game",
		Vibe:  "A tiny brain teaser",
		Questions: []models.QuizQuestion{
			{ID: "a1", Text: "Complete the pattern: 2, 4, 8, ?", Type: models.QuestionSingle, Options: []string{"12", "14", "16", "18"}},
		},
	},
	{
		ID:    "prefs",
		Title: "Work Vibes",
		Vibe:  "How do you like working?",
		Questions: []models.QuizQuestion{
			{ID: "w1", Text: "Ideal setting", Type: models.QuestionSingle, Options: []string{"Remote", "Hybrid", "Office", "Outdoor"}},
			{ID: "w2", Text: "You prefer", Type: models.QuestionSingle, Options: []string{"Stable salary", "High-risk high-reward", "Impact + learning"}},
		},
	},
}

type CatalogService struct{}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// ListTests returns the discovery quizzes in display order. The result is a
// copy; callers may modify it freely.
func (s *CatalogService) ListTests() []models.DiscoverTest {
	out := make([]models.DiscoverTest, len(discoverTests))
	for i, test := range discoverTests {
		questions := make([]models.QuizQuestion, len(test.Questions))
		for j, q := range test.Questions {
			q.Options = cloneStrings(q.Options)
			questions[j] = q
		}
		test.Questions = questions
		out[i] = test
	}
	return out
}
