package services

import (
	"strings"
	"unicode"

	"github.com/HammerMeetNail/syncin/internal/models"
)

// bucket is a named group of keywords matched by substring against a
// lower-cased career string.
type bucket struct {
	name     string
	keywords []string
}

func (b bucket) matches(lowered string) bool {
	for _, k := range b.keywords {
		if strings.Contains(lowered, k) {
			return true
		}
	}
	return false
}

// classify returns the first bucket (in slice order) matching career.
func classify(career string, buckets []bucket) (string, bool) {
	lowered := strings.ToLower(career)
	for _, b := range buckets {
		if b.matches(lowered) {
			return b.name, true
		}
	}
	return "", false
}

// Course catalog keys are single words and are checked in this order.
var courseBuckets = []bucket{
	{name: "software", keywords: []string{"software"}},
	{name: "data", keywords: []string{"data"}},
	{name: "design", keywords: []string{"design"}},
	{name: "marketing", keywords: []string{"marketing"}},
	{name: "finance", keywords: []string{"finance"}},
	{name: "medicine", keywords: []string{"medicine"}},
}

var courseCatalog = map[string][]models.CourseEntry{
	"software": {
		{Title: "CS50: Intro to Computer Science (Free)", URL: "https://cs50.harvard.edu/x/"},
		{Title: "Full-Stack Open (Free)", URL: "https://fullstackopen.com"},
		{Title: "The Odin Project (Free)", URL: "https://www.theodinproject.com"},
		{Title: "Frontend Masters Paths (Paid)", URL: "https://frontendmasters.com/learn/"},
	},
	"data": {
		{Title: "Kaggle Micro-Courses (Free)", URL: "https://www.kaggle.com/learn"},
		{Title: "Google Data Analytics (Coursera)", URL: "https://www.coursera.org/professional-certificates/google-data-analytics"},
		{Title: "fast.ai Practical Deep Learning (Free)", URL: "https://course.fast.ai"},
	},
	"design": {
		{Title: "DesignCourse UI/UX (YouTube)", URL: "https://www.youtube.com/@DesignCourse"},
		{Title: "Google UX Design (Coursera)", URL: "https://www.coursera.org/professional-certificates/google-ux-design"},
		{Title: "Figma Crash Course (Free)", URL: "https://www.youtube.com/watch?v=FTFaQWZBqQ8"},
	},
	"marketing": {
		{Title: "Meta Social Media Marketing (Coursera)", URL: "https://www.coursera.org/professional-certificates/meta-social-media-marketing"},
		{Title: "HubSpot Academy (Free)", URL: "https://academy.hubspot.com/"},
	},
	"finance": {
		{Title: "Corporate Finance Institute (Mixed)", URL: "https://courses.corporatefinanceinstitute.com/"},
		{Title: "Basics of Stock Market (Zerodha Varsity)", URL: "https://zerodha.com/varsity/"},
	},
	"medicine": {
		{Title: "NEET UG/PG Prep Resources", URL: "https://www.prepladder.com/"},
		{Title: "WHO Open Courses", URL: "https://openwho.org/"},
	},
}

var defaultCourses = []models.CourseEntry{
	{Title: "How to Plan Your Career (Free eBook)", URL: "https://www.coursera.org/articles/career-development"},
	{Title: "LinkedIn Learning Popular Courses", URL: "https://www.linkedin.com/learning/"},
}

// The tool classifier uses its own keyword sets, so a career string can land
// in different buckets for courses and for tools.
var toolBuckets = []bucket{
	{name: "software", keywords: []string{"software", "developer", "engineering"}},
	{name: "data", keywords: []string{"data", "ml", "ai"}},
	{name: "design", keywords: []string{"design", "ux"}},
	{name: "marketing", keywords: []string{"marketing", "growth"}},
}

var toolCatalog = map[string][]string{
	"software":  {"Git/GitHub", "VS Code", "Node.js", "React", "Postman", "Docker (basics)"},
	"data":      {"Python", "Pandas", "NumPy", "scikit-learn", "Jupyter", "SQL", "Tableau"},
	"design":    {"Figma", "Adobe XD", "Notion", "Miro", "Zeplin"},
	"marketing": {"Google Analytics", "Meta Ads", "Canva", "Notion", "Ahrefs/SEMrush"},
}

var defaultTools = []string{"Google Workspace", "Notion", "Canva", "Trello"}

var projectBuckets = []bucket{
	{name: "software", keywords: []string{"software", "developer"}},
	{name: "data", keywords: []string{"data"}},
	{name: "design", keywords: []string{"design"}},
	{name: "marketing", keywords: []string{"marketing"}},
}

var projectCatalog = map[string][]string{
	"software":  {"Build a personal website", "Clone a popular app", "Contribute to open-source", "Ship 3 micro-projects in 3 weeks"},
	"data":      {"Kaggle competitions", "Analyze public datasets (COVID, IPL)", "End-to-end ML pipeline", "Build a portfolio dashboard"},
	"design":    {"Redesign a popular app", "Create a design system", "Run 3 usability tests", "Publish case studies on Behance"},
	"marketing": {"Grow a niche Instagram page", "SEO case study for a local biz", "Email funnel experiment", "Run A/B ads with small budget"},
}

var defaultProjects = []string{"Document your learning on LinkedIn", "Volunteer for a student club", "Assist a startup for 1 month"}

var internshipBuckets = []bucket{
	{name: "software", keywords: []string{"software", "developer", "engineering"}},
	{name: "data", keywords: []string{"data"}},
	{name: "design", keywords: []string{"design"}},
	{name: "marketing", keywords: []string{"marketing"}},
}

var internshipCatalog = map[string][]string{
	"software":  {"SDE Intern at product startups", "Open-source fellowships", "Campus tech roles"},
	"data":      {"Data Analyst Intern", "ML Research Intern", "Business Intelligence Intern"},
	"design":    {"Product Design Intern", "UX Research Intern", "Visual Design Intern"},
	"marketing": {"Growth Intern", "Content/SEO Intern", "Performance Marketing Intern"},
}

var defaultInternships = []string{"Operations Intern", "Generalist Intern at early-stage startup"}

var certificationBuckets = []bucket{
	{name: "cloud", keywords: []string{"cloud", "devops"}},
	{name: "data", keywords: []string{"data"}},
	{name: "marketing", keywords: []string{"marketing"}},
}

// Careers outside these buckets get no certifications at all.
var certificationCatalog = map[string][]string{
	"cloud":     {"AWS Cloud Practitioner", "Azure Fundamentals"},
	"data":      {"Google Data Analytics", "AWS ML Specialty (advanced)"},
	"marketing": {"Google Analytics IQ", "Meta Blueprint"},
}

var mistakes = []string{
	"Trying to learn everything at once",
	"Skipping fundamentals",
	"Not building a visible portfolio",
	"Ignoring networking and referrals",
	"Procrastinating on applications",
}

var timeline = []models.TimelineStage{
	{Stage: "Foundation (0–2 months)", Focus: []string{"Basics", "Core tools", "1 small project"}},
	{Stage: "Build (2–4 months)", Focus: []string{"2–3 portfolio projects", "Feedback loops", "Share online"}},
	{Stage: "Apply (4–6 months)", Focus: []string{"Internships", "Referrals", "Mock interviews"}},
	{Stage: "Breakthrough (6–9 months)", Focus: []string{"Targeted roles", "Certifications (optional)", "Freelance/part-time gig"}},
}

var portfolioTips = []string{
	"Keep it simple: 3 solid projects > 10 half-done ones",
	"Write short case-studies explaining decisions",
	"Use a clean personal website + GitHub/Behance",
	"Ask 3 seniors to review your work and iterate",
}

var firstOpportunity = []string{
	"Apply to 5 roles/day with tailored resumes",
	"DM hiring managers with your best project",
	"Leverage alumni groups, Discords, LinkedIn",
}

func lookupStrings(career string, buckets []bucket, catalog map[string][]string, fallback []string) []string {
	if name, ok := classify(career, buckets); ok {
		return cloneStrings(catalog[name])
	}
	return cloneStrings(fallback)
}

// CourseSuggestions returns the course list for career. The discovery
// evaluator calls this with its own career labels.
func CourseSuggestions(career string) []models.CourseEntry {
	src := defaultCourses
	if name, ok := classify(career, courseBuckets); ok {
		src = courseCatalog[name]
	}
	out := make([]models.CourseEntry, len(src))
	copy(out, src)
	return out
}

func ToolSuggestions(career string) []string {
	return lookupStrings(career, toolBuckets, toolCatalog, defaultTools)
}

func SideProjects(career string) []string {
	return lookupStrings(career, projectBuckets, projectCatalog, defaultProjects)
}

func Internships(career string) []string {
	return lookupStrings(career, internshipBuckets, internshipCatalog, defaultInternships)
}

// Certifications may be empty; it is never nil.
func Certifications(career string) []string {
	return lookupStrings(career, certificationBuckets, certificationCatalog, []string{})
}

func MistakesToAvoid() []string {
	return cloneStrings(mistakes)
}

func Timeline() []models.TimelineStage {
	out := make([]models.TimelineStage, len(timeline))
	for i, stage := range timeline {
		out[i] = models.TimelineStage{Stage: stage.Stage, Focus: cloneStrings(stage.Focus)}
	}
	return out
}

// SalaryRanges returns the same bands for every career. education is
// accepted for API compatibility and not used.
func SalaryRanges(career string, education *string) models.SalaryRanges {
	_ = education
	return models.SalaryRanges{
		Entry:  "₹3L–8L per year (varies by city and company)",
		Mid:    "₹8L–20L per year",
		Senior: "₹20L+ per year with strong portfolio and interviews",
		Note:   "Indicative range for " + TitleCase(career) + " roles in India",
	}
}

func PortfolioTips() []string {
	return cloneStrings(portfolioTips)
}

func FirstOpportunity() []string {
	return cloneStrings(firstOpportunity)
}

// TitleCase title-cases the first letter of every run of cased letters and
// lower-cases the rest, so "data-science lead" becomes "Data-Science Lead".
// Letters whose title form is several runes, such as ß, expand ("Ss").
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevCased := false
	for _, r := range s {
		cased := isCased(r)
		switch {
		case cased && !prevCased:
			if expanded, ok := titleExpansions[r]; ok {
				b.WriteString(expanded)
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
		case cased:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevCased = cased
	}
	return b.String()
}

// Title mappings from Unicode SpecialCasing that unicode.ToTitle cannot
// express as a single rune.
var titleExpansions = map[rune]string{
	'ß': "Ss",
	'ŉ': "ʼN",
	'ﬀ': "Ff",
	'ﬁ': "Fi",
	'ﬂ': "Fl",
	'ﬃ': "Ffi",
	'ﬄ': "Ffl",
	'ﬅ': "St",
	'ﬆ': "St",
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r) ||
		unicode.In(r, unicode.Other_Lowercase, unicode.Other_Uppercase)
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

type RoadmapService struct{}

func NewRoadmapService() *RoadmapService {
	return &RoadmapService{}
}

// Generate builds the roadmap bundle for query. It never fails: careers no
// bucket recognises get the generic defaults.
func (s *RoadmapService) Generate(query models.CareerQuery) *models.SuggestionBundle {
	career := strings.TrimSpace(query.Career)

	return &models.SuggestionBundle{
		Career:           career,
		SkillsToLearn:    ToolSuggestions(career),
		Courses:          CourseSuggestions(career),
		ToolsToMaster:    ToolSuggestions(career),
		SideProjects:     SideProjects(career),
		Internships:      Internships(career),
		Certifications:   Certifications(career),
		MistakesToAvoid:  MistakesToAvoid(),
		Timeline:         Timeline(),
		SalaryRanges:     SalaryRanges(career, query.EducationLevel),
		PortfolioTips:    PortfolioTips(),
		FirstOpportunity: FirstOpportunity(),
		Meta:             query,
	}
}
