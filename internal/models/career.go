package models

import (
	"encoding/json"
	"fmt"
	"math"
)

// CareerQuery is the roadmap request body. Only Career is required; the
// profile fields are echoed back in the bundle's meta block.
type CareerQuery struct {
	Career            string   `json:"career"`
	Age               *int     `json:"age"`
	PassionsOrSkills  []string `json:"passions_or_skills"`
	EducationLevel    *string  `json:"education_level"`
	LifestyleOrSalary *string  `json:"lifestyle_or_salary"`
}

// UnmarshalJSON accepts whole-valued numbers such as 25.0 or 1e1 for age.
// Fractional ages are rejected.
func (q *CareerQuery) UnmarshalJSON(data []byte) error {
	type plain CareerQuery
	aux := struct {
		*plain
		Age *json.Number `json:"age"`
	}{plain: (*plain)(q)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	q.Age = nil
	if aux.Age == nil {
		return nil
	}
	age, err := wholeInt(*aux.Age)
	if err != nil {
		return fmt.Errorf("age: %w", err)
	}
	q.Age = &age
	return nil
}

func wholeInt(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("%s is not a number", n)
	}
	if f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, fmt.Errorf("%s is not a whole number", n)
	}
	return int(f), nil
}

type CourseEntry struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type TimelineStage struct {
	Stage string   `json:"stage"`
	Focus []string `json:"focus"`
}

type SalaryRanges struct {
	Entry  string `json:"entry"`
	Mid    string `json:"mid"`
	Senior string `json:"senior"`
	Note   string `json:"note"`
}

// SuggestionBundle is the full roadmap returned for a career string.
type SuggestionBundle struct {
	Career           string          `json:"career"`
	SkillsToLearn    []string        `json:"skills_to_learn"`
	Courses          []CourseEntry   `json:"courses"`
	ToolsToMaster    []string        `json:"tools_to_master"`
	SideProjects     []string        `json:"side_projects"`
	Internships      []string        `json:"internships"`
	Certifications   []string        `json:"certifications"`
	MistakesToAvoid  []string        `json:"mistakes_to_avoid"`
	Timeline         []TimelineStage `json:"timeline"`
	SalaryRanges     SalaryRanges    `json:"salary_ranges"`
	PortfolioTips    []string        `json:"portfolio_tips"`
	FirstOpportunity []string        `json:"first_opportunity"`
	Meta             CareerQuery     `json:"meta"`
}
