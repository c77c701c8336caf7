package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// QuestionType is how a quiz question is answered.
type QuestionType string

const (
	QuestionSingle QuestionType = "single"
	QuestionMulti  QuestionType = "multi"
	QuestionScale  QuestionType = "scale"
)

type QuizQuestion struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"`
}

type DiscoverTest struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Vibe      string         `json:"vibe"`
	Questions []QuizQuestion `json:"questions"`
}

// AnswerKind tags which variant an AnswerValue holds.
type AnswerKind int

const (
	AnswerAbsent AnswerKind = iota
	AnswerString
	AnswerList
	AnswerNumber
	AnswerOther
)

func (k AnswerKind) String() string {
	switch k {
	case AnswerAbsent:
		return "absent"
	case AnswerString:
		return "string"
	case AnswerList:
		return "list"
	case AnswerNumber:
		return "number"
	default:
		return "other"
	}
}

// AnswerValue is a single quiz answer decoded from arbitrary JSON. The zero
// value is an absent answer.
type AnswerValue struct {
	kind AnswerKind
	text string
	list []string
}

func StringAnswer(s string) AnswerValue {
	return AnswerValue{kind: AnswerString, text: s}
}

func ListAnswer(items ...string) AnswerValue {
	list := make([]string, len(items))
	copy(list, items)
	return AnswerValue{kind: AnswerList, list: list, text: pyListRepr(list)}
}

func NumberAnswer(n json.Number) AnswerValue {
	return AnswerValue{kind: AnswerNumber, text: n.String()}
}

func (a AnswerValue) Kind() AnswerKind { return a.kind }

// Text is the answer rendered as a string. Absent answers render as "".
func (a AnswerValue) Text() string { return a.text }

// List returns the string members of a list answer, or nil for any other
// variant. Non-string list members are dropped at decode time.
func (a AnswerValue) List() []string {
	if a.kind != AnswerList {
		return nil
	}
	out := make([]string, len(a.list))
	copy(out, a.list)
	return out
}

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("decoding answer: %w", err)
	}
	*a = answerFromRaw(raw)
	return nil
}

func (a AnswerValue) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case AnswerAbsent:
		return []byte("null"), nil
	case AnswerList:
		return json.Marshal(a.list)
	case AnswerNumber:
		return []byte(a.text), nil
	default:
		return json.Marshal(a.text)
	}
}

func answerFromRaw(raw interface{}) AnswerValue {
	switch v := raw.(type) {
	case nil:
		return AnswerValue{}
	case string:
		return StringAnswer(v)
	case json.Number:
		return NumberAnswer(v)
	case bool:
		if v {
			return AnswerValue{kind: AnswerOther, text: "True"}
		}
		return AnswerValue{kind: AnswerOther, text: "False"}
	case []interface{}:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return ListAnswer(items...)
	default:
		b, _ := json.Marshal(v)
		return AnswerValue{kind: AnswerOther, text: string(b)}
	}
}

// pyListRepr is the text form of a list answer, e.g. ['Curious hacker'].
func pyListRepr(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// AnswerSet maps question ids to answers. It is not checked against the
// catalog; unknown ids are ignored by the evaluator.
type AnswerSet map[string]AnswerValue

// Get returns the answer for id, or an absent answer.
func (s AnswerSet) Get(id string) AnswerValue {
	if s == nil {
		return AnswerValue{}
	}
	return s[id]
}

type DiscoverAnswers struct {
	Answers AnswerSet `json:"answers"`
}

// Signals are the normalised quiz inputs the scoring rules run on.
type Signals struct {
	Interests map[string]struct{}
	Persona   string
	Strength  string
}

func (s Signals) HasInterest(interest string) bool {
	_, ok := s.Interests[interest]
	return ok
}

type ScoreEntry struct {
	Career string `json:"career"`
	Score  int    `json:"score"`
}

// CareerCourses is a career->courses mapping that serialises with its keys
// in insertion order.
type CareerCourses struct {
	keys   []string
	values map[string][]CourseEntry
}

func (c *CareerCourses) Set(career string, courses []CourseEntry) {
	if c.values == nil {
		c.values = make(map[string][]CourseEntry)
	}
	if _, exists := c.values[career]; !exists {
		c.keys = append(c.keys, career)
	}
	c.values[career] = courses
}

func (c CareerCourses) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

func (c CareerCourses) Get(career string) ([]CourseEntry, bool) {
	v, ok := c.values[career]
	return v, ok
}

func (c CareerCourses) Len() int { return len(c.keys) }

func (c CareerCourses) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *CareerCourses) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("courses_to_start_now: expected object")
	}
	*c = CareerCourses{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var courses []CourseEntry
		if err := dec.Decode(&courses); err != nil {
			return fmt.Errorf("courses_to_start_now[%s]: %w", key, err)
		}
		c.Set(key, courses)
	}
	_, err = dec.Token()
	return err
}

type EvaluationResult struct {
	BestFitCareers       []string      `json:"best_fit_careers"`
	CareersToAvoid       []string      `json:"careers_to_avoid"`
	AskSalaryPrompt      string        `json:"ask_salary_prompt"`
	AskFullRoadmapPrompt string        `json:"ask_full_roadmap_prompt"`
	AskCounselorPrompt   string        `json:"ask_counselor_prompt"`
	CoursesToStartNow    CareerCourses `json:"courses_to_start_now"`
}
