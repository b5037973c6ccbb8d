package grading

import (
	"fmt"
	"strings"

	"culturehub/internal/models/db_models"
)

// Strategy grades a submitted answer for a single question.
type Strategy interface {
	Grade(q db_models.Question, answer string) bool
}

// Engine routes by question type to the correct Strategy. Grading is pure:
// no I/O, no side effects.
type Engine struct {
	strategies map[string]Strategy
}

// NewEngine installs the built-in strategies, one per question type.
func NewEngine() *Engine {
	return &Engine{
		strategies: map[string]Strategy{
			db_models.QuestionTypeMultipleChoice: exactMatchStrategy{},
			db_models.QuestionTypeTrueFalse:      exactMatchStrategy{},
			db_models.QuestionTypeAIVideo:        exactMatchStrategy{},
			db_models.QuestionTypeShortAnswer:    shortAnswerStrategy{},
		},
	}
}

// Grade reports whether answer is correct for q. An empty submission is
// never correct. Unknown question types grade false with an error.
func (e *Engine) Grade(q db_models.Question, answer string) (bool, error) {
	if strings.TrimSpace(answer) == "" {
		return false, nil
	}
	s, ok := e.strategies[q.Type]
	if !ok {
		return false, fmt.Errorf("no grading strategy for question type %q", q.Type)
	}
	return s.Grade(q, answer), nil
}

// exactMatchStrategy covers multiple-choice, true-false and ai-video:
// the submitted option must equal the correct answer exactly,
// case-sensitive.
type exactMatchStrategy struct{}

func (exactMatchStrategy) Grade(q db_models.Question, answer string) bool {
	return answer == q.CorrectAnswer
}

// shortAnswerStrategy matches against any accepted answer, ignoring case and
// leading/trailing whitespace. Internal whitespace and punctuation stay
// significant.
type shortAnswerStrategy struct{}

func (shortAnswerStrategy) Grade(q db_models.Question, answer string) bool {
	submitted := strings.ToLower(strings.TrimSpace(answer))
	for _, accepted := range q.AcceptedAnswers {
		if submitted == strings.ToLower(strings.TrimSpace(accepted)) {
			return true
		}
	}
	return false
}

// AnswerKey returns the strings a client should highlight after grading:
// the single correct option for choice questions, the accepted set for
// short answers.
func AnswerKey(q db_models.Question) []string {
	if q.Type == db_models.QuestionTypeShortAnswer {
		return append([]string(nil), q.AcceptedAnswers...)
	}
	return []string{q.CorrectAnswer}
}
