package recruitment

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AnswerValue is a collected answer: a single string, or a list of strings
// for checkbox questions.
type AnswerValue struct {
	Text    string
	Choices []string
	IsList  bool
}

func Text(s string) AnswerValue {
	return AnswerValue{Text: s}
}

func Choices(c ...string) AnswerValue {
	if c == nil {
		c = []string{}
	}
	return AnswerValue{Choices: c, IsList: true}
}

// Empty reports whether the answer counts as not given.
func (v AnswerValue) Empty() bool {
	if v.IsList {
		return len(v.Choices) == 0
	}
	return v.Text == ""
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.IsList {
		c := v.Choices
		if c == nil {
			c = []string{}
		}
		return json.Marshal(c)
	}
	return json.Marshal(v.Text)
}

func (v *AnswerValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = AnswerValue{}
		return nil
	case len(b) > 0 && b[0] == '[':
		var c []string
		if err := json.Unmarshal(b, &c); err != nil {
			return fmt.Errorf("answer must be a string or a list of strings: %w", err)
		}
		*v = Choices(c...)
		return nil
	default:
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("answer must be a string or a list of strings: %w", err)
		}
		*v = Text(s)
		return nil
	}
}

// Column returns the value stored in project_application_answers.value.
func (v AnswerValue) Column() datatypes.JSON {
	// MarshalJSON only encodes a string or a []string, which cannot fail
	b, _ := v.MarshalJSON()
	return datatypes.JSON(b)
}

// DecodeAnswer reads a stored answer value.
func DecodeAnswer(col datatypes.JSON) (AnswerValue, error) {
	var v AnswerValue
	if len(col) == 0 {
		return v, nil
	}
	err := v.UnmarshalJSON(col)
	return v, err
}

var ErrValidation = errors.New("validation failed")

// ValidationError names the first question whose answer is missing or malformed.
type ValidationError struct {
	QuestionID uuid.UUID
	Label      string
	Malformed  bool
}

func (e *ValidationError) Error() string {
	if e.Malformed {
		return fmt.Sprintf("\"%s\" 답변 형식이 올바르지 않습니다.", e.Label)
	}
	return fmt.Sprintf("\"%s\"을(를) 입력해 주세요.", e.Label)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Validate checks answers against questions in ascending position and
// returns the first violation. Answers for unknown questions are ignored.
func Validate(questions []Question, answers map[uuid.UUID]AnswerValue) error {
	for _, q := range SortQuestions(questions) {
		v, ok := answers[q.ID]
		if ok && !v.Empty() && v.IsList != q.Type.MultiValued() {
			return &ValidationError{QuestionID: q.ID, Label: q.Label, Malformed: true}
		}
		if q.Required && (!ok || v.Empty()) {
			return &ValidationError{QuestionID: q.ID, Label: q.Label}
		}
	}
	return nil
}

// BuildAnswers returns one answer row per question with a non-empty answer,
// in ascending position order.
func BuildAnswers(applicationID uuid.UUID, questions []Question, answers map[uuid.UUID]AnswerValue) []Answer {
	var out []Answer
	for _, q := range SortQuestions(questions) {
		v, ok := answers[q.ID]
		if !ok || v.Empty() {
			continue
		}
		out = append(out, Answer{
			ApplicationID: applicationID,
			QuestionID:    q.ID,
			Value:         v.Column(),
		})
	}
	return out
}
