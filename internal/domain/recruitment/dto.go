package recruitment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type QuestionDTO struct {
	ID       string       `json:"id"`
	Type     QuestionType `json:"type" binding:"required"`
	Label    string       `json:"label"`
	Required bool         `json:"required"`
	Options  []string     `json:"options"`
}

// SaveFormDTO is the whole builder draft sent on save.
type SaveFormDTO struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	PosterURL   string        `json:"poster_url"`
	Questions   []QuestionDTO `json:"questions"`
}

type AddQuestionDTO struct {
	Type QuestionType `json:"type" binding:"required"`
}

type EditQuestionDTO struct {
	Label    *string   `json:"label"`
	Required *bool     `json:"required"`
	Options  *[]string `json:"options"`
}

func (d EditQuestionDTO) Patch() QuestionPatch {
	return QuestionPatch{Label: d.Label, Required: d.Required, Options: d.Options}
}

type MoveQuestionDTO struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

func (d MoveQuestionDTO) Dir() Direction {
	if d.Direction == "up" {
		return Up
	}
	return Down
}

type UpdateOptionDTO struct {
	Value string `json:"value"`
}

type SubmitApplicationDTO struct {
	Answers map[uuid.UUID]AnswerValue `json:"answers"`
}

type UpdateApplicationStatusDTO struct {
	Status ApplicationStatus `json:"status" binding:"required,oneof=approved rejected"`
}

// DraftFromDTO builds a draft from a client copy.
func DraftFromDTO(in SaveFormDTO) (*Draft, error) {
	d := &Draft{
		Title:       in.Title,
		Description: in.Description,
		PosterURL:   in.PosterURL,
		Questions:   make([]DraftQuestion, 0, len(in.Questions)),
	}
	for i, q := range in.Questions {
		key, err := ParseKey(q.ID)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		if !q.Type.Valid() {
			return nil, fmt.Errorf("question %d: %w", i, ErrInvalidType)
		}
		dq := DraftQuestion{Key: key, Type: q.Type, Label: q.Label, Required: q.Required}
		if q.Type.HasOptions() {
			dq.Options = append([]string{}, q.Options...)
		}
		d.Questions = append(d.Questions, dq)
	}
	return d, nil
}

type FormView struct {
	FormID      *uuid.UUID    `json:"form_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	PosterURL   string        `json:"poster_url"`
	Questions   []QuestionDTO `json:"questions"`
}

// View renders the draft the way the builder sends it back.
func (d *Draft) View() FormView {
	v := FormView{
		FormID:      d.FormID,
		Title:       d.Title,
		Description: d.Description,
		PosterURL:   d.PosterURL,
		Questions:   make([]QuestionDTO, 0, len(d.Questions)),
	}
	for _, q := range d.Questions {
		dto := QuestionDTO{ID: q.Key.String(), Type: q.Type, Label: q.Label, Required: q.Required}
		if q.Type.HasOptions() {
			dto.Options = append([]string{}, q.Options...)
		}
		v.Questions = append(v.Questions, dto)
	}
	return v
}

type ApplyQuestionView struct {
	ID       uuid.UUID    `json:"id"`
	Position int          `json:"position"`
	Type     QuestionType `json:"type"`
	Label    string       `json:"label"`
	Required bool         `json:"required"`
	Options  []string     `json:"options,omitempty"`
}

// ApplyFormView is what an applicant sees. Available is false when the
// project has no form or the form has no questions.
type ApplyFormView struct {
	Available      bool                `json:"available"`
	ProjectID      uuid.UUID           `json:"project_id"`
	Title          *string             `json:"title,omitempty"`
	Description    *string             `json:"description,omitempty"`
	PosterURL      *string             `json:"poster_url,omitempty"`
	Questions      []ApplyQuestionView `json:"questions,omitempty"`
	AlreadyApplied bool                `json:"already_applied"`
	Open           bool                `json:"open"`
}

func NewApplyFormView(projectID uuid.UUID, form *Form, questions []Question) ApplyFormView {
	v := ApplyFormView{ProjectID: projectID}
	if form == nil || len(questions) == 0 {
		return v
	}
	v.Available = true
	v.Title, v.Description, v.PosterURL = form.Title, form.Description, form.PosterURL
	for _, q := range SortQuestions(questions) {
		v.Questions = append(v.Questions, ApplyQuestionView{
			ID:       q.ID,
			Position: q.SortOrder,
			Type:     q.Type,
			Label:    q.Label,
			Required: q.Required,
			Options:  q.OptionList(),
		})
	}
	return v
}

type AnswerView struct {
	QuestionID uuid.UUID    `json:"question_id"`
	Label      string       `json:"label"`
	Type       QuestionType `json:"type"`
	Value      AnswerValue  `json:"value"`
}

type ApplicationView struct {
	ID          uuid.UUID         `json:"id"`
	ProjectID   uuid.UUID         `json:"project_id"`
	ProjectName string            `json:"project_name,omitempty"`
	UserID      uuid.UUID         `json:"user_id"`
	UserName    string            `json:"user_name,omitempty"`
	UserEmail   string            `json:"user_email,omitempty"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"applied_at"`
	Answers     []AnswerView      `json:"answers,omitempty"`
}

// AnswerViews pairs stored answers with their questions in position order.
// Answers whose question no longer exists are dropped.
func AnswerViews(questions []Question, answers []Answer) []AnswerView {
	byQuestion := make(map[uuid.UUID]Answer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}
	var out []AnswerView
	for _, q := range SortQuestions(questions) {
		a, ok := byQuestion[q.ID]
		if !ok {
			continue
		}
		v, err := DecodeAnswer(a.Value)
		if err != nil {
			continue
		}
		out = append(out, AnswerView{QuestionID: q.ID, Label: q.Label, Type: q.Type, Value: v})
	}
	return out
}
