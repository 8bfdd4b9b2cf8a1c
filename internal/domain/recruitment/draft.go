package recruitment

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidType       = errors.New("invalid question type")
	ErrPositionRange     = errors.New("question position out of range")
	ErrOptionRange       = errors.New("option index out of range")
	ErrNotChoiceQuestion = errors.New("question type has no options")
	ErrInvalidDirection  = errors.New("direction must be up or down")
	ErrUnknownQuestion   = errors.New("question does not belong to this form")
	ErrDuplicateQuestion = errors.New("question appears more than once in draft")
)

// Key identifies a draft question. It is either a NewKey for an entry that
// has never been stored or a PersistedKey for an existing row.
type Key interface {
	String() string
	isKey()
}

// NewKey is a placeholder that is never sent to the store.
type NewKey struct {
	Temp string
}

func (k NewKey) String() string { return k.Temp }
func (NewKey) isKey()           {}

type PersistedKey struct {
	ID uuid.UUID
}

func (k PersistedKey) String() string { return k.ID.String() }
func (PersistedKey) isKey()           {}

// TempPrefix marks placeholder ids handed out to clients.
const TempPrefix = "new-"

// ParseKey maps a client supplied id to a Key. Empty and "new-" prefixed
// ids are new entries; anything else must be a UUID.
func ParseKey(s string) (Key, error) {
	if s == "" || strings.HasPrefix(s, TempPrefix) {
		return NewKey{Temp: s}, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid question id %q", s)
	}
	return PersistedKey{ID: id}, nil
}

type DraftQuestion struct {
	Key      Key
	Type     QuestionType
	Label    string
	Required bool
	Options  []string
}

// Direction is -1 (up) or +1 (down).
type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

// QuestionPatch holds the editable fields of a question; nil fields are left alone.
type QuestionPatch struct {
	Label    *string
	Required *bool
	Options  *[]string
}

// Draft is the builder's in-memory copy of a form and its ordered questions.
// There is no dirty tracking: Plan always diffs the full draft.
type Draft struct {
	FormID      *uuid.UUID
	Title       string
	Description string
	PosterURL   string
	Questions   []DraftQuestion

	seq int
}

// NewDraft hydrates a draft from stored rows. form may be nil.
func NewDraft(form *Form, questions []Question) *Draft {
	d := &Draft{}
	if form != nil {
		id := form.ID
		d.FormID = &id
		d.Title = deref(form.Title)
		d.Description = deref(form.Description)
		d.PosterURL = deref(form.PosterURL)
	}
	sorted := SortQuestions(questions)
	d.Questions = make([]DraftQuestion, 0, len(sorted))
	for _, q := range sorted {
		d.Questions = append(d.Questions, DraftQuestion{
			Key:      PersistedKey{ID: q.ID},
			Type:     q.Type,
			Label:    q.Label,
			Required: q.Required,
			Options:  q.OptionList(),
		})
	}
	return d
}

// SortQuestions returns a copy ordered by ascending sort_order.
func SortQuestions(questions []Question) []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

func (d *Draft) Len() int {
	return len(d.Questions)
}

func (d *Draft) nextTemp() string {
	used := make(map[string]struct{}, len(d.Questions))
	for _, q := range d.Questions {
		if k, ok := q.Key.(NewKey); ok {
			used[k.Temp] = struct{}{}
		}
	}
	for {
		d.seq++
		t := TempPrefix + strconv.Itoa(d.seq)
		if _, taken := used[t]; !taken {
			return t
		}
	}
}

// AddQuestion appends an untitled required question and returns its position.
func (d *Draft) AddQuestion(t QuestionType) (int, error) {
	if !t.Valid() {
		return 0, ErrInvalidType
	}
	q := DraftQuestion{
		Key:      NewKey{Temp: d.nextTemp()},
		Type:     t,
		Required: true,
	}
	if t.HasOptions() {
		q.Options = []string{defaultOptionLabel(0)}
	}
	d.Questions = append(d.Questions, q)
	return len(d.Questions) - 1, nil
}

func (d *Draft) RemoveQuestion(pos int) error {
	if err := d.checkPos(pos); err != nil {
		return err
	}
	d.Questions = append(d.Questions[:pos], d.Questions[pos+1:]...)
	return nil
}

// MoveQuestion swaps the entry at pos with its neighbor. Moving the first
// entry up or the last entry down does nothing.
func (d *Draft) MoveQuestion(pos int, dir Direction) error {
	if dir != Up && dir != Down {
		return ErrInvalidDirection
	}
	if err := d.checkPos(pos); err != nil {
		return err
	}
	next := pos + int(dir)
	if next < 0 || next >= len(d.Questions) {
		return nil
	}
	d.Questions[pos], d.Questions[next] = d.Questions[next], d.Questions[pos]
	return nil
}

func (d *Draft) EditQuestion(pos int, patch QuestionPatch) error {
	if err := d.checkPos(pos); err != nil {
		return err
	}
	q := &d.Questions[pos]
	if patch.Options != nil && !q.Type.HasOptions() {
		return ErrNotChoiceQuestion
	}
	if patch.Label != nil {
		q.Label = *patch.Label
	}
	if patch.Required != nil {
		q.Required = *patch.Required
	}
	if patch.Options != nil {
		q.Options = append([]string(nil), (*patch.Options)...)
	}
	return nil
}

// AddOption appends a default "옵션 N" option and returns its index.
func (d *Draft) AddOption(pos int) (int, error) {
	q, err := d.choiceAt(pos)
	if err != nil {
		return 0, err
	}
	q.Options = append(q.Options, defaultOptionLabel(len(q.Options)))
	return len(q.Options) - 1, nil
}

func (d *Draft) UpdateOption(pos, opt int, value string) error {
	q, err := d.choiceAt(pos)
	if err != nil {
		return err
	}
	if opt < 0 || opt >= len(q.Options) {
		return ErrOptionRange
	}
	q.Options[opt] = value
	return nil
}

func (d *Draft) RemoveOption(pos, opt int) error {
	q, err := d.choiceAt(pos)
	if err != nil {
		return err
	}
	if opt < 0 || opt >= len(q.Options) {
		return ErrOptionRange
	}
	q.Options = append(q.Options[:opt], q.Options[opt+1:]...)
	return nil
}

func (d *Draft) checkPos(pos int) error {
	if pos < 0 || pos >= len(d.Questions) {
		return ErrPositionRange
	}
	return nil
}

func (d *Draft) choiceAt(pos int) (*DraftQuestion, error) {
	if err := d.checkPos(pos); err != nil {
		return nil, err
	}
	q := &d.Questions[pos]
	if !q.Type.HasOptions() {
		return nil, ErrNotChoiceQuestion
	}
	return q, nil
}

func defaultOptionLabel(i int) string {
	return "옵션 " + strconv.Itoa(i+1)
}

// FormFields returns the nullable form columns for the draft header.
func (d *Draft) FormFields() (title, description, poster *string) {
	return nullable(d.Title), nullable(d.Description), nullable(d.PosterURL)
}

// SavePlan is the set of row writes that makes the stored questions equal the draft.
type SavePlan struct {
	Deletes []uuid.UUID
	Inserts []Question
	Updates []Question
}

// Plan diffs the draft against the questions currently stored for formID.
// Every planned row carries sort_order equal to its draft index, so the
// stored positions are exactly 0..n-1 after the plan is applied.
func (d *Draft) Plan(formID uuid.UUID, existing []Question) (SavePlan, error) {
	stored := make(map[uuid.UUID]struct{}, len(existing))
	for _, q := range existing {
		stored[q.ID] = struct{}{}
	}

	var plan SavePlan
	kept := make(map[uuid.UUID]struct{}, len(d.Questions))
	for i, dq := range d.Questions {
		if !dq.Type.Valid() {
			return SavePlan{}, fmt.Errorf("question %d: %w", i, ErrInvalidType)
		}
		row := dq.row(formID, i)
		switch k := dq.Key.(type) {
		case NewKey:
			plan.Inserts = append(plan.Inserts, row)
		case PersistedKey:
			if _, ok := stored[k.ID]; !ok {
				return SavePlan{}, fmt.Errorf("question %s: %w", k.ID, ErrUnknownQuestion)
			}
			if _, dup := kept[k.ID]; dup {
				return SavePlan{}, fmt.Errorf("question %s: %w", k.ID, ErrDuplicateQuestion)
			}
			kept[k.ID] = struct{}{}
			row.ID = k.ID
			plan.Updates = append(plan.Updates, row)
		default:
			return SavePlan{}, fmt.Errorf("question %d: missing key", i)
		}
	}

	for _, q := range existing {
		if _, ok := kept[q.ID]; !ok {
			plan.Deletes = append(plan.Deletes, q.ID)
		}
	}
	return plan, nil
}

func (dq DraftQuestion) row(formID uuid.UUID, index int) Question {
	label := dq.Label
	if label == "" {
		label = UntitledLabel
	}
	q := Question{
		FormID:    formID,
		SortOrder: index,
		Type:      dq.Type,
		Label:     label,
		Required:  dq.Required,
	}
	if dq.Type.HasOptions() {
		q.Options = EncodeOptions(dq.Options)
	}
	return q
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
