package recruitment

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuestionType is the input widget a question is answered with.
type QuestionType string

const (
	TypeShortText      QuestionType = "short_text"
	TypeLongText       QuestionType = "long_text"
	TypeParagraphShort QuestionType = "paragraph_short"
	TypeParagraphLong  QuestionType = "paragraph_long"
	TypeRadio          QuestionType = "radio"
	TypeCheckbox       QuestionType = "checkbox"
	TypeSelect         QuestionType = "select"
	TypeFileUpload     QuestionType = "file_upload"
)

// Types lists every question type in builder menu order.
var Types = []QuestionType{
	TypeShortText,
	TypeLongText,
	TypeParagraphShort,
	TypeParagraphLong,
	TypeRadio,
	TypeCheckbox,
	TypeSelect,
	TypeFileUpload,
}

func (t QuestionType) Valid() bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}
	return false
}

// HasOptions reports whether the type carries an option list.
func (t QuestionType) HasOptions() bool {
	return t == TypeRadio || t == TypeCheckbox || t == TypeSelect
}

// MultiValued reports whether answers are a list of strings.
func (t QuestionType) MultiValued() bool {
	return t == TypeCheckbox
}

// UntitledLabel replaces an empty label on save.
const UntitledLabel = "(제목 없음)"

type Form struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectID   uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex"`
	Title       *string   `json:"title"`
	Description *string   `json:"description" gorm:"type:text"`
	PosterURL   *string   `json:"poster_url" gorm:"column:poster_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Form) TableName() string {
	return "project_recruitment_forms"
}

func (f *Form) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

type Question struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	FormID    uuid.UUID      `json:"form_id" gorm:"type:uuid;not null;index"`
	SortOrder int            `json:"sort_order" gorm:"column:sort_order;not null"`
	Type      QuestionType   `json:"type" gorm:"size:30;not null"`
	Label     string         `json:"label" gorm:"type:text;not null"`
	Required  bool           `json:"required" gorm:"not null"`
	Options   datatypes.JSON `json:"options"`
	CreatedAt time.Time      `json:"created_at"`
}

func (Question) TableName() string {
	return "project_recruitment_questions"
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// OptionList decodes the stored options. Absent or malformed options yield nil.
func (q Question) OptionList() []string {
	if len(q.Options) == 0 {
		return nil
	}
	var opts []string
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		var single string
		if json.Unmarshal(q.Options, &single) == nil && single != "" {
			return []string{single}
		}
		return nil
	}
	return opts
}

// EncodeOptions returns the column value for a choice question's options.
// An empty list is stored as [] so choice questions never carry NULL.
func EncodeOptions(opts []string) datatypes.JSON {
	if opts == nil {
		opts = []string{}
	}
	// a []string always marshals
	b, _ := json.Marshal(opts)
	return datatypes.JSON(b)
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application is one user's application to one project. (project_id, user_id) is unique.
type Application struct {
	ID        uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectID uuid.UUID         `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_application_project_user"`
	UserID    uuid.UUID         `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_application_project_user"`
	Status    ApplicationStatus `json:"status" gorm:"size:20;not null"`
	AppliedAt time.Time         `json:"applied_at" gorm:"autoCreateTime"`
}

func (Application) TableName() string {
	return "project_applications"
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

type Answer struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	ApplicationID uuid.UUID      `json:"application_id" gorm:"type:uuid;not null;index"`
	QuestionID    uuid.UUID      `json:"question_id" gorm:"type:uuid;not null"`
	Value         datatypes.JSON `json:"value" gorm:"not null"`
}

func (Answer) TableName() string {
	return "project_application_answers"
}

func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// ApplicationRecord is an application joined with applicant and project names.
type ApplicationRecord struct {
	Application
	UserName    string `json:"user_name"`
	UserEmail   string `json:"user_email"`
	ProjectName string `json:"project_name"`
}
