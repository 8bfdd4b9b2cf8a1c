package application

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/recruitment"
	"github.com/linskybing/clubhub/internal/metrics"
	"github.com/linskybing/clubhub/internal/repository"
	"github.com/linskybing/clubhub/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DraftOp edits a draft in place.
type DraftOp func(d *recruitment.Draft) error

type RecruitmentService struct {
	Repos *repository.Repos
}

func NewRecruitmentService(repos *repository.Repos) *RecruitmentService {
	return &RecruitmentService{
		Repos: repos,
	}
}

// Load returns the stored form of a project as a draft. A project without a
// form yields an empty draft.
func (s *RecruitmentService) Load(projectID uuid.UUID) (*recruitment.Draft, error) {
	return loadDraft(s.Repos, projectID)
}

// Save reconciles the stored form with d. The form header is written first,
// then questions missing from d are deleted, new entries inserted and the
// rest updated. Every write shares one transaction.
func (s *RecruitmentService) Save(c *gin.Context, projectID uuid.UUID, d *recruitment.Draft) (*recruitment.Draft, error) {
	var saved *recruitment.Draft
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if _, err := tx.Project.GetProjectByID(projectID); err != nil {
			return projectLookupErr(err)
		}
		out, err := saveDraft(tx, projectID, d)
		saved = out
		return err
	})
	return s.finish(c, projectID, saved, err)
}

// Mutate loads the current draft, applies op and saves the result.
func (s *RecruitmentService) Mutate(c *gin.Context, projectID uuid.UUID, op DraftOp) (*recruitment.Draft, error) {
	var saved *recruitment.Draft
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		d, err := loadDraft(tx, projectID)
		if err != nil {
			return err
		}
		if err := op(d); err != nil {
			return err
		}
		out, err := saveDraft(tx, projectID, d)
		saved = out
		return err
	})
	return s.finish(c, projectID, saved, err)
}

func (s *RecruitmentService) finish(c *gin.Context, projectID uuid.UUID, saved *recruitment.Draft, err error) (*recruitment.Draft, error) {
	if err != nil {
		result := metrics.ResultError
		if isDraftError(err) || errors.Is(err, ErrProjectNotFound) {
			result = metrics.ResultInvalid
		} else {
			zap.L().Error("recruitment form save failed",
				zap.String("project_id", projectID.String()),
				zap.Error(err))
		}
		metrics.FormSaves.WithLabelValues(result).Inc()
		return nil, err
	}

	metrics.FormSaves.WithLabelValues(metrics.ResultOK).Inc()
	zap.L().Info("recruitment form saved",
		zap.String("project_id", projectID.String()),
		zap.Int("questions", saved.Len()))
	formID := ""
	if saved.FormID != nil {
		formID = saved.FormID.String()
	}
	utils.LogAuditWithConsole(c, "save", "recruitment_form", formID, nil, saved.View(), "recruitment form saved", s.Repos.Audit)
	return saved, nil
}

func loadDraft(repos *repository.Repos, projectID uuid.UUID) (*recruitment.Draft, error) {
	if _, err := repos.Project.GetProjectByID(projectID); err != nil {
		return nil, projectLookupErr(err)
	}
	form, err := repos.Recruitment.FindFormByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("load form: %w", err)
	}
	if form == nil {
		return recruitment.NewDraft(nil, nil), nil
	}
	questions, err := repos.Recruitment.ListQuestions(form.ID)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return recruitment.NewDraft(form, questions), nil
}

func saveDraft(repos *repository.Repos, projectID uuid.UUID, d *recruitment.Draft) (*recruitment.Draft, error) {
	form, err := repos.Recruitment.FindFormByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("load form: %w", err)
	}

	var formID uuid.UUID
	var existing []recruitment.Question
	if form != nil {
		formID = form.ID
		existing, err = repos.Recruitment.ListQuestions(form.ID)
		if err != nil {
			return nil, fmt.Errorf("load questions: %w", err)
		}
	}
	// Planning first rejects a bad draft before anything is written.
	plan, err := d.Plan(formID, existing)
	if err != nil {
		return nil, err
	}

	title, description, poster := d.FormFields()
	if form == nil {
		form = &recruitment.Form{ProjectID: projectID, Title: title, Description: description, PosterURL: poster}
		if err := repos.Recruitment.CreateForm(form); err != nil {
			return nil, fmt.Errorf("create form: %w", err)
		}
		for i := range plan.Inserts {
			plan.Inserts[i].FormID = form.ID
		}
	} else {
		form.Title, form.Description, form.PosterURL = title, description, poster
		if err := repos.Recruitment.UpdateForm(form); err != nil {
			return nil, fmt.Errorf("update form: %w", err)
		}
	}

	if err := repos.Recruitment.DeleteQuestions(form.ID, plan.Deletes); err != nil {
		return nil, fmt.Errorf("delete questions: %w", err)
	}
	for i := range plan.Inserts {
		if err := repos.Recruitment.CreateQuestion(&plan.Inserts[i]); err != nil {
			return nil, fmt.Errorf("insert question: %w", err)
		}
	}
	for i := range plan.Updates {
		if err := repos.Recruitment.UpdateQuestion(&plan.Updates[i]); err != nil {
			return nil, fmt.Errorf("update question: %w", err)
		}
	}

	stored := make([]recruitment.Question, 0, len(plan.Inserts)+len(plan.Updates))
	stored = append(stored, plan.Inserts...)
	stored = append(stored, plan.Updates...)
	return recruitment.NewDraft(form, stored), nil
}

func projectLookupErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProjectNotFound
	}
	return err
}

func isDraftError(err error) bool {
	for _, target := range []error{
		recruitment.ErrInvalidType,
		recruitment.ErrPositionRange,
		recruitment.ErrOptionRange,
		recruitment.ErrNotChoiceQuestion,
		recruitment.ErrInvalidDirection,
		recruitment.ErrUnknownQuestion,
		recruitment.ErrDuplicateQuestion,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsDraftError reports whether err is a rejected builder edit rather than a
// store failure.
func IsDraftError(err error) bool {
	return isDraftError(err)
}
