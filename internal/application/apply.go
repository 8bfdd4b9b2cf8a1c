package application

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/recruitment"
	"github.com/linskybing/clubhub/internal/metrics"
	"github.com/linskybing/clubhub/internal/repository"
	"github.com/linskybing/clubhub/internal/session"
	"github.com/linskybing/clubhub/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrAlreadyApplied      = errors.New("already applied to this project")
	ErrRecruitmentClosed   = errors.New("recruitment is closed")
	ErrFormUnavailable     = errors.New("project has no recruitment form")
	ErrApplicationNotFound = errors.New("application not found")
	ErrInvalidStatus       = errors.New("invalid application status")
)

type ApplyService struct {
	Repos *repository.Repos
	Now   func() time.Time
}

func NewApplyService(repos *repository.Repos) *ApplyService {
	return &ApplyService{
		Repos: repos,
		Now:   time.Now,
	}
}

type applyForm struct {
	form      *recruitment.Form
	questions []recruitment.Question
}

func (s *ApplyService) loadForm(projectID uuid.UUID) (applyForm, error) {
	form, err := s.Repos.Recruitment.FindFormByProjectID(projectID)
	if err != nil || form == nil {
		return applyForm{}, err
	}
	questions, err := s.Repos.Recruitment.ListQuestions(form.ID)
	if err != nil {
		return applyForm{}, err
	}
	return applyForm{form: form, questions: questions}, nil
}

// LoadApplyForm returns what an applicant sees for a project. viewer may be
// nil; AlreadyApplied is only computed for a signed-in viewer.
func (s *ApplyService) LoadApplyForm(projectID uuid.UUID, viewer *session.User) (recruitment.ApplyFormView, error) {
	p, err := visibleProject(s.Repos, projectID, viewer)
	if err != nil {
		return recruitment.ApplyFormView{}, err
	}
	f, err := s.loadForm(projectID)
	if err != nil {
		return recruitment.ApplyFormView{}, err
	}

	view := recruitment.NewApplyFormView(projectID, f.form, f.questions)
	if !view.Available {
		return view, nil
	}
	view.Open = p.RecruitmentOpen(s.Now())

	if viewer != nil {
		existing, err := s.Repos.Application.FindApplication(projectID, viewer.ID)
		if err != nil {
			return recruitment.ApplyFormView{}, err
		}
		view.AlreadyApplied = existing != nil
	}
	return view, nil
}

// Submit validates answers and stores one application with its answers.
// Nothing is written when validation fails.
func (s *ApplyService) Submit(c *gin.Context, projectID uuid.UUID, viewer *session.User, answers map[uuid.UUID]recruitment.AnswerValue) (recruitment.Application, error) {
	app, err := s.submit(projectID, viewer, answers)
	result := metrics.ResultOK
	switch {
	case err == nil:
	case errors.Is(err, ErrAlreadyApplied):
		result = metrics.ResultConflict
	case errors.Is(err, ErrRecruitmentClosed):
		result = metrics.ResultClosed
	case errors.Is(err, recruitment.ErrValidation),
		errors.Is(err, session.ErrNotAuthenticated),
		errors.Is(err, ErrProjectNotFound),
		errors.Is(err, ErrFormUnavailable):
		result = metrics.ResultInvalid
	default:
		result = metrics.ResultError
		zap.L().Error("application submit failed",
			zap.String("project_id", projectID.String()),
			zap.Error(err))
	}
	metrics.Applications.WithLabelValues(result).Inc()
	if err != nil {
		return recruitment.Application{}, err
	}

	zap.L().Info("application submitted",
		zap.String("project_id", projectID.String()),
		zap.String("application_id", app.ID.String()))
	utils.LogAuditWithConsole(c, "create", "project_application", app.ID.String(), nil, app, "application submitted", s.Repos.Audit)
	return app, nil
}

func (s *ApplyService) submit(projectID uuid.UUID, viewer *session.User, answers map[uuid.UUID]recruitment.AnswerValue) (recruitment.Application, error) {
	if viewer == nil {
		return recruitment.Application{}, session.ErrNotAuthenticated
	}
	p, err := visibleProject(s.Repos, projectID, viewer)
	if err != nil {
		return recruitment.Application{}, err
	}
	f, err := s.loadForm(projectID)
	if err != nil {
		return recruitment.Application{}, err
	}
	if f.form == nil || len(f.questions) == 0 {
		return recruitment.Application{}, ErrFormUnavailable
	}
	if !p.RecruitmentOpen(s.Now()) {
		return recruitment.Application{}, ErrRecruitmentClosed
	}
	if err := recruitment.Validate(f.questions, answers); err != nil {
		return recruitment.Application{}, err
	}

	app := recruitment.Application{
		ProjectID: projectID,
		UserID:    viewer.ID,
		Status:    recruitment.ApplicationPending,
	}
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Application.CreateApplication(&app); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyApplied
			}
			return err
		}
		return tx.Application.CreateAnswers(recruitment.BuildAnswers(app.ID, f.questions, answers))
	})
	if err != nil {
		return recruitment.Application{}, err
	}
	return app, nil
}

// ListApplications returns a project's applications with their answers.
func (s *ApplyService) ListApplications(projectID uuid.UUID, status *recruitment.ApplicationStatus) ([]recruitment.ApplicationView, error) {
	records, err := s.Repos.Application.ListApplicationsByProject(projectID, status)
	if err != nil {
		return nil, err
	}
	f, err := s.loadForm(projectID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	answers, err := s.Repos.Application.ListAnswers(ids)
	if err != nil {
		return nil, err
	}
	byApp := make(map[uuid.UUID][]recruitment.Answer, len(records))
	for _, a := range answers {
		byApp[a.ApplicationID] = append(byApp[a.ApplicationID], a)
	}

	views := make([]recruitment.ApplicationView, 0, len(records))
	for _, r := range records {
		v := applicationView(r)
		v.Answers = recruitment.AnswerViews(f.questions, byApp[r.ID])
		views = append(views, v)
	}
	return views, nil
}

func (s *ApplyService) ListMyApplications(userID uuid.UUID) ([]recruitment.ApplicationView, error) {
	records, err := s.Repos.Application.ListApplicationsByUser(userID)
	if err != nil {
		return nil, err
	}
	views := make([]recruitment.ApplicationView, 0, len(records))
	for _, r := range records {
		views = append(views, applicationView(r))
	}
	return views, nil
}

func (s *ApplyService) UpdateApplicationStatus(c *gin.Context, id uuid.UUID, status recruitment.ApplicationStatus) (recruitment.Application, error) {
	if status != recruitment.ApplicationApproved && status != recruitment.ApplicationRejected {
		return recruitment.Application{}, ErrInvalidStatus
	}
	app, err := s.Repos.Application.GetApplicationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return recruitment.Application{}, ErrApplicationNotFound
		}
		return recruitment.Application{}, err
	}
	old := app

	if err := s.Repos.Application.UpdateApplicationStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return recruitment.Application{}, ErrApplicationNotFound
		}
		return recruitment.Application{}, err
	}
	app.Status = status

	utils.LogAuditWithConsole(c, "update", "project_application", id.String(), old, app, "application status changed", s.Repos.Audit)
	return app, nil
}

func applicationView(r recruitment.ApplicationRecord) recruitment.ApplicationView {
	return recruitment.ApplicationView{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		ProjectName: r.ProjectName,
		UserID:      r.UserID,
		UserName:    r.UserName,
		UserEmail:   r.UserEmail,
		Status:      r.Status,
		AppliedAt:   r.AppliedAt,
	}
}
