package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/recruitment"
	"gorm.io/gorm"
)

type RecruitmentRepo interface {
	// FindFormByProjectID returns nil without error when the project has no form.
	FindFormByProjectID(projectID uuid.UUID) (*recruitment.Form, error)
	CreateForm(f *recruitment.Form) error
	UpdateForm(f *recruitment.Form) error
	ListQuestions(formID uuid.UUID) ([]recruitment.Question, error)
	CreateQuestion(q *recruitment.Question) error
	UpdateQuestion(q *recruitment.Question) error
	DeleteQuestions(formID uuid.UUID, ids []uuid.UUID) error
	WithTx(tx *gorm.DB) RecruitmentRepo
}

type DBRecruitmentRepo struct {
	db *gorm.DB
}

func NewRecruitmentRepo(db *gorm.DB) *DBRecruitmentRepo {
	return &DBRecruitmentRepo{
		db: db,
	}
}

func (r *DBRecruitmentRepo) FindFormByProjectID(projectID uuid.UUID) (*recruitment.Form, error) {
	var f recruitment.Form
	err := r.db.Where("project_id = ?", projectID).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *DBRecruitmentRepo) CreateForm(f *recruitment.Form) error {
	return r.db.Create(f).Error
}

// UpdateForm writes the header columns, including NULLs, and bumps updated_at.
func (r *DBRecruitmentRepo) UpdateForm(f *recruitment.Form) error {
	f.UpdatedAt = time.Now()
	return r.db.Model(&recruitment.Form{}).
		Where("id = ?", f.ID).
		Updates(map[string]interface{}{
			"title":       f.Title,
			"description": f.Description,
			"poster_url":  f.PosterURL,
			"updated_at":  f.UpdatedAt,
		}).Error
}

func (r *DBRecruitmentRepo) ListQuestions(formID uuid.UUID) ([]recruitment.Question, error) {
	var qs []recruitment.Question
	err := r.db.Where("form_id = ?", formID).Order("sort_order ASC").Find(&qs).Error
	return qs, err
}

func (r *DBRecruitmentRepo) CreateQuestion(q *recruitment.Question) error {
	return r.db.Create(q).Error
}

func (r *DBRecruitmentRepo) UpdateQuestion(q *recruitment.Question) error {
	return r.db.Model(&recruitment.Question{}).
		Where("id = ? AND form_id = ?", q.ID, q.FormID).
		Updates(map[string]interface{}{
			"sort_order": q.SortOrder,
			"type":       q.Type,
			"label":      q.Label,
			"required":   q.Required,
			"options":    q.Options,
		}).Error
}

func (r *DBRecruitmentRepo) DeleteQuestions(formID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Where("form_id = ? AND id IN ?", formID, ids).Delete(&recruitment.Question{}).Error
}

func (r *DBRecruitmentRepo) WithTx(tx *gorm.DB) RecruitmentRepo {
	if tx == nil {
		return r
	}
	return &DBRecruitmentRepo{
		db: tx,
	}
}
