package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/recruitment"
	"gorm.io/gorm"
)

type ApplicationRepo interface {
	CreateApplication(a *recruitment.Application) error
	CreateAnswers(answers []recruitment.Answer) error
	// FindApplication returns nil without error when the user has not applied.
	FindApplication(projectID, userID uuid.UUID) (*recruitment.Application, error)
	GetApplicationByID(id uuid.UUID) (recruitment.Application, error)
	ListApplicationsByProject(projectID uuid.UUID, status *recruitment.ApplicationStatus) ([]recruitment.ApplicationRecord, error)
	ListApplicationsByUser(userID uuid.UUID) ([]recruitment.ApplicationRecord, error)
	ListAnswers(applicationIDs []uuid.UUID) ([]recruitment.Answer, error)
	UpdateApplicationStatus(id uuid.UUID, status recruitment.ApplicationStatus) error
	WithTx(tx *gorm.DB) ApplicationRepo
}

type DBApplicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) *DBApplicationRepo {
	return &DBApplicationRepo{
		db: db,
	}
}

func (r *DBApplicationRepo) CreateApplication(a *recruitment.Application) error {
	return r.db.Create(a).Error
}

func (r *DBApplicationRepo) CreateAnswers(answers []recruitment.Answer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.db.Create(&answers).Error
}

func (r *DBApplicationRepo) FindApplication(projectID, userID uuid.UUID) (*recruitment.Application, error) {
	var a recruitment.Application
	err := r.db.Where("project_id = ? AND user_id = ?", projectID, userID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *DBApplicationRepo) GetApplicationByID(id uuid.UUID) (recruitment.Application, error) {
	var a recruitment.Application
	err := r.db.Where("id = ?", id).First(&a).Error
	return a, err
}

func (r *DBApplicationRepo) records() *gorm.DB {
	return r.db.Table("project_applications a").
		Select("a.*, u.name AS user_name, u.email AS user_email, p.name AS project_name").
		Joins("JOIN users u ON u.id = a.user_id").
		Joins("JOIN projects p ON p.id = a.project_id")
}

func (r *DBApplicationRepo) ListApplicationsByProject(projectID uuid.UUID, status *recruitment.ApplicationStatus) ([]recruitment.ApplicationRecord, error) {
	var rows []recruitment.ApplicationRecord
	query := r.records().Where("a.project_id = ?", projectID)
	if status != nil {
		query = query.Where("a.status = ?", *status)
	}
	err := query.Order("a.applied_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *DBApplicationRepo) ListApplicationsByUser(userID uuid.UUID) ([]recruitment.ApplicationRecord, error) {
	var rows []recruitment.ApplicationRecord
	err := r.records().Where("a.user_id = ?", userID).Order("a.applied_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *DBApplicationRepo) ListAnswers(applicationIDs []uuid.UUID) ([]recruitment.Answer, error) {
	var answers []recruitment.Answer
	if len(applicationIDs) == 0 {
		return answers, nil
	}
	err := r.db.Where("application_id IN ?", applicationIDs).Find(&answers).Error
	return answers, err
}

func (r *DBApplicationRepo) UpdateApplicationStatus(id uuid.UUID, status recruitment.ApplicationStatus) error {
	res := r.db.Model(&recruitment.Application{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBApplicationRepo) WithTx(tx *gorm.DB) ApplicationRepo {
	if tx == nil {
		return r
	}
	return &DBApplicationRepo{
		db: tx,
	}
}
