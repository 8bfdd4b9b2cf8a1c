package repository

import (
	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/project"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	GetProjectByID(id uuid.UUID) (project.Project, error)
	CreateProject(p *project.Project) error
	UpdateProject(p *project.Project) error
	ListProjectsByClub(clubID uuid.UUID) ([]project.Project, error)
	ListPublicProjects() ([]project.Project, error)
	ListEvents() ([]project.Event, error)
	GetEvent(id uuid.UUID) (project.Event, error)
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{
		db: db,
	}
}

func (r *DBProjectRepo) GetProjectByID(id uuid.UUID) (project.Project, error) {
	var p project.Project
	err := r.db.Where("id = ?", id).First(&p).Error
	return p, err
}

func (r *DBProjectRepo) CreateProject(p *project.Project) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) UpdateProject(p *project.Project) error {
	return r.db.Save(p).Error
}

func (r *DBProjectRepo) ListProjectsByClub(clubID uuid.UUID) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Where("club_id = ?", clubID).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListPublicProjects() ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Where("visibility = ?", project.VisibilityPublic).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) events() *gorm.DB {
	return r.db.Table("projects p").
		Select("p.*, c.name AS club_name").
		Joins("JOIN clubs c ON c.id = p.club_id").
		Where("p.visibility = ?", project.VisibilityPublic)
}

// ListEvents returns public projects, soonest first. Undated ones go last.
func (r *DBProjectRepo) ListEvents() ([]project.Event, error) {
	var rows []project.Event
	err := r.events().Order("p.starts_at ASC NULLS LAST").Scan(&rows).Error
	return rows, err
}

// GetEvent returns gorm.ErrRecordNotFound for unknown and club_only projects alike.
func (r *DBProjectRepo) GetEvent(id uuid.UUID) (project.Event, error) {
	var e project.Event
	err := r.events().Where("p.id = ?", id).Take(&e).Error
	return e, err
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{
		db: tx,
	}
}
