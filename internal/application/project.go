package application

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/project"
	"github.com/linskybing/clubhub/internal/repository"
	"github.com/linskybing/clubhub/internal/session"
	"github.com/linskybing/clubhub/pkg/utils"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectNameRequired = errors.New("project name is required")
	ErrInvalidSchedule     = errors.New("project end must not be before its start")
)

type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{
		Repos: repos,
	}
}

func (s *ProjectService) GetProject(id uuid.UUID) (*project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetVisibleProject hides club_only projects from viewers outside the club.
func (s *ProjectService) GetVisibleProject(id uuid.UUID, viewer session.User) (*project.Project, error) {
	return visibleProject(s.Repos, id, &viewer)
}

func visibleProject(repos *repository.Repos, id uuid.UUID, viewer *session.User) (*project.Project, error) {
	p, err := repos.Project.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	if p.Visibility == project.VisibilityPublic {
		return &p, nil
	}
	if viewer == nil {
		return nil, ErrProjectNotFound
	}
	if viewer.IsAdmin {
		return &p, nil
	}
	ok, err := isApprovedMember(repos, p.ClubID, viewer.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrProjectNotFound
	}
	return &p, nil
}

// ListClubProjects returns every project of the club to admins and approved
// members, and only the public ones to everyone else.
func (s *ProjectService) ListClubProjects(clubID uuid.UUID, viewer session.User) ([]project.Project, error) {
	all, err := s.Repos.Project.ListProjectsByClub(clubID)
	if err != nil {
		return nil, err
	}
	if viewer.IsAdmin {
		return all, nil
	}
	member, err := isApprovedMember(s.Repos, clubID, viewer.ID)
	if err != nil {
		return nil, err
	}
	if member {
		return all, nil
	}
	out := make([]project.Project, 0, len(all))
	for _, p := range all {
		if p.Visibility == project.VisibilityPublic {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *ProjectService) ListPublicProjects() ([]project.Project, error) {
	return s.Repos.Project.ListPublicProjects()
}

func (s *ProjectService) CreateProject(c *gin.Context, clubID, creatorID uuid.UUID, input project.CreateProjectDTO) (*project.Project, error) {
	p := &project.Project{
		ClubID:                clubID,
		Name:                  strings.TrimSpace(input.Name),
		Description:           input.Description,
		Status:                project.StatusPlanning,
		StartsAt:              input.StartsAt,
		EndsAt:                input.EndsAt,
		RecruitmentDeadlineAt: input.RecruitmentDeadlineAt,
		Visibility:            project.VisibilityClubOnly,
		CreatedBy:             creatorID,
	}
	if input.Visibility != nil {
		p.Visibility = *input.Visibility
	}
	if err := validateProject(p); err != nil {
		return nil, err
	}

	if err := s.Repos.Project.CreateProject(p); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "project", p.ID.String(), nil, *p, "project created", s.Repos.Audit)
	return p, nil
}

func (s *ProjectService) UpdateProject(c *gin.Context, id uuid.UUID, input project.UpdateProjectDTO) (*project.Project, error) {
	p, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}
	oldProject := *p

	if input.Name != nil {
		p.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		p.Description = input.Description
	}
	if input.Status != nil {
		p.Status = *input.Status
	}
	if input.StartsAt != nil {
		p.StartsAt = input.StartsAt
	}
	if input.EndsAt != nil {
		p.EndsAt = input.EndsAt
	}
	if input.RecruitmentDeadlineAt != nil {
		p.RecruitmentDeadlineAt = input.RecruitmentDeadlineAt
	}
	if input.Visibility != nil {
		p.Visibility = *input.Visibility
	}
	if err := validateProject(p); err != nil {
		return nil, err
	}

	if err := s.Repos.Project.UpdateProject(p); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "project", p.ID.String(), oldProject, *p, "project updated", s.Repos.Audit)
	return p, nil
}

func validateProject(p *project.Project) error {
	if p.Name == "" {
		return ErrProjectNameRequired
	}
	if p.StartsAt != nil && p.EndsAt != nil && p.EndsAt.Before(*p.StartsAt) {
		return ErrInvalidSchedule
	}
	return nil
}
