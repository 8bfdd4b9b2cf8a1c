package application

import (
	"errors"

	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/project"
	"github.com/linskybing/clubhub/internal/repository"
	"gorm.io/gorm"
)

// EventService serves the public events listing built from public projects.
type EventService struct {
	Repos *repository.Repos
}

func NewEventService(repos *repository.Repos) *EventService {
	return &EventService{
		Repos: repos,
	}
}

func (s *EventService) ListEvents() ([]project.Event, error) {
	return s.Repos.Project.ListEvents()
}

// GetEvent reports ErrProjectNotFound for club_only projects too.
func (s *EventService) GetEvent(id uuid.UUID) (*project.Event, error) {
	e, err := s.Repos.Project.GetEvent(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &e, nil
}
