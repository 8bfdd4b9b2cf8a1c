package application

import (
	"github.com/linskybing/clubhub/internal/config"
	"github.com/linskybing/clubhub/internal/repository"
	"github.com/linskybing/clubhub/internal/session"
	"github.com/linskybing/clubhub/pkg/storage"
)

type Services struct {
	Audit       *AuditService
	User        *UserService
	Club        *ClubService
	Project     *ProjectService
	Recruitment *RecruitmentService
	Apply       *ApplyService
	Upload      *UploadService
	Schedule    *ScheduleService
	Task        *TaskService
	Event       *EventService
}

// New wires services. store may be nil when object storage is disabled.
func New(repos *repository.Repos, sessions session.Publisher, store storage.ObjectStore) *Services {
	return &Services{
		Audit:       NewAuditService(repos),
		User:        NewUserService(repos, sessions),
		Club:        NewClubService(repos),
		Project:     NewProjectService(repos),
		Recruitment: NewRecruitmentService(repos),
		Apply:       NewApplyService(repos),
		Upload:      NewUploadService(store, config.UploadMaxBytes),
		Schedule:    NewScheduleService(repos),
		Task:        NewTaskService(repos),
		Event:       NewEventService(repos),
	}
}
