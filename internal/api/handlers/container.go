package handlers

import (
	"github.com/linskybing/clubhub/internal/application"
	"github.com/linskybing/clubhub/internal/session"
)

type Handlers struct {
	Audit       *AuditHandler
	User        *UserHandler
	Club        *ClubHandler
	Project     *ProjectHandler
	Recruitment *RecruitmentHandler
	Apply       *ApplyHandler
	Upload      *UploadHandler
	Schedule    *ScheduleHandler
	Task        *TaskHandler
	Event       *EventHandler
}

func New(svc *application.Services, sessions session.Provider) *Handlers {
	return &Handlers{
		Audit:       NewAuditHandler(svc.Audit),
		User:        NewUserHandler(svc.User, sessions),
		Club:        NewClubHandler(svc.Club),
		Project:     NewProjectHandler(svc.Project, sessions),
		Recruitment: NewRecruitmentHandler(svc.Recruitment),
		Apply:       NewApplyHandler(svc.Apply, sessions),
		Upload:      NewUploadHandler(svc.Upload),
		Schedule:    NewScheduleHandler(svc.Schedule),
		Task:        NewTaskHandler(svc.Task),
		Event:       NewEventHandler(svc.Event),
	}
}
