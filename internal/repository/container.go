package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User        UserRepo
	Club        ClubRepo
	Project     ProjectRepo
	Recruitment RecruitmentRepo
	Application ApplicationRepo
	Audit       AuditRepo
	Schedule    ScheduleRepo
	Task        TaskRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:        NewUserRepo(db),
		Club:        NewClubRepo(db),
		Project:     NewProjectRepo(db),
		Recruitment: NewRecruitmentRepo(db),
		Application: NewApplicationRepo(db),
		Audit:       NewAuditRepo(db),
		Schedule:    NewScheduleRepo(db),
		Task:        NewTaskRepo(db),
		db:          db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:        r.User.WithTx(tx),
		Club:        r.Club.WithTx(tx),
		Project:     r.Project.WithTx(tx),
		Recruitment: r.Recruitment.WithTx(tx),
		Application: r.Application.WithTx(tx),
		Audit:       r.Audit.WithTx(tx),
		Schedule:    r.Schedule.WithTx(tx),
		Task:        r.Task.WithTx(tx),
		db:          tx,
	}
}

// ExecTx runs fn inside a transaction. Repos built without a database
// (mocks and fakes in tests) run fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
