package application_test

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/audit"
	"github.com/linskybing/clubhub/internal/domain/club"
	"github.com/linskybing/clubhub/internal/domain/project"
	"github.com/linskybing/clubhub/internal/domain/recruitment"
	"github.com/linskybing/clubhub/internal/domain/schedule"
	"github.com/linskybing/clubhub/internal/domain/task"
	"github.com/linskybing/clubhub/internal/repository"
	"gorm.io/gorm"
)

// memDB is an in-memory store shared by the fake repos below.
type memDB struct {
	projects     map[uuid.UUID]project.Project
	members      map[uuid.UUID]club.Member
	forms        map[uuid.UUID]recruitment.Form
	questions    map[uuid.UUID]recruitment.Question
	applications map[uuid.UUID]recruitment.Application
	answers      []recruitment.Answer
	audits       []audit.AuditLog
	schedules    map[uuid.UUID]schedule.Schedule
	tasks        map[uuid.UUID]task.Task

	writes int
	// failAnswers makes CreateAnswers fail once.
	failAnswers bool
}

func newMemDB() *memDB {
	return &memDB{
		projects:     map[uuid.UUID]project.Project{},
		members:      map[uuid.UUID]club.Member{},
		forms:        map[uuid.UUID]recruitment.Form{},
		questions:    map[uuid.UUID]recruitment.Question{},
		applications: map[uuid.UUID]recruitment.Application{},
		schedules:    map[uuid.UUID]schedule.Schedule{},
		tasks:        map[uuid.UUID]task.Task{},
	}
}

func (m *memDB) repos() *repository.Repos {
	return &repository.Repos{
		Project:     &fakeProjects{m},
		Club:        &fakeClubs{m},
		Recruitment: &fakeRecruitment{m},
		Application: &fakeApplications{m},
		Audit:       &fakeAudit{m},
		Schedule:    &fakeSchedules{m},
		Task:        &fakeTasks{m},
	}
}

func (m *memDB) addProject(p project.Project) project.Project {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.ClubID == uuid.Nil {
		p.ClubID = uuid.New()
	}
	if p.Visibility == "" {
		p.Visibility = project.VisibilityPublic
	}
	m.projects[p.ID] = p
	return p
}

func (m *memDB) formQuestions(projectID uuid.UUID) []recruitment.Question {
	var formID uuid.UUID
	for _, f := range m.forms {
		if f.ProjectID == projectID {
			formID = f.ID
		}
	}
	var out []recruitment.Question
	for _, q := range m.questions {
		if q.FormID == formID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

type fakeProjects struct{ m *memDB }

func (f *fakeProjects) GetProjectByID(id uuid.UUID) (project.Project, error) {
	p, ok := f.m.projects[id]
	if !ok {
		return project.Project{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProjects) CreateProject(p *project.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.m.projects[p.ID] = *p
	return nil
}

func (f *fakeProjects) UpdateProject(p *project.Project) error {
	f.m.projects[p.ID] = *p
	return nil
}

func (f *fakeProjects) ListProjectsByClub(clubID uuid.UUID) ([]project.Project, error) {
	var out []project.Project
	for _, p := range f.m.projects {
		if p.ClubID == clubID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjects) ListPublicProjects() ([]project.Project, error) {
	var out []project.Project
	for _, p := range f.m.projects {
		if p.Visibility == project.VisibilityPublic {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjects) ListEvents() ([]project.Event, error) {
	public, _ := f.ListPublicProjects()
	out := make([]project.Event, 0, len(public))
	for _, p := range public {
		out = append(out, project.Event{Project: p})
	}
	return out, nil
}

func (f *fakeProjects) GetEvent(id uuid.UUID) (project.Event, error) {
	p, ok := f.m.projects[id]
	if !ok || p.Visibility != project.VisibilityPublic {
		return project.Event{}, gorm.ErrRecordNotFound
	}
	return project.Event{Project: p}, nil
}

func (f *fakeProjects) WithTx(*gorm.DB) repository.ProjectRepo { return f }

type fakeClubs struct{ m *memDB }

func (f *fakeClubs) ListClubs(string) ([]club.Club, error)    { return nil, nil }
func (f *fakeClubs) GetClubByID(uuid.UUID) (club.Club, error) { return club.Club{}, gorm.ErrRecordNotFound }
func (f *fakeClubs) CreateClub(*club.Club) error              { return nil }

func (f *fakeClubs) CreateMember(mb *club.Member) error {
	if mb.ID == uuid.Nil {
		mb.ID = uuid.New()
	}
	f.m.members[mb.ID] = *mb
	return nil
}

func (f *fakeClubs) GetMember(clubID, userID uuid.UUID) (club.Member, error) {
	for _, mb := range f.m.members {
		if mb.ClubID == clubID && mb.UserID == userID {
			return mb, nil
		}
	}
	return club.Member{}, gorm.ErrRecordNotFound
}

func (f *fakeClubs) GetMemberByID(id uuid.UUID) (club.Member, error) {
	mb, ok := f.m.members[id]
	if !ok {
		return club.Member{}, gorm.ErrRecordNotFound
	}
	return mb, nil
}

func (f *fakeClubs) ListMembers(uuid.UUID) ([]club.MemberWithUser, error) { return nil, nil }
func (f *fakeClubs) CountApprovedMembers(uuid.UUID) (int64, error)        { return 0, nil }

func (f *fakeClubs) UpdateMember(mb *club.Member) error {
	f.m.members[mb.ID] = *mb
	return nil
}

func (f *fakeClubs) WithTx(*gorm.DB) repository.ClubRepo { return f }

type fakeRecruitment struct{ m *memDB }

func (f *fakeRecruitment) FindFormByProjectID(projectID uuid.UUID) (*recruitment.Form, error) {
	for _, form := range f.m.forms {
		if form.ProjectID == projectID {
			out := form
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeRecruitment) CreateForm(form *recruitment.Form) error {
	for _, existing := range f.m.forms {
		if existing.ProjectID == form.ProjectID {
			return gorm.ErrDuplicatedKey
		}
	}
	if form.ID == uuid.Nil {
		form.ID = uuid.New()
	}
	f.m.writes++
	f.m.forms[form.ID] = *form
	return nil
}

func (f *fakeRecruitment) UpdateForm(form *recruitment.Form) error {
	f.m.writes++
	f.m.forms[form.ID] = *form
	return nil
}

func (f *fakeRecruitment) ListQuestions(formID uuid.UUID) ([]recruitment.Question, error) {
	var out []recruitment.Question
	for _, q := range f.m.questions {
		if q.FormID == formID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (f *fakeRecruitment) CreateQuestion(q *recruitment.Question) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	f.m.writes++
	f.m.questions[q.ID] = *q
	return nil
}

func (f *fakeRecruitment) UpdateQuestion(q *recruitment.Question) error {
	existing, ok := f.m.questions[q.ID]
	if !ok || existing.FormID != q.FormID {
		return errors.New("update of unknown question")
	}
	f.m.writes++
	f.m.questions[q.ID] = *q
	return nil
}

func (f *fakeRecruitment) DeleteQuestions(formID uuid.UUID, ids []uuid.UUID) error {
	for _, id := range ids {
		if q, ok := f.m.questions[id]; ok && q.FormID == formID {
			f.m.writes++
			delete(f.m.questions, id)
		}
	}
	return nil
}

func (f *fakeRecruitment) WithTx(*gorm.DB) repository.RecruitmentRepo { return f }

type fakeApplications struct{ m *memDB }

func (f *fakeApplications) CreateApplication(a *recruitment.Application) error {
	for _, existing := range f.m.applications {
		if existing.ProjectID == a.ProjectID && existing.UserID == a.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	f.m.writes++
	f.m.applications[a.ID] = *a
	return nil
}

func (f *fakeApplications) CreateAnswers(answers []recruitment.Answer) error {
	if f.m.failAnswers {
		f.m.failAnswers = false
		return errors.New("connection reset")
	}
	for _, a := range answers {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		f.m.writes++
		f.m.answers = append(f.m.answers, a)
	}
	return nil
}

func (f *fakeApplications) FindApplication(projectID, userID uuid.UUID) (*recruitment.Application, error) {
	for _, a := range f.m.applications {
		if a.ProjectID == projectID && a.UserID == userID {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeApplications) GetApplicationByID(id uuid.UUID) (recruitment.Application, error) {
	a, ok := f.m.applications[id]
	if !ok {
		return recruitment.Application{}, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (f *fakeApplications) records(match func(recruitment.Application) bool) []recruitment.ApplicationRecord {
	var out []recruitment.ApplicationRecord
	for _, a := range f.m.applications {
		if match(a) {
			out = append(out, recruitment.ApplicationRecord{
				Application: a,
				ProjectName: f.m.projects[a.ProjectID].Name,
			})
		}
	}
	return out
}

func (f *fakeApplications) ListApplicationsByProject(projectID uuid.UUID, status *recruitment.ApplicationStatus) ([]recruitment.ApplicationRecord, error) {
	return f.records(func(a recruitment.Application) bool {
		return a.ProjectID == projectID && (status == nil || a.Status == *status)
	}), nil
}

func (f *fakeApplications) ListApplicationsByUser(userID uuid.UUID) ([]recruitment.ApplicationRecord, error) {
	return f.records(func(a recruitment.Application) bool { return a.UserID == userID }), nil
}

func (f *fakeApplications) ListAnswers(ids []uuid.UUID) ([]recruitment.Answer, error) {
	want := map[uuid.UUID]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []recruitment.Answer
	for _, a := range f.m.answers {
		if want[a.ApplicationID] {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplications) UpdateApplicationStatus(id uuid.UUID, status recruitment.ApplicationStatus) error {
	a, ok := f.m.applications[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Status = status
	f.m.applications[id] = a
	return nil
}

func (f *fakeApplications) WithTx(*gorm.DB) repository.ApplicationRepo { return f }

type fakeAudit struct{ m *memDB }

func (f *fakeAudit) ListAuditLogs(repository.AuditFilter) ([]audit.AuditLog, error) {
	return f.m.audits, nil
}

func (f *fakeAudit) CreateAuditLog(l *audit.AuditLog) error {
	f.m.audits = append(f.m.audits, *l)
	return nil
}

func (f *fakeAudit) PurgeAuditLogs(time.Time) (int64, error) { return 0, nil }

func (f *fakeAudit) WithTx(*gorm.DB) repository.AuditRepo { return f }

type fakeSchedules struct{ m *memDB }

func (f *fakeSchedules) GetScheduleByID(id uuid.UUID) (schedule.Schedule, error) {
	sc, ok := f.m.schedules[id]
	if !ok {
		return schedule.Schedule{}, gorm.ErrRecordNotFound
	}
	return sc, nil
}

func (f *fakeSchedules) CreateSchedule(sc *schedule.Schedule) error {
	if sc.ID == uuid.Nil {
		sc.ID = uuid.New()
	}
	f.m.writes++
	f.m.schedules[sc.ID] = *sc
	return nil
}

func (f *fakeSchedules) UpdateSchedule(sc *schedule.Schedule) error {
	f.m.writes++
	f.m.schedules[sc.ID] = *sc
	return nil
}

func (f *fakeSchedules) ListSchedulesByClub(clubID uuid.UUID) ([]schedule.Schedule, error) {
	var out []schedule.Schedule
	for _, sc := range f.m.schedules {
		if sc.ClubID == clubID {
			out = append(out, sc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out, nil
}

func (f *fakeSchedules) ListCalendar(from, to *time.Time) ([]schedule.CalendarEntry, error) {
	var out []schedule.CalendarEntry
	for _, sc := range f.m.schedules {
		if from != nil && sc.EndsAt.Before(*from) {
			continue
		}
		if to != nil && sc.StartsAt.After(*to) {
			continue
		}
		out = append(out, schedule.CalendarEntry{Schedule: sc})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out, nil
}

func (f *fakeSchedules) WithTx(*gorm.DB) repository.ScheduleRepo { return f }

type fakeTasks struct{ m *memDB }

func (f *fakeTasks) GetTaskByID(id uuid.UUID) (task.Task, error) {
	t, ok := f.m.tasks[id]
	if !ok {
		return task.Task{}, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (f *fakeTasks) CreateTask(t *task.Task) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	f.m.writes++
	f.m.tasks[t.ID] = *t
	return nil
}

func (f *fakeTasks) UpdateTask(t *task.Task) error {
	f.m.writes++
	f.m.tasks[t.ID] = *t
	return nil
}

func (f *fakeTasks) ListTasksByClub(clubID uuid.UUID, status *task.Status) ([]task.TaskWithProject, error) {
	var out []task.TaskWithProject
	for _, t := range f.m.tasks {
		p := f.m.projects[t.ProjectID]
		if p.ClubID != clubID || (status != nil && t.Status != *status) {
			continue
		}
		out = append(out, task.TaskWithProject{Task: t, ProjectName: p.Name})
	}
	return out, nil
}

func (f *fakeTasks) WithTx(*gorm.DB) repository.TaskRepo { return f }
