package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/club"
	"github.com/linskybing/clubhub/internal/domain/project"
	"github.com/linskybing/clubhub/internal/domain/schedule"
	"github.com/linskybing/clubhub/internal/domain/task"
	"github.com/linskybing/clubhub/internal/domain/user"
	"github.com/linskybing/clubhub/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestClubSchedules(t *testing.T) {
	clubID := uuid.New()
	member := user.User{ID: uuid.New(), Email: "member@example.com"}
	owner := user.User{ID: uuid.New(), Email: "owner@example.com"}
	path := "/clubs/" + clubID.String() + "/schedules"
	start := time.Date(2026, 4, 1, 19, 0, 0, 0, time.UTC)

	expectRole := func(f fixture, u user.User, role club.Role) {
		f.clubs.EXPECT().GetClubByID(clubID).Return(club.Club{ID: clubID}, nil)
		f.clubs.EXPECT().GetMember(clubID, u.ID).
			Return(club.Member{ClubID: clubID, UserID: u.ID, Role: role, Status: club.StatusApproved}, nil)
	}

	t.Run("member lists schedules", func(t *testing.T) {
		f := setup(t)
		expectRole(f, member, club.RoleMember)
		f.schedules.EXPECT().ListSchedulesByClub(clubID).Return([]schedule.Schedule{
			{ID: uuid.New(), ClubID: clubID, Title: "OT", StartsAt: start, EndsAt: start.Add(time.Hour)},
			{ID: uuid.New(), ClubID: clubID, Title: "MT", StartsAt: start.Add(24 * time.Hour), EndsAt: start.Add(48 * time.Hour)},
		}, nil)

		w := f.do(t, http.MethodGet, path, testutils.Token(t, member), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var got []schedule.Schedule
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "OT", got[0].Title)
	})

	t.Run("outsider is forbidden", func(t *testing.T) {
		f := setup(t)
		outsider := user.User{ID: uuid.New(), Email: "x@example.com"}
		f.clubs.EXPECT().GetClubByID(clubID).Return(club.Club{ID: clubID}, nil)
		f.clubs.EXPECT().GetMember(clubID, outsider.ID).Return(club.Member{}, gorm.ErrRecordNotFound)

		w := f.do(t, http.MethodGet, path, testutils.Token(t, outsider), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("plain member cannot create", func(t *testing.T) {
		f := setup(t)
		expectRole(f, member, club.RoleMember)
		w := f.do(t, http.MethodPost, path, testutils.Token(t, member), schedule.CreateScheduleDTO{
			Title: "OT", StartsAt: start, EndsAt: start.Add(time.Hour),
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("owner creates", func(t *testing.T) {
		f := setup(t)
		expectRole(f, owner, club.RoleOwner)
		f.schedules.EXPECT().CreateSchedule(gomock.Any()).DoAndReturn(func(sc *schedule.Schedule) error {
			assert.Equal(t, owner.ID, sc.CreatedBy)
			sc.ID = uuid.New()
			return nil
		})

		w := f.do(t, http.MethodPost, path, testutils.Token(t, owner), schedule.CreateScheduleDTO{
			Title: "OT", StartsAt: start, EndsAt: start.Add(time.Hour),
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("owner sends inverted range", func(t *testing.T) {
		f := setup(t)
		expectRole(f, owner, club.RoleOwner)
		w := f.do(t, http.MethodPost, path, testutils.Token(t, owner), schedule.CreateScheduleDTO{
			Title: "OT", StartsAt: start, EndsAt: start.Add(-time.Hour),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update goes through the schedule's club", func(t *testing.T) {
		f := setup(t)
		sc := schedule.Schedule{ID: uuid.New(), ClubID: clubID, Title: "OT", StartsAt: start, EndsAt: start.Add(time.Hour)}
		f.schedules.EXPECT().GetScheduleByID(sc.ID).Return(sc, nil).Times(2)
		f.clubs.EXPECT().GetMember(clubID, owner.ID).
			Return(club.Member{ClubID: clubID, UserID: owner.ID, Role: club.RoleOwner, Status: club.StatusApproved}, nil)
		f.schedules.EXPECT().UpdateSchedule(gomock.Any()).Return(nil)

		title := "신입 OT"
		w := f.do(t, http.MethodPut, "/schedules/"+sc.ID.String(), testutils.Token(t, owner), schedule.UpdateScheduleDTO{Title: &title})
		require.Equal(t, http.StatusOK, w.Code)
		var got schedule.Schedule
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, title, got.Title)
	})

	t.Run("calendar rejects bad bound", func(t *testing.T) {
		f := setup(t)
		w := f.do(t, http.MethodGet, "/calendar?from=yesterday", testutils.Token(t, member), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestClubTasks(t *testing.T) {
	admin := user.User{ID: uuid.New(), Email: "admin@example.com", IsAdmin: true}
	p := project.Project{ID: uuid.New(), ClubID: uuid.New(), Name: "축제"}

	t.Run("list with status", func(t *testing.T) {
		f := setup(t)
		f.clubs.EXPECT().GetClubByID(p.ClubID).Return(club.Club{ID: p.ClubID}, nil)
		done := task.StatusDone
		f.tasks.EXPECT().ListTasksByClub(p.ClubID, &done).Return([]task.TaskWithProject{
			{Task: task.Task{ID: uuid.New(), ProjectID: p.ID, Title: "포스터", Status: done}, ProjectName: p.Name},
		}, nil)

		w := f.do(t, http.MethodGet, "/clubs/"+p.ClubID.String()+"/tasks?status=done", testutils.Token(t, admin), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var got []task.TaskWithProject
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "축제", got[0].ProjectName)
	})

	t.Run("bad status", func(t *testing.T) {
		f := setup(t)
		f.clubs.EXPECT().GetClubByID(p.ClubID).Return(club.Club{ID: p.ClubID}, nil)
		w := f.do(t, http.MethodGet, "/clubs/"+p.ClubID.String()+"/tasks?status=blocked", testutils.Token(t, admin), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create on project", func(t *testing.T) {
		f := setup(t)
		f.projects.EXPECT().GetProjectByID(p.ID).Return(p, nil).Times(2)
		f.tasks.EXPECT().CreateTask(gomock.Any()).DoAndReturn(func(tk *task.Task) error {
			tk.ID = uuid.New()
			return nil
		})

		w := f.do(t, http.MethodPost, "/projects/"+p.ID.String()+"/tasks", testutils.Token(t, admin), task.CreateTaskDTO{Title: "부스 설치"})
		require.Equal(t, http.StatusCreated, w.Code)
		var got task.Task
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, task.StatusTodo, got.Status)
	})

	t.Run("update unknown task", func(t *testing.T) {
		f := setup(t)
		f.tasks.EXPECT().GetTaskByID(gomock.Any()).Return(task.Task{}, gorm.ErrRecordNotFound)
		w := f.do(t, http.MethodPut, "/tasks/"+uuid.NewString(), testutils.Token(t, admin), task.UpdateTaskDTO{})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEvents(t *testing.T) {
	viewer := user.User{ID: uuid.New(), Email: "viewer@example.com"}
	e := project.Event{Project: project.Project{ID: uuid.New(), Name: "정기 공연", Visibility: project.VisibilityPublic}, ClubName: "밴드부"}

	t.Run("list", func(t *testing.T) {
		f := setup(t)
		f.projects.EXPECT().ListEvents().Return([]project.Event{e}, nil)
		w := f.do(t, http.MethodGet, "/events", testutils.Token(t, viewer), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var got []project.Event
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "밴드부", got[0].ClubName)
	})

	t.Run("detail", func(t *testing.T) {
		f := setup(t)
		f.projects.EXPECT().GetEvent(e.ID).Return(e, nil)
		w := f.do(t, http.MethodGet, "/events/"+e.ID.String(), testutils.Token(t, viewer), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("club only project is not an event", func(t *testing.T) {
		f := setup(t)
		f.projects.EXPECT().GetEvent(gomock.Any()).Return(project.Event{}, gorm.ErrRecordNotFound)
		w := f.do(t, http.MethodGet, "/events/"+uuid.NewString(), testutils.Token(t, viewer), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
