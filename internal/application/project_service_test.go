package application_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/application"
	"github.com/linskybing/clubhub/internal/domain/club"
	"github.com/linskybing/clubhub/internal/domain/project"
	"github.com/linskybing/clubhub/internal/repository"
	"github.com/linskybing/clubhub/internal/repository/mock"
	"github.com/linskybing/clubhub/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProjectMocks(t *testing.T) (*application.ProjectService, *mock.MockProjectRepo, *mock.MockClubRepo) {
	silenceAudit(t)
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProject := mock.NewMockProjectRepo(ctrl)
	mockClub := mock.NewMockClubRepo(ctrl)
	mockAudit := mock.NewMockAuditRepo(ctrl)

	repos := &repository.Repos{
		Project: mockProject,
		Club:    mockClub,
		Audit:   mockAudit,
	}
	return application.NewProjectService(repos), mockProject, mockClub
}

func TestProjectServiceCRUD(t *testing.T) {
	svc, mockProject, _ := setupProjectMocks(t)
	clubID, creator := uuid.New(), uuid.New()

	t.Run("CreateProject success", func(t *testing.T) {
		mockProject.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *project.Project) error {
			p.ID = uuid.New()
			return nil
		})

		p, err := svc.CreateProject(testContext(), clubID, creator, project.CreateProjectDTO{Name: "  웹 개발  "})
		require.NoError(t, err)
		assert.Equal(t, "웹 개발", p.Name)
		assert.Equal(t, project.StatusPlanning, p.Status)
		assert.Equal(t, project.VisibilityClubOnly, p.Visibility)
		assert.Equal(t, creator, p.CreatedBy)
	})

	t.Run("CreateProject blank name", func(t *testing.T) {
		_, err := svc.CreateProject(testContext(), clubID, creator, project.CreateProjectDTO{Name: "   "})
		assert.ErrorIs(t, err, application.ErrProjectNameRequired)
	})

	t.Run("CreateProject end before start", func(t *testing.T) {
		start := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
		end := start.Add(-time.Hour)
		_, err := svc.CreateProject(testContext(), clubID, creator, project.CreateProjectDTO{Name: "x", StartsAt: &start, EndsAt: &end})
		assert.ErrorIs(t, err, application.ErrInvalidSchedule)
	})

	t.Run("UpdateProject", func(t *testing.T) {
		id := uuid.New()
		mockProject.EXPECT().GetProjectByID(id).Return(project.Project{ID: id, ClubID: clubID, Name: "old", Status: project.StatusPlanning}, nil)
		mockProject.EXPECT().UpdateProject(gomock.Any()).Return(nil)

		status := project.StatusInProgress
		p, err := svc.UpdateProject(testContext(), id, project.UpdateProjectDTO{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, project.StatusInProgress, p.Status)
		assert.Equal(t, "old", p.Name)
	})

	t.Run("GetProject not found", func(t *testing.T) {
		mockProject.EXPECT().GetProjectByID(gomock.Any()).Return(project.Project{}, gorm.ErrRecordNotFound)
		_, err := svc.GetProject(uuid.New())
		assert.ErrorIs(t, err, application.ErrProjectNotFound)
	})
}

func TestGetVisibleProject(t *testing.T) {
	svc, mockProject, mockClub := setupProjectMocks(t)
	clubID := uuid.New()
	hidden := project.Project{ID: uuid.New(), ClubID: clubID, Visibility: project.VisibilityClubOnly}
	outsider := session.User{ID: uuid.New()}

	t.Run("outsider", func(t *testing.T) {
		mockProject.EXPECT().GetProjectByID(hidden.ID).Return(hidden, nil)
		mockClub.EXPECT().GetMember(clubID, outsider.ID).Return(club.Member{}, gorm.ErrRecordNotFound)
		_, err := svc.GetVisibleProject(hidden.ID, outsider)
		assert.ErrorIs(t, err, application.ErrProjectNotFound)
	})

	t.Run("pending member", func(t *testing.T) {
		mockProject.EXPECT().GetProjectByID(hidden.ID).Return(hidden, nil)
		mockClub.EXPECT().GetMember(clubID, outsider.ID).Return(club.Member{Status: club.StatusPending}, nil)
		_, err := svc.GetVisibleProject(hidden.ID, outsider)
		assert.ErrorIs(t, err, application.ErrProjectNotFound)
	})

	t.Run("admin", func(t *testing.T) {
		mockProject.EXPECT().GetProjectByID(hidden.ID).Return(hidden, nil)
		p, err := svc.GetVisibleProject(hidden.ID, session.User{ID: uuid.New(), IsAdmin: true})
		require.NoError(t, err)
		assert.Equal(t, hidden.ID, p.ID)
	})
}

func TestListClubProjects(t *testing.T) {
	svc, mockProject, mockClub := setupProjectMocks(t)
	clubID := uuid.New()
	all := []project.Project{
		{ID: uuid.New(), ClubID: clubID, Visibility: project.VisibilityClubOnly},
		{ID: uuid.New(), ClubID: clubID, Visibility: project.VisibilityPublic},
	}
	viewer := session.User{ID: uuid.New()}

	mockProject.EXPECT().ListProjectsByClub(clubID).Return(all, nil).Times(2)

	mockClub.EXPECT().GetMember(clubID, viewer.ID).Return(club.Member{}, gorm.ErrRecordNotFound)
	got, err := svc.ListClubProjects(clubID, viewer)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, project.VisibilityPublic, got[0].Visibility)

	mockClub.EXPECT().GetMember(clubID, viewer.ID).Return(club.Member{Status: club.StatusApproved}, nil)
	got, err = svc.ListClubProjects(clubID, viewer)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
