package repository_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/club"
	"github.com/linskybing/clubhub/internal/domain/project"
	"github.com/linskybing/clubhub/internal/domain/recruitment"
	"github.com/linskybing/clubhub/internal/domain/user"
	"github.com/linskybing/clubhub/internal/repository"
	"github.com/linskybing/clubhub/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type seed struct {
	repos   *repository.Repos
	user    user.User
	project project.Project
}

func setupSeed(t *testing.T) seed {
	if testing.Short() {
		t.Skip("integration test")
	}
	gdb := testutils.SetupPostgres(t)
	repos := repository.NewRepositories(gdb)

	u := user.User{Email: uuid.NewString() + "@test.com", Name: "홍길동", Password: "x"}
	require.NoError(t, repos.User.CreateUser(&u))

	cl := club.Club{Name: "밴드부", Category: "music", MaxMembers: 10, OwnerID: u.ID}
	require.NoError(t, repos.Club.CreateClub(&cl))

	p := project.Project{ClubID: cl.ID, Name: "공연", Status: project.StatusPlanning, Visibility: project.VisibilityPublic, CreatedBy: u.ID}
	require.NoError(t, repos.Project.CreateProject(&p))

	return seed{repos: repos, user: u, project: p}
}

func TestRecruitmentRepoIntegration(t *testing.T) {
	s := setupSeed(t)
	rec := s.repos.Recruitment

	none, err := rec.FindFormByProjectID(s.project.ID)
	require.NoError(t, err)
	assert.Nil(t, none)

	form := recruitment.Form{ProjectID: s.project.ID}
	require.NoError(t, rec.CreateForm(&form))

	t.Run("one form per project", func(t *testing.T) {
		err := rec.CreateForm(&recruitment.Form{ProjectID: s.project.ID})
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("questions keep options and order", func(t *testing.T) {
		q0 := recruitment.Question{FormID: form.ID, SortOrder: 1, Type: recruitment.TypeCheckbox, Label: "분야", Options: recruitment.EncodeOptions(nil)}
		q1 := recruitment.Question{FormID: form.ID, SortOrder: 0, Type: recruitment.TypeShortText, Label: "이름", Required: true}
		require.NoError(t, rec.CreateQuestion(&q0))
		require.NoError(t, rec.CreateQuestion(&q1))

		qs, err := rec.ListQuestions(form.ID)
		require.NoError(t, err)
		require.Len(t, qs, 2)
		assert.Equal(t, "이름", qs[0].Label)
		assert.Nil(t, qs[0].Options)
		assert.JSONEq(t, `[]`, string(qs[1].Options))

		require.NoError(t, rec.DeleteQuestions(form.ID, []uuid.UUID{q0.ID}))
		qs, err = rec.ListQuestions(form.ID)
		require.NoError(t, err)
		assert.Len(t, qs, 1)
	})

	t.Run("positions are unique per form at commit", func(t *testing.T) {
		qs, err := rec.ListQuestions(form.ID)
		require.NoError(t, err)
		require.Len(t, qs, 1)

		clash := recruitment.Question{FormID: form.ID, SortOrder: qs[0].SortOrder, Type: recruitment.TypeShortText, Label: "학번"}
		assert.ErrorIs(t, rec.CreateQuestion(&clash), gorm.ErrDuplicatedKey)

		second := recruitment.Question{FormID: form.ID, SortOrder: 1, Type: recruitment.TypeShortText, Label: "학번"}
		require.NoError(t, rec.CreateQuestion(&second))

		// swapping two positions passes because the check is deferred
		err = s.repos.ExecTx(func(tx *repository.Repos) error {
			a, b := qs[0], second
			a.SortOrder, b.SortOrder = 1, 0
			if err := tx.Recruitment.UpdateQuestion(&a); err != nil {
				return err
			}
			return tx.Recruitment.UpdateQuestion(&b)
		})
		require.NoError(t, err)

		qs, err = rec.ListQuestions(form.ID)
		require.NoError(t, err)
		require.Len(t, qs, 2)
		assert.Equal(t, "학번", qs[0].Label)
		assert.Equal(t, "이름", qs[1].Label)

		require.NoError(t, rec.DeleteQuestions(form.ID, []uuid.UUID{second.ID}))
	})

	t.Run("transaction rolls back every write", func(t *testing.T) {
		boom := errors.New("boom")
		err := s.repos.ExecTx(func(tx *repository.Repos) error {
			if err := tx.Recruitment.CreateQuestion(&recruitment.Question{FormID: form.ID, Type: recruitment.TypeParagraphLong, Label: "자기소개"}); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		qs, err := rec.ListQuestions(form.ID)
		require.NoError(t, err)
		assert.Len(t, qs, 1)
	})
}

func TestApplicationRepoIntegration(t *testing.T) {
	s := setupSeed(t)
	apps := s.repos.Application

	app := recruitment.Application{ProjectID: s.project.ID, UserID: s.user.ID, Status: recruitment.ApplicationPending}
	require.NoError(t, apps.CreateApplication(&app))

	t.Run("second application is a duplicate", func(t *testing.T) {
		err := apps.CreateApplication(&recruitment.Application{ProjectID: s.project.ID, UserID: s.user.ID, Status: recruitment.ApplicationPending})
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("records join applicant and project", func(t *testing.T) {
		require.NoError(t, apps.CreateAnswers([]recruitment.Answer{
			{ApplicationID: app.ID, QuestionID: uuid.New(), Value: recruitment.Text("홍길동").Column()},
		}))

		rows, err := apps.ListApplicationsByProject(s.project.ID, nil)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "홍길동", rows[0].UserName)
		assert.Equal(t, "공연", rows[0].ProjectName)

		answers, err := apps.ListAnswers([]uuid.UUID{app.ID})
		require.NoError(t, err)
		require.Len(t, answers, 1)
		assert.JSONEq(t, `"홍길동"`, string(answers[0].Value))
	})

	t.Run("status update", func(t *testing.T) {
		require.NoError(t, apps.UpdateApplicationStatus(app.ID, recruitment.ApplicationApproved))
		approved := recruitment.ApplicationApproved
		rows, err := apps.ListApplicationsByProject(s.project.ID, &approved)
		require.NoError(t, err)
		assert.Len(t, rows, 1)

		err = apps.UpdateApplicationStatus(uuid.New(), recruitment.ApplicationRejected)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
