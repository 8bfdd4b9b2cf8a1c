package application_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/application"
	"github.com/linskybing/clubhub/internal/domain/project"
	"github.com/linskybing/clubhub/internal/domain/recruitment"
	"github.com/linskybing/clubhub/internal/repository"
	"github.com/linskybing/clubhub/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// silenceAudit replaces the async audit writer for the duration of a test.
func silenceAudit(t *testing.T) {
	t.Helper()
	orig := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = orig })
}

func testContext() *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c
}

func setupRecruitment(t *testing.T) (*application.RecruitmentService, *memDB, project.Project) {
	silenceAudit(t)
	m := newMemDB()
	p := m.addProject(project.Project{Name: "해커톤"})
	return application.NewRecruitmentService(m.repos()), m, p
}

func draftLabels(d *recruitment.Draft) []string {
	out := make([]string, 0, d.Len())
	for _, q := range d.Questions {
		out = append(out, q.Label)
	}
	return out
}

func TestRecruitmentLoad(t *testing.T) {
	svc, _, p := setupRecruitment(t)

	t.Run("no form is an empty draft", func(t *testing.T) {
		d, err := svc.Load(p.ID)
		require.NoError(t, err)
		assert.Nil(t, d.FormID)
		assert.Equal(t, 0, d.Len())
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := svc.Load(uuid.New())
		assert.ErrorIs(t, err, application.ErrProjectNotFound)
	})
}

func TestRecruitmentSave(t *testing.T) {
	t.Run("first save creates form and positions", func(t *testing.T) {
		svc, m, p := setupRecruitment(t)
		d := &recruitment.Draft{Title: "모집 공고"}
		_, _ = d.AddQuestion(recruitment.TypeShortText)
		_, _ = d.AddQuestion(recruitment.TypeCheckbox)
		_, _ = d.AddQuestion(recruitment.TypeSelect)
		d.Questions[0].Label = "이름"
		d.Questions[2].Options = nil

		saved, err := svc.Save(testContext(), p.ID, d)
		require.NoError(t, err)
		require.NotNil(t, saved.FormID)
		require.Len(t, m.forms, 1)

		stored := m.formQuestions(p.ID)
		require.Len(t, stored, 3)
		for i, q := range stored {
			assert.Equal(t, i, q.SortOrder)
			assert.Equal(t, *saved.FormID, q.FormID)
		}
		assert.Equal(t, "이름", stored[0].Label)
		assert.Nil(t, stored[0].Options)
		assert.Equal(t, recruitment.UntitledLabel, stored[1].Label)
		assert.JSONEq(t, `["옵션 1"]`, string(stored[1].Options))
		assert.JSONEq(t, `[]`, string(stored[2].Options))

		for _, q := range saved.Questions {
			_, persisted := q.Key.(recruitment.PersistedKey)
			assert.True(t, persisted)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		svc, _, p := setupRecruitment(t)
		d := &recruitment.Draft{Title: "t", Description: "desc"}
		_, _ = d.AddQuestion(recruitment.TypeRadio)
		d.Questions[0].Label = "학년"
		d.Questions[0].Required = false
		d.Questions[0].Options = []string{"1", "2", "2"}

		_, err := svc.Save(testContext(), p.ID, d)
		require.NoError(t, err)

		loaded, err := svc.Load(p.ID)
		require.NoError(t, err)
		require.Equal(t, 1, loaded.Len())
		q := loaded.Questions[0]
		assert.Equal(t, recruitment.TypeRadio, q.Type)
		assert.Equal(t, "학년", q.Label)
		assert.False(t, q.Required)
		assert.Equal(t, []string{"1", "2", "2"}, q.Options)
		assert.Equal(t, "desc", loaded.Description)
	})

	t.Run("move then remove keeps positions contiguous", func(t *testing.T) {
		svc, m, p := setupRecruitment(t)
		d := &recruitment.Draft{}
		for _, label := range []string{"q0", "q1", "q2"} {
			pos, _ := d.AddQuestion(recruitment.TypeShortText)
			d.Questions[pos].Label = label
		}
		_, err := svc.Save(testContext(), p.ID, d)
		require.NoError(t, err)

		loaded, err := svc.Load(p.ID)
		require.NoError(t, err)
		require.NoError(t, loaded.MoveQuestion(2, recruitment.Up))
		require.NoError(t, loaded.RemoveQuestion(2))
		_, err = svc.Save(testContext(), p.ID, loaded)
		require.NoError(t, err)

		stored := m.formQuestions(p.ID)
		require.Len(t, stored, 2)
		assert.Equal(t, "q0", stored[0].Label)
		assert.Equal(t, 0, stored[0].SortOrder)
		assert.Equal(t, "q2", stored[1].Label)
		assert.Equal(t, 1, stored[1].SortOrder)
	})

	t.Run("foreign question rejected before writes", func(t *testing.T) {
		svc, m, p := setupRecruitment(t)
		d := &recruitment.Draft{Questions: []recruitment.DraftQuestion{
			{Key: recruitment.PersistedKey{ID: uuid.New()}, Type: recruitment.TypeShortText},
		}}
		_, err := svc.Save(testContext(), p.ID, d)
		assert.ErrorIs(t, err, recruitment.ErrUnknownQuestion)
		assert.True(t, application.IsDraftError(err))
		assert.Equal(t, 0, m.writes)
		assert.Empty(t, m.forms)
	})

	t.Run("second save updates header", func(t *testing.T) {
		svc, m, p := setupRecruitment(t)
		_, err := svc.Save(testContext(), p.ID, &recruitment.Draft{Title: "a"})
		require.NoError(t, err)
		_, err = svc.Save(testContext(), p.ID, &recruitment.Draft{Title: "", PosterURL: "uploads/x.png"})
		require.NoError(t, err)

		require.Len(t, m.forms, 1)
		for _, f := range m.forms {
			assert.Nil(t, f.Title)
			require.NotNil(t, f.PosterURL)
			assert.Equal(t, "uploads/x.png", *f.PosterURL)
		}
	})
}

func TestRecruitmentMutate(t *testing.T) {
	svc, m, p := setupRecruitment(t)
	c := testContext()

	d, err := svc.Mutate(c, p.ID, func(d *recruitment.Draft) error {
		_, err := d.AddQuestion(recruitment.TypeShortText)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, 1, d.Len())

	d, err = svc.Mutate(c, p.ID, func(d *recruitment.Draft) error {
		_, err := d.AddQuestion(recruitment.TypeCheckbox)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []string{recruitment.UntitledLabel, recruitment.UntitledLabel}, draftLabels(d))

	_, err = svc.Mutate(c, p.ID, func(d *recruitment.Draft) error {
		_, err := d.AddOption(1)
		return err
	})
	require.NoError(t, err)
	stored := m.formQuestions(p.ID)
	assert.JSONEq(t, `["옵션 1","옵션 2"]`, string(stored[1].Options))

	t.Run("rejected edit writes nothing", func(t *testing.T) {
		before := m.writes
		_, err := svc.Mutate(c, p.ID, func(d *recruitment.Draft) error {
			return d.RemoveQuestion(7)
		})
		assert.ErrorIs(t, err, recruitment.ErrPositionRange)
		assert.Equal(t, before, m.writes)
	})

	t.Run("move down then up", func(t *testing.T) {
		_, err := svc.Mutate(c, p.ID, func(d *recruitment.Draft) error {
			return d.MoveQuestion(0, recruitment.Down)
		})
		require.NoError(t, err)
		stored := m.formQuestions(p.ID)
		assert.Equal(t, recruitment.TypeCheckbox, stored[0].Type)
		assert.Equal(t, recruitment.TypeShortText, stored[1].Type)
	})
}
