package application_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/application"
	"github.com/linskybing/clubhub/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleService(t *testing.T) {
	silenceAudit(t)
	m := newMemDB()
	svc := application.NewScheduleService(m.repos())
	clubID, creator := uuid.New(), uuid.New()
	base := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)

	t.Run("create trims title and keeps creator", func(t *testing.T) {
		sc, err := svc.CreateSchedule(testContext(), clubID, creator, schedule.CreateScheduleDTO{
			Title: "  정기 모임 ", StartsAt: base.Add(48 * time.Hour), EndsAt: base.Add(50 * time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, "정기 모임", sc.Title)
		assert.Equal(t, creator, sc.CreatedBy)
		assert.Equal(t, clubID, sc.ClubID)
	})

	t.Run("ends before start", func(t *testing.T) {
		_, err := svc.CreateSchedule(testContext(), clubID, creator, schedule.CreateScheduleDTO{
			Title: "MT", StartsAt: base, EndsAt: base.Add(-time.Hour),
		})
		assert.ErrorIs(t, err, application.ErrScheduleTimeRange)
	})

	t.Run("blank title", func(t *testing.T) {
		_, err := svc.CreateSchedule(testContext(), clubID, creator, schedule.CreateScheduleDTO{
			Title: "   ", StartsAt: base, EndsAt: base,
		})
		assert.ErrorIs(t, err, application.ErrScheduleTitleRequired)
	})

	t.Run("list is ordered by start", func(t *testing.T) {
		_, err := svc.CreateSchedule(testContext(), clubID, creator, schedule.CreateScheduleDTO{
			Title: "OT", StartsAt: base, EndsAt: base.Add(time.Hour),
		})
		require.NoError(t, err)
		_, err = svc.CreateSchedule(testContext(), uuid.New(), creator, schedule.CreateScheduleDTO{
			Title: "other club", StartsAt: base, EndsAt: base.Add(time.Hour),
		})
		require.NoError(t, err)

		got, err := svc.ListClubSchedules(clubID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "OT", got[0].Title)
		assert.Equal(t, "정기 모임", got[1].Title)
	})

	t.Run("update validates the merged range", func(t *testing.T) {
		list, err := svc.ListClubSchedules(clubID)
		require.NoError(t, err)
		id := list[0].ID

		early := base.Add(-2 * time.Hour)
		_, err = svc.UpdateSchedule(testContext(), id, schedule.UpdateScheduleDTO{EndsAt: &early})
		assert.ErrorIs(t, err, application.ErrScheduleTimeRange)

		room := "학생회관 301호"
		sc, err := svc.UpdateSchedule(testContext(), id, schedule.UpdateScheduleDTO{Location: &room})
		require.NoError(t, err)
		require.NotNil(t, sc.Location)
		assert.Equal(t, room, *sc.Location)
		assert.Equal(t, room, *m.schedules[id].Location)
	})

	t.Run("update unknown", func(t *testing.T) {
		_, err := svc.UpdateSchedule(testContext(), uuid.New(), schedule.UpdateScheduleDTO{})
		assert.ErrorIs(t, err, application.ErrScheduleNotFound)
	})

	t.Run("calendar window", func(t *testing.T) {
		from, to := base.Add(24*time.Hour), base.Add(72*time.Hour)
		got, err := svc.Calendar(&from, &to)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "정기 모임", got[0].Title)

		_, err = svc.Calendar(&to, &from)
		assert.ErrorIs(t, err, application.ErrScheduleTimeRange)
	})
}
