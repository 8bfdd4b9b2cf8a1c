package mock

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/club"
	"github.com/linskybing/clubhub/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ repository.UserRepo        = (*MockUserRepo)(nil)
	_ repository.ClubRepo        = (*MockClubRepo)(nil)
	_ repository.ProjectRepo     = (*MockProjectRepo)(nil)
	_ repository.RecruitmentRepo = (*MockRecruitmentRepo)(nil)
	_ repository.ApplicationRepo = (*MockApplicationRepo)(nil)
	_ repository.AuditRepo       = (*MockAuditRepo)(nil)
	_ repository.ScheduleRepo    = (*MockScheduleRepo)(nil)
	_ repository.TaskRepo        = (*MockTaskRepo)(nil)
)

func TestAuditPurgeRecorder(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMockAuditRepo(ctrl)
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	m.EXPECT().PurgeAuditLogs(cutoff).Return(int64(3), nil)
	n, err := m.PurgeAuditLogs(cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestClubMemberRecorders(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMockClubRepo(ctrl)
	member := &club.Member{ID: uuid.New()}

	m.EXPECT().CreateMember(member).Return(nil)
	m.EXPECT().UpdateMember(member).Return(nil)
	assert.NoError(t, m.CreateMember(member))
	assert.NoError(t, m.UpdateMember(member))
}
