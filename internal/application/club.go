package application

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/club"
	"github.com/linskybing/clubhub/internal/repository"
	"github.com/linskybing/clubhub/pkg/utils"
	"gorm.io/gorm"
)

var (
	ErrClubNotFound      = errors.New("club not found")
	ErrMemberNotFound    = errors.New("member not found")
	ErrAlreadyMember     = errors.New("already a member of this club")
	ErrClubNotRecruiting = errors.New("club is not recruiting")
	ErrClubFull          = errors.New("club has reached its member limit")
	ErrOwnerImmutable    = errors.New("the owner membership cannot be changed")
)

type ClubService struct {
	Repos *repository.Repos
}

func NewClubService(repos *repository.Repos) *ClubService {
	return &ClubService{
		Repos: repos,
	}
}

func (s *ClubService) ListClubs(category string) ([]club.Club, error) {
	return s.Repos.Club.ListClubs(category)
}

func (s *ClubService) GetClub(id uuid.UUID) (club.Club, error) {
	c, err := s.Repos.Club.GetClubByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return club.Club{}, ErrClubNotFound
	}
	return c, err
}

// CreateClub stores the club and the creator's owner membership together.
func (s *ClubService) CreateClub(c *gin.Context, ownerID uuid.UUID, input club.CreateClubDTO) (club.Club, error) {
	cl := club.Club{
		Name:         strings.TrimSpace(input.Name),
		Description:  input.Description,
		Category:     input.Category,
		MaxMembers:   club.DefaultMaxMembers,
		IsRecruiting: input.IsRecruiting,
		OwnerID:      ownerID,
	}
	if input.MaxMembers != nil {
		cl.MaxMembers = *input.MaxMembers
	}

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Club.CreateClub(&cl); err != nil {
			return err
		}
		return tx.Club.CreateMember(&club.Member{
			ClubID: cl.ID,
			UserID: ownerID,
			Role:   club.RoleOwner,
			Status: club.StatusApproved,
		})
	})
	if err != nil {
		return club.Club{}, err
	}

	utils.LogAuditWithConsole(c, "create", "club", cl.ID.String(), nil, cl, "club created", s.Repos.Audit)
	return cl, nil
}

// JoinClub files a pending membership request.
func (s *ClubService) JoinClub(clubID, userID uuid.UUID) (club.Member, error) {
	cl, err := s.GetClub(clubID)
	if err != nil {
		return club.Member{}, err
	}
	if !cl.IsRecruiting {
		return club.Member{}, ErrClubNotRecruiting
	}

	if _, err := s.Repos.Club.GetMember(clubID, userID); err == nil {
		return club.Member{}, ErrAlreadyMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return club.Member{}, err
	}

	m := club.Member{
		ClubID: clubID,
		UserID: userID,
		Role:   club.RoleMember,
		Status: club.StatusPending,
	}
	if err := s.Repos.Club.CreateMember(&m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return club.Member{}, ErrAlreadyMember
		}
		return club.Member{}, err
	}
	return m, nil
}

func (s *ClubService) ListMembers(clubID uuid.UUID) ([]club.MemberWithUser, error) {
	return s.Repos.Club.ListMembers(clubID)
}

// UpdateMember approves, rejects or changes the role of a member.
func (s *ClubService) UpdateMember(c *gin.Context, clubID, memberID uuid.UUID, input club.UpdateMemberDTO) (club.Member, error) {
	m, err := s.Repos.Club.GetMemberByID(memberID)
	if err != nil || m.ClubID != clubID {
		return club.Member{}, ErrMemberNotFound
	}
	if m.Role == club.RoleOwner {
		return club.Member{}, ErrOwnerImmutable
	}
	old := m

	if input.Status != nil && *input.Status == club.StatusApproved && m.Status != club.StatusApproved {
		cl, err := s.GetClub(clubID)
		if err != nil {
			return club.Member{}, err
		}
		n, err := s.Repos.Club.CountApprovedMembers(clubID)
		if err != nil {
			return club.Member{}, err
		}
		if n >= int64(cl.MaxMembers) {
			return club.Member{}, ErrClubFull
		}
	}

	if input.Status != nil {
		m.Status = *input.Status
	}
	if input.Role != nil {
		m.Role = *input.Role
	}
	if err := s.Repos.Club.UpdateMember(&m); err != nil {
		return club.Member{}, err
	}

	utils.LogAuditWithConsole(c, "update", "club_member", m.ID.String(), old, m, "membership updated", s.Repos.Audit)
	return m, nil
}

// IsApprovedMember reports whether userID is an approved member of clubID.
func (s *ClubService) IsApprovedMember(clubID, userID uuid.UUID) (bool, error) {
	return isApprovedMember(s.Repos, clubID, userID)
}

func isApprovedMember(repos *repository.Repos, clubID, userID uuid.UUID) (bool, error) {
	m, err := repos.Club.GetMember(clubID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return m.Status == club.StatusApproved, nil
}
