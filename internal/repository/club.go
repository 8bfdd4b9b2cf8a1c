package repository

import (
	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/club"
	"gorm.io/gorm"
)

type ClubRepo interface {
	ListClubs(category string) ([]club.Club, error)
	GetClubByID(id uuid.UUID) (club.Club, error)
	CreateClub(c *club.Club) error
	CreateMember(m *club.Member) error
	GetMember(clubID, userID uuid.UUID) (club.Member, error)
	GetMemberByID(id uuid.UUID) (club.Member, error)
	ListMembers(clubID uuid.UUID) ([]club.MemberWithUser, error)
	CountApprovedMembers(clubID uuid.UUID) (int64, error)
	UpdateMember(m *club.Member) error
	WithTx(tx *gorm.DB) ClubRepo
}

type DBClubRepo struct {
	db *gorm.DB
}

func NewClubRepo(db *gorm.DB) *DBClubRepo {
	return &DBClubRepo{
		db: db,
	}
}

func (r *DBClubRepo) ListClubs(category string) ([]club.Club, error) {
	var clubs []club.Club
	query := r.db.Model(&club.Club{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Order("created_at DESC").Find(&clubs).Error
	return clubs, err
}

func (r *DBClubRepo) GetClubByID(id uuid.UUID) (club.Club, error) {
	var c club.Club
	err := r.db.Where("id = ?", id).First(&c).Error
	return c, err
}

func (r *DBClubRepo) CreateClub(c *club.Club) error {
	return r.db.Create(c).Error
}

func (r *DBClubRepo) CreateMember(m *club.Member) error {
	return r.db.Create(m).Error
}

func (r *DBClubRepo) GetMember(clubID, userID uuid.UUID) (club.Member, error) {
	var m club.Member
	err := r.db.Where("club_id = ? AND user_id = ?", clubID, userID).First(&m).Error
	return m, err
}

func (r *DBClubRepo) GetMemberByID(id uuid.UUID) (club.Member, error) {
	var m club.Member
	err := r.db.Where("id = ?", id).First(&m).Error
	return m, err
}

func (r *DBClubRepo) ListMembers(clubID uuid.UUID) ([]club.MemberWithUser, error) {
	var rows []club.MemberWithUser
	err := r.db.Table("members m").
		Select("m.*, u.name AS name, u.email AS email").
		Joins("JOIN users u ON u.id = m.user_id").
		Where("m.club_id = ?", clubID).
		Order("m.joined_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *DBClubRepo) CountApprovedMembers(clubID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.Model(&club.Member{}).
		Where("club_id = ? AND status = ?", clubID, club.StatusApproved).
		Count(&n).Error
	return n, err
}

func (r *DBClubRepo) UpdateMember(m *club.Member) error {
	return r.db.Model(&club.Member{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{"role": m.Role, "status": m.Status}).Error
}

func (r *DBClubRepo) WithTx(tx *gorm.DB) ClubRepo {
	if tx == nil {
		return r
	}
	return &DBClubRepo{
		db: tx,
	}
}
