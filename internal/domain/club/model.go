package club

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

type MemberStatus string

const (
	StatusPending  MemberStatus = "pending"
	StatusApproved MemberStatus = "approved"
	StatusRejected MemberStatus = "rejected"
)

const DefaultMaxMembers = 50

type Club struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Description  *string   `json:"description" gorm:"type:text"`
	Category     string    `json:"category" gorm:"size:50;not null"`
	MaxMembers   int       `json:"max_members" gorm:"default:50"`
	IsRecruiting bool      `json:"is_recruiting" gorm:"default:false"`
	OwnerID      uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c *Club) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Member is a user's membership in a club. (club_id, user_id) is unique.
type Member struct {
	ID       uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	ClubID   uuid.UUID    `json:"club_id" gorm:"type:uuid;not null;uniqueIndex:idx_member_club_user"`
	UserID   uuid.UUID    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_member_club_user"`
	Role     Role         `json:"role" gorm:"size:20;not null;default:'member'"`
	Status   MemberStatus `json:"status" gorm:"size:20;not null;default:'pending'"`
	JoinedAt time.Time    `json:"joined_at" gorm:"autoCreateTime"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// CanManage reports whether the membership grants club management rights.
func (m Member) CanManage() bool {
	return m.Status == StatusApproved && (m.Role == RoleOwner || m.Role == RoleAdmin)
}

// MemberWithUser is a roster row joined with the member's profile.
type MemberWithUser struct {
	Member
	Name  string `json:"name"`
	Email string `json:"email"`
}
