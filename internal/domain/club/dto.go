package club

type CreateClubDTO struct {
	Name         string  `json:"name" binding:"required,min=2,max=100"`
	Description  *string `json:"description,omitempty"`
	Category     string  `json:"category" binding:"required"`
	MaxMembers   *int    `json:"max_members,omitempty" binding:"omitempty,min=2,max=500"`
	IsRecruiting bool    `json:"is_recruiting"`
}

type UpdateMemberDTO struct {
	Status *MemberStatus `json:"status,omitempty" binding:"omitempty,oneof=approved rejected"`
	Role   *Role         `json:"role,omitempty" binding:"omitempty,oneof=admin member"`
}
