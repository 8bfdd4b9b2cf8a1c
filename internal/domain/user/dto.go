package user

type CreateUserInput struct {
	Email    string `json:"email" form:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" form:"password" binding:"required,min=6" example:"password123"`
	Name     string `json:"name" form:"name" binding:"required,max=100" example:"홍길동"`
}

type LoginInput struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateUserInput struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}
