package dto

type RegisterDTO struct {
	Name     string `json:"name" binding:"required" validate:"min=1,max=255"`
	Username string `json:"username" binding:"required" validate:"min=1,max=255"`
	Email    string `json:"email" binding:"required" validate:"email"`
	Password string `json:"password" binding:"required" validate:"min=8"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required" validate:"email"`
	Password string `json:"password" binding:"required"`
}

type TokenDTO struct {
	Token string `json:"token"`
}

type ForgotPasswordDTO struct {
	Email string `json:"email" binding:"required" validate:"email"`
}

type RecoverPasswordDTO struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required" validate:"min=8"`
}

type ChangePasswordDTO struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required" validate:"min=8"`
}
