package dto

type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=15"`
}

// LoginInput accepts either a username or an email alongside the password.
type LoginInput struct {
	Username string `json:"username" validate:"required_without=Email,omitempty,min=3"`
	Email    string `json:"email" validate:"required_without=Username,omitempty,email"`
	Password string `json:"password" validate:"required,min=8,max=15"`
}

type ResetPasswordInput struct {
	NewPassword string `json:"newPassword" validate:"required,min=8,max=15"`
}

type ResetRequestInput struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdateInput struct {
	Username string `json:"username" validate:"omitempty,min=3"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8,max=15"`
}

type DeleteInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=15"`
}

// UserOutput is the deprecated /user listing shape.
type UserOutput struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
}
