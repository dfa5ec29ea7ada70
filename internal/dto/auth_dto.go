package dto

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8,max=20"`
}

type LoginResponse struct {
	ID    uint   `json:"id"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

type ResetPasswordOTPRequest struct {
	Email       string `json:"email" form:"email" validate:"required,email"`
	OTP         string `json:"otp" form:"otp" validate:"required,len=6,number"`
	NewPassword string `json:"new_password" form:"new_password" validate:"required,min=8,max=20"`
}

type ChangePasswordRequest struct {
	Email       string `json:"email" form:"email" validate:"required,email"`
	OldPassword string `json:"old_password" form:"old_password" validate:"required,min=8,max=20"`
	NewPassword string `json:"new_password" form:"new_password" validate:"required,min=8,max=20"`
}
