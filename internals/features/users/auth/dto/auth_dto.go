package dto

// RegisterRequest: payload pendaftaran user baru.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Fullname string `json:"fullname" validate:"required,min=3,max=100"`
	Dob      string `json:"dob" validate:"required,datetime=2006-01-02"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest: identitas diverifikasi lewat username + tanggal
// lahir, tanpa email.
type ForgotPasswordRequest struct {
	Username string `json:"username" validate:"required"`
	Dob      string `json:"dob" validate:"required,datetime=2006-01-02"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
