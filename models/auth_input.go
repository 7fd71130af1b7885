package models

// LoginRequest is the body of POST /auth/login and /auth/admin/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterInput carries the registration form fields. The request is
// multipart so the profile picture can ride along; the fields therefore use
// form tags rather than JSON binding.
type RegisterInput struct {
	Username   string `form:"username"`
	Password   string `form:"password"`
	FirstName  string `form:"firstName"`
	LastName   string `form:"lastName"`
	Gender     string `form:"gender"`
	Address    string `form:"address"`
	Phone      string `form:"phone"`
	Email      string `form:"email"`
	CreditCard string `form:"creditCard"`
	Role       string `form:"userType"`
}

// ChangePasswordRequest is the body of POST /auth/change-password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ProfileUpdateInput carries the editable profile fields. Multipart like
// registration so the picture can be replaced in the same request.
type ProfileUpdateInput struct {
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	Gender    string `form:"gender"`
	Address   string `form:"address"`
	Phone     string `form:"phone"`
	Email     string `form:"email"`
}
