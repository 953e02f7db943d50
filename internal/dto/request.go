package dto

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type CreateBookingRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// UpdateSettingsRequest is a partial update: absent fields stay untouched.
type UpdateSettingsRequest struct {
	IsOpen     *bool   `json:"is_open,omitempty"`
	AdminEmail *string `json:"admin_email,omitempty"`
}
