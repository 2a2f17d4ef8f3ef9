package dto

type SendOTPRequest struct {
	Phone string `json:"phone"`
}

type SendOTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// DevOTP is only populated when OTP_DEV_ECHO is enabled.
	DevOTP string `json:"dev_otp,omitempty"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

type UserResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Role             string `json:"role"`
	Language         string `json:"language"`
	District         string `json:"district,omitempty"`
	State            string `json:"state,omitempty"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	IsNew            bool   `json:"is_new,omitempty"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
	Message string       `json:"message"`
}

type UpdateProfileRequest struct {
	Name             string `json:"name"`
	DateOfBirth      string `json:"date_of_birth"`
	Language         string `json:"language"`
	District         string `json:"district"`
	EmergencyContact string `json:"emergency_contact"`
}
