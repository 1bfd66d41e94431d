package dto

import (
	"time"

	"chatdeck.app/backend/internal/model"
)

type SignupRequest struct {
	MobileNumber string  `json:"mobile_number" binding:"required,min=10,max=15"`
	Password     string  `json:"password" binding:"required,min=8,max=128"`
	Email        *string `json:"email,omitempty" binding:"omitempty,email,max=255"`
	FullName     *string `json:"full_name,omitempty" binding:"omitempty,max=255"`
}

type SendOTPRequest struct {
	MobileNumber string `json:"mobile_number" binding:"required,min=10,max=15"`
}

// SendOTPResponse carries the code directly. There is no SMS provider;
// the response body is the delivery channel.
type SendOTPResponse struct {
	OTP string `json:"otp"`
}

type VerifyOTPRequest struct {
	MobileNumber string `json:"mobile_number" binding:"required,min=10,max=15"`
	OTP          string `json:"otp" binding:"required,len=6"`
}

type VerifyOTPResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

type ResetPasswordRequest struct {
	MobileNumber string `json:"mobile_number" binding:"required,min=10,max=15"`
	OTP          string `json:"otp" binding:"required,len=6"`
	NewPassword  string `json:"new_password" binding:"required,min=8,max=128"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

type UserResponse struct {
	ID           int64     `json:"id,string"`
	MobileNumber string    `json:"mobile_number"`
	Email        *string   `json:"email,omitempty"`
	FullName     *string   `json:"full_name,omitempty"`
	Confirmed    bool      `json:"confirmed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		MobileNumber: u.MobileNumber,
		Email:        u.Email,
		FullName:     u.FullName,
		Confirmed:    u.Confirmed,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
