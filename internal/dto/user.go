package dto

import "time"

// UpdateProfileRequest is the onboarding body of PATCH /users/me.
type UpdateProfileRequest struct {
	Nickname *string `json:"nickname"`
}

// UserResponse is returned when user info is needed (e.g. /auth/me).
type UserResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Nickname     string    `json:"nickname"`
	ProfileImage string    `json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
}
