package domain

import "time"

// User is an account created on first Kakao login.
type User struct {
	ID           string
	KakaoID      string
	Email        string
	Nickname     string
	ProfileImage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
