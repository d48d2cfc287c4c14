package dto

import "time"

type UpsertMemoRequest struct {
	ScheduledDate Day    `json:"scheduled_date"`
	Content       string `json:"content" binding:"required"`
}

type UpdateMemoRequest struct {
	ScheduledDate *Day    `json:"scheduled_date"`
	Content       *string `json:"content"`
}

type MemoResponse struct {
	ID            string    `json:"id"`
	ScheduledDate string    `json:"scheduled_date"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ListMemosResponse struct {
	Items []MemoResponse `json:"items"`
}
