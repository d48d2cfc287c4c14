package dto

import "time"

type CreatePassedCertRequest struct {
	CertID     string `json:"cert_id" binding:"required"`
	PassedDate Day    `json:"passed_date"`
	Score      *int   `json:"score"`
	Type       string `json:"type" binding:"required,oneof=written practical final"`
	Memo       string `json:"memo"`
}

// UpdatePassedCertRequest patches a record. ClearScore removes the score.
type UpdatePassedCertRequest struct {
	CertID     *string `json:"cert_id"`
	PassedDate *Day    `json:"passed_date"`
	Score      *int    `json:"score"`
	ClearScore bool    `json:"clear_score"`
	Type       *string `json:"type" binding:"omitempty,oneof=written practical final"`
	Memo       *string `json:"memo"`
}

type PassedCertResponse struct {
	ID         string    `json:"id"`
	CertID     string    `json:"cert_id"`
	CertName   string    `json:"cert_name"`
	PassedDate string    `json:"passed_date"`
	Score      *int      `json:"score"`
	Type       string    `json:"type"`
	Memo       string    `json:"memo"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ListPassedCertsResponse struct {
	Items []PassedCertResponse `json:"items"`
}
