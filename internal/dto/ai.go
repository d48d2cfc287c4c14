package dto

import (
	"time"

	"qbit/internal/calendar"
)

type GenerateRequest struct {
	Prompt        string `json:"prompt" binding:"required"`
	SystemMessage string `json:"system_message"`
}

type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1,dive"`
}

type TextResponse struct {
	Text string `json:"text"`
}

type RecommendRequest struct {
	Age            *int   `json:"age" binding:"omitempty,min=0,max=150"`
	Education      string `json:"education"`
	Field          string `json:"field"`
	Experience     string `json:"experience"`
	Goal           string `json:"goal"`
	AdditionalInfo string `json:"additional_info"`
}

type RecommendationItem struct {
	CertID         string `json:"cert_id"`
	Name           string `json:"name"`
	Reason         string `json:"reason"`
	Difficulty     string `json:"difficulty"`
	ExpectedPeriod string `json:"expected_period"`
	MatchScore     int    `json:"match_score"`
}

type RecommendResponse struct {
	Recommendations []RecommendationItem `json:"recommendations"`
	Summary         string               `json:"summary"`
	AIMessage       string               `json:"ai_message"`
}

type WeeklyReportRequest struct {
	SundayDate Day  `json:"sunday_date"`
	Refresh    bool `json:"refresh"`
}

type WeeklyReportResponse struct {
	ID                   string              `json:"id"`
	WeekStart            string              `json:"week_start"`
	WeekEnd              string              `json:"week_end"`
	TotalTodos           int                 `json:"total_todos"`
	CompletedTodos       int                 `json:"completed_todos"`
	WeeklyCompletionRate float64             `json:"weekly_completion_rate"`
	DailyStats           []calendar.DayStats `json:"daily_stats"`
	Summary              string              `json:"summary"`
	Achievements         []string            `json:"achievements"`
	Improvements         []string            `json:"improvements"`
	NextWeekSuggestions  []string            `json:"next_week_suggestions"`
	Encouragement        string              `json:"encouragement"`
	UpdatedAt            time.Time           `json:"updated_at"`
}
