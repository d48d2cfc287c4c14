package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"qbit/internal/calendar"
	dom "qbit/internal/domain"
	"qbit/internal/llm"
	"qbit/internal/repo"

	"github.com/hashicorp/go-hclog"
	"github.com/jackc/pgx/v5"
)

const (
	recommendSystem = "You are an expert career counselor specializing in Korean certifications. " +
		"You provide personalized certification recommendations based on user profiles. " +
		"Always respond in valid JSON format only, without any additional text or markdown."
	reportSystem = "You are a friendly study coach reviewing a learner's weekly to-do list. " +
		"Answer in Korean. Always respond in valid JSON format only, without any additional text or markdown."

	defaultRecommendSummary = "추천 결과가 생성되었습니다."
	emptyWeekSummary        = "이번 주에 등록된 할 일이 없습니다."
	unknownValue            = "정보없음"
)

// TextGenerator is the language model surface the AI features use.
type TextGenerator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
	Chat(ctx context.Context, system string, history []llm.Message) (string, error)
}

// RecommendProfile describes the user asking for certification advice. Every field is optional.
type RecommendProfile struct {
	Age            *int
	Education      string
	Field          string
	Experience     string
	Goal           string
	AdditionalInfo string
}

// CertRecommendation is one suggested certification.
type CertRecommendation struct {
	CertID         string `json:"certId"`
	Name           string `json:"name"`
	Reason         string `json:"reason"`
	Difficulty     string `json:"difficulty"`
	ExpectedPeriod string `json:"expectedPeriod"`
	MatchScore     int    `json:"matchScore"`
}

// Recommendation is the model's answer, restricted to certs that exist in the catalog.
type Recommendation struct {
	Recommendations []CertRecommendation `json:"recommendations"`
	Summary         string               `json:"summary"`
	AIMessage       string               `json:"aiMessage"`
}

type reportAnswer struct {
	Summary             string   `json:"summary"`
	Achievements        []string `json:"achievements"`
	Improvements        []string `json:"improvements"`
	NextWeekSuggestions []string `json:"nextWeekSuggestions"`
	Encouragement       string   `json:"encouragement"`
}

// AIService builds prompts from stored data and interprets the model's replies.
type AIService struct {
	gen     TextGenerator
	certs   repo.CertRepo
	todos   repo.TodoRepo
	reports repo.ReportRepo
	log     hclog.Logger
}

func NewAIService(gen TextGenerator, certs repo.CertRepo, todos repo.TodoRepo, reports repo.ReportRepo, logger hclog.Logger) *AIService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &AIService{gen: gen, certs: certs, todos: todos, reports: reports, log: logger}
}

// Generate answers a free prompt.
func (s *AIService) Generate(ctx context.Context, prompt, system string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt is required", ErrInvalidInput)
	}
	text, err := s.gen.Generate(ctx, system, prompt)
	if err != nil {
		return "", s.llmError(err)
	}
	return text, nil
}

// Chat continues a conversation. The whole history is sent; the last turn must be the user's.
func (s *AIService) Chat(ctx context.Context, history []llm.Message) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("%w: messages are required", ErrInvalidInput)
	}
	for i, m := range history {
		if m.Role != llm.RoleUser && m.Role != llm.RoleAssistant {
			return "", fmt.Errorf("%w: messages[%d].role must be user or assistant", ErrInvalidInput, i)
		}
		if strings.TrimSpace(m.Content) == "" {
			return "", fmt.Errorf("%w: messages[%d].content is required", ErrInvalidInput, i)
		}
	}
	if history[len(history)-1].Role != llm.RoleUser {
		return "", fmt.Errorf("%w: last message must come from the user", ErrInvalidInput)
	}
	text, err := s.gen.Chat(ctx, "", history)
	if err != nil {
		return "", s.llmError(err)
	}
	return text, nil
}

// Recommend asks the model for certifications matching the profile.
// Suggestions naming certs outside the catalog are dropped; the rest are ordered by match score.
func (s *AIService) Recommend(ctx context.Context, p RecommendProfile) (Recommendation, error) {
	catalog, err := s.certs.ListAll(ctx)
	if err != nil {
		return Recommendation{}, err
	}
	text, err := s.gen.Generate(ctx, recommendSystem, recommendPrompt(p, catalog))
	if err != nil {
		return Recommendation{}, s.llmError(err)
	}
	var rec Recommendation
	if err := llm.DecodeJSON(text, &rec); err != nil {
		s.log.Warn("recommendation parse failed", "error", err, "length", len(text))
		return Recommendation{}, fmt.Errorf("%w: %w", ErrAIResponse, err)
	}
	return filterRecommendations(rec, catalog), nil
}

// WeeklyReport returns the stored report of the week containing sunday, or builds a new one
// when none exists or refresh is set.
func (s *AIService) WeeklyReport(ctx context.Context, userID string, sunday time.Time, refresh bool) (dom.WeeklyReport, error) {
	week := calendar.WeekRange(calendar.WeekStart(sunday))
	if !refresh {
		stored, err := s.reports.Get(ctx, userID, week.Start)
		if err == nil {
			return stored, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return dom.WeeklyReport{}, err
		}
	}

	todos, err := s.todos.ListRange(ctx, userID, week.Start, week.Last)
	if err != nil {
		return dom.WeeklyReport{}, err
	}
	days := calendar.Build(week, todos, dom.TodoDate)
	stats, sum := calendar.Tally(days, dom.TodoDone, true)
	rep := dom.WeeklyReport{
		UserID:               userID,
		WeekStart:            week.Start,
		WeekEnd:              week.Last,
		TotalTodos:           sum.TotalTodos,
		CompletedTodos:       sum.CompletedTodos,
		WeeklyCompletionRate: calendar.Rate(sum.CompletedTodos, sum.TotalTodos),
		DailyStats:           stats,
	}

	if sum.TotalTodos == 0 {
		rep.Summary = emptyWeekSummary
		rep.Achievements, rep.Improvements = []string{}, []string{}
		rep.NextWeekSuggestions = []string{"다음 주에는 하루에 한 가지라도 할 일을 등록해 보세요."}
	} else {
		text, err := s.gen.Generate(ctx, reportSystem, reportPrompt(rep, days))
		if err != nil {
			return dom.WeeklyReport{}, s.llmError(err)
		}
		var ans reportAnswer
		if err := llm.DecodeJSON(text, &ans); err != nil {
			s.log.Warn("weekly report parse failed", "error", err, "length", len(text))
			return dom.WeeklyReport{}, fmt.Errorf("%w: %w", ErrAIResponse, err)
		}
		if strings.TrimSpace(ans.Summary) == "" {
			return dom.WeeklyReport{}, fmt.Errorf("%w: report without summary", ErrAIResponse)
		}
		rep.Summary = ans.Summary
		rep.Achievements = ans.Achievements
		rep.Improvements = ans.Improvements
		rep.NextWeekSuggestions = ans.NextWeekSuggestions
		rep.Encouragement = ans.Encouragement
	}
	return s.reports.Upsert(ctx, rep)
}

func (s *AIService) llmError(err error) error {
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		return fmt.Errorf("%w: %w", ErrAIUnavailable, err)
	case errors.Is(err, llm.ErrEmptyResponse):
		return fmt.Errorf("%w: %w", ErrAIResponse, err)
	}
	s.log.Error("llm call failed", "error", err)
	return fmt.Errorf("%w: %w", ErrAIUnavailable, err)
}

func recommendPrompt(p RecommendProfile, catalog []dom.Cert) string {
	var sb strings.Builder
	age := unknownValue
	if p.Age != nil {
		age = fmt.Sprint(*p.Age)
	}
	sb.WriteString("사용자 정보:\n")
	fmt.Fprintf(&sb, "- 나이: %s\n", age)
	fmt.Fprintf(&sb, "- 학력: %s\n", orDefault(p.Education, unknownValue))
	fmt.Fprintf(&sb, "- 관심 분야: %s\n", orDefault(p.Field, unknownValue))
	fmt.Fprintf(&sb, "- 경력: %s\n", orDefault(p.Experience, unknownValue))
	fmt.Fprintf(&sb, "- 목표: %s\n", orDefault(p.Goal, unknownValue))
	fmt.Fprintf(&sb, "- 추가 정보: %s\n\n", orDefault(p.AdditionalInfo, "없음"))

	sb.WriteString("다음은 대한민국의 자격증 목록입니다:\n")
	for _, c := range catalog {
		fmt.Fprintf(&sb, "- ID: %s, 이름: %s, 등급: %s, 분야: %s, 기관: %s\n",
			c.ID, c.Name, orDefault(c.SeriesName, unknownValue), orDefault(c.ObligFieldName, unknownValue),
			orDefault(c.Agency, unknownValue))
	}
	sb.WriteString(`
위 사용자 정보를 바탕으로 가장 적합한 자격증 3-5개를 추천해주세요.

응답은 반드시 아래 JSON 형식으로만 작성해주세요:

{
  "recommendations": [
    {
      "certId": "자격증 ID",
      "name": "자격증 이름",
      "reason": "추천 이유 (2-3문장)",
      "difficulty": "easy 또는 medium 또는 hard",
      "expectedPeriod": "예상 준비 기간 (예: 3-6개월)",
      "matchScore": 0-100 사이 정수
    }
  ],
  "summary": "전체 추천 요약 (3-4문장)",
  "aiMessage": "사용자에게 전하는 격려 메시지 (1-2문장)"
}

중요:
- certId는 반드시 위 자격증 목록의 실제 ID를 사용하세요
- matchScore가 높은 순서로 정렬하세요
- 사용자의 goal을 최우선으로 고려하세요
- JSON 형식만 반환하고, 다른 텍스트는 포함하지 마세요`)
	return sb.String()
}

func filterRecommendations(rec Recommendation, catalog []dom.Cert) Recommendation {
	byID := make(map[string]dom.Cert, len(catalog))
	for _, c := range catalog {
		byID[c.ID] = c
	}
	kept := make([]CertRecommendation, 0, len(rec.Recommendations))
	seen := map[string]bool{}
	for _, r := range rec.Recommendations {
		c, ok := byID[r.CertID]
		if !ok || seen[r.CertID] {
			continue
		}
		seen[r.CertID] = true
		r.Name = c.Name
		r.MatchScore = min(max(r.MatchScore, 0), 100)
		switch r.Difficulty {
		case "easy", "medium", "hard":
		default:
			r.Difficulty = "medium"
		}
		kept = append(kept, r)
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].MatchScore > kept[j].MatchScore })
	rec.Recommendations = kept
	if strings.TrimSpace(rec.Summary) == "" {
		rec.Summary = defaultRecommendSummary
	}
	return rec
}

func reportPrompt(rep dom.WeeklyReport, days []calendar.Day[dom.Todo]) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "기간: %s ~ %s\n", calendar.DayKey(rep.WeekStart), calendar.DayKey(rep.WeekEnd))
	fmt.Fprintf(&sb, "전체 할 일: %d개, 완료: %d개, 완료율: %.1f%%\n\n",
		rep.TotalTodos, rep.CompletedTodos, rep.WeeklyCompletionRate)
	for i, d := range days {
		st := rep.DailyStats[i]
		fmt.Fprintf(&sb, "%s (%s): %d/%d 완료\n", d.Key, d.Date.Weekday(), st.Completed, st.Total)
		for _, t := range d.Items {
			mark := "✗"
			if t.IsCompleted {
				mark = "✓"
			}
			fmt.Fprintf(&sb, "  %s %s\n", mark, t.Title)
		}
	}
	sb.WriteString(`
위 한 주의 할 일 기록을 분석해서 아래 JSON 형식으로만 답해주세요:

{
  "summary": "한 주 요약 (2-3문장)",
  "achievements": ["잘한 점"],
  "improvements": ["개선할 점"],
  "nextWeekSuggestions": ["다음 주 제안"],
  "encouragement": "격려 메시지 (1-2문장)"
}`)
	return sb.String()
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
