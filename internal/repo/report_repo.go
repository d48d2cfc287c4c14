package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"qbit/internal/calendar"
	dom "qbit/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRepo stores one weekly report per user and week.
type ReportRepo interface {
	Get(ctx context.Context, userID string, weekStart time.Time) (dom.WeeklyReport, error)
	Upsert(ctx context.Context, r dom.WeeklyReport) (dom.WeeklyReport, error)
}

const reportColumns = `id, user_id, week_start, week_end, total_todos, completed_todos, weekly_completion_rate, ` +
	`daily_stats, summary, achievements, improvements, next_week_suggestions, encouragement, created_at, updated_at`

type PGReportRepo struct {
	db *pgxpool.Pool
}

func NewPGReportRepo(db *pgxpool.Pool) *PGReportRepo {
	return &PGReportRepo{db: db}
}

func (r *PGReportRepo) Get(ctx context.Context, userID string, weekStart time.Time) (dom.WeeklyReport, error) {
	query := `SELECT ` + reportColumns + ` FROM weekly_reports WHERE user_id = $1 AND week_start = $2`
	return scanReport(r.db.QueryRow(ctx, query, userID, weekStart))
}

// Upsert replaces the report of (user, week_start), keeping the original id and created_at.
func (r *PGReportRepo) Upsert(ctx context.Context, rep dom.WeeklyReport) (dom.WeeklyReport, error) {
	stampNew(&rep.ID, &rep.CreatedAt, &rep.UpdatedAt)
	blobs := make([]string, 4)
	for i, v := range []any{nonNilStats(rep.DailyStats), nonNil(rep.Achievements), nonNil(rep.Improvements), nonNil(rep.NextWeekSuggestions)} {
		b, err := json.Marshal(v)
		if err != nil {
			return dom.WeeklyReport{}, fmt.Errorf("marshal report: %w", err)
		}
		blobs[i] = string(b)
	}
	query := `
		INSERT INTO weekly_reports (` + reportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9, $10::jsonb, $11::jsonb, $12::jsonb, $13, $14, $15)
		ON CONFLICT (user_id, week_start) DO UPDATE SET
			week_end = EXCLUDED.week_end,
			total_todos = EXCLUDED.total_todos,
			completed_todos = EXCLUDED.completed_todos,
			weekly_completion_rate = EXCLUDED.weekly_completion_rate,
			daily_stats = EXCLUDED.daily_stats,
			summary = EXCLUDED.summary,
			achievements = EXCLUDED.achievements,
			improvements = EXCLUDED.improvements,
			next_week_suggestions = EXCLUDED.next_week_suggestions,
			encouragement = EXCLUDED.encouragement,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + reportColumns
	return scanReport(r.db.QueryRow(ctx, query,
		rep.ID, rep.UserID, rep.WeekStart, rep.WeekEnd, rep.TotalTodos, rep.CompletedTodos, rep.WeeklyCompletionRate,
		blobs[0], rep.Summary, blobs[1], blobs[2], blobs[3], rep.Encouragement, rep.CreatedAt, rep.UpdatedAt))
}

func scanReport(row pgx.Row) (dom.WeeklyReport, error) {
	var rep dom.WeeklyReport
	var stats, ach, imp, next []byte
	err := row.Scan(&rep.ID, &rep.UserID, &rep.WeekStart, &rep.WeekEnd, &rep.TotalTodos, &rep.CompletedTodos,
		&rep.WeeklyCompletionRate, &stats, &rep.Summary, &ach, &imp, &next, &rep.Encouragement,
		&rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return dom.WeeklyReport{}, err
	}
	if err := json.Unmarshal(stats, &rep.DailyStats); err != nil {
		rep.DailyStats = []calendar.DayStats{}
	}
	for _, p := range []struct {
		raw []byte
		dst *[]string
	}{{ach, &rep.Achievements}, {imp, &rep.Improvements}, {next, &rep.NextWeekSuggestions}} {
		if err := json.Unmarshal(p.raw, p.dst); err != nil {
			*p.dst = []string{}
		}
	}
	return rep, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilStats(s []calendar.DayStats) []calendar.DayStats {
	if s == nil {
		return []calendar.DayStats{}
	}
	return s
}
