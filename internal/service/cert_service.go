package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"qbit/internal/cache"
	"qbit/internal/calendar"
	dom "qbit/internal/domain"
	"qbit/internal/repo"
	"qbit/internal/utils"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/singleflight"
)

const (
	maxKeywordLimit = 50
	// upcomingWindow is how many days ahead, today included, an exam counts as upcoming.
	upcomingWindow = 7
)

// PopularCertNames is the fixed list behind /certs/popular, in display order.
var PopularCertNames = []string{"정보처리기사", "전기기사", "토목기사", "건축기사", "산업안전기사"}

// UpcomingCert is a cert whose next exam falls inside the upcoming window.
type UpcomingCert struct {
	Cert          dom.Cert
	ExamDate      time.Time
	DaysUntilExam int
}

// ScheduleSource yields a year's exam rounds grouped by series name (기사, 기능사, ...).
type ScheduleSource interface {
	SchedulesByGrade(ctx context.Context, year int) (map[string][]dom.ExamRound, error)
}

// SyncResult counts what a schedule sync changed. Unmatched lists series with no cert in the catalog.
type SyncResult struct {
	Updated   int
	Unmatched []string
}

// ImportResult counts what a catalog import changed.
type ImportResult struct {
	Inserted int
	Updated  int
}

// CatalogCache stores catalog search and popular results. A nil list from a getter is a miss.
type CatalogCache interface {
	GetSearch(ctx context.Context, key string) ([]dom.Cert, error)
	SetSearch(ctx context.Context, key string, list []dom.Cert) error
	GetPopular(ctx context.Context) ([]dom.Cert, error)
	SetPopular(ctx context.Context, list []dom.Cert) error
	InvalidateAll(ctx context.Context) error
}

var _ CatalogCache = (*cache.CertCache)(nil)

type CertService struct {
	repo  repo.CertRepo
	cache CatalogCache
	sf    singleflight.Group
	log   hclog.Logger
}

// NewCertService creates a CertService. If c is nil, caching is disabled.
func NewCertService(r repo.CertRepo, c CatalogCache, logger hclog.Logger) *CertService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &CertService{repo: r, cache: c, log: logger}
}

// Search filters the catalog; results are cached per filter.
func (s *CertService) Search(ctx context.Context, f repo.CertFilter) ([]dom.Cert, error) {
	f.Keyword = strings.TrimSpace(f.Keyword)
	key := searchKey(f)
	return s.cached(ctx, "search:"+key,
		func() ([]dom.Cert, error) { return s.cache.GetSearch(ctx, key) },
		func(list []dom.Cert) error { return s.cache.SetSearch(ctx, key, list) },
		func() ([]dom.Cert, error) { return s.repo.Search(ctx, f) },
	)
}

// searchKey identifies a filter in the cache. Only the keyword matches case-insensitively,
// so it is the only part folded; the exact-match filters are kept as given.
func searchKey(f repo.CertFilter) string {
	return strings.Join([]string{
		strings.ToLower(strings.TrimSpace(f.Keyword)),
		f.Agency, f.Series, f.ObligField, f.MidObligField,
		strconv.Itoa(f.Limit),
	}, "|")
}

// SearchKeyword matches q against cert names, returning at most limit results.
func (s *CertService) SearchKeyword(ctx context.Context, q string, limit int) ([]dom.Cert, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, fmt.Errorf("%w: search keyword is required", ErrInvalidInput)
	}
	if limit < 1 || limit > maxKeywordLimit {
		return nil, fmt.Errorf("%w: limit must be 1-%d", ErrInvalidInput, maxKeywordLimit)
	}
	return s.Search(ctx, repo.CertFilter{Keyword: q, Limit: limit})
}

// Popular returns the fixed popular certs that exist in the catalog.
func (s *CertService) Popular(ctx context.Context) ([]dom.Cert, error) {
	return s.cached(ctx, "popular",
		func() ([]dom.Cert, error) { return s.cache.GetPopular(ctx) },
		func(list []dom.Cert) error { return s.cache.SetPopular(ctx, list) },
		func() ([]dom.Cert, error) { return s.repo.ListByNames(ctx, PopularCertNames) },
	)
}

// Upcoming lists certs whose next exam is within the window starting today,
// soonest first, at most limit entries.
func (s *CertService) Upcoming(ctx context.Context, today time.Time, limit int) ([]UpcomingCert, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be positive", ErrInvalidInput)
	}
	certs, err := s.repo.ListScheduled(ctx)
	if err != nil {
		return nil, err
	}
	today = calendar.StartOfDay(today)
	var out []UpcomingCert
	for _, c := range certs {
		next, ok := c.NextExam(today)
		if !ok {
			continue
		}
		days := calendar.DaysBetween(today, next)
		if days >= upcomingWindow {
			continue
		}
		out = append(out, UpcomingCert{Cert: c, ExamDate: next, DaysUntilExam: days})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DaysUntilExam != out[j].DaysUntilExam {
			return out[i].DaysUntilExam < out[j].DaysUntilExam
		}
		return out[i].Cert.Name < out[j].Cert.Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []UpcomingCert{}
	}
	return out, nil
}

func (s *CertService) GetByID(ctx context.Context, id string) (dom.Cert, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dom.Cert{}, notFound(err)
	}
	return c, nil
}

func (s *CertService) ListReminded(ctx context.Context, userID string) ([]dom.Cert, error) {
	return s.repo.ListReminded(ctx, userID)
}

// AddRemind puts a cert on the user's reminder list. Adding twice is a no-op.
func (s *CertService) AddRemind(ctx context.Context, userID, certID string) error {
	if err := s.repo.AddRemind(ctx, userID, certID); err != nil {
		if utils.IsPGForeignKeyViolation(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *CertService) RemoveRemind(ctx context.Context, userID, certID string) error {
	return notFound(s.repo.RemoveRemind(ctx, userID, certID))
}

// Import upserts catalog entries by code and drops the catalog cache.
func (s *CertService) Import(ctx context.Context, certs []dom.Cert) (ImportResult, error) {
	var res ImportResult
	for i, c := range certs {
		c.Code = strings.TrimSpace(c.Code)
		c.Name = strings.TrimSpace(c.Name)
		if c.Code == "" || c.Name == "" {
			return res, fmt.Errorf("%w: entry %d needs code and name", ErrInvalidInput, i)
		}
		_, inserted, err := s.repo.Upsert(ctx, c)
		if err != nil {
			return res, fmt.Errorf("upsert %s: %w", c.Code, err)
		}
		if inserted {
			res.Inserted++
		} else {
			res.Updated++
		}
	}
	if s.cache != nil {
		if err := s.cache.InvalidateAll(ctx); err != nil {
			s.log.Warn("cert cache invalidation failed", "error", err)
		}
	}
	s.log.Info("catalog imported", "inserted", res.Inserted, "updated", res.Updated)
	return res, nil
}

// SyncSchedules replaces the exam schedule of every cert of agency with the rounds src
// reports for its series in year.
func (s *CertService) SyncSchedules(ctx context.Context, src ScheduleSource, agency string, year int) (SyncResult, error) {
	var res SyncResult
	byGrade, err := src.SchedulesByGrade(ctx, year)
	if err != nil {
		return res, fmt.Errorf("fetch schedules: %w", err)
	}
	if len(byGrade) == 0 {
		s.log.Warn("no exam schedules returned", "year", year)
		return res, nil
	}
	series := make([]string, 0, len(byGrade))
	for g := range byGrade {
		series = append(series, g)
	}
	sort.Strings(series)
	for _, g := range series {
		n, err := s.repo.SetSchedule(ctx, agency, g, byGrade[g])
		if err != nil {
			return res, fmt.Errorf("set schedule %s: %w", g, err)
		}
		if n == 0 {
			s.log.Warn("no certs for series", "series", g, "agency", agency)
			res.Unmatched = append(res.Unmatched, g)
			continue
		}
		s.log.Debug("schedule updated", "series", g, "certs", n, "rounds", len(byGrade[g]))
		res.Updated += int(n)
	}
	if s.cache != nil && res.Updated > 0 {
		if err := s.cache.InvalidateAll(ctx); err != nil {
			s.log.Warn("cert cache invalidation failed", "error", err)
		}
	}
	s.log.Info("exam schedules synced", "year", year, "updated", res.Updated, "unmatched", len(res.Unmatched))
	return res, nil
}

// cached serves load through the Redis cache, collapsing concurrent misses for the same key.
func (s *CertService) cached(ctx context.Context, key string,
	get func() ([]dom.Cert, error), set func([]dom.Cert) error, load func() ([]dom.Cert, error),
) ([]dom.Cert, error) {
	if s.cache == nil {
		return load()
	}
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if list, err := get(); err == nil && list != nil {
			return list, nil
		} else if err != nil {
			s.log.Debug("cert cache read failed", "key", key, "error", err)
		}
		list, err := load()
		if err != nil {
			return nil, err
		}
		_ = set(list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Cert), nil
}
