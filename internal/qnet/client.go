// Package qnet reads national technical qualification exam schedules from the
// public data portal (data.go.kr, HRDK qualExamSchd service).
package qnet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	dom "qbit/internal/domain"
)

const (
	DefaultBaseURL = "http://apis.data.go.kr/B490007/qualExamSchd/getQualExamSchdList"
	// Agency is the exam body whose certs the schedule feed covers.
	Agency = "한국산업인력공단"

	pageSize = 1000
	resultOK = "00"
)

// grades in match order. 산업기사 contains 기사, so it is tried first.
var grades = []string{"기술사", "기능장", "산업기사", "기사", "기능사"}

// Item is one exam round as the feed returns it.
type Item struct {
	ImplSeq       string `json:"implSeq"`
	ImplYear      string `json:"implYy"`
	QualGradeCode string `json:"qualgbCd"`
	QualGradeName string `json:"qualgbNm"`
	Description   string `json:"description"`
	DocRegStart   string `json:"docRegStartDt"`
	DocRegEnd     string `json:"docRegEndDt"`
	DocExamStart  string `json:"docExamStartDt"`
	DocExamEnd    string `json:"docExamEndDt"`
	DocPass       string `json:"docPassDt"`
	PracRegStart  string `json:"pracRegStartDt"`
	PracRegEnd    string `json:"pracRegEndDt"`
	PracExamStart string `json:"pracExamStartDt"`
	PracExamEnd   string `json:"pracExamEndDt"`
	PracPass      string `json:"pracPassDt"`
}

type response struct {
	Header struct {
		ResultCode string `json:"resultCode"`
		ResultMsg  string `json:"resultMsg"`
	} `json:"header"`
	Body struct {
		Items      []Item `json:"items"`
		TotalCount int    `json:"totalCount"`
	} `json:"body"`
}

// Client calls the schedule service with a data.go.kr service key.
type Client struct {
	hc      *http.Client
	baseURL string
	key     string
}

// NewClient returns a Client. An empty baseURL means DefaultBaseURL.
func NewClient(baseURL, serviceKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{hc: &http.Client{Timeout: timeout}, baseURL: baseURL, key: serviceKey}
}

// Fetch returns every exam round of the year.
func (c *Client) Fetch(ctx context.Context, year int) ([]Item, error) {
	q := url.Values{}
	q.Set("serviceKey", c.key)
	q.Set("implYy", strconv.Itoa(year))
	q.Set("dataFormat", "json")
	q.Set("numOfRows", strconv.Itoa(pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("qnet request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("qnet: unexpected status %d", resp.StatusCode)
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("qnet decode: %w", err)
	}
	if r.Header.ResultCode != resultOK {
		return nil, fmt.Errorf("qnet: %s (code %s)", r.Header.ResultMsg, r.Header.ResultCode)
	}
	return r.Body.Items, nil
}

// SchedulesByGrade fetches the year and groups its rounds by cert grade (series name).
// Rounds whose grade cannot be told from the description are skipped.
func (c *Client) SchedulesByGrade(ctx context.Context, year int) (map[string][]dom.ExamRound, error) {
	items, err := c.Fetch(ctx, year)
	if err != nil {
		return nil, err
	}
	return GroupByGrade(items), nil
}

// GroupByGrade buckets items by Grade, keeping feed order inside a bucket.
func GroupByGrade(items []Item) map[string][]dom.ExamRound {
	out := map[string][]dom.ExamRound{}
	for _, it := range items {
		g := Grade(it.Description)
		if g == "" {
			continue
		}
		out[g] = append(out[g], it.Round())
	}
	return out
}

// Grade returns the series name a round description refers to, or "".
func Grade(description string) string {
	for _, g := range grades {
		if strings.Contains(description, g) {
			return g
		}
	}
	return ""
}

// Round converts the item to an ExamRound with YYYY-MM-DD dates.
func (it Item) Round() dom.ExamRound {
	round := it.Description
	if round == "" {
		round = it.ImplSeq
	}
	return dom.ExamRound{
		Round:               round,
		WrittenRegStart:     day(it.DocRegStart),
		WrittenRegEnd:       day(it.DocRegEnd),
		WrittenExamStart:    day(it.DocExamStart),
		WrittenExamEnd:      day(it.DocExamEnd),
		WrittenResultDate:   day(it.DocPass),
		PracticalRegStart:   day(it.PracRegStart),
		PracticalRegEnd:     day(it.PracRegEnd),
		PracticalExamStart:  day(it.PracExamStart),
		PracticalExamEnd:    day(it.PracExamEnd),
		PracticalResultDate: day(it.PracPass),
	}
}

// day turns "20250310" or "2025-03-10" into "2025-03-10". Anything else is dropped.
func day(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), "-", "")
	if len(s) != 8 {
		return ""
	}
	if _, err := strconv.Atoi(s); err != nil {
		return ""
	}
	return s[:4] + "-" + s[4:6] + "-" + s[6:]
}
