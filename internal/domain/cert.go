package domain

import (
	"time"

	"qbit/internal/calendar"
)

// Cert is a certification from the national catalog (Q-net field names in comments).
type Cert struct {
	ID                string
	Code              string // jmcd
	Name              string // jmfldnm
	SeriesCode        string
	SeriesName        string // seriesnm: 기사, 기능사, ...
	QualTypeCode      string
	QualTypeName      string
	ObligFieldCode    string
	ObligFieldName    string
	MidObligFieldCode string
	MidObligFieldName string
	Agency            string
	Outlook           string
	Schedule          []ExamRound

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExamRound is one sitting of a certification exam. Dates are YYYY-MM-DD, empty when unknown.
type ExamRound struct {
	Round               string `json:"round"`
	WrittenRegStart     string `json:"written_reg_start,omitempty"`
	WrittenRegEnd       string `json:"written_reg_end,omitempty"`
	WrittenExamStart    string `json:"written_exam_start,omitempty"`
	WrittenExamEnd      string `json:"written_exam_end,omitempty"`
	WrittenResultDate   string `json:"written_result_date,omitempty"`
	PracticalRegStart   string `json:"practical_reg_start,omitempty"`
	PracticalRegEnd     string `json:"practical_reg_end,omitempty"`
	PracticalExamStart  string `json:"practical_exam_start,omitempty"`
	PracticalExamEnd    string `json:"practical_exam_end,omitempty"`
	PracticalResultDate string `json:"practical_result_date,omitempty"`
}

// NextExam returns the earliest written or practical exam start on or after today.
// Unparsable schedule dates are skipped.
func (c Cert) NextExam(today time.Time) (time.Time, bool) {
	today = calendar.StartOfDay(today)
	var next time.Time
	found := false
	for _, r := range c.Schedule {
		for _, s := range []string{r.WrittenExamStart, r.PracticalExamStart} {
			if s == "" {
				continue
			}
			d, err := calendar.ParseDay(s)
			if err != nil || d.Before(today) {
				continue
			}
			if !found || d.Before(next) {
				next, found = d, true
			}
		}
	}
	return next, found
}
