package qnet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const feed = `{
	"header": {"resultCode": "00", "resultMsg": "NORMAL SERVICE."},
	"body": {"totalCount": 4, "items": [
		{"implSeq": "1", "implYy": "2025", "description": "국가기술자격 정기 기사 1회",
		 "docRegStartDt": "20250113", "docExamStartDt": "20250207", "pracExamStartDt": "2025-04-19"},
		{"implSeq": "1", "implYy": "2025", "description": "국가기술자격 정기 산업기사 1회",
		 "docExamStartDt": "20250207"},
		{"implSeq": "2", "implYy": "2025", "description": "국가기술자격 정기 기사 2회",
		 "docExamStartDt": "20250510", "docPassDt": "2025061"},
		{"implSeq": "9", "implYy": "2025", "description": "상시 검정"}
	]}
}`

func TestSchedulesByGrade(t *testing.T) {
	var query map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{}
		for k := range r.URL.Query() {
			query[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(feed))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL, "key+with/special=", 5*time.Second).SchedulesByGrade(context.Background(), 2025)
	if err != nil {
		t.Fatal(err)
	}
	if query["serviceKey"] != "key+with/special=" || query["implYy"] != "2025" || query["dataFormat"] != "json" {
		t.Errorf("query = %v", query)
	}

	if len(got) != 2 {
		t.Fatalf("grades = %v, want 기사 and 산업기사 only", got)
	}
	engineer := got["기사"]
	if len(engineer) != 2 || engineer[0].Round != "국가기술자격 정기 기사 1회" {
		t.Fatalf("기사 rounds = %+v", engineer)
	}
	first := engineer[0]
	if first.WrittenRegStart != "2025-01-13" || first.WrittenExamStart != "2025-02-07" || first.PracticalExamStart != "2025-04-19" {
		t.Errorf("dates = %+v", first)
	}
	if engineer[1].WrittenResultDate != "" {
		t.Errorf("malformed date kept: %q", engineer[1].WrittenResultDate)
	}
	if len(got["산업기사"]) != 1 {
		t.Errorf("산업기사 rounds = %+v", got["산업기사"])
	}
}

func TestFetchErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"api error", http.StatusOK, `{"header":{"resultCode":"30","resultMsg":"SERVICE KEY IS NOT REGISTERED ERROR."},"body":{}}`},
		{"http error", http.StatusBadGateway, ``},
		{"not json", http.StatusOK, `<OpenAPI_ServiceResponse>`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()
			if _, err := NewClient(srv.URL, "k", time.Second).Fetch(context.Background(), 2025); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestGrade(t *testing.T) {
	cases := []struct{ desc, want string }{
		{"정기 기술사 135회", "기술사"},
		{"정기 기능장 77회", "기능장"},
		{"정기 산업기사 2회", "산업기사"},
		{"정기 기사 3회", "기사"},
		{"정기 기능사 4회", "기능사"},
		{"상시 검정", ""},
	}
	for _, tc := range cases {
		if got := Grade(tc.desc); got != tc.want {
			t.Errorf("Grade(%q) = %q, want %q", tc.desc, got, tc.want)
		}
	}
}
