package calendar

import (
	"errors"
	"testing"
	"time"
)

type item struct {
	at   time.Time
	name string
	done bool
}

func itemDate(i item) time.Time { return i.at }
func itemDone(i item) bool      { return i.done }

func TestMonthRangeLength(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2025, time.February, 28},
		{2025, time.March, 31},
		{2025, time.June, 30},
		{2025, time.December, 31},
	}
	for _, tc := range cases {
		r, err := MonthRange(tc.year, tc.month)
		if err != nil {
			t.Fatalf("MonthRange(%d, %d): %v", tc.year, tc.month, err)
		}
		days := Materialize[item](r, nil)
		if len(days) != tc.want {
			t.Fatalf("MonthRange(%d, %d) has %d days, want %d", tc.year, tc.month, len(days), tc.want)
		}
		seen := map[string]bool{}
		for i, d := range days {
			if seen[d.Key] {
				t.Errorf("duplicate key %s", d.Key)
			}
			seen[d.Key] = true
			if d.Date.Day() != i+1 || d.Date.Month() != tc.month {
				t.Errorf("entry %d = %s, want day %d of month %d", i, d.Key, i+1, tc.month)
			}
			if d.Items == nil {
				t.Errorf("entry %s has nil Items", d.Key)
			}
		}
	}
}

func TestMonthRangeInvalid(t *testing.T) {
	for _, m := range []time.Month{0, 13, -1} {
		if _, err := MonthRange(2025, m); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("MonthRange(2025, %d) err = %v, want ErrInvalidDate", m, err)
		}
	}
	if _, err := YearRange(0); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("YearRange(0) err = %v, want ErrInvalidDate", err)
	}
}

func TestWeekRangeSevenDays(t *testing.T) {
	for _, sunday := range []string{"2025-07-06", "2025-01-26", "2024-12-29", "2024-02-25"} {
		t.Run(sunday, func(t *testing.T) {
			start := day(sunday)
			days := Materialize[item](WeekRange(start.Add(15*time.Hour)), nil)
			if len(days) != 7 {
				t.Fatalf("got %d days, want 7", len(days))
			}
			for i, d := range days {
				if want := AddDays(start, i); !d.Date.Equal(want) {
					t.Errorf("day %d = %v, want %v", i, d.Date, want)
				}
			}
		})
	}
}

func TestYearRange(t *testing.T) {
	r, err := YearRange(2024)
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 366 {
		t.Errorf("2024 has %d days, want 366", r.Len())
	}
	r, _ = YearRange(2025)
	if r.Len() != 365 {
		t.Errorf("2025 has %d days, want 365", r.Len())
	}
	if DayKey(r.End()) != "2025-12-31" || r.End().Hour() != 23 {
		t.Errorf("End = %v", r.End())
	}
}

func TestGroupByDayDiscardsTimeOfDay(t *testing.T) {
	items := []item{
		{at: time.Date(2025, 7, 6, 23, 0, 0, 0, time.UTC), name: "late"},
		{at: time.Date(2025, 7, 7, 1, 0, 0, 0, time.UTC), name: "next"},
		{at: time.Date(2025, 7, 6, 1, 0, 0, 0, time.UTC), name: "early"},
	}
	buckets := GroupByDay(items, itemDate)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	got := buckets["2025-07-06"]
	if len(got) != 2 || got[0].name != "late" || got[1].name != "early" {
		t.Errorf("bucket 2025-07-06 = %+v, want [late early]", got)
	}
}

func TestBuildFillsGaps(t *testing.T) {
	items := []item{
		{at: day("2025-07-07"), name: "a"},
		{at: day("2025-07-09"), name: "b"},
		{at: day("2025-07-20"), name: "outside"},
	}
	days := Build(WeekRange(day("2025-07-06")), items, itemDate)
	want := map[string]int{"2025-07-07": 1, "2025-07-09": 1}
	for _, d := range days {
		if len(d.Items) != want[d.Key] {
			t.Errorf("%s has %d items, want %d", d.Key, len(d.Items), want[d.Key])
		}
	}
}

func TestRangeContains(t *testing.T) {
	r := WeekRange(day("2025-07-06"))
	if !r.Contains(time.Date(2025, 7, 12, 23, 59, 59, 0, time.UTC)) {
		t.Error("Saturday evening should be inside the week")
	}
	if r.Contains(day("2025-07-13")) {
		t.Error("next Sunday should be outside the week")
	}
}
