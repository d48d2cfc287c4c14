package calendar

import (
	"errors"
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDay(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-07-06", "2025-07-06"},
		{" 2025-07-06 ", "2025-07-06"},
		{"2025-07-06T23:30:00+09:00", "2025-07-06"},
		{"2025-07-06T20:00:00-05:00", "2025-07-07"},
		{"2025-07-06T10:11:12.123456Z", "2025-07-06"},
		{"2025-07-06T10:11:12", "2025-07-06"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDay(tc.in)
			if err != nil {
				t.Fatalf("ParseDay(%q): %v", tc.in, err)
			}
			if DayKey(got) != tc.want {
				t.Errorf("ParseDay(%q) = %s, want %s", tc.in, DayKey(got), tc.want)
			}
			if !got.Equal(StartOfDay(got)) || got.Location() != time.UTC {
				t.Errorf("ParseDay(%q) = %v, want UTC midnight", tc.in, got)
			}
		})
	}
}

func TestParseDayInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "garbage", "2025-13-01", "2025-02-30", "07/06/2025"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDay(in)
			if !errors.Is(err, ErrInvalidDate) {
				t.Errorf("ParseDay(%q) err = %v, want ErrInvalidDate", in, err)
			}
		})
	}
}

func TestStartAndEndOfDay(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)
	in := time.Date(2025, 7, 7, 3, 0, 0, 0, kst) // 2025-07-06 18:00 UTC

	start := StartOfDay(in)
	if want := time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", start, want)
	}
	end := EndOfDay(in)
	if want := time.Date(2025, 7, 6, 23, 59, 59, int(999*time.Millisecond), time.UTC); !end.Equal(want) {
		t.Errorf("EndOfDay = %v, want %v", end, want)
	}
	if DayKey(in) != "2025-07-06" {
		t.Errorf("DayKey = %s, want 2025-07-06", DayKey(in))
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		a, b time.Time
		want int
	}{
		{day("2025-01-01"), day("2025-01-01"), 0},
		{day("2025-01-01"), day("2025-01-02"), 1},
		{day("2025-01-02"), day("2025-01-01"), -1},
		{day("2024-02-28"), day("2024-03-01"), 2},
		{day("2025-02-28"), day("2025-03-01"), 1},
		{time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC), time.Date(2025, 1, 2, 0, 1, 0, 0, time.UTC), 1},
		{day("2024-12-31"), day("2025-12-31"), 365},
	}
	for _, tc := range cases {
		if got := DaysBetween(tc.a, tc.b); got != tc.want {
			t.Errorf("DaysBetween(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestWeekStart(t *testing.T) {
	cases := map[string]string{
		"2025-07-06": "2025-07-06", // Sunday
		"2025-07-09": "2025-07-06",
		"2025-07-12": "2025-07-06", // Saturday
		"2025-02-01": "2025-01-26",
	}
	for in, want := range cases {
		if got := DayKey(WeekStart(day(in))); got != want {
			t.Errorf("WeekStart(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2025, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2025, time.January, 31},
		{2025, time.April, 30},
		{2025, time.December, 31},
	}
	for _, tc := range cases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}
