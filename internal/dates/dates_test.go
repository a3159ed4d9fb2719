package dates

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"january", date(2022, 1, 1), date(2022, 1, 31), 30},
		{"same_day", date(2022, 1, 1), date(2022, 1, 1), 0},
		{"reversed", date(2022, 1, 31), date(2022, 1, 1), -30},
		{"leap_year", date(2024, 2, 1), date(2024, 3, 1), 29},
		{"partial_day_truncates", date(2022, 1, 1), date(2022, 1, 2).Add(-time.Hour), 0},
		{"partial_day_negative", date(2022, 1, 2), date(2022, 1, 1).Add(time.Nanosecond), 0},
		{"sub_second_short_of_day", date(2022, 1, 1).Add(time.Millisecond), date(2022, 1, 2), 0},
		{"since_1700", date(1700, 1, 1), date(2022, 1, 1), 117608},
		{"full_calendar", date(1, 1, 1), date(9999, 12, 31), 3652058},
		{"full_calendar_reversed", date(9999, 12, 31), date(1, 1, 1), -3652058},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2022-01-31", want: date(2022, 1, 31)},
		{in: "2022-01-31T00:00:00Z", want: date(2022, 1, 31)},
		{in: "2022-01-31T00:00:00", want: date(2022, 1, 31)},
		{in: " 2022-01-31 ", want: date(2022, 1, 31)},
		{in: "31/01/2022", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidDate) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidDate", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	got := Describe(date(2022, 1, 1), date(2022, 1, 31))
	want := "Days between 1/1/2022 and 1/31/2022: 30"
	if got != want {
		t.Errorf("Describe = %q, want %q", got, want)
	}
}
