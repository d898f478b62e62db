package domain

import (
	"testing"
	"time"
)

func TestDayRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{
			name:  "three days inclusive",
			start: "2024-01-01",
			end:   "2024-01-03",
			want:  []string{"2024-01-01", "2024-01-02", "2024-01-03"},
		},
		{
			name:  "single day",
			start: "2024-06-15",
			end:   "2024-06-15",
			want:  []string{"2024-06-15"},
		},
		{
			name:  "month boundary",
			start: "2024-01-30",
			end:   "2024-02-02",
			want:  []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"},
		},
		{
			name:  "end before start",
			start: "2024-01-03",
			end:   "2024-01-01",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			start, err := ParseDay(tt.start)
			if err != nil {
				t.Fatalf("ParseDay(%q) error = %v", tt.start, err)
			}
			end, err := ParseDay(tt.end)
			if err != nil {
				t.Fatalf("ParseDay(%q) error = %v", tt.end, err)
			}

			got := DayRange(start, end)
			if len(got) != len(tt.want) {
				t.Fatalf("DayRange() returned %d days, want %d", len(got), len(tt.want))
			}
			for i, day := range got {
				if FormatDay(day) != tt.want[i] {
					t.Errorf("DayRange()[%d] = %s, want %s", i, FormatDay(day), tt.want[i])
				}
			}
		})
	}
}

func TestDayTruncates(t *testing.T) {
	t.Parallel()
	in := time.Date(2024, 3, 14, 15, 9, 26, 535, time.FixedZone("EST", -5*3600))
	got := Day(in)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("Day() = %v, want midnight", got)
	}
	if got.Location() != time.UTC {
		t.Errorf("Day() location = %v, want UTC", got.Location())
	}
}
