package garden

import (
	"testing"
	"time"

	"github.com/theirongolddev/finmate/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTouchFirstActivity(t *testing.T) {
	s := Touch(model.Streak{}, day(2025, 1, 10))

	if s.Current != 1 || s.Longest != 1 {
		t.Fatalf("current/longest = %d/%d, want 1/1", s.Current, s.Longest)
	}
	if !s.LastActivityDate.Equal(day(2025, 1, 10)) {
		t.Fatalf("LastActivityDate = %v", s.LastActivityDate)
	}
}

func TestTouchSameDayIsNoop(t *testing.T) {
	s := Touch(model.Streak{}, day(2025, 1, 10))
	again := Touch(s, day(2025, 1, 10).Add(11*time.Hour))

	if again != s {
		t.Fatalf("second touch mutated streak: %+v vs %+v", again, s)
	}
}

func TestTouchConsecutiveDays(t *testing.T) {
	s := model.Streak{}
	for i := 0; i < 7; i++ {
		s = Touch(s, day(2025, 1, 10+i))
	}

	if s.Current != 7 || s.Longest != 7 {
		t.Fatalf("current/longest = %d/%d, want 7/7", s.Current, s.Longest)
	}
}

func TestTouchGapResetsWithoutLoweringLongest(t *testing.T) {
	s := model.Streak{Current: 5, Longest: 5, LastActivityDate: day(2025, 1, 10)}

	s = Touch(s, day(2025, 1, 13))

	if s.Current != 1 {
		t.Errorf("current = %d, want reset to 1", s.Current)
	}
	if s.Longest != 5 {
		t.Errorf("longest = %d, want 5 preserved", s.Longest)
	}
	if !s.LastActivityDate.Equal(day(2025, 1, 13)) {
		t.Errorf("LastActivityDate = %v", s.LastActivityDate)
	}
}

func TestTouchClockSkewResets(t *testing.T) {
	s := model.Streak{Current: 3, Longest: 4, LastActivityDate: day(2025, 1, 10)}

	s = Touch(s, day(2025, 1, 8))

	if s.Current != 1 || s.Longest != 4 {
		t.Fatalf("current/longest = %d/%d, want 1/4", s.Current, s.Longest)
	}
}

func TestTouchIgnoresTimeOfDay(t *testing.T) {
	s := Touch(model.Streak{}, time.Date(2025, 1, 10, 23, 59, 0, 0, time.UTC))
	s = Touch(s, time.Date(2025, 1, 11, 0, 1, 0, 0, time.UTC))

	if s.Current != 2 {
		t.Fatalf("current = %d, want 2 across a midnight boundary", s.Current)
	}
}
