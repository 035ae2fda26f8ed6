package garden

import (
	"time"

	"github.com/theirongolddev/finmate/internal/model"
	"github.com/theirongolddev/finmate/internal/money"
)

// Touch records activity for today and returns the updated streak. The second
// touch on the same day is a no-op; exactly one day later extends the streak;
// any longer gap (or clock skew backwards) resets it to 1 without lowering
// the longest run.
func Touch(s model.Streak, today time.Time) model.Streak {
	today = money.DateOnly(today)

	if s.LastActivityDate.IsZero() {
		s.Current = 1
		if s.Longest < 1 {
			s.Longest = 1
		}
		s.LastActivityDate = today
		return s
	}

	switch days := money.DaysBetween(s.LastActivityDate, today); {
	case days == 0:
		return s
	case days == 1:
		s.Current++
		if s.Current > s.Longest {
			s.Longest = s.Current
		}
	default:
		s.Current = 1
	}

	s.LastActivityDate = today
	return s
}
