package analytics

import (
	"math/rand/v2"
	"time"
)

// HistoryDays is the length of the visit history.
const HistoryDays = 7

// Data holds site usage counters.
type Data struct {
	PageViews    map[string]int `json:"pageViews"`
	Interactions map[string]int `json:"interactions"`
	ThemeUsage   ThemeUsage     `json:"themeUsage"`
	VisitHistory []Visit        `json:"visitHistory"`
}

// ThemeUsage counts how often each theme was selected.
type ThemeUsage struct {
	Light int `json:"light"`
	Dark  int `json:"dark"`
}

// Visit is the visit count of a single day (YYYY-MM-DD).
type Visit struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// New returns an empty record with a placeholder visit history covering the
// HistoryDays days ending at now, oldest first. Counts fall in [10, 59].
func New(now time.Time, rng *rand.Rand) Data {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(now.UnixNano()), 0))
	}

	history := make([]Visit, HistoryDays)
	for i := range history {
		day := now.UTC().AddDate(0, 0, -(HistoryDays - 1 - i))
		history[i] = Visit{
			Date:  day.Format(time.DateOnly),
			Count: rng.IntN(50) + 10,
		}
	}

	return Data{
		PageViews:    map[string]int{},
		Interactions: map[string]int{},
		ThemeUsage:   ThemeUsage{},
		VisitHistory: history,
	}
}
