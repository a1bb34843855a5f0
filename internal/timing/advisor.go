// Package timing recommends posting windows. The windows themselves live
// on each platform's rules; this package only answers "is now a good
// time, and if not, when is".
package timing

import (
	"fmt"
	"time"

	"github.com/srijanshukla18/global-publish/internal/platform"
)

// Suggestion is the timing advice for one platform.
type Suggestion struct {
	Platform      string
	Windows       []platform.TimingWindow
	CurrentIsGood bool
	CurrentLabel  string

	// NextWindow is a human-readable description of the next good
	// window when the current time is outside all of them.
	NextWindow string
}

// Advisor evaluates platform timing windows against the clock.
type Advisor struct {
	now func() time.Time
}

// NewAdvisor creates an Advisor using the real clock.
func NewAdvisor() *Advisor {
	return &Advisor{now: time.Now}
}

// Suggest reports whether now falls inside one of the platform's posting
// windows, and the next window otherwise. All evaluation is in UTC.
func (a *Advisor) Suggest(r *platform.Rules) Suggestion {
	now := a.now().UTC()

	s := Suggestion{
		Platform: r.ID,
		Windows:  r.TimingWindows,
	}

	for _, w := range r.TimingWindows {
		if inWindow(w, now) {
			s.CurrentIsGood = true
			s.CurrentLabel = w.Label
			return s
		}
	}

	if next, ok := a.nextStart(r, now); ok {
		if next.YearDay() == now.YearDay() && next.Year() == now.Year() {
			s.NextWindow = fmt.Sprintf("today at %02d:00 UTC", next.Hour())
		} else {
			s.NextWindow = fmt.Sprintf("%s at %02d:00 UTC", next.Weekday(), next.Hour())
		}
	}

	return s
}

// SuggestAll returns suggestions for every registered platform, in ID
// order.
func (a *Advisor) SuggestAll() []Suggestion {
	all := platform.All()
	suggestions := make([]Suggestion, len(all))
	for i, r := range all {
		suggestions[i] = a.Suggest(r)
	}
	return suggestions
}

// inWindow reports whether t falls inside the window. Hours are
// half-open: [StartHour, EndHour).
func inWindow(w platform.TimingWindow, t time.Time) bool {
	if t.Hour() < w.StartHour || t.Hour() >= w.EndHour {
		return false
	}
	for _, d := range w.Weekdays {
		if t.Weekday() == d {
			return true
		}
	}
	return false
}

// nextStart finds the earliest upcoming window start within the next
// week.
func (a *Advisor) nextStart(r *platform.Rules, now time.Time) (time.Time, bool) {
	var best time.Time
	for dayOffset := 0; dayOffset <= 7; dayOffset++ {
		day := now.AddDate(0, 0, dayOffset)
		for _, w := range r.TimingWindows {
			match := false
			for _, d := range w.Weekdays {
				if day.Weekday() == d {
					match = true
					break
				}
			}
			if !match {
				continue
			}
			start := time.Date(day.Year(), day.Month(), day.Day(), w.StartHour, 0, 0, 0, time.UTC)
			if !start.After(now) {
				continue
			}
			if best.IsZero() || start.Before(best) {
				best = start
			}
		}
	}
	return best, !best.IsZero()
}
