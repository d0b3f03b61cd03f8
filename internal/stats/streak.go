package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/sravanipallapu19/healthComp/internal/model"
)

// Day is a calendar date, independent of any time of day.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// CalendarDay floors t to midnight in loc and returns that calendar date.
// t is converted to loc first: 02:00 UTC on the 14th is the 13th in
// America/New_York.
func CalendarDay(t time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return Day{Year: y, Month: m, Day: d}
}

// Midnight returns the instant at which d starts in loc.
func (d Day) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the calendar day n days after d (n may be negative).
// Arithmetic runs at UTC noon so DST transitions never skip a date.
func (d Day) AddDays(n int) Day {
	t := time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC)
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Prev returns the day before d.
func (d Day) Prev() Day { return d.AddDays(-1) }

// Before reports whether d is strictly earlier than o.
func (d Day) Before(o Day) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// DaysUntil returns the number of calendar days from d to o.
func (d Day) DaysUntil(o Day) int {
	a := time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
	b := time.Date(o.Year, o.Month, o.Day, 12, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// daySet normalises every dated entry once. Entries without a date are
// skipped.
func daySet(entries []model.JournalEntry, loc *time.Location) map[Day]struct{} {
	days := make(map[Day]struct{}, len(entries))
	for _, en := range entries {
		if en.Date.IsZero() {
			continue
		}
		days[CalendarDay(en.Date, loc)] = struct{}{}
	}
	return days
}

// ComputeStreak counts consecutive calendar days, ending today, that hold at
// least one entry. Without an entry today the streak is zero regardless of
// earlier history. Multiple entries on one day count once.
func (e *Engine) ComputeStreak(entries []model.JournalEntry) int {
	days := daySet(entries, e.loc)
	today := e.Today()
	if _, ok := days[today]; !ok {
		return 0
	}
	if e.streakCap <= 0 {
		return unboundedStreak(days, today)
	}

	streak := 1
	for d := today.Prev(); streak < e.streakCap; d = d.Prev() {
		if _, ok := days[d]; !ok {
			break
		}
		streak++
	}
	return streak
}

// unboundedStreak walks the distinct days once, newest first.
func unboundedStreak(days map[Day]struct{}, today Day) int {
	sorted := make([]Day, 0, len(days))
	for d := range days {
		if !today.Before(d) {
			sorted = append(sorted, d)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[j].Before(sorted[i]) })

	streak := 0
	want := today
	for _, d := range sorted {
		if d != want {
			break
		}
		streak++
		want = want.Prev()
	}
	return streak
}
