package stats

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/replay-fm/replay-api/internal/domain"
)

// Calendar bucketing uses one fixed reference zone for the whole engine so
// that bucket keys are stable across machines and viewers. Export timestamps
// are UTC instants, so UTC is the reference zone.

// dayKey formats a calendar-day bucket key, e.g. "May 3rd, 2024". The exact
// string doubles as the map key, so any two timestamps on the same UTC day
// must produce byte-identical output.
func dayKey(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%s %s, %d", t.Month().String(), ordinal(t.Day()), t.Year())
}

func yearKey(t time.Time) string {
	return strconv.Itoa(t.UTC().Year())
}

// ordinal renders 1 -> "1st", 2 -> "2nd", 22 -> "22nd", with the 11th-13th
// exception.
func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// hours converts milliseconds to display hours, rounded to two decimals.
func hours(ms int64) float64 {
	return math.Round(float64(ms)/36_000) / 100
}

// Days projects every calendar-day bucket. Raw entries are withheld; use
// YearDays for drill-down payloads.
func (a *Aggregate) Days() map[string]domain.DayStats {
	days := make(map[string]domain.DayStats, len(a.days))
	for key, d := range a.days {
		days[key] = dayView(d.entries, false)
	}
	return days
}

// YearDays groups one year's retained entries into day buckets on demand,
// including the contributing raw entries. Day buckets for a year are not
// materialized during the aggregation pass; they are derived here only when
// a caller expands that year. The second return is false when the year has
// no bucket.
func (a *Aggregate) YearDays(year string) (map[string]domain.DayStats, bool) {
	y, ok := a.years[year]
	if !ok {
		return nil, false
	}

	grouped := make(map[string][]domain.PlayEvent)
	for _, e := range y.entries {
		key := dayKey(e.Timestamp)
		grouped[key] = append(grouped[key], e)
	}

	days := make(map[string]domain.DayStats, len(grouped))
	for key, entries := range grouped {
		days[key] = dayView(entries, true)
	}
	return days, true
}

// dayView derives a DayStats from a day's raw entries. The top-5 breakdowns
// are recomputed from the entries on every read rather than incrementally
// maintained, so the bucket counters and its breakdowns cannot drift apart.
func dayView(entries []domain.PlayEvent, includeEntries bool) domain.DayStats {
	var ms int64
	trackCounts := make(map[string]int)
	var trackOrder []string
	artistCounts := make(map[string]int)
	var artistOrder []string
	podcastCounts := make(map[string]int)
	var podcastOrder []string

	for _, e := range entries {
		ms += e.MsPlayed
		if e.IsPodcast() {
			if _, ok := podcastCounts[e.Show]; !ok {
				podcastOrder = append(podcastOrder, e.Show)
			}
			podcastCounts[e.Show]++
			continue
		}

		label := fmt.Sprintf("%s (%s)", e.Track, e.Artist)
		if _, ok := trackCounts[label]; !ok {
			trackOrder = append(trackOrder, label)
		}
		trackCounts[label]++
		if _, ok := artistCounts[e.Artist]; !ok {
			artistOrder = append(artistOrder, e.Artist)
		}
		artistCounts[e.Artist]++
	}

	day := domain.DayStats{
		Streams:     len(entries),
		Hours:       hours(ms),
		TopTracks:   topCounts(trackOrder, trackCounts),
		TopArtists:  topCounts(artistOrder, artistCounts),
		TopPodcasts: topCounts(podcastOrder, podcastCounts),
	}
	if includeEntries {
		day.Entries = entries
	}
	return day
}

func topCounts(order []string, counts map[string]int) map[string]int {
	ranked := TopN(order, func(key string) float64 { return float64(counts[key]) }, DefaultTopN)
	top := make(map[string]int, len(ranked))
	for _, r := range ranked {
		top[r.Key] = counts[r.Key]
	}
	return top
}
