package stats

import (
	"fmt"
	"math"

	"github.com/replay-fm/replay-api/internal/domain"
)

// RoyaltyPerStream is the assumed per-stream artist payout in USD used for
// the revenue estimate.
const RoyaltyPerStream = 0.004

const firstPlayLayout = "Monday, January 2, 2006 at 3:04 PM"

// Summary derives the single-value statistics from the aggregate state.
func (a *Aggregate) Summary() *domain.Summary {
	return &domain.Summary{
		TotalEntries:      a.totalEntries,
		TotalStreams:      a.totalStreams,
		TotalUniqueTracks: len(a.uniqueTracks),
		TotalSkipped:      a.totalSkipped,
		PercentShuffled:   a.percentShuffled(),
		MusicTime:         timeTotals(a.musicMs),
		PodcastTime:       timeTotals(a.podcastMs),
		ArtistRevenue:     fmt.Sprintf("%.2f", float64(a.totalStreams)*RoyaltyPerStream),
		FirstTrackEver:    a.firstTrack(),
	}
}

// percentShuffled is the share of shuffle-eligible events played with
// shuffle on, rounded to two decimals. An empty eligible set yields 0, never
// a division error.
func (a *Aggregate) percentShuffled() float64 {
	if a.shuffleEligible == 0 {
		return 0
	}
	return math.Round(float64(a.shuffled)/float64(a.shuffleEligible)*100*100) / 100
}

func (a *Aggregate) firstTrack() domain.FirstTrack {
	if a.firstMusic == nil {
		return domain.FirstTrack{Track: "N/A", Artist: "N/A", Timestamp: "N/A"}
	}
	return domain.FirstTrack{
		Track:     a.firstMusic.Track,
		Artist:    a.firstMusic.Artist,
		Timestamp: a.firstMusic.Timestamp.UTC().Format(firstPlayLayout),
	}
}

// timeTotals derives every display unit from the exact millisecond value.
func timeTotals(ms int64) domain.TimeTotals {
	return domain.TimeTotals{
		Minutes: ms / 60_000,
		Hours:   ms / 3_600_000,
		Days:    ms / 86_400_000,
	}
}
