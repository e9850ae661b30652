package stats

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/replay-fm/replay-api/internal/domain"
)

// syntheticCorpus builds a deterministic mixed corpus large enough to span
// several partitions.
func syntheticCorpus(t *testing.T, size int) []domain.PlayEvent {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	base := at(t, "2019-01-01T00:00:00Z")

	tracks := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"}
	artists := []string{"X", "Y", "Z"}
	shows := []string{"Show1", "Show2"}

	events := make([]domain.PlayEvent, 0, size)
	for i := 0; i < size; i++ {
		ts := base.Add(time.Duration(i) * 97 * time.Minute)
		if i%7 == 0 {
			events = append(events, podcast(ts, "Ep", shows[i%len(shows)], int64(rng.Intn(200_000))))
			continue
		}
		e := music(ts, tracks[i%len(tracks)], artists[i%len(artists)], "LP", int64(rng.Intn(90_000)))
		e.Shuffle = i%3 == 0
		if i%11 == 0 {
			skipped := true
			e.SkippedFlag = &skipped
		}
		events = append(events, e)
	}
	return events
}

func assertAggregatesEqual(t *testing.T, want, got *Aggregate) {
	t.Helper()
	assert.Equal(t, want.Summary(), got.Summary())
	assert.Equal(t, want.TopStats(), got.TopStats())
	assert.Equal(t, want.Days(), got.Days())
	assert.Equal(t, want.Years(), got.Years())
	assert.Equal(t, want.TopTracks(10), got.TopTracks(10))
	assert.Equal(t, want.TopArtists(10), got.TopArtists(10))
}

func TestBuildParallel_MatchesSequential(t *testing.T) {
	events := syntheticCorpus(t, 500)

	sequential := Build(events)
	for _, workers := range []int{2, 3, 8} {
		assertAggregatesEqual(t, sequential, BuildParallel(events, workers))
	}
}

func TestBuildParallel_InputOrderIndependent(t *testing.T) {
	events := syntheticCorpus(t, 300)
	shuffledInput := make([]domain.PlayEvent, len(events))
	copy(shuffledInput, events)
	rand.New(rand.NewSource(7)).Shuffle(len(shuffledInput), func(i, j int) {
		shuffledInput[i], shuffledInput[j] = shuffledInput[j], shuffledInput[i]
	})

	assertAggregatesEqual(t, BuildParallel(events, 4), BuildParallel(shuffledInput, 4))
}

func TestBuildParallel_DegenerateCases(t *testing.T) {
	events := syntheticCorpus(t, 10)

	// More workers than events, zero workers, single event, empty input.
	assertAggregatesEqual(t, Build(events), BuildParallel(events, 64))
	assertAggregatesEqual(t, Build(events), BuildParallel(events, 0))
	assertAggregatesEqual(t, Build(events[:1]), BuildParallel(events[:1], 4))
	assert.Equal(t, 0, BuildParallel(nil, 4).Summary().TotalEntries)
}

func TestBuildParallel_RepeatedRunsAreIdentical(t *testing.T) {
	events := syntheticCorpus(t, 400)

	first := BuildParallel(events, 6)
	second := BuildParallel(events, 6)
	assertAggregatesEqual(t, first, second)
}
