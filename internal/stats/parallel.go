package stats

import (
	"sync"

	"github.com/replay-fm/replay-api/internal/domain"
)

// BuildParallel partitions the event collection across a bounded worker pool,
// folds each contiguous partition into a partial aggregate, and merges the
// partials in partition order. Events are timestamp-sorted before
// partitioning, so the merge sees strictly increasing time: summed counters
// are order-independent anyway, and the timestamp-ordered derivations (first
// track ever, artist of record, unique-stream credit) resolve to the same
// result as the sequential fold no matter how the goroutines are scheduled.
func BuildParallel(events []domain.PlayEvent, workers int) *Aggregate {
	if workers < 1 {
		workers = 1
	}
	if workers > len(events) {
		workers = len(events)
	}
	if workers <= 1 {
		return Build(events)
	}

	sorted := sortedByTimestamp(events)
	partials := make([]*Aggregate, workers)
	chunk := (len(sorted) + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		lo := i * chunk
		hi := lo + chunk
		if hi > len(sorted) {
			hi = len(sorted)
		}

		wg.Add(1)
		go func(i, lo, hi int) {
			defer wg.Done()
			part := newAggregate()
			for _, e := range sorted[lo:hi] {
				part.fold(e)
			}
			partials[i] = part
		}(i, lo, hi)
	}
	wg.Wait()

	acc := newAggregate()
	for _, part := range partials {
		acc.merge(part)
	}
	return acc
}

// merge folds a later partial aggregate into the receiver. The receiver must
// cover strictly earlier timestamps, so on conflicts over first-seen values
// (track's artist of record, first music event, unique-stream credit) the
// receiver's state wins.
func (a *Aggregate) merge(b *Aggregate) {
	for _, name := range b.trackOrder {
		bt := b.tracks[name]
		at := a.track(name, bt.artist)
		at.streams += bt.streams
		at.skips += bt.skips
		at.ms += bt.ms
		for day := range bt.days {
			at.days[day] = struct{}{}
		}
	}

	for _, name := range b.artistOrder {
		ba := b.artists[name]
		aa := a.artist(name)
		aa.streams += ba.streams
		aa.ms += ba.ms
		for track := range ba.seen {
			aa.seen[track] = struct{}{}
		}
	}

	for _, name := range b.albumOrder {
		bl := b.albums[name]
		al := a.album(name)
		al.streams += bl.streams
		al.ms += bl.ms
		for _, artist := range bl.artists {
			if !contains(al.artists, artist) {
				al.artists = append(al.artists, artist)
			}
		}
	}

	for _, name := range b.podcastOrder {
		if _, ok := a.podcasts[name]; !ok {
			a.podcastOrder = append(a.podcastOrder, name)
		}
		a.podcasts[name] += b.podcasts[name]
	}

	for _, key := range b.dayOrder {
		bd := b.days[key]
		ad := a.day(key)
		ad.streams += bd.streams
		ad.ms += bd.ms
		ad.entries = append(ad.entries, bd.entries...)
	}

	for _, key := range b.yearOrder {
		by := b.years[key]
		ay := a.year(key)
		ay.musicStreams += by.musicStreams
		ay.musicMs += by.musicMs
		ay.podcastPlays += by.podcastPlays
		ay.podcastMs += by.podcastMs
		ay.entries = append(ay.entries, by.entries...)
		// Re-adjudicate unique-stream credit against the merged corpus: a URI
		// the receiver already saw was streamed earlier, so the partial's
		// credit is revoked.
		for _, uri := range by.credited {
			if _, dup := a.seenURIs[uri]; !dup {
				a.seenURIs[uri] = struct{}{}
				ay.credited = append(ay.credited, uri)
			}
		}
	}

	a.totalEntries += b.totalEntries
	a.totalStreams += b.totalStreams
	a.totalSkipped += b.totalSkipped
	a.musicMs += b.musicMs
	a.podcastMs += b.podcastMs
	a.shuffleEligible += b.shuffleEligible
	a.shuffled += b.shuffled

	for track := range b.uniqueTracks {
		a.uniqueTracks[track] = struct{}{}
	}

	if a.firstMusic == nil {
		a.firstMusic = b.firstMusic
	} else if b.firstMusic != nil && b.firstMusic.Timestamp.Before(a.firstMusic.Timestamp) {
		a.firstMusic = b.firstMusic
	}
}
