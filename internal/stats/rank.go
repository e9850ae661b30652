package stats

import "sort"

// DefaultTopN bounds the nested breakdowns inside day buckets.
const DefaultTopN = 5

// Ranked is one row of a top-N view.
type Ranked struct {
	Rank  int
	Key   string
	Value float64
}

// TopN ranks keys descending by metric. Keys must be supplied in
// first-insertion order; the sort is stable, so ties keep that order (the
// raw data offers no secondary deterministic key). n <= 0 means unbounded.
// Rankings are recomputed on every call, never cached.
func TopN(keys []string, metric func(key string) float64, n int) []Ranked {
	ranked := make([]Ranked, len(keys))
	for i, key := range keys {
		ranked[i] = Ranked{Key: key, Value: metric(key)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// -- ranked views over the aggregate -----------------------------------------

// TopTracks ranks tracks by stream count.
func (a *Aggregate) TopTracks(n int) []Ranked {
	return TopN(a.trackOrder, func(key string) float64 {
		return float64(a.tracks[key].streams)
	}, n)
}

// TopArtists ranks artists by stream count.
func (a *Aggregate) TopArtists(n int) []Ranked {
	return TopN(a.artistOrder, func(key string) float64 {
		return float64(a.artists[key].streams)
	}, n)
}

// TopArtistsByUniqueStreams ranks artists by how many distinct track names
// they have had streamed (the "variety" metric).
func (a *Aggregate) TopArtistsByUniqueStreams(n int) []Ranked {
	return TopN(a.artistOrder, func(key string) float64 {
		return float64(len(a.artists[key].seen))
	}, n)
}

// TopArtistsByHours ranks artists by total listening hours.
func (a *Aggregate) TopArtistsByHours(n int) []Ranked {
	return TopN(a.artistOrder, func(key string) float64 {
		return hours(a.artists[key].ms)
	}, n)
}

// TopAlbums ranks albums by stream count.
func (a *Aggregate) TopAlbums(n int) []Ranked {
	return TopN(a.albumOrder, func(key string) float64 {
		return float64(a.albums[key].streams)
	}, n)
}

// TopPodcasts ranks shows by qualifying episode plays.
func (a *Aggregate) TopPodcasts(n int) []Ranked {
	return TopN(a.podcastOrder, func(key string) float64 {
		return float64(a.podcasts[key])
	}, n)
}
