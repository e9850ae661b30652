// Package stats implements the aggregation engine: a single deterministic
// pass over classified play events producing per-entity counters, calendar
// buckets, rankings and summary statistics.
//
// An Aggregate is built once by Build or BuildParallel and is read-only
// afterwards; every read (TopStats, Days, Years, Summary, rankings) is
// non-mutating and cheap relative to the build pass.
package stats

import (
	"sort"

	"github.com/replay-fm/replay-api/internal/domain"
)

type trackAgg struct {
	artist  string
	streams int
	skips   int
	ms      int64
	days    map[string]struct{}
}

type artistAgg struct {
	streams int
	ms      int64
	seen    map[string]struct{}
}

type albumAgg struct {
	artists []string
	streams int
	ms      int64
}

type dayAgg struct {
	streams int
	ms      int64
	entries []domain.PlayEvent
}

type yearAgg struct {
	musicStreams int
	musicMs      int64
	// credited holds the source URIs whose first qualifying stream
	// corpus-wide fell in this year, in first-seen order.
	credited     []string
	podcastPlays int
	podcastMs    int64
	entries      []domain.PlayEvent
}

// Aggregate is the immutable-after-build result of one aggregation run.
// Insertion order of every map is recorded so that rankings tie-break
// deterministically on first appearance.
type Aggregate struct {
	tracks     map[string]*trackAgg
	trackOrder []string

	artists     map[string]*artistAgg
	artistOrder []string

	albums     map[string]*albumAgg
	albumOrder []string

	podcasts     map[string]int
	podcastOrder []string

	days     map[string]*dayAgg
	dayOrder []string

	years     map[string]*yearAgg
	yearOrder []string

	totalEntries    int
	totalStreams    int
	totalSkipped    int
	musicMs         int64
	podcastMs       int64
	shuffleEligible int
	shuffled        int

	uniqueTracks map[string]struct{}
	seenURIs     map[string]struct{}
	firstMusic   *domain.PlayEvent
}

func newAggregate() *Aggregate {
	return &Aggregate{
		tracks:       make(map[string]*trackAgg),
		artists:      make(map[string]*artistAgg),
		albums:       make(map[string]*albumAgg),
		podcasts:     make(map[string]int),
		days:         make(map[string]*dayAgg),
		years:        make(map[string]*yearAgg),
		uniqueTracks: make(map[string]struct{}),
		seenURIs:     make(map[string]struct{}),
	}
}

// Build folds the full event collection into a fresh Aggregate. Events are
// processed in timestamp order regardless of input order, which makes every
// derived value, including first-seen attributions and ranking tie-breaks,
// independent of how the export files happened to be concatenated.
func Build(events []domain.PlayEvent) *Aggregate {
	a := newAggregate()
	for _, e := range sortedByTimestamp(events) {
		a.fold(e)
	}
	return a
}

func sortedByTimestamp(events []domain.PlayEvent) []domain.PlayEvent {
	sorted := make([]domain.PlayEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// fold applies one classified event to the running state. Callers must feed
// events in timestamp order.
func (a *Aggregate) fold(e domain.PlayEvent) {
	a.totalEntries++

	if e.IsPodcast() {
		a.foldPodcast(e)
	} else {
		a.foldMusic(e)
	}

	if e.IsStream() {
		a.foldBuckets(e)
	}
}

func (a *Aggregate) foldMusic(e domain.PlayEvent) {
	a.musicMs += e.MsPlayed

	if a.firstMusic == nil {
		first := e
		a.firstMusic = &first
	}

	track := a.track(e.Track, e.Artist)
	if e.IsSkipped() {
		track.skips++
		a.totalSkipped++
	}

	if !e.IsStream() {
		return
	}

	a.totalStreams++
	a.shuffleEligible++
	if e.Shuffle {
		a.shuffled++
	}
	a.uniqueTracks[e.Track] = struct{}{}

	track.streams++
	track.ms += e.MsPlayed
	track.days[dayKey(e.Timestamp)] = struct{}{}

	artist := a.artist(e.Artist)
	artist.streams++
	artist.ms += e.MsPlayed
	artist.seen[e.Track] = struct{}{}

	if e.Album != "" {
		album := a.album(e.Album)
		album.streams++
		album.ms += e.MsPlayed
		if e.Artist != "" && !contains(album.artists, e.Artist) {
			album.artists = append(album.artists, e.Artist)
		}
	}
}

func (a *Aggregate) foldPodcast(e domain.PlayEvent) {
	a.podcastMs += e.MsPlayed
	if !e.IsStream() {
		return
	}

	show := e.Show
	if show == "" {
		show = "Unknown"
	}
	if _, ok := a.podcasts[show]; !ok {
		a.podcastOrder = append(a.podcastOrder, show)
	}
	a.podcasts[show]++
}

func (a *Aggregate) foldBuckets(e domain.PlayEvent) {
	day := a.day(dayKey(e.Timestamp))
	day.streams++
	day.ms += e.MsPlayed
	day.entries = append(day.entries, e)

	year := a.year(yearKey(e.Timestamp))
	year.entries = append(year.entries, e)
	if e.IsPodcast() {
		year.podcastPlays++
		year.podcastMs += e.MsPlayed
		return
	}

	year.musicStreams++
	year.musicMs += e.MsPlayed
	if e.SourceURI != "" {
		if _, dup := a.seenURIs[e.SourceURI]; !dup {
			a.seenURIs[e.SourceURI] = struct{}{}
			year.credited = append(year.credited, e.SourceURI)
		}
	}
}

// -- keyed lookups with insertion-order bookkeeping --------------------------

func (a *Aggregate) track(name, artist string) *trackAgg {
	t, ok := a.tracks[name]
	if !ok {
		t = &trackAgg{artist: artist, days: make(map[string]struct{})}
		a.tracks[name] = t
		a.trackOrder = append(a.trackOrder, name)
	}
	return t
}

func (a *Aggregate) artist(name string) *artistAgg {
	ar, ok := a.artists[name]
	if !ok {
		ar = &artistAgg{seen: make(map[string]struct{})}
		a.artists[name] = ar
		a.artistOrder = append(a.artistOrder, name)
	}
	return ar
}

func (a *Aggregate) album(name string) *albumAgg {
	al, ok := a.albums[name]
	if !ok {
		al = &albumAgg{}
		a.albums[name] = al
		a.albumOrder = append(a.albumOrder, name)
	}
	return al
}

func (a *Aggregate) day(key string) *dayAgg {
	d, ok := a.days[key]
	if !ok {
		d = &dayAgg{}
		a.days[key] = d
		a.dayOrder = append(a.dayOrder, key)
	}
	return d
}

func (a *Aggregate) year(key string) *yearAgg {
	y, ok := a.years[key]
	if !ok {
		y = &yearAgg{}
		a.years[key] = y
		a.yearOrder = append(a.yearOrder, key)
	}
	return y
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// -- views -------------------------------------------------------------------

// TopStats projects the four entity maps into their JSON contract form.
func (a *Aggregate) TopStats() *domain.TopStats {
	top := &domain.TopStats{
		Tracks:   make(map[string]domain.TrackStats, len(a.tracks)),
		Artists:  make(map[string]domain.ArtistStats, len(a.artists)),
		Albums:   make(map[string]domain.AlbumStats, len(a.albums)),
		Podcasts: make(map[string]int, len(a.podcasts)),
	}

	for name, t := range a.tracks {
		top.Tracks[name] = domain.TrackStats{
			Artist:      t.artist,
			StreamCount: t.streams,
			SkipCount:   t.skips,
			MsPlayed:    t.ms,
			UniqueDays:  len(t.days),
		}
	}
	for name, ar := range a.artists {
		top.Artists[name] = domain.ArtistStats{
			StreamCount:       ar.streams,
			UniqueStreamCount: len(ar.seen),
			MsPlayed:          ar.ms,
		}
	}
	for name, al := range a.albums {
		top.Albums[name] = domain.AlbumStats{
			Artist:      joinArtists(al.artists),
			StreamCount: al.streams,
			MsPlayed:    al.ms,
		}
	}
	for name, plays := range a.podcasts {
		top.Podcasts[name] = plays
	}
	return top
}

// Years projects the calendar-year buckets.
func (a *Aggregate) Years() map[string]domain.YearStats {
	years := make(map[string]domain.YearStats, len(a.years))
	for key, y := range a.years {
		years[key] = domain.YearStats{
			Streams:       y.musicStreams,
			MusicHours:    hours(y.musicMs),
			UniqueStreams: len(y.credited),
			PodcastPlays:  y.podcastPlays,
			PodcastHours:  hours(y.podcastMs),
		}
	}
	return years
}

func joinArtists(artists []string) string {
	switch len(artists) {
	case 0:
		return ""
	case 1:
		return artists[0]
	}
	out := artists[0]
	for _, s := range artists[1:] {
		out += ", " + s
	}
	return out
}
