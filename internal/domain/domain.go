package domain

import "time"

// EventKind distinguishes music plays from podcast plays. Every PlayEvent
// carries exactly one of the two identity pairs (track/artist vs.
// episode/show); the parser enforces this at the boundary.
type EventKind string

const (
	KindMusic   EventKind = "music"
	KindPodcast EventKind = "podcast"
)

// PlayEvent is the canonical, immutable form of one raw export record.
type PlayEvent struct {
	Timestamp time.Time `json:"timestamp"`
	MsPlayed  int64     `json:"msPlayed"`
	Kind      EventKind `json:"kind"`

	// Music identity (Kind == KindMusic).
	Track  string `json:"trackName,omitempty"`
	Artist string `json:"artistName,omitempty"`
	Album  string `json:"albumName,omitempty"`

	// Podcast identity (Kind == KindPodcast).
	Episode string `json:"episodeName,omitempty"`
	Show    string `json:"showName,omitempty"`

	Platform    string `json:"platform,omitempty"`
	Country     string `json:"country,omitempty"`
	Shuffle     bool   `json:"shuffle"`
	ReasonStart string `json:"reasonStart,omitempty"`
	ReasonEnd   string `json:"reasonEnd,omitempty"`
	Offline     bool   `json:"offline"`
	Incognito   bool   `json:"incognito"`
	SourceURI   string `json:"sourceUri,omitempty"`

	// SkippedFlag is the source-reported skip marker. Older export versions
	// omit the field entirely, so absence is meaningful (nil).
	SkippedFlag *bool `json:"skipped,omitempty"`
}

// IsPodcast reports whether the event is a podcast play.
func (e PlayEvent) IsPodcast() bool {
	return e.Kind == KindPodcast
}

// UploadReceipt summarizes one processed upload.
type UploadReceipt struct {
	SessionID      string `json:"session_id"`
	Files          int    `json:"files_parsed"`
	DuplicateFiles int    `json:"duplicate_files"`
	Entries        int    `json:"entries"`
	DroppedRecords int    `json:"dropped_records"`
}

// -- Aggregated views (the JSON contract of the read endpoints) --------------

// TrackStats is the per-track projection. Tracks are keyed by display name
// only; two artists with identically named tracks collide by design (the
// export carries no stable track ID).
type TrackStats struct {
	Artist      string `json:"artist"`
	StreamCount int    `json:"streamCount"`
	SkipCount   int    `json:"skipCount"`
	MsPlayed    int64  `json:"msPlayed"`
	UniqueDays  int    `json:"uniqueDays"`
}

// ArtistStats is the per-artist projection. UniqueStreamCount counts the
// distinct track names ever streamed for the artist.
type ArtistStats struct {
	StreamCount       int   `json:"streamCount"`
	UniqueStreamCount int   `json:"uniqueStreamCount"`
	MsPlayed          int64 `json:"msPlayed"`
}

// AlbumStats is the per-album projection. Artist joins every artist seen on
// the album, in first-seen order.
type AlbumStats struct {
	Artist      string `json:"artist"`
	StreamCount int    `json:"streamCount"`
	MsPlayed    int64  `json:"msPlayed"`
}

// TopStats bundles the four entity maps served by the top-stats endpoint.
type TopStats struct {
	Tracks   map[string]TrackStats  `json:"trackStats"`
	Artists  map[string]ArtistStats `json:"artistStats"`
	Albums   map[string]AlbumStats  `json:"albumStats"`
	Podcasts map[string]int         `json:"podcastStats"`
}

// DayStats is one calendar-day bucket. The top maps are bounded top-5
// breakdowns re-derived from the day's raw entries on read. Entries are
// populated only on drill-down reads.
type DayStats struct {
	Streams     int            `json:"streams"`
	Hours       float64        `json:"hours"`
	TopTracks   map[string]int `json:"topTracks"`
	TopArtists  map[string]int `json:"topArtists"`
	TopPodcasts map[string]int `json:"topPodcasts"`
	Entries     []PlayEvent    `json:"entries,omitempty"`
}

// YearStats is one calendar-year bucket.
type YearStats struct {
	Streams       int     `json:"streams"`
	MusicHours    float64 `json:"musicHours"`
	UniqueStreams int     `json:"uniqueStreams"`
	PodcastPlays  int     `json:"podcastPlays"`
	PodcastHours  float64 `json:"podcastHours"`
}

// TimeTotals expresses a millisecond total in display units. Each unit is
// derived from the exact millisecond value by integer division, so no
// rounding error compounds between units.
type TimeTotals struct {
	Minutes int64 `json:"minutes"`
	Hours   int64 `json:"hours"`
	Days    int64 `json:"days"`
}

// FirstTrack identifies the earliest music play in the corpus. All fields
// read "N/A" when the corpus contains no music events.
type FirstTrack struct {
	Track     string `json:"track"`
	Artist    string `json:"artist"`
	Timestamp string `json:"timeStamp"`
}

// Summary holds the single-value statistics derived from a full aggregation
// pass.
type Summary struct {
	TotalEntries      int        `json:"totalEntries"`
	TotalStreams      int        `json:"totalStreams"`
	TotalUniqueTracks int        `json:"totalUniqueTracks"`
	TotalSkipped      int        `json:"totalSkipped"`
	PercentShuffled   float64    `json:"percentageTimeShuffled"`
	MusicTime         TimeTotals `json:"totalMusicTime"`
	PodcastTime       TimeTotals `json:"totalPodcastTime"`
	// ArtistRevenue is an estimate only: streams x $0.004, assuming no label
	// revenue share.
	ArtistRevenue  string     `json:"totalArtistRevenue"`
	FirstTrackEver FirstTrack `json:"firstTrackEver"`
}

// AllStats is the combined payload of the all-stats endpoint.
type AllStats struct {
	General *Summary             `json:"generalStats"`
	Top     *TopStats            `json:"topStats"`
	Days    map[string]DayStats  `json:"dailyStats"`
	Years   map[string]YearStats `json:"yearlyStats"`
}
