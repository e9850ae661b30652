package export

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replay-fm/replay-api/internal/domain"
)

const sampleBatch = `[
  {
    "ts": "2024-05-03T10:15:00Z",
    "platform": "android",
    "ms_played": 215000,
    "conn_country": "DE",
    "master_metadata_track_name": "Song One",
    "master_metadata_album_artist_name": "Artist One",
    "master_metadata_album_album_name": "Album One",
    "spotify_track_uri": "spotify:track:abc123",
    "reason_start": "clickrow",
    "reason_end": "trackdone",
    "shuffle": true,
    "skipped": false,
    "offline": false,
    "incognito_mode": false
  },
  {
    "ts": "2024-05-03T11:00:00Z",
    "platform": "ios",
    "ms_played": 1800000,
    "conn_country": "DE",
    "master_metadata_track_name": null,
    "master_metadata_album_artist_name": null,
    "master_metadata_album_album_name": null,
    "spotify_track_uri": null,
    "episode_name": "Episode 12",
    "episode_show_name": "Some Show",
    "spotify_episode_uri": "spotify:episode:xyz789",
    "reason_start": "clickrow",
    "reason_end": "endplay",
    "shuffle": false,
    "offline": false,
    "incognito_mode": false
  }
]`

func TestParse_MusicRecord(t *testing.T) {
	var batch []RawRecord
	require.NoError(t, json.Unmarshal([]byte(sampleBatch), &batch))
	require.Len(t, batch, 2)

	e, err := Parse(batch[0])
	require.NoError(t, err)

	assert.Equal(t, domain.KindMusic, e.Kind)
	assert.Equal(t, "Song One", e.Track)
	assert.Equal(t, "Artist One", e.Artist)
	assert.Equal(t, "Album One", e.Album)
	assert.Equal(t, "spotify:track:abc123", e.SourceURI)
	assert.Equal(t, int64(215_000), e.MsPlayed)
	assert.Equal(t, time.Date(2024, 5, 3, 10, 15, 0, 0, time.UTC), e.Timestamp)
	assert.True(t, e.Shuffle)
	require.NotNil(t, e.SkippedFlag)
	assert.False(t, *e.SkippedFlag)
	assert.Empty(t, e.Episode)
	assert.Empty(t, e.Show)
}

func TestParse_PodcastRecord(t *testing.T) {
	var batch []RawRecord
	require.NoError(t, json.Unmarshal([]byte(sampleBatch), &batch))

	e, err := Parse(batch[1])
	require.NoError(t, err)

	assert.Equal(t, domain.KindPodcast, e.Kind)
	assert.True(t, e.IsPodcast())
	assert.Equal(t, "Episode 12", e.Episode)
	assert.Equal(t, "Some Show", e.Show)
	assert.Equal(t, "spotify:episode:xyz789", e.SourceURI)
	assert.Empty(t, e.Track)

	// No skipped field in this record: the flag must stay absent so the
	// reason-code fallback applies.
	assert.Nil(t, e.SkippedFlag)
	assert.True(t, e.IsSkipped()) // reason_end endplay
}

func TestParse_MissingMsPlayedIsZero(t *testing.T) {
	raw := []byte(`[{"ts": "2024-05-03T10:15:00Z", "master_metadata_track_name": "T", "master_metadata_album_artist_name": "X", "ms_played": null}]`)
	var batch []RawRecord
	require.NoError(t, json.Unmarshal(raw, &batch))

	e, err := Parse(batch[0])
	require.NoError(t, err)
	assert.Equal(t, int64(0), e.MsPlayed)
	assert.False(t, e.IsStream())
}

func TestParse_BadTimestampDropped(t *testing.T) {
	_, err := Parse(RawRecord{Timestamp: "not-a-timestamp", TrackName: "T", ArtistName: "X"})
	assert.Error(t, err)
}

func TestParse_UnrecognizedShapeDropped(t *testing.T) {
	_, err := Parse(RawRecord{Timestamp: "2024-05-03T10:15:00Z"})
	assert.ErrorIs(t, err, ErrUnrecognizedRecord)
}

func TestParseAll_BestEffort(t *testing.T) {
	ms := int64(60_000)
	records := []RawRecord{
		{Timestamp: "2024-05-03T10:15:00Z", TrackName: "T", ArtistName: "X", MsPlayed: &ms},
		{Timestamp: "garbage", TrackName: "T", ArtistName: "X"},
		{Timestamp: "2024-05-03T11:15:00Z"}, // no identity
		{Timestamp: "2024-05-03T12:15:00Z", EpisodeName: "Ep", ShowName: "S", MsPlayed: &ms},
	}

	events, dropped := ParseAll(records)

	assert.Len(t, events, 2)
	assert.Equal(t, 2, dropped)
}
