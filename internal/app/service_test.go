package app

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replay-fm/replay-api/internal/ports"
)

const historyJSON = `[
  {"ts": "2024-05-03T10:15:00Z", "ms_played": 215000, "master_metadata_track_name": "Song One", "master_metadata_album_artist_name": "Artist One", "master_metadata_album_album_name": "Album One", "spotify_track_uri": "spotify:track:abc"},
  {"ts": "2024-05-03T10:20:00Z", "ms_played": 10000, "master_metadata_track_name": "Song One", "master_metadata_album_artist_name": "Artist One"},
  {"ts": "2024-05-03T11:00:00Z", "ms_played": 1800000, "episode_name": "Episode 12", "episode_show_name": "Some Show"},
  {"ts": "broken", "ms_played": 1000, "master_metadata_track_name": "Bad", "master_metadata_album_artist_name": "Bad"}
]`

func testArchive(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("MyData/Streaming_History_Audio_2024_0.json")
	require.NoError(t, err)
	_, err = w.Write([]byte(historyJSON))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestService_UploadArchive(t *testing.T) {
	service := NewService(2, quietLogger())
	data := testArchive(t)

	receipt, err := service.UploadArchive(context.Background(), bytes.NewReader(data), int64(len(data)))

	require.NoError(t, err)
	assert.NotEmpty(t, receipt.SessionID)
	assert.Equal(t, 1, receipt.Files)
	assert.Equal(t, 3, receipt.Entries)
	assert.Equal(t, 1, receipt.DroppedRecords)

	summary, err := service.Summary(receipt.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalEntries)
	assert.Equal(t, 1, summary.TotalStreams)
	assert.Equal(t, "Song One", summary.FirstTrackEver.Track)

	top, err := service.TopStats(receipt.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, top.Tracks["Song One"].StreamCount)
	assert.Equal(t, 1, top.Podcasts["Some Show"])
}

func TestService_EmptyIDSelectsLatestUpload(t *testing.T) {
	service := NewService(1, quietLogger())
	data := testArchive(t)

	first, err := service.UploadArchive(context.Background(), bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	second, err := service.UploadArchive(context.Background(), bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.NotEqual(t, first.SessionID, second.SessionID)

	latest, err := service.Summary("")
	require.NoError(t, err)
	explicit, err := service.Summary(second.SessionID)
	require.NoError(t, err)
	assert.Equal(t, explicit, latest)
}

func TestService_UnknownSession(t *testing.T) {
	service := NewService(1, quietLogger())

	_, err := service.Summary("missing")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	_, err = service.Summary("")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestService_YearDays(t *testing.T) {
	service := NewService(1, quietLogger())
	data := testArchive(t)

	receipt, err := service.UploadArchive(context.Background(), bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	days, err := service.YearDays(receipt.SessionID, "2024")
	require.NoError(t, err)
	require.Contains(t, days, "May 3rd, 2024")
	assert.NotEmpty(t, days["May 3rd, 2024"].Entries)

	_, err = service.YearDays(receipt.SessionID, "1999")
	assert.ErrorIs(t, err, ports.ErrYearNotFound)
}

func TestService_UploadInvalidArchive(t *testing.T) {
	service := NewService(1, quietLogger())

	_, err := service.UploadArchive(context.Background(), bytes.NewReader([]byte("not a zip")), 9)
	assert.Error(t, err)
	assert.Equal(t, 0, service.registry.Len())
}

func TestService_UploadCancelledContext(t *testing.T) {
	service := NewService(1, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data := testArchive(t)
	_, err := service.UploadArchive(ctx, bytes.NewReader(data), int64(len(data)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_AllStats(t *testing.T) {
	service := NewService(1, quietLogger())
	data := testArchive(t)

	receipt, err := service.UploadArchive(context.Background(), bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	all, err := service.AllStats(receipt.SessionID)
	require.NoError(t, err)
	require.NotNil(t, all.General)
	require.NotNil(t, all.Top)
	assert.Contains(t, all.Days, "May 3rd, 2024")
	assert.Contains(t, all.Years, "2024")
}
