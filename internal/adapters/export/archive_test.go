package export

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const historyJSON = `[
  {"ts": "2024-05-03T10:15:00Z", "ms_played": 215000, "master_metadata_track_name": "Song One", "master_metadata_album_artist_name": "Artist One"},
  {"ts": "2024-05-03T11:00:00Z", "ms_played": 1800000, "episode_name": "Episode 12", "episode_show_name": "Some Show"}
]`

const secondHistoryJSON = `[
  {"ts": "2024-06-01T09:00:00Z", "ms_played": 60000, "master_metadata_track_name": "Song Two", "master_metadata_album_artist_name": "Artist Two"}
]`

// buildZip assembles an in-memory archive from name/content pairs.
func buildZip(t *testing.T, members map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range members {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractArchive(t *testing.T) {
	data := buildZip(t, map[string]string{
		"MyData/Streaming_History_Audio_2024_0.json": historyJSON,
		"MyData/Streaming_History_Audio_2024_1.json": secondHistoryJSON,
		"MyData/ReadMeFirst.pdf":                     "not json",
	})

	records, diag, err := ExtractArchive(bytes.NewReader(data), int64(len(data)))

	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, 2, diag.Files)
	assert.Equal(t, 3, diag.Records)
	assert.Equal(t, 0, diag.DuplicateFiles)
	assert.Equal(t, 0, diag.SkippedFiles)
}

func TestExtractArchive_DuplicateMembersReadOnce(t *testing.T) {
	data := buildZip(t, map[string]string{
		"MyData/Streaming_History_Audio_2024_0.json":        historyJSON,
		"backup/Streaming_History_Audio_2024_0 (copy).json": historyJSON,
	})

	records, diag, err := ExtractArchive(bytes.NewReader(data), int64(len(data)))

	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 1, diag.Files)
	assert.Equal(t, 1, diag.DuplicateFiles)
}

func TestExtractArchive_SkipsMacOSArtifacts(t *testing.T) {
	data := buildZip(t, map[string]string{
		"MyData/Streaming_History_Audio_2024_0.json":           historyJSON,
		"__MACOSX/MyData/._Streaming_History_Audio_2024_0.json": "resource fork",
		"MyData/._hidden.json": "resource fork",
	})

	records, diag, err := ExtractArchive(bytes.NewReader(data), int64(len(data)))

	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 1, diag.Files)
	assert.Equal(t, 0, diag.SkippedFiles)
}

func TestExtractArchive_NonHistoryJSONSkipped(t *testing.T) {
	data := buildZip(t, map[string]string{
		"MyData/Streaming_History_Audio_2024_0.json": historyJSON,
		"MyData/Userdata.json":                       `{"username": "someone"}`,
	})

	records, diag, err := ExtractArchive(bytes.NewReader(data), int64(len(data)))

	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 1, diag.Files)
	assert.Equal(t, 1, diag.SkippedFiles)
}

func TestExtractArchive_NestedZip(t *testing.T) {
	inner := buildZip(t, map[string]string{
		"MyData/Streaming_History_Audio_2024_0.json": historyJSON,
	})
	outer := buildZip(t, map[string]string{
		"my_spotify_data.zip": string(inner),
		"extra.json":          secondHistoryJSON,
	})

	records, diag, err := ExtractArchive(bytes.NewReader(outer), int64(len(outer)))

	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, 2, diag.Files)
}

func TestExtractArchive_NotAZip(t *testing.T) {
	_, _, err := ExtractArchive(bytes.NewReader([]byte("plain text")), 10)
	assert.Error(t, err)
}

func TestReadFolder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "MyData"), 0o755))
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "MyData", name), []byte(content), 0o644))
	}
	write("Streaming_History_Audio_2024_0.json", historyJSON)
	write("Streaming_History_Audio_2024_0_copy.json", historyJSON)
	write("Userdata.json", `{"username": "someone"}`)
	write("ReadMeFirst.pdf", "not json")

	records, diag, err := ReadFolder(dir)

	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 1, diag.Files)
	assert.Equal(t, 1, diag.DuplicateFiles)
	assert.Equal(t, 1, diag.SkippedFiles)
	assert.Equal(t, 2, diag.Records)
}

func TestReadFolder_MissingDirectory(t *testing.T) {
	_, _, err := ReadFolder(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
