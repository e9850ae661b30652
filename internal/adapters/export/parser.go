// Package export adapts raw streaming-history exports (ZIP archives or
// folders of JSON files) into canonical domain.PlayEvent values. Parsing is
// best-effort: a large export is occasionally inconsistent, and a bad record
// is dropped and counted rather than failing the batch.
package export

import (
	"errors"
	"time"

	"github.com/replay-fm/replay-api/internal/domain"
)

// RawRecord mirrors one entry of an extended-history JSON file. Music and
// podcast records share the file format but carry different metadata fields;
// kind detection is by field presence. Skipped is a pointer because older
// export versions omit the field.
type RawRecord struct {
	Timestamp   string `json:"ts"`
	Platform    string `json:"platform"`
	MsPlayed    *int64 `json:"ms_played"`
	Country     string `json:"conn_country"`
	TrackName   string `json:"master_metadata_track_name"`
	ArtistName  string `json:"master_metadata_album_artist_name"`
	AlbumName   string `json:"master_metadata_album_album_name"`
	TrackURI    string `json:"spotify_track_uri"`
	EpisodeName string `json:"episode_name"`
	ShowName    string `json:"episode_show_name"`
	EpisodeURI  string `json:"spotify_episode_uri"`
	ReasonStart string `json:"reason_start"`
	ReasonEnd   string `json:"reason_end"`
	Shuffle     bool   `json:"shuffle"`
	Skipped     *bool  `json:"skipped"`
	Offline     bool   `json:"offline"`
	Incognito   bool   `json:"incognito_mode"`
}

// ErrUnrecognizedRecord marks a record carrying neither a music nor a
// podcast identity.
var ErrUnrecognizedRecord = errors.New("record has neither track nor episode identity")

// Parse normalizes one raw record into a PlayEvent. It is a pure transform;
// an error means the record should be dropped.
func Parse(r RawRecord) (domain.PlayEvent, error) {
	ts, err := time.Parse(time.RFC3339, r.Timestamp)
	if err != nil {
		return domain.PlayEvent{}, err
	}

	e := domain.PlayEvent{
		Timestamp:   ts.UTC(),
		Platform:    r.Platform,
		Country:     r.Country,
		Shuffle:     r.Shuffle,
		SkippedFlag: r.Skipped,
		ReasonStart: r.ReasonStart,
		ReasonEnd:   r.ReasonEnd,
		Offline:     r.Offline,
		Incognito:   r.Incognito,
	}
	if r.MsPlayed != nil {
		e.MsPlayed = *r.MsPlayed
	}

	switch {
	case r.TrackName != "" || r.ArtistName != "":
		e.Kind = domain.KindMusic
		e.Track = r.TrackName
		e.Artist = r.ArtistName
		e.Album = r.AlbumName
		e.SourceURI = r.TrackURI
	case r.EpisodeName != "" || r.ShowName != "":
		e.Kind = domain.KindPodcast
		e.Episode = r.EpisodeName
		e.Show = r.ShowName
		e.SourceURI = r.EpisodeURI
	default:
		return domain.PlayEvent{}, ErrUnrecognizedRecord
	}

	return e, nil
}

// ParseAll normalizes a batch, returning the parsed events and the number of
// dropped records.
func ParseAll(records []RawRecord) ([]domain.PlayEvent, int) {
	events := make([]domain.PlayEvent, 0, len(records))
	dropped := 0
	for _, r := range records {
		e, err := Parse(r)
		if err != nil {
			dropped++
			continue
		}
		events = append(events, e)
	}
	return events, dropped
}
