package ports

import (
	"context"
	"errors"
	"io"

	"github.com/replay-fm/replay-api/internal/domain"
)

// ErrSessionNotFound is returned by read operations when the requested
// session id is unknown or no upload has been processed yet.
var ErrSessionNotFound = errors.New("session not found")

// ErrYearNotFound is returned by YearDays for a year with no bucket.
var ErrYearNotFound = errors.New("year not found")

// HistoryService is the driving port of the statistics engine. An upload
// produces an immutable aggregate snapshot scoped to one session; every read
// is a pure projection of that snapshot. An empty session id selects the
// most recent upload.
type HistoryService interface {
	// UploadArchive ingests a ZIP export, runs the aggregation pass, and
	// returns the session receipt.
	UploadArchive(ctx context.Context, archive io.ReaderAt, size int64) (*domain.UploadReceipt, error)

	Summary(sessionID string) (*domain.Summary, error)
	TopStats(sessionID string) (*domain.TopStats, error)
	DailyStats(sessionID string) (map[string]domain.DayStats, error)
	YearlyStats(sessionID string) (map[string]domain.YearStats, error)

	// YearDays lazily expands one year bucket into day buckets, including
	// the contributing raw entries.
	YearDays(sessionID, year string) (map[string]domain.DayStats, error)

	AllStats(sessionID string) (*domain.AllStats, error)
}
