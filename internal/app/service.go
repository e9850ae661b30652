// Package app wires the ingestion adapter and the aggregation engine into
// the HistoryService use case: one upload, one isolated aggregation run, one
// immutable snapshot.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/replay-fm/replay-api/internal/adapters/export"
	"github.com/replay-fm/replay-api/internal/domain"
	"github.com/replay-fm/replay-api/internal/ports"
	"github.com/replay-fm/replay-api/internal/stats"
)

// Service implements ports.HistoryService.
type Service struct {
	registry *SnapshotRegistry
	workers  int
	logger   *logrus.Logger
}

// NewService creates the history service with the given number of
// aggregation workers.
func NewService(workers int, logger *logrus.Logger) *Service {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{
		registry: NewSnapshotRegistry(),
		workers:  workers,
		logger:   logger,
	}
}

// UploadArchive extracts the archive, parses and classifies its records, and
// builds the aggregate snapshot for a fresh session.
func (s *Service) UploadArchive(ctx context.Context, archive io.ReaderAt, size int64) (*domain.UploadReceipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, diag, err := export.ExtractArchive(archive, size)
	if err != nil {
		return nil, fmt.Errorf("extracting archive: %w", err)
	}

	events, dropped := export.ParseAll(records)
	agg := stats.BuildParallel(events, s.workers)

	id := uuid.NewString()
	s.registry.Put(id, agg)

	s.logger.WithFields(logrus.Fields{
		"session":         id,
		"files":           diag.Files,
		"duplicate_files": diag.DuplicateFiles,
		"entries":         len(events),
		"dropped_records": dropped,
	}).Info("aggregation pass complete")

	return &domain.UploadReceipt{
		SessionID:      id,
		Files:          diag.Files,
		DuplicateFiles: diag.DuplicateFiles,
		Entries:        len(events),
		DroppedRecords: dropped,
	}, nil
}

func (s *Service) Summary(sessionID string) (*domain.Summary, error) {
	agg, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return agg.Summary(), nil
}

func (s *Service) TopStats(sessionID string) (*domain.TopStats, error) {
	agg, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return agg.TopStats(), nil
}

func (s *Service) DailyStats(sessionID string) (map[string]domain.DayStats, error) {
	agg, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return agg.Days(), nil
}

func (s *Service) YearlyStats(sessionID string) (map[string]domain.YearStats, error) {
	agg, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return agg.Years(), nil
}

func (s *Service) YearDays(sessionID, year string) (map[string]domain.DayStats, error) {
	agg, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	days, ok := agg.YearDays(year)
	if !ok {
		return nil, ports.ErrYearNotFound
	}
	return days, nil
}

func (s *Service) AllStats(sessionID string) (*domain.AllStats, error) {
	agg, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return &domain.AllStats{
		General: agg.Summary(),
		Top:     agg.TopStats(),
		Days:    agg.Days(),
		Years:   agg.Years(),
	}, nil
}
