package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/matcher"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
	"github.com/custodia-labs/minigrep/internal/core/ports/driving"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// DefaultRerunInterval is the minimum gap between watch re-runs.
const DefaultRerunInterval = 100 * time.Millisecond

// SearchService wires a text source to the line matcher.
type SearchService struct {
	source        driven.TextSource
	watcher       driven.FileWatcher
	rerunInterval time.Duration
}

// NewSearchService creates a new search service.
func NewSearchService(source driven.TextSource) *SearchService {
	return &SearchService{source: source, rerunInterval: DefaultRerunInterval}
}

// SetRerunInterval sets the minimum gap between watch re-runs.
// Zero or less disables throttling.
func (s *SearchService) SetRerunInterval(d time.Duration) {
	s.rerunInterval = d
}

// SetWatcher sets the file watcher used by Watch. It may be nil.
func (s *SearchService) SetWatcher(w driven.FileWatcher) {
	s.watcher = w
}

// Search reads the requested file and matches its lines.
// Read failures are returned unchanged apart from wrapping; they are not retried.
func (s *SearchService) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchReport, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", req.Query)
	logger.Debug("File: %s", req.Filename)

	if s.source == nil {
		return nil, fmt.Errorf("%w: no text source configured", domain.ErrInvalidInput)
	}

	body, err := s.source.Read(ctx, req.Filename)
	if err != nil {
		return nil, err
	}
	logger.Debug("Read %d bytes", len(body))

	report := s.SearchText(ctx, req.Query, body, req.Policy)
	report.Source = req.Filename
	return report, nil
}

// SearchText matches query against body. It never fails.
func (s *SearchService) SearchText(
	_ context.Context, query, body string, policy domain.CasePolicy,
) *domain.SearchReport {
	logger.Info("Case policy: %s", policy)

	matches, total := matcher.FindCounted(query, body, policy)
	report := &domain.SearchReport{
		ID:           uuid.New().String(),
		Query:        query,
		Policy:       policy,
		Matches:      matches,
		LinesScanned: total,
	}

	logger.Debug("Matched %d of %d lines", report.Count(), report.LinesScanned)
	return report
}

// Run searches and hands the report to w.
func (s *SearchService) Run(ctx context.Context, req domain.SearchRequest, w driven.ResultWriter) error {
	report, err := s.Search(ctx, req)
	if err != nil {
		return err
	}
	if err := w.Write(report); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}

// Watch runs the search, then runs it again after every change to the
// file. It returns nil when ctx is cancelled and ErrSourceRemoved when
// the file goes away. Changes that arrive faster than the rerun interval
// are coalesced into one run.
func (s *SearchService) Watch(ctx context.Context, req domain.SearchRequest, w driven.ResultWriter) error {
	if s.watcher == nil {
		return domain.ErrWatchUnavailable
	}

	// Subscribe before the first run so no write is missed in between.
	changes, err := s.watcher.Watch(ctx, req.Filename)
	if err != nil {
		return fmt.Errorf("watching %s: %w", req.Filename, err)
	}

	if err := s.Run(ctx, req, w); err != nil {
		return err
	}

	limit := rate.Inf
	if s.rerunInterval > 0 {
		limit = rate.Every(s.rerunInterval)
	}
	limiter := rate.NewLimiter(limit, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			logger.Debug("File %s: %s", change.Type, change.Path)

			if change.Type == domain.ChangeDeleted {
				return fmt.Errorf("%s: %w", change.Path, domain.ErrSourceRemoved)
			}

			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
			open, err := drainChanges(changes)
			if err != nil {
				return err
			}

			// A write can land mid-save; keep watching and try again on the next event.
			if err := s.Run(ctx, req, w); err != nil {
				if !errors.Is(err, domain.ErrRead) {
					return err
				}
				logger.Warn("Skipping update: %v", err)
			}
			if !open {
				return nil
			}
		}
	}
}

// drainChanges consumes changes that are already queued. It reports
// whether the channel is still open, and ErrSourceRemoved if a queued
// change is a deletion.
func drainChanges(changes <-chan domain.FileChange) (bool, error) {
	for {
		select {
		case change, ok := <-changes:
			if !ok {
				return false, nil
			}
			if change.Type == domain.ChangeDeleted {
				return false, fmt.Errorf("%s: %w", change.Path, domain.ErrSourceRemoved)
			}
			logger.Debug("Coalesced change to %s", change.Path)
		default:
			return true, nil
		}
	}
}
