package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
	"github.com/stopline-labs/stopline-cli/internal/core/ports/driving"
	"github.com/stopline-labs/stopline-cli/internal/logger"
)

// PreloadStops resolves every ID in [from, to] through the external chain
// and persists the hits. Providers that expose no full stop listing can be
// mirrored locally this way.
//
// The cache and store are intentionally skipped on the read side so stale
// local records get refreshed from the ground truth. The range is worked by
// a bounded pool; workers below 1 are treated as 1.
func (s *StopResolverService) PreloadStops(ctx context.Context, from, to, workers int) (*driving.PreloadReport, error) {
	if from > to {
		return nil, fmt.Errorf("invalid preload range %d..%d", from, to)
	}
	if len(s.sources) == 0 {
		return nil, domain.ErrNoSources
	}
	if workers < 1 {
		workers = 1
	}

	logger.Section("Stop Preload")
	logger.Info("preloading stops %d..%d with %d workers", from, to, workers)

	ids := make(chan int)
	report := &driving.PreloadReport{}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range ids {
				outcome := s.preloadOne(ctx, id)
				mu.Lock()
				switch outcome {
				case domain.StatusFound:
					report.Resolved = append(report.Resolved, id)
				case domain.StatusNotFound:
					report.Missing = append(report.Missing, id)
				default:
					report.Failed = append(report.Failed, id)
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for id := from; id <= to; id++ {
		select {
		case <-ctx.Done():
			break feed
		case ids <- id:
		}
	}
	close(ids)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return report, err
	}

	sort.Ints(report.Resolved)
	sort.Ints(report.Missing)
	sort.Ints(report.Failed)

	logger.Info("preload finished: %d resolved, %d missing, %d failed",
		len(report.Resolved), len(report.Missing), len(report.Failed))
	return report, nil
}

// preloadOne walks the external chain for a single ID and persists a hit.
// Returns the terminal chain status for reporting.
func (s *StopResolverService) preloadOne(ctx context.Context, id int) domain.LookupStatus {
	for _, src := range s.sources {
		res := src.FindStop(ctx, id)
		switch res.Status {
		case domain.StatusFound:
			if !res.Resolved() {
				continue
			}
			if _, err := s.writeBack(ctx, "preload", res.Stop); err != nil {
				return domain.StatusError
			}
			return domain.StatusFound
		case domain.StatusNotFound:
			return domain.StatusNotFound
		case domain.StatusError:
			logger.Debug("preload: source %s failed for stop %d: %v", src.Name(), id, res.Err)
		}
	}
	return domain.StatusError
}
