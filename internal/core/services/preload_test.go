package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
	"github.com/stopline-labs/stopline-cli/internal/core/ports/driven"
)

// stopSourceFunc adapts a function to driven.StopSource for per-ID behaviour.
type stopSourceFunc struct {
	name string
	fn   func(id int) domain.StopResult
}

func (s *stopSourceFunc) Name() string { return s.name }

func (s *stopSourceFunc) FindStop(_ context.Context, id int) domain.StopResult {
	return s.fn(id)
}

func TestPreloadStops(t *testing.T) {
	// IDs 1-3 exist, 4 is confirmed missing, 5 fails.
	src := &stopSourceFunc{name: "ground-truth", fn: func(id int) domain.StopResult {
		switch {
		case id <= 3:
			return domain.FoundStop(domain.NewStop(id, "Stop"))
		case id == 4:
			return domain.NoSuchStop()
		default:
			return domain.StopLookupFailed(errors.New("boom"))
		}
	}}
	resolver, cache, store := newResolver(src)

	report, err := resolver.PreloadStops(context.Background(), 1, 5, 2)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, report.Resolved)
	assert.Equal(t, []int{4}, report.Missing)
	assert.Equal(t, []int{5}, report.Failed)

	ids, err := store.ListIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids)
	assert.Equal(t, 3, cache.Len())
}

func TestPreloadStops_FallsBackPerID(t *testing.T) {
	// The primary fails for even IDs; the backup answers them.
	primary := &stopSourceFunc{name: "primary", fn: func(id int) domain.StopResult {
		if id%2 == 0 {
			return domain.StopLookupFailed(errors.New("flaky"))
		}
		return domain.FoundStop(domain.NewStop(id, "Primary"))
	}}
	backup := &stopSourceFunc{name: "backup", fn: func(id int) domain.StopResult {
		return domain.FoundStop(domain.NewStop(id, "Backup"))
	}}
	resolver, _, store := newResolver(primary, backup)

	report, err := resolver.PreloadStops(context.Background(), 1, 4, 1)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, report.Resolved)
	assert.Empty(t, report.Failed)

	two, err := store.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Backup", two.Name)
}

func TestPreloadStops_InvalidRange(t *testing.T) {
	resolver, _, _ := newResolver(&mockStopSource{name: "x"})

	_, err := resolver.PreloadStops(context.Background(), 10, 1, 1)

	assert.Error(t, err)
}

func TestPreloadStops_NoSources(t *testing.T) {
	resolver, _, _ := newResolver()

	_, err := resolver.PreloadStops(context.Background(), 1, 10, 1)

	assert.ErrorIs(t, err, domain.ErrNoSources)
}

func TestPreloadStops_ContextCancelled(t *testing.T) {
	src := &stopSourceFunc{name: "slow", fn: func(id int) domain.StopResult {
		return domain.FoundStop(domain.NewStop(id, "Stop"))
	}}
	resolver, _, _ := newResolver(src)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := resolver.PreloadStops(ctx, 1, 1000, 2)

	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Less(t, len(report.Resolved), 1000)
}

// Interface compliance for the test double.
var _ driven.StopSource = (*stopSourceFunc)(nil)
