package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrNoJobsFound means every per-role search succeeded but the combined
// result was empty. Distinct from a transport failure.
var ErrNoJobsFound = errors.New("no jobs found")

const (
	// Searches always target entry-level variants of the identified roles.
	queryPrefix = "entry level "
	// The combined, deduplicated collection is capped at this many listings.
	topJobs = 20
)

// Aggregator fans a role list out into sequential searches and merges the
// results into one deduplicated, bounded collection.
type Aggregator struct {
	searcher Searcher
}

func NewAggregator(s Searcher) *Aggregator {
	return &Aggregator{searcher: s}
}

// SearchAll runs one search per role, in role order. onRole, when non-nil,
// fires immediately before each role's search is issued. An empty result
// for one role keeps the loop going; a search error aborts the whole
// aggregation. Deduplication and truncation happen once, after all roles.
func (a *Aggregator) SearchAll(ctx context.Context, roles []string, onRole func(role string)) (Collection, error) {
	var all Collection
	for _, role := range roles {
		if onRole != nil {
			onRole(role)
		}

		listings, err := a.searcher.Search(ctx, queryPrefix+role)
		if err != nil {
			return nil, fmt.Errorf("searching %q: %w", role, err)
		}
		slog.Info("role search finished", "role", role, "results", len(listings))

		all = all.Merge(listings)
	}

	if len(all) == 0 {
		return nil, ErrNoJobsFound
	}

	return all.Dedupe().Top(topJobs), nil
}
