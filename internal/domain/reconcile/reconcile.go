// Package reconcile computes and applies the difference between a desired
// and an existing set of remotely named resources.
package reconcile

import (
	"context"
	"sort"
)

// UpsertFunc applies the desired state for one name. The underlying remote
// operation must be an idempotent put: creation and update are the same call.
type UpsertFunc func(ctx context.Context, name string) error

// DeleteFunc removes the named resources in a single batch call.
type DeleteFunc func(ctx context.Context, names []string) error

// Result records what one reconciliation run changed.
type Result struct {
	Upserted []string
	Deleted  []string
}

// Names reconciles the existing name set toward the desired one. Every
// desired name is upserted unconditionally, then names present remotely but
// no longer desired are deleted in one batch. Names are processed in sorted
// order so runs are reproducible.
//
// The first failing call aborts the run and returns the partial Result:
// upserts already applied stay applied and nothing is rolled back. Running
// twice with unchanged inputs converges, and the second run deletes nothing.
func Names(ctx context.Context, desired, existing []string, upsert UpsertFunc, deleteBatch DeleteFunc) (Result, error) {
	var res Result

	wanted := make(map[string]struct{}, len(desired))
	for _, name := range desired {
		wanted[name] = struct{}{}
	}

	ordered := make([]string, 0, len(wanted))
	for name := range wanted {
		ordered = append(ordered, name)
	}
	sort.Strings(ordered)

	for _, name := range ordered {
		if err := upsert(ctx, name); err != nil {
			return res, err
		}
		res.Upserted = append(res.Upserted, name)
	}

	var stale []string
	seen := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if _, ok := wanted[name]; !ok {
			stale = append(stale, name)
		}
	}
	sort.Strings(stale)

	if len(stale) > 0 {
		if err := deleteBatch(ctx, stale); err != nil {
			return res, err
		}
		res.Deleted = stale
	}

	return res, nil
}
