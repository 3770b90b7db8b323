package mask

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Cache holds the expansion of every mask a run uses, computed once up
// front and read-only afterwards. Keys are the literal mask strings.
type Cache struct {
	masks []string
	seps  map[string][]string
}

// BuildCache parses, budget-checks and expands all distinct masks.
// Parsing runs sequentially so the first bad mask wins deterministically;
// expansion runs in parallel, one worklist per mask, with jobs bounding
// the worker count (0 means GOMAXPROCS). Any malformed mask or budget
// breach fails the whole build before a caller sees any separator.
func BuildCache(ctx context.Context, masks []string, limits Limits, jobs int) (*Cache, error) {
	cache := &Cache{
		masks: append([]string(nil), masks...),
		seps:  make(map[string][]string, len(masks)),
	}

	trees := make(map[string][]Element, len(masks))
	var distinct []string
	for _, m := range masks {
		if _, seen := trees[m]; seen {
			continue
		}
		elems, err := Parse(m, limits.ParseOptions())
		if err != nil {
			return nil, err
		}
		if err := CheckBudget(elems, limits); err != nil {
			return nil, fmt.Errorf("mask %q: %w", m, err)
		}
		trees[m] = elems
		distinct = append(distinct, m)
	}

	if len(distinct) == 0 {
		return cache, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Per-index result slots, no mutex needed.
	results := make([][]string, len(distinct))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(distinct)))

	for i, m := range distinct {
		g.Go(func(i int, m string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				results[i] = ExpandElements(trees[m])
				return nil
			}
		}(i, m))
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, m := range distinct {
		cache.seps[m] = results[i]
	}
	return cache, nil
}

// Masks returns the mask list as supplied to BuildCache, duplicates and
// order included.
func (c *Cache) Masks() []string { return c.masks }

// Separators returns the cached expansion of mask in canonical order.
// The slice is shared; callers must not modify it.
func (c *Cache) Separators(mask string) []string { return c.seps[mask] }
