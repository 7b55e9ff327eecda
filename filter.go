package docmatch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/reoring/docmatch/document"
	"github.com/reoring/docmatch/match"
)

// FilterJSON decodes and evaluates many JSON documents against one compiled
// tree concurrently. Results are positionally stable. The first decode error
// cancels the remaining work and is returned; match verdicts themselves never
// error. Compiled trees are immutable, so the tree is shared without
// synchronization.
func FilterJSON(ctx context.Context, m match.Matcher, docs [][]byte) ([]bool, error) {
	results := make([]bool, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	for i, data := range docs {
		i, data := i, data
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := document.DecodeJSON(data)
			if err != nil {
				return err
			}
			results[i] = m.Matches(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
