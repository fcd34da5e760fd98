package fetch

import (
	"context"
	"sync"

	"github.com/ib-77/safefetch/pkg/safe"
	"github.com/ib-77/safefetch/pkg/safe/schema"
)

// All fetches every URL against the same schema and options with at most
// workers concurrent requests, returning one result per URL in input order.
// Each fetch is an independent Safe invocation; a cancelled context fails
// the not-yet-started ones with a fetch-threw result carrying ctx.Err().
func All[T any](ctx context.Context, c *Client, urls []string, s schema.Schema[T], opts *Options, workers int) []safe.Result[T] {
	if workers < 1 {
		workers = 1
	}

	results := make([]safe.Result[T], len(urls))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = Safe(ctx, c, urls[i], s, opts)
			}
		}()
	}

feed:
	for i := range urls {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	for i := range results {
		if results[i].IsEmpty() {
			results[i] = safe.Fail[T](Wrap(ctx.Err()))
		}
	}
	return results
}
