// Package resilience groups the fault-tolerance helpers used around outbound calls:
// circuit breakers (circuitbreaker) for the feed and summarizer endpoints, and
// exponential backoff with jitter (retry) for transient feed failures.
//
//	cb := circuitbreaker.New(circuitbreaker.FeedFetchConfig())
//	feed, err := circuitbreaker.Do(cb, func() (*gofeed.Feed, error) {
//	    return parse(ctx, url)
//	})
//
//	err := retry.WithBackoff(ctx, retry.FeedFetchConfig(), func() error {
//	    return fetchOnce(ctx)
//	})
package resilience
