package crawler

import "context"

// Fetcher retrieves one page. Implementations own transport concerns:
// redirects, timeouts, politeness, robots handling. A fetch-level failure
// (DNS, timeout, HTTP error) returns an error and no usable response; the
// caller treats the request as producing no record.
type Fetcher interface {
	Fetch(ctx context.Context, request FetchRequest) (FetchResponse, error)
}

// RobotsPolicy answers whether a URL may be fetched under robots.txt.
type RobotsPolicy interface {
	Allowed(ctx context.Context, rawURL string) bool
}
