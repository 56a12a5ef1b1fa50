package port

import "context"

// ContentFetcher abstracts raw page retrieval for the web extraction pipeline.
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
