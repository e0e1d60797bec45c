// Package webclient fetches listing pages over plain HTTP or through a headless
// browser for pages that render their description client-side.
package webclient

import "context"

// WebClient is the fetch contract shared by every backend.
type WebClient interface {
	Do(ctx context.Context, req *Request) (*Response, error)
	Get(ctx context.Context, url string) (*Response, error)
	Close() error
}
