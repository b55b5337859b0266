// Package resources provides access to resources referenced from markdown
// documents.
//
// A resource is the bytes and content type behind a URL. Concrete fetching
// strategies (local files, embedded data URLs, custom schemes) implement
// [ResourceURLHandler] and are composed into a [DispatchingResourceHandler],
// which tries each handler in order until one claims the URL.
//
// Handlers signal "this URL is outside my domain" by returning an error that
// wraps [ErrUnsupported]; the dispatcher treats that as a cue to try the next
// handler. Every other error means the handler claimed the URL but failed to
// fetch it, and aborts the whole resolution.
//
// Basic usage:
//
//	handler := resources.NewDispatchingResourceHandler(
//	    resources.NewFileResourceHandler(nil, 0),
//	    resources.NewDataResourceHandler(),
//	)
//	data, err := handler.ReadResource(ctx, url)
package resources

import (
	"context"
	"net/url"
)

// ResourceURLHandler reads resources behind URLs.
//
// ReadResource fetches the bytes behind url and returns them together with
// the content type, if it could be determined. The URL is parsed and absolute;
// callers validate it before resolution.
//
// An implementation returns an error wrapping [ErrUnsupported] when it does
// not know how to handle the URL's scheme or form, so that a dispatching
// handler may try another implementation. Any other error is terminal: the
// handler owns the URL's domain but could not fetch it.
//
// Implementations MUST be safe for concurrent use by multiple goroutines.
// The core defines no timeout policy; implementations performing blocking
// I/O should honor ctx.
type ResourceURLHandler interface {
	// ReadResource returns the resource behind the url.
	ReadResource(ctx context.Context, url *url.URL) (*MimeData, error)
}

// HandlerFunc adapts a plain function to a [ResourceURLHandler].
type HandlerFunc func(ctx context.Context, url *url.URL) (*MimeData, error)

// ReadResource calls f(ctx, url).
func (f HandlerFunc) ReadResource(ctx context.Context, url *url.URL) (*MimeData, error) {
	return f(ctx, url)
}
