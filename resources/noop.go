package resources

import (
	"context"
	"net/url"
)

// NoopResourceHandler is a resource handler which doesn't read anything.
//
// It declines every URL, making it a safe default when no resource reading
// capability should be offered, e.g. in a sandboxed configuration.
type NoopResourceHandler struct{}

// ReadResource always returns an error wrapping [ErrUnsupported].
func (NoopResourceHandler) ReadResource(_ context.Context, url *url.URL) (*MimeData, error) {
	return nil, unsupportedf("reading from resource %s is not supported", url)
}
