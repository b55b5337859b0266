package resources

import (
	"context"
	"net/url"
)

// DispatchingResourceHandler dispatches reading among a list of inner
// handlers.
//
// It implements [ResourceURLHandler] itself, so dispatchers nest: wrapping a
// dispatcher inside another behaves like flattening their handler lists.
type DispatchingResourceHandler struct {
	handlers []ResourceURLHandler
}

// NewDispatchingResourceHandler creates a new handler wrapping all given
// handlers.
//
// Order is significant: handlers are tried in the given order, so earlier
// handlers take precedence over later ones. The list is never reordered or
// deduplicated, and is immutable after construction.
func NewDispatchingResourceHandler(handlers ...ResourceURLHandler) *DispatchingResourceHandler {
	return &DispatchingResourceHandler{handlers: handlers}
}

// ReadResource reads from the given resource url.
//
// It tries every inner handler one after another while handlers decline with
// an error wrapping [ErrUnsupported], and returns the first different
// outcome: either data read, or another error, which aborts the dispatch.
// A handler that fails without [ErrUnsupported] claimed the URL; no further
// handler is consulted.
//
// If every handler declined, or the handler list is empty, it returns an
// error wrapping [ErrUnsupported] naming the url.
func (h *DispatchingResourceHandler) ReadResource(ctx context.Context, url *url.URL) (*MimeData, error) {
	for _, handler := range h.handlers {
		data, err := handler.ReadResource(ctx, url)
		switch {
		case err == nil:
			return data, nil
		case IsUnsupported(err):
			continue
		default:
			return nil, err
		}
	}

	return nil, unsupportedf("no handler supported reading from %s", url)
}
