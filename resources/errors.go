package resources

import (
	"errors"
	"fmt"
)

// ErrUnsupported signals that a handler does not support a resource URL.
//
// Handlers return errors wrapping this sentinel (via fmt.Errorf and %w) to
// mean "this URL is outside my domain, try another handler". It is the only
// error that makes [DispatchingResourceHandler] advance to the next handler;
// every other error aborts the resolution.
var ErrUnsupported = errors.New("unsupported resource URL")

// IsUnsupported reports whether err signals an unsupported resource URL.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupported)
}

// unsupportedf creates an error wrapping [ErrUnsupported] with a formatted
// message.
func unsupportedf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrUnsupported)...)
}
