package resources

import (
	"net/url"
	"slices"
)

// FilterSchemes filters a URL by scheme.
//
// It returns url unchanged if its scheme is one of schemes, otherwise an
// error wrapping [ErrUnsupported]. It gives concrete handlers a uniform way
// to decline out-of-domain URLs:
//
//	func (h *myHandler) ReadResource(ctx context.Context, u *url.URL) (*resources.MimeData, error) {
//	    u, err := resources.FilterSchemes([]string{"myscheme"}, u)
//	    if err != nil {
//	        return nil, err
//	    }
//	    // ...
//	}
func FilterSchemes(schemes []string, url *url.URL) (*url.URL, error) {
	if slices.Contains(schemes, url.Scheme) {
		return url, nil
	}

	return nil, unsupportedf("unsupported scheme in %s, expected one of %v", url, schemes)
}
