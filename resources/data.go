package resources

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const base64Marker = ";base64"

// DataResourceHandler reads resources embedded in data: URLs (RFC 2397),
// i.e. data:[<mediatype>][;base64],<payload>.
type DataResourceHandler struct{}

// NewDataResourceHandler creates a new handler decoding data: URLs.
func NewDataResourceHandler() DataResourceHandler {
	return DataResourceHandler{}
}

// ReadResource decodes the payload embedded in a data: url.
//
// URLs with any other scheme are declined with an error wrapping
// [ErrUnsupported]. Malformed data URLs (no comma, invalid base64 or percent
// encoding) are errors. The declared mediatype becomes the mime type; when
// none is declared the payload is sniffed.
func (DataResourceHandler) ReadResource(_ context.Context, u *url.URL) (*MimeData, error) {
	if _, err := FilterSchemes([]string{"data"}, u); err != nil {
		return nil, err
	}

	// url.Parse splits the opaque part at "?", but a data URL payload may
	// legally contain one, so stitch it back together.
	raw := u.Opaque
	if u.RawQuery != "" {
		raw += "?" + u.RawQuery
	}

	meta, payload, found := strings.Cut(raw, ",")
	if !found {
		return nil, fmt.Errorf("missing comma in data URL %s", u)
	}

	mediatype := meta
	isBase64 := len(meta) >= len(base64Marker) &&
		strings.EqualFold(meta[len(meta)-len(base64Marker):], base64Marker)
	if isBase64 {
		mediatype = meta[:len(meta)-len(base64Marker)]
	}

	data, err := decodePayload(payload, isBase64)
	if err != nil {
		return nil, fmt.Errorf("invalid payload in data URL %s: %w", u, err)
	}

	if data == nil {
		data = []byte{}
	}

	return &MimeData{MimeType: dataMimeType(mediatype, data), Data: data}, nil
}

func decodePayload(payload string, isBase64 bool) ([]byte, error) {
	unescaped, err := url.PathUnescape(payload)
	if err != nil {
		return nil, err
	}

	if !isBase64 {
		return []byte(unescaped), nil
	}

	if data, err := base64.StdEncoding.DecodeString(unescaped); err == nil {
		return data, nil
	}

	// Tolerate payloads without padding.
	return base64.RawStdEncoding.DecodeString(unescaped)
}

// dataMimeType resolves the declared mediatype of a data URL, sniffing the
// payload when none is declared.
func dataMimeType(mediatype string, data []byte) string {
	switch {
	case strings.HasPrefix(mediatype, ";"):
		// Parameters without a type default to text/plain per RFC 2397.
		return "text/plain" + mediatype
	case mediatype != "":
		return mediatype
	case len(data) == 0:
		return ""
	default:
		return mimetype.Detect(data).String()
	}
}
