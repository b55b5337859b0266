package resources

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// DefaultMaxSize is the default maximum resource size read by
// [FileResourceHandler], 100 MiB.
const DefaultMaxSize int64 = 100 * 1024 * 1024

// FileResourceHandler reads resources from the local filesystem, i.e.
// resolves file:// URLs.
type FileResourceHandler struct {
	fs      afero.Fs
	maxSize int64
}

// NewFileResourceHandler creates a new handler reading local files.
// If fs is nil, the OS filesystem is used. If maxSize is zero or negative,
// [DefaultMaxSize] is used; files larger than the limit fail to read.
func NewFileResourceHandler(fs afero.Fs, maxSize int64) *FileResourceHandler {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	return &FileResourceHandler{fs: fs, maxSize: maxSize}
}

// ReadResource reads the file behind a file:// url.
//
// URLs with any other scheme are declined with an error wrapping
// [ErrUnsupported]. A file URL with a remote host is an error: this handler
// owns the file scheme but cannot fetch from other machines. The mime type is
// determined from the file extension, falling back to sniffing the content.
func (h *FileResourceHandler) ReadResource(ctx context.Context, u *url.URL) (*MimeData, error) {
	u, err := FilterSchemes([]string{"file"}, u)
	if err != nil {
		return nil, err
	}

	// file://host/path URLs denote files on host; only the local host is
	// readable here.
	if u.Host != "" && u.Host != "localhost" {
		return nil, fmt.Errorf("cannot read from remote file %s", u)
	}

	if u.Path == "" {
		return nil, fmt.Errorf("no path in file URL %s", u)
	}

	// Check context before reading
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := h.fs.Open(u.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// Read with limit + 1 to detect overflow
	data, err := io.ReadAll(io.LimitReader(file, h.maxSize+1))
	if err != nil {
		return nil, err
	}

	if int64(len(data)) > h.maxSize {
		return nil, fmt.Errorf("file %s exceeds maximum size of %d bytes", u, h.maxSize)
	}

	return &MimeData{MimeType: fileMimeType(u.Path, data), Data: data}, nil
}

// fileMimeType guesses the mime type of a file from its extension, falling
// back to content sniffing. Returns an empty string if both fail.
func fileMimeType(path string, data []byte) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}

	if len(data) == 0 {
		return ""
	}

	return mimetype.Detect(data).String()
}
