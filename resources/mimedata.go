package resources

import "mime"

// MimeData is the data of a resource with its associated mime type.
type MimeData struct {
	// MimeType is the mime type if known, or empty.
	MimeType string
	// Data is the raw resource content.
	Data []byte
}

// MimeTypeEssence returns the essence of the mime type, if any.
//
// The essence is roughly the mime type without parameters, e.g. "image/png"
// for "image/png; charset=binary". It returns an empty string when no mime
// type is known or the mime type does not parse.
func (d *MimeData) MimeTypeEssence() string {
	if d.MimeType == "" {
		return ""
	}

	essence, _, err := mime.ParseMediaType(d.MimeType)
	if err != nil {
		return ""
	}

	return essence
}
