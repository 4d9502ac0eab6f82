package shared

import "context"

// DocumentArchive keeps copies of generated PDFs (labels, handover sheets)
type DocumentArchive interface {
	// Archive stores data under key and returns a link to download it.
	// The link is empty when the archive cannot hand out links.
	Archive(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
