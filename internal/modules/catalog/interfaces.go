package catalog

import (
	"context"

	"moviweb/internal/omdb"
)

// MetadataFetcher is the external movie-metadata provider. The real
// implementation is the OMDb client; tests substitute a stub.
type MetadataFetcher interface {
	FetchByTitle(ctx context.Context, title string) (*omdb.Movie, error)
}
