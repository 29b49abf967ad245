package catalog

import "errors"

var (
	ErrTitleRequired      = errors.New("title is required")
	ErrDuplicateTitle     = errors.New("movie with this title already exists")
	ErrMetadataNotFound   = errors.New("movie not found in the metadata api")
	ErrIncompleteMetadata = errors.New("movie title or director is missing")
	ErrForbidden          = errors.New("forbidden")
)
