package favorite

import "errors"

var (
	ErrAlreadyFavorite = errors.New("movie is already in favorites")
	ErrNotFavorite     = errors.New("movie is not in favorites")
)
