package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"moviweb/internal/domain"
	"moviweb/internal/listing"
	"moviweb/internal/omdb"
	"moviweb/internal/repository"
)

type Service struct {
	movies        *repository.MovieRepository
	directors     *repository.DirectorRepository
	genres        *repository.GenreRepository
	favorites     *repository.FavoriteRepository
	metadata      MetadataFetcher
	defaultPoster string
}

func NewService(
	movies *repository.MovieRepository,
	directors *repository.DirectorRepository,
	genres *repository.GenreRepository,
	favorites *repository.FavoriteRepository,
	metadata MetadataFetcher,
	defaultPoster string,
) *Service {
	return &Service{
		movies:        movies,
		directors:     directors,
		genres:        genres,
		favorites:     favorites,
		metadata:      metadata,
		defaultPoster: defaultPoster,
	}
}

/* ---------- INGESTION ---------- */

// AddMovie fetches metadata for the requested title and creates a
// movie owned by the actor. The duplicate-title guard runs per owner
// scope before the provider is contacted, so an admin and a user may
// each hold a movie with the same title.
func (s *Service) AddMovie(ctx context.Context, actor domain.Actor, req AddMovieRequest) (*domain.Movie, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	exists, err := s.movies.TitleExists(ctx, req.Title, repository.MoviesOwnedBy(actor))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateTitle
	}

	meta, err := s.metadata.FetchByTitle(ctx, req.Title)
	if err != nil {
		if errors.Is(err, omdb.ErrNotFound) {
			return nil, ErrMetadataNotFound
		}
		return nil, err
	}

	d, err := buildDraft(meta, s.defaultPoster)
	if err != nil {
		return nil, err
	}

	director, err := s.directors.FindOrCreate(ctx, d.DirectorName)
	if err != nil {
		return nil, err
	}

	userID, adminID := ownership(actor, req.UserID, req.AdminID)

	movie := &domain.Movie{
		Title:      d.Title,
		Year:       d.Year,
		Rating:     d.Rating,
		Poster:     d.Poster,
		Plot:       d.Plot,
		ImdbID:     d.ImdbID,
		UserID:     userID,
		AdminID:    adminID,
		DirectorID: director.ID,
	}

	if err := s.movies.Create(ctx, movie); err != nil {
		return nil, err
	}

	// The movie is new, so reconciliation only adds.
	if err := s.ReconcileGenres(ctx, movie, d.GenreNames); err != nil {
		return nil, err
	}

	movie.Director = director
	return movie, nil
}

/* ---------- GENRE RECONCILIATION ---------- */

// ReconcileGenres diffs the movie's current genre set against the
// desired names and applies only the difference. Missing genres are
// created to obtain an id; removed names only drop the association,
// never the genre row. Running it twice with the same input is a
// no-op.
func (s *Service) ReconcileGenres(ctx context.Context, movie *domain.Movie, desired []string) error {
	desiredSet := make(map[string]struct{}, len(desired))
	for _, name := range desired {
		desiredSet[name] = struct{}{}
	}

	current := make(map[string]domain.Genre, len(movie.Genres))
	for _, g := range movie.Genres {
		current[g.Name] = g
	}

	for _, name := range desired {
		if _, have := current[name]; have {
			continue
		}
		genre, err := s.genres.FindOrCreate(ctx, name)
		if err != nil {
			return err
		}
		if err := s.movies.AppendGenre(ctx, movie, genre); err != nil {
			return err
		}
		movie.Genres = append(movie.Genres, *genre)
	}

	kept := movie.Genres[:0]
	for _, g := range movie.Genres {
		if _, want := desiredSet[g.Name]; want {
			kept = append(kept, g)
			continue
		}
		if err := s.movies.RemoveGenre(ctx, movie, &g); err != nil {
			return err
		}
	}
	movie.Genres = kept

	return nil
}

/* ---------- EDIT / DELETE ---------- */

// UpdateMovie applies form edits. Users may only edit their own
// movies; admins may edit any and become the movie's managing admin.
func (s *Service) UpdateMovie(ctx context.Context, actor domain.Actor, movieID int64, req UpdateMovieRequest) (*domain.Movie, error) {
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() {
		if movie.UserID == nil || *movie.UserID != actor.ID {
			return nil, ErrForbidden
		}
	}

	if req.Title != nil && *req.Title != "" {
		movie.Title = *req.Title
	}
	if req.Director != nil && *req.Director != "" {
		director, err := s.directors.FindOrCreate(ctx, *req.Director)
		if err != nil {
			return nil, err
		}
		movie.DirectorID = director.ID
		movie.Director = director
	}
	if req.Year != nil {
		movie.Year = *req.Year
	}
	if req.Rating != nil {
		movie.Rating = *req.Rating
	}
	if actor.IsAdmin() {
		movie.AdminID = &actor.ID
	}

	if err := s.movies.Update(ctx, movie); err != nil {
		return nil, err
	}

	if req.Genres != nil {
		if err := s.ReconcileGenres(ctx, movie, SplitGenreNames(*req.Genres)); err != nil {
			return nil, err
		}
	}

	return movie, nil
}

// DeleteMovie removes a movie from the actor's own scope, clearing
// genre associations and favorites first.
func (s *Service) DeleteMovie(ctx context.Context, actor domain.Actor, movieID int64) error {
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return err
	}

	if actor.IsAdmin() {
		if movie.AdminID == nil || *movie.AdminID != actor.ID {
			return ErrForbidden
		}
	} else {
		if movie.UserID == nil || *movie.UserID != actor.ID {
			return ErrForbidden
		}
	}

	return s.movies.Delete(ctx, movie)
}

// DeleteAnyMovie removes any movie regardless of owner. Routed
// admin-only.
func (s *Service) DeleteAnyMovie(ctx context.Context, movieID int64) error {
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return err
	}
	return s.movies.Delete(ctx, movie)
}

/* ---------- VIEWS ---------- */

// GetMovie loads a single movie with director and genres. Users only
// see their own rows; admins see everything.
func (s *Service) GetMovie(ctx context.Context, actor domain.Actor, movieID int64) (*domain.Movie, error) {
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		if movie.UserID == nil || *movie.UserID != actor.ID {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return movie, nil
}

// ListOwned pages the actor's own movies.
func (s *Service) ListOwned(ctx context.Context, actor domain.Actor, q ListQuery) (listing.Page, error) {
	movies, err := s.movies.GetScoped(ctx, repository.MoviesOwnedBy(actor))
	if err != nil {
		return listing.Page{}, err
	}
	return q.render(movies), nil
}

// ListAll pages every movie in the catalog (an admin's "all" view).
func (s *Service) ListAll(ctx context.Context, q ListQuery) (listing.Page, error) {
	movies, err := s.movies.GetScoped(ctx, repository.Unscoped())
	if err != nil {
		return listing.Page{}, err
	}
	return q.render(movies), nil
}

// ListMyUnfavorited pages the user's own movies minus the ones they
// favorited. The subtraction happens in the query, ahead of the
// listing engine.
func (s *Service) ListMyUnfavorited(ctx context.Context, actor domain.Actor, q ListQuery) (listing.Page, error) {
	favoriteIDs, err := s.favorites.MovieIDs(ctx, actor.ID)
	if err != nil {
		return listing.Page{}, err
	}

	movies, err := s.movies.GetScoped(ctx,
		repository.MoviesOwnedBy(actor),
		repository.MoviesExcluding(favoriteIDs),
	)
	if err != nil {
		return listing.Page{}, err
	}
	return q.render(movies), nil
}

// ListByUser pages the movies a specific user added, for the admin
// report detail view.
func (s *Service) ListByUser(ctx context.Context, userID int64, q ListQuery) (listing.Page, error) {
	movies, err := s.movies.GetScoped(ctx, repository.MoviesAddedByUser(userID))
	if err != nil {
		return listing.Page{}, err
	}
	return q.render(movies), nil
}

// Latest returns the newest movies in the actor's scope for the
// dashboard strip.
func (s *Service) Latest(ctx context.Context, actor domain.Actor, limit int) ([]domain.Movie, error) {
	return s.movies.Latest(ctx, repository.MoviesOwnedBy(actor), limit)
}

// Genres lists every genre for form dropdowns.
func (s *Service) Genres(ctx context.Context) ([]domain.Genre, error) {
	return s.genres.GetAll(ctx)
}
