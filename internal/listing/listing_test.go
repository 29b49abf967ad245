package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviweb/internal/domain"
)

func movie(id int64, title, imdbID string) domain.Movie {
	return domain.Movie{ID: id, Title: title, ImdbID: imdbID}
}

func titles(movies []domain.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

func TestParseSortKey_FallsBackToTitle(t *testing.T) {
	assert.Equal(t, SortByTitle, ParseSortKey("bogus"))
	assert.Equal(t, SortByTitle, ParseSortKey(""))
	assert.Equal(t, SortByDirector, ParseSortKey("director"))
	assert.Equal(t, SortByRating, ParseSortKey(" RATING "))
}

func TestRender_UnknownSortKeyBehavesLikeTitle(t *testing.T) {
	movies := []domain.Movie{
		movie(1, "Casablanca", "tt1"),
		movie(2, "Alien", "tt2"),
		movie(3, "Blade Runner", "tt3"),
	}

	byBogus := Render(movies, ParseSortKey("bogus"), Ascending, 1, 10)
	byTitle := Render(movies, SortByTitle, Ascending, 1, 10)

	assert.Equal(t, byTitle, byBogus)
	assert.Equal(t, []string{"Alien", "Blade Runner", "Casablanca"}, titles(byBogus.Items))
}

func TestDedupByImdbID_Idempotent(t *testing.T) {
	movies := []domain.Movie{
		movie(1, "A", "tt1"),
		movie(2, "B", "tt1"),
		movie(3, "C", "tt2"),
		movie(4, "D", ""),
		movie(5, "E", ""),
	}

	once := DedupByImdbID(movies)
	twice := DedupByImdbID(once)

	assert.Equal(t, once, twice)
	assert.Equal(t, []string{"A", "C", "D", "E"}, titles(once))
}

func TestDedupByImdbID_EmptyIDsNeverCollide(t *testing.T) {
	movies := []domain.Movie{
		movie(1, "A", ""),
		movie(2, "B", ""),
		movie(3, "C", ""),
	}

	assert.Len(t, DedupByImdbID(movies), 3)
}

func TestDedupByImdbID_PreservesOrder(t *testing.T) {
	movies := []domain.Movie{
		movie(1, "Zulu", "tt9"),
		movie(2, "Alpha", "tt8"),
		movie(3, "Mike", "tt7"),
	}

	assert.Equal(t, []string{"Zulu", "Alpha", "Mike"}, titles(DedupByImdbID(movies)))
}

func TestRender_PaginationCoversEverythingExactlyOnce(t *testing.T) {
	movies := []domain.Movie{
		movie(1, "G", "tt1"),
		movie(2, "C", "tt2"),
		movie(3, "E", "tt3"),
		movie(4, "A", "tt4"),
		movie(5, "F", "tt5"),
		movie(6, "B", "tt6"),
		movie(7, "D", "tt7"),
	}

	const perPage = 3
	var collected []string
	first := Render(movies, SortByTitle, Ascending, 1, perPage)
	require.Equal(t, 7, first.Total)
	require.Equal(t, 3, first.TotalPages)

	for p := 1; p <= first.TotalPages; p++ {
		page := Render(movies, SortByTitle, Ascending, p, perPage)
		collected = append(collected, titles(page.Items)...)
	}

	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G"}, collected)
}

func TestRender_OutOfRangePageIsEmpty(t *testing.T) {
	movies := []domain.Movie{movie(1, "A", "tt1")}

	page := Render(movies, SortByTitle, Ascending, 99, 5)

	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Total)
}

func TestRender_DedupPrecedesPagination(t *testing.T) {
	movies := []domain.Movie{
		movie(1, "A", "tt1"),
		movie(2, "B", "tt1"),
		movie(3, "C", "tt2"),
	}

	page := Render(movies, SortByTitle, Ascending, 1, 2)

	// B shares A's external id and drops out, so only two movies remain
	// and both fit on page one.
	assert.Equal(t, []string{"A", "C"}, titles(page.Items))
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 1, page.TotalPages)
}

func TestRender_SortByDirectorUsesJoinedName(t *testing.T) {
	movies := []domain.Movie{
		{ID: 1, Title: "First", ImdbID: "tt1", Director: &domain.Director{Name: "Villeneuve"}},
		{ID: 2, Title: "Second", ImdbID: "tt2", Director: &domain.Director{Name: "Kubrick"}},
		{ID: 3, Title: "Third", ImdbID: "tt3", Director: &domain.Director{Name: "Anderson"}},
	}

	page := Render(movies, SortByDirector, Ascending, 1, 10)

	assert.Equal(t, []string{"Third", "Second", "First"}, titles(page.Items))
}

func TestRender_SortByGenreUsesFirstGenreName(t *testing.T) {
	movies := []domain.Movie{
		{ID: 1, Title: "First", ImdbID: "tt1", Genres: []domain.Genre{{Name: "Thriller"}}},
		{ID: 2, Title: "Second", ImdbID: "tt2", Genres: []domain.Genre{{Name: "Comedy"}}},
		{ID: 3, Title: "Third", ImdbID: "tt3"},
	}

	page := Render(movies, SortByGenre, Ascending, 1, 10)

	// No genres sorts as an empty name, ahead of everything.
	assert.Equal(t, []string{"Third", "Second", "First"}, titles(page.Items))
}

func TestRender_DescendingReversesOrder(t *testing.T) {
	movies := []domain.Movie{
		{ID: 1, Title: "Low", ImdbID: "tt1", Rating: 2.1},
		{ID: 2, Title: "High", ImdbID: "tt2", Rating: 9.3},
		{ID: 3, Title: "Mid", ImdbID: "tt3", Rating: 6.0},
	}

	page := Render(movies, SortByRating, Descending, 1, 10)

	assert.Equal(t, []string{"High", "Mid", "Low"}, titles(page.Items))
}

func TestRender_StableForTiedKeys(t *testing.T) {
	movies := []domain.Movie{
		{ID: 1, Title: "Same", ImdbID: "tt1", Rating: 5},
		{ID: 2, Title: "Same", ImdbID: "tt2", Rating: 5},
		{ID: 3, Title: "Same", ImdbID: "tt3", Rating: 5},
	}

	page := Render(movies, SortByRating, Ascending, 1, 10)

	require.Len(t, page.Items, 3)
	assert.Equal(t, int64(1), page.Items[0].ID)
	assert.Equal(t, int64(2), page.Items[1].ID)
	assert.Equal(t, int64(3), page.Items[2].ID)
}

func TestRender_DeterministicAcrossRuns(t *testing.T) {
	movies := []domain.Movie{
		movie(4, "D", "tt4"),
		movie(1, "A", "tt1"),
		movie(3, "C", "tt1"),
		movie(2, "B", ""),
	}

	a := Render(movies, SortByTitle, Ascending, 1, 10)
	b := Render(movies, SortByTitle, Ascending, 1, 10)

	assert.Equal(t, a, b)
}
