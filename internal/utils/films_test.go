package utils

import (
	"testing"
	"time"

	"github.com/filmotek/filmotek/internal/models"
)

func buildFilm(id string, rating float64, comments int, watchlist, watched, favorite bool) *models.Film {
	ids := make([]string, comments)
	for i := range ids {
		ids[i] = id + "-c"
	}
	return &models.Film{
		ID: id,
		FilmInfo: models.FilmInfo{
			Title:       "Film " + id,
			TotalRating: rating,
			ReleaseDate: time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		UserDetails: models.UserDetails{
			Watchlist:      watchlist,
			AlreadyWatched: watched,
			Favorite:       favorite,
		},
		Comments: ids,
	}
}

func TestFilterFilms(t *testing.T) {
	films := []*models.Film{
		buildFilm("1", 5, 0, true, false, false),
		buildFilm("2", 5, 0, false, true, true),
		buildFilm("3", 5, 0, true, true, false),
	}

	tests := []struct {
		filter models.FilterType
		want   []string
	}{
		{models.FilterAll, []string{"1", "2", "3"}},
		{models.FilterWatchlist, []string{"1", "3"}},
		{models.FilterHistory, []string{"2", "3"}},
		{models.FilterFavorites, []string{"2"}},
	}

	for _, tt := range tests {
		got := FilterFilms(films, tt.filter)
		if len(got) != len(tt.want) {
			t.Errorf("%s: expected %d films, got %d", tt.filter, len(tt.want), len(got))
			continue
		}
		for i, film := range got {
			if film.ID != tt.want[i] {
				t.Errorf("%s: expected %s at %d, got %s", tt.filter, tt.want[i], i, film.ID)
			}
		}
	}
}

func TestSortByRating(t *testing.T) {
	films := []*models.Film{
		buildFilm("low", 3.1, 0, false, false, false),
		buildFilm("high", 9.8, 0, false, false, false),
		buildFilm("mid", 7.2, 0, false, false, false),
	}

	sorted := SortByRating(films)
	if sorted[0].ID != "high" || sorted[1].ID != "mid" || sorted[2].ID != "low" {
		t.Errorf("Wrong order: %s, %s, %s", sorted[0].ID, sorted[1].ID, sorted[2].ID)
	}

	// Input order untouched.
	if films[0].ID != "low" {
		t.Error("SortByRating mutated its input")
	}
}

func TestSortByReleaseDate(t *testing.T) {
	old := buildFilm("old", 5, 0, false, false, false)
	old.FilmInfo.ReleaseDate = time.Date(1933, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := buildFilm("recent", 5, 0, false, false, false)
	recent.FilmInfo.ReleaseDate = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)

	sorted := SortByReleaseDate([]*models.Film{old, recent})
	if sorted[0].ID != "recent" {
		t.Errorf("Expected newest first, got %s", sorted[0].ID)
	}
}

func TestMostCommentedFilms(t *testing.T) {
	films := []*models.Film{
		buildFilm("1", 5, 1, false, false, false),
		buildFilm("2", 5, 9, false, false, false),
		buildFilm("3", 5, 4, false, false, false),
	}

	top := MostCommentedFilms(films)
	if len(top) != 2 {
		t.Fatalf("Expected 2 films, got %d", len(top))
	}
	if top[0].ID != "2" || top[1].ID != "3" {
		t.Errorf("Wrong selection: %s, %s", top[0].ID, top[1].ID)
	}
}

func TestTopRatedFilms(t *testing.T) {
	films := []*models.Film{buildFilm("only", 5, 0, false, false, false)}

	top := TopRatedFilms(films)
	if len(top) != 1 {
		t.Errorf("Expected short input returned whole, got %d films", len(top))
	}
}

func TestUserRank(t *testing.T) {
	tests := []struct {
		watched int
		want    string
	}{
		{0, ""},
		{1, "Novice"},
		{10, "Novice"},
		{11, "Fan"},
		{20, "Fan"},
		{21, "Movie Buff"},
		{100, "Movie Buff"},
	}

	for _, tt := range tests {
		if got := UserRank(tt.watched); got != tt.want {
			t.Errorf("UserRank(%d): expected %q, got %q", tt.watched, tt.want, got)
		}
	}
}

func TestWatchedFilmsAmount(t *testing.T) {
	films := []*models.Film{
		buildFilm("1", 5, 0, false, true, false),
		buildFilm("2", 5, 0, false, false, false),
		buildFilm("3", 5, 0, false, true, false),
	}

	if got := WatchedFilmsAmount(films); got != 2 {
		t.Errorf("Expected 2 watched films, got %d", got)
	}
}
