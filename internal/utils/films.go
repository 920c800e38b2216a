package utils

import (
	"sort"

	"github.com/filmotek/filmotek/internal/models"
)

const (
	topRatedAmount      = 2
	mostCommentedAmount = 2
)

// FilterFilms returns the films belonging to the given bucket, keeping
// their relative order.
func FilterFilms(films []*models.Film, filter models.FilterType) []*models.Film {
	if filter == models.FilterAll {
		return append([]*models.Film(nil), films...)
	}

	filtered := make([]*models.Film, 0, len(films))
	for _, film := range films {
		keep := false
		switch filter {
		case models.FilterWatchlist:
			keep = film.UserDetails.Watchlist
		case models.FilterHistory:
			keep = film.UserDetails.AlreadyWatched
		case models.FilterFavorites:
			keep = film.UserDetails.Favorite
		}
		if keep {
			filtered = append(filtered, film)
		}
	}
	return filtered
}

// SortByReleaseDate returns a copy sorted newest first, stable over the
// input order.
func SortByReleaseDate(films []*models.Film) []*models.Film {
	sorted := append([]*models.Film(nil), films...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FilmInfo.ReleaseDate.After(sorted[j].FilmInfo.ReleaseDate)
	})
	return sorted
}

// SortByRating returns a copy sorted highest rating first, stable over
// the input order.
func SortByRating(films []*models.Film) []*models.Film {
	sorted := append([]*models.Film(nil), films...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FilmInfo.TotalRating > sorted[j].FilmInfo.TotalRating
	})
	return sorted
}

// TopRatedFilms returns the two highest-rated films.
func TopRatedFilms(films []*models.Film) []*models.Film {
	sorted := SortByRating(films)
	if len(sorted) > topRatedAmount {
		sorted = sorted[:topRatedAmount]
	}
	return sorted
}

// MostCommentedFilms returns the two films with the most comments.
func MostCommentedFilms(films []*models.Film) []*models.Film {
	sorted := append([]*models.Film(nil), films...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Comments) > len(sorted[j].Comments)
	})
	if len(sorted) > mostCommentedAmount {
		sorted = sorted[:mostCommentedAmount]
	}
	return sorted
}

// WatchedFilmsAmount counts the films marked as watched.
func WatchedFilmsAmount(films []*models.Film) int {
	amount := 0
	for _, film := range films {
		if film.UserDetails.AlreadyWatched {
			amount++
		}
	}
	return amount
}

// UserRank maps the watched count to a rank title. Zero watched films
// means no rank.
func UserRank(watchedAmount int) string {
	switch {
	case watchedAmount >= 21:
		return "Movie Buff"
	case watchedAmount >= 11:
		return "Fan"
	case watchedAmount >= 1:
		return "Novice"
	default:
		return ""
	}
}
