package schema

import (
	"fmt"
	"time"

	"github.com/filmotek/filmotek/internal/models"
)

// wireTimeFormat is ISO-8601 with millisecond precision, the format the
// remote service emits. Sub-millisecond precision is not preserved
// across a round trip.
const wireTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// FilmToClient translates a wire film into the client schema: snake_case
// fields renamed, the release block flattened into ReleaseDate and
// Country, genre renamed to Genres.
func FilmToClient(wire WireFilm) (*models.Film, error) {
	releaseDate, err := time.Parse(wireTimeFormat, wire.FilmInfo.Release.Date)
	if err != nil {
		// Some records carry dates without fractional seconds.
		releaseDate, err = time.Parse(time.RFC3339, wire.FilmInfo.Release.Date)
		if err != nil {
			return nil, fmt.Errorf("film %q: parse release date: %w", wire.ID, err)
		}
	}

	var watchingDate *time.Time
	if wire.UserDetails.WatchingDate != nil {
		parsed, err := time.Parse(wireTimeFormat, *wire.UserDetails.WatchingDate)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, *wire.UserDetails.WatchingDate)
			if err != nil {
				return nil, fmt.Errorf("film %q: parse watching date: %w", wire.ID, err)
			}
		}
		watchingDate = &parsed
	}

	return &models.Film{
		ID:       wire.ID,
		Comments: append([]string(nil), wire.Comments...),
		FilmInfo: models.FilmInfo{
			Title:            wire.FilmInfo.Title,
			AlternativeTitle: wire.FilmInfo.AlternativeTitle,
			TotalRating:      wire.FilmInfo.TotalRating,
			Poster:           wire.FilmInfo.Poster,
			AgeRating:        wire.FilmInfo.AgeRating,
			Director:         wire.FilmInfo.Director,
			Writers:          append([]string(nil), wire.FilmInfo.Writers...),
			Actors:           append([]string(nil), wire.FilmInfo.Actors...),
			ReleaseDate:      releaseDate,
			Country:          wire.FilmInfo.Release.ReleaseCountry,
			Runtime:          wire.FilmInfo.Runtime,
			Genres:           append([]string(nil), wire.FilmInfo.Genre...),
			Description:      wire.FilmInfo.Description,
		},
		UserDetails: models.UserDetails{
			Watchlist:      wire.UserDetails.Watchlist,
			AlreadyWatched: wire.UserDetails.AlreadyWatched,
			WatchingDate:   watchingDate,
			Favorite:       wire.UserDetails.Favorite,
		},
	}, nil
}

// FilmToServer is the inverse of FilmToClient: the release block is
// re-expanded and timestamps serialized back to ISO-8601 strings.
func FilmToServer(film *models.Film) WireFilm {
	var watchingDate *string
	if film.UserDetails.WatchingDate != nil {
		formatted := film.UserDetails.WatchingDate.UTC().Format(wireTimeFormat)
		watchingDate = &formatted
	}

	return WireFilm{
		ID:       film.ID,
		Comments: append([]string(nil), film.Comments...),
		FilmInfo: WireFilmInfo{
			Title:            film.FilmInfo.Title,
			AlternativeTitle: film.FilmInfo.AlternativeTitle,
			TotalRating:      film.FilmInfo.TotalRating,
			Poster:           film.FilmInfo.Poster,
			AgeRating:        film.FilmInfo.AgeRating,
			Director:         film.FilmInfo.Director,
			Writers:          append([]string(nil), film.FilmInfo.Writers...),
			Actors:           append([]string(nil), film.FilmInfo.Actors...),
			Release: WireRelease{
				Date:           film.FilmInfo.ReleaseDate.UTC().Format(wireTimeFormat),
				ReleaseCountry: film.FilmInfo.Country,
			},
			Runtime:     film.FilmInfo.Runtime,
			Genre:       append([]string(nil), film.FilmInfo.Genres...),
			Description: film.FilmInfo.Description,
		},
		UserDetails: WireUserDetails{
			Watchlist:      film.UserDetails.Watchlist,
			AlreadyWatched: film.UserDetails.AlreadyWatched,
			WatchingDate:   watchingDate,
			Favorite:       film.UserDetails.Favorite,
		},
	}
}

// CommentToClient translates a wire comment: the "comment" body becomes
// Content, everything else keeps its name.
func CommentToClient(wire WireComment) (*models.Comment, error) {
	date, err := time.Parse(wireTimeFormat, wire.Date)
	if err != nil {
		date, err = time.Parse(time.RFC3339, wire.Date)
		if err != nil {
			return nil, fmt.Errorf("comment %q: parse date: %w", wire.ID, err)
		}
	}

	return &models.Comment{
		ID:      wire.ID,
		Author:  wire.Author,
		Content: wire.Comment,
		Emotion: models.Emotion(wire.Emotion),
		Date:    date,
	}, nil
}

// CommentToServer is the inverse of CommentToClient.
func CommentToServer(comment *models.Comment) WireComment {
	return WireComment{
		ID:      comment.ID,
		Author:  comment.Author,
		Comment: comment.Content,
		Date:    comment.Date.UTC().Format(wireTimeFormat),
		Emotion: string(comment.Emotion),
	}
}

// CommentDraftToServer prepares a locally authored comment for the
// create call.
func CommentDraftToServer(draft models.CommentDraft) WireCommentDraft {
	return WireCommentDraft{
		Comment: draft.Content,
		Emotion: string(draft.Emotion),
	}
}

// CommentsToClient translates a whole wire collection, preserving order.
func CommentsToClient(wires []WireComment) ([]*models.Comment, error) {
	comments := make([]*models.Comment, 0, len(wires))
	for _, wire := range wires {
		comment, err := CommentToClient(wire)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, nil
}
