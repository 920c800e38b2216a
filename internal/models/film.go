package models

import "time"

// Film is the client-schema representation of a catalog entry.
type Film struct {
	ID string `boltholdKey:"ID"`

	FilmInfo    FilmInfo
	UserDetails UserDetails

	// Comments holds the ids of the film's comments, not the comments
	// themselves. After any comment mutation it must equal the ids held
	// by the comment store for this film.
	Comments []string
}

// FilmInfo carries the descriptive attributes of a film.
type FilmInfo struct {
	Title            string
	AlternativeTitle string
	TotalRating      float64
	Poster           string
	AgeRating        int
	Director         string
	Writers          []string
	Actors           []string
	ReleaseDate      time.Time
	Country          string
	Runtime          int // minutes
	Genres           []string
	Description      string
}

// UserDetails carries the per-user flags on a film.
type UserDetails struct {
	Watchlist      bool
	AlreadyWatched bool
	WatchingDate   *time.Time
	Favorite       bool
}

// Clone returns a deep copy. Stores hand out clones so callers can never
// mutate canonical state behind the notification path.
func (f *Film) Clone() *Film {
	if f == nil {
		return nil
	}

	clone := *f

	clone.Comments = append([]string(nil), f.Comments...)
	clone.FilmInfo.Writers = append([]string(nil), f.FilmInfo.Writers...)
	clone.FilmInfo.Actors = append([]string(nil), f.FilmInfo.Actors...)
	clone.FilmInfo.Genres = append([]string(nil), f.FilmInfo.Genres...)

	if f.UserDetails.WatchingDate != nil {
		watchingDate := *f.UserDetails.WatchingDate
		clone.UserDetails.WatchingDate = &watchingDate
	}

	return &clone
}
