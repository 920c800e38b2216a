// Package schema holds the wire-schema types exchanged with the remote
// service and the adapters translating them to and from the client
// schema used by the in-memory stores.
package schema

// WireFilm is a film as the remote service represents it.
type WireFilm struct {
	ID          string          `json:"id"`
	Comments    []string        `json:"comments"`
	FilmInfo    WireFilmInfo    `json:"film_info"`
	UserDetails WireUserDetails `json:"user_details"`
}

// WireFilmInfo nests the release block and uses snake_case field names.
type WireFilmInfo struct {
	Title            string      `json:"title"`
	AlternativeTitle string      `json:"alternative_title"`
	TotalRating      float64     `json:"total_rating"`
	Poster           string      `json:"poster"`
	AgeRating        int         `json:"age_rating"`
	Director         string      `json:"director"`
	Writers          []string    `json:"writers"`
	Actors           []string    `json:"actors"`
	Release          WireRelease `json:"release"`
	Runtime          int         `json:"runtime"`
	Genre            []string    `json:"genre"`
	Description      string      `json:"description"`
}

// WireRelease is the nested release block flattened away on the client
// side.
type WireRelease struct {
	Date           string `json:"date"`
	ReleaseCountry string `json:"release_country"`
}

// WireUserDetails carries the per-user flags. WatchingDate is null when
// the film has not been watched.
type WireUserDetails struct {
	Watchlist      bool    `json:"watchlist"`
	AlreadyWatched bool    `json:"already_watched"`
	WatchingDate   *string `json:"watching_date"`
	Favorite       bool    `json:"favorite"`
}

// WireComment is a comment as the remote service represents it. The
// text body travels under "comment".
type WireComment struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
	Emotion string `json:"emotion"`
}

// WireCommentDraft is the payload for creating a comment.
type WireCommentDraft struct {
	Comment string `json:"comment"`
	Emotion string `json:"emotion"`
}

// AddCommentResponse is what the remote service returns after accepting
// a new comment: the updated film plus its complete comment collection.
type AddCommentResponse struct {
	Movie    WireFilm      `json:"movie"`
	Comments []WireComment `json:"comments"`
}

// SyncResponse is the remote service's answer to a bulk sync push.
type SyncResponse struct {
	Updated []SyncResult `json:"updated"`
}

// SyncResult reports the fate of one pushed film.
type SyncResult struct {
	Success bool        `json:"success"`
	Payload SyncPayload `json:"payload"`
}

// SyncPayload wraps the authoritative film for an accepted item.
type SyncPayload struct {
	Film WireFilm `json:"film"`
}
