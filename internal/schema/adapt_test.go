package schema

import (
	"reflect"
	"testing"
	"time"

	"github.com/filmotek/filmotek/internal/models"
)

func wireFilmFixture() WireFilm {
	watchingDate := "2021-04-12T16:12:32.554Z"
	return WireFilm{
		ID:       "42",
		Comments: []string{"1", "7"},
		FilmInfo: WireFilmInfo{
			Title:            "The Great Flamarion",
			AlternativeTitle: "Der grosse Flamarion",
			TotalRating:      8.9,
			Poster:           "images/posters/the-great-flamarion.jpg",
			AgeRating:        18,
			Director:         "Anthony Mann",
			Writers:          []string{"Anne Wigton", "Heinz Herald"},
			Actors:           []string{"Erich von Stroheim", "Mary Beth Hughes"},
			Release: WireRelease{
				Date:           "1945-03-30T00:00:00.000Z",
				ReleaseCountry: "USA",
			},
			Runtime:     78,
			Genre:       []string{"Mystery", "Drama"},
			Description: "The film opens following a murder at a cabaret in Mexico City in 1936.",
		},
		UserDetails: WireUserDetails{
			Watchlist:      false,
			AlreadyWatched: true,
			WatchingDate:   &watchingDate,
			Favorite:       true,
		},
	}
}

func TestFilmAdaptation(t *testing.T) {
	wire := wireFilmFixture()

	film, err := FilmToClient(wire)
	if err != nil {
		t.Fatalf("FilmToClient failed: %v", err)
	}

	if film.ID != "42" {
		t.Errorf("Expected id 42, got %q", film.ID)
	}
	if film.FilmInfo.Country != "USA" {
		t.Errorf("Release block not flattened: country %q", film.FilmInfo.Country)
	}
	wantDate := time.Date(1945, 3, 30, 0, 0, 0, 0, time.UTC)
	if !film.FilmInfo.ReleaseDate.Equal(wantDate) {
		t.Errorf("Expected release date %v, got %v", wantDate, film.FilmInfo.ReleaseDate)
	}
	if !reflect.DeepEqual(film.FilmInfo.Genres, []string{"Mystery", "Drama"}) {
		t.Errorf("Genre not renamed to Genres: %v", film.FilmInfo.Genres)
	}
	if film.FilmInfo.AgeRating != 18 {
		t.Errorf("Expected age rating 18, got %d", film.FilmInfo.AgeRating)
	}
	if film.UserDetails.WatchingDate == nil {
		t.Fatal("Watching date dropped")
	}
	if !film.UserDetails.AlreadyWatched || !film.UserDetails.Favorite {
		t.Error("User flags not carried over")
	}
}

func TestFilmRoundTrip(t *testing.T) {
	wire := wireFilmFixture()

	film, err := FilmToClient(wire)
	if err != nil {
		t.Fatalf("FilmToClient failed: %v", err)
	}

	back := FilmToServer(film)
	if !reflect.DeepEqual(wire, back) {
		t.Errorf("Round trip mismatch:\nwant %+v\ngot  %+v", wire, back)
	}
}

func TestFilmRoundTripNoWatchingDate(t *testing.T) {
	wire := wireFilmFixture()
	wire.UserDetails.WatchingDate = nil
	wire.UserDetails.AlreadyWatched = false

	film, err := FilmToClient(wire)
	if err != nil {
		t.Fatalf("FilmToClient failed: %v", err)
	}
	if film.UserDetails.WatchingDate != nil {
		t.Error("Expected nil watching date")
	}

	back := FilmToServer(film)
	if back.UserDetails.WatchingDate != nil {
		t.Error("Expected null watching date on the wire")
	}
	if !reflect.DeepEqual(wire, back) {
		t.Errorf("Round trip mismatch:\nwant %+v\ngot  %+v", wire, back)
	}
}

func TestFilmToClientSecondsPrecisionDate(t *testing.T) {
	wire := wireFilmFixture()
	wire.FilmInfo.Release.Date = "1945-03-30T00:00:00Z"

	film, err := FilmToClient(wire)
	if err != nil {
		t.Fatalf("FilmToClient failed on seconds-precision date: %v", err)
	}
	if film.FilmInfo.ReleaseDate.Year() != 1945 {
		t.Errorf("Unexpected release date %v", film.FilmInfo.ReleaseDate)
	}
}

func TestFilmToClientBadDate(t *testing.T) {
	wire := wireFilmFixture()
	wire.FilmInfo.Release.Date = "not-a-date"

	if _, err := FilmToClient(wire); err == nil {
		t.Error("Expected error for malformed release date")
	}
}

func TestCommentRoundTrip(t *testing.T) {
	wire := WireComment{
		ID:      "7",
		Author:  "Ilya O'Reilly",
		Comment: "a film that changed my life",
		Date:    "2019-05-11T16:12:32.554Z",
		Emotion: "smile",
	}

	comment, err := CommentToClient(wire)
	if err != nil {
		t.Fatalf("CommentToClient failed: %v", err)
	}

	if comment.Content != "a film that changed my life" {
		t.Errorf("Wire comment body not mapped to Content: %q", comment.Content)
	}
	if comment.Emotion != models.EmotionSmile {
		t.Errorf("Expected smile emotion, got %q", comment.Emotion)
	}

	back := CommentToServer(comment)
	if !reflect.DeepEqual(wire, back) {
		t.Errorf("Round trip mismatch:\nwant %+v\ngot  %+v", wire, back)
	}
}

func TestCommentDraftToServer(t *testing.T) {
	draft := models.CommentDraft{Content: "great", Emotion: models.EmotionAngry}

	wire := CommentDraftToServer(draft)
	if wire.Comment != "great" {
		t.Errorf("Draft content not mapped: %q", wire.Comment)
	}
	if wire.Emotion != "angry" {
		t.Errorf("Draft emotion not mapped: %q", wire.Emotion)
	}
}
