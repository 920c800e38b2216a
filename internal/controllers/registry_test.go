package controllers

import (
	"context"
	"testing"

	"github.com/filmotek/filmotek/internal/models"
)

func TestRegistryReusesControllerPerFilm(t *testing.T) {
	f := newFixture("1", "2")
	r := NewRegistry(&fakeGateway{}, f.films, f.comments, f.filter, testLogger())

	first := r.Controller(testFilm("1"))
	second := r.Controller(testFilm("1"))
	other := r.Controller(testFilm("2"))

	if first != second {
		t.Error("Expected one controller per film id")
	}
	if first == other {
		t.Error("Distinct films must get distinct controllers")
	}
}

func TestRegistryOpenSupersedesPreviousView(t *testing.T) {
	f := newFixture("1", "2")

	gateway := &fakeGateway{
		getComments: func(ctx context.Context, filmID string) ([]*models.Comment, error) {
			return []*models.Comment{}, nil
		},
	}
	r := NewRegistry(gateway, f.films, f.comments, f.filter, testLogger())

	first, err := r.Open(context.Background(), "1")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !first.Viewing() {
		t.Fatal("First controller not viewing after open")
	}

	second, err := r.Open(context.Background(), "2")
	if err != nil {
		t.Fatalf("Second open failed: %v", err)
	}

	if first.Viewing() {
		t.Error("Opening another film must close the previous detail view")
	}
	if !second.Viewing() {
		t.Error("Second controller not viewing after open")
	}
}

func TestRegistryOpenUnknownFilm(t *testing.T) {
	f := newFixture("1")
	r := NewRegistry(&fakeGateway{}, f.films, f.comments, f.filter, testLogger())

	if _, err := r.Open(context.Background(), "missing"); err == nil {
		t.Error("Expected error opening a film the store does not hold")
	}
}

func TestRegistryReconcilesFilmAfterCommentChange(t *testing.T) {
	f := newFixture("1")

	gateway := &fakeGateway{
		getComments: func(ctx context.Context, filmID string) ([]*models.Comment, error) {
			return []*models.Comment{}, nil
		},
		addComment: func(ctx context.Context, film *models.Film, draft models.CommentDraft) (*models.Film, []*models.Comment, error) {
			updated := film.Clone()
			updated.Comments = []string{"100"}
			return updated, []*models.Comment{testComment("100")}, nil
		},
	}
	r := NewRegistry(gateway, f.films, f.comments, f.filter, testLogger())

	c, err := r.Open(context.Background(), "1")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := c.SubmitComment(context.Background(), models.CommentDraft{Content: "hi", Emotion: models.EmotionSmile}); err != nil {
		t.Fatalf("SubmitComment failed: %v", err)
	}

	stored, err := f.films.GetFilm("1")
	if err != nil {
		t.Fatalf("GetFilm failed: %v", err)
	}
	if len(stored.Comments) != 1 || stored.Comments[0] != "100" {
		t.Errorf("Film store comment ids not reconciled: %v", stored.Comments)
	}

	// The controller snapshot follows the store.
	if got := c.Film(); len(got.Comments) != 1 || got.Comments[0] != "100" {
		t.Errorf("Controller snapshot not refreshed: %v", got.Comments)
	}
}

func TestRegistryResyncsControllerAfterCatalogReplace(t *testing.T) {
	f := newFixture("1")

	var pushed *models.Film
	gateway := &fakeGateway{
		getComments: func(ctx context.Context, filmID string) ([]*models.Comment, error) {
			return []*models.Comment{}, nil
		},
		updateFilm: func(ctx context.Context, film *models.Film) (*models.Film, error) {
			pushed = film.Clone()
			return film.Clone(), nil
		},
	}
	r := NewRegistry(gateway, f.films, f.comments, f.filter, testLogger())

	if _, err := r.Open(context.Background(), "1"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	// A reconciliation pass replaces the whole catalog; the store
	// notifies without a per-film payload.
	refreshed := testFilm("1")
	refreshed.FilmInfo.Title = "Reconciled Title"
	refreshed.FilmInfo.TotalRating = 9.1
	f.films.SetFilms(models.UpdateMajor, []*models.Film{refreshed})

	c, err := r.Open(context.Background(), "1")
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}

	if got := c.Film().FilmInfo.Title; got != "Reconciled Title" {
		t.Fatalf("Controller snapshot not resynced after replace: title %q", got)
	}

	if err := c.Toggle(context.Background(), ToggleWatchlist); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if pushed == nil {
		t.Fatal("Toggle never reached the gateway")
	}
	if pushed.FilmInfo.Title != "Reconciled Title" {
		t.Errorf("Toggle pushed a pre-replace record: title %q, want %q", pushed.FilmInfo.Title, "Reconciled Title")
	}
	if !pushed.UserDetails.Watchlist {
		t.Error("Toggle lost the flag flip while resyncing")
	}
}

func TestRegistryCloseIsIdempotent(t *testing.T) {
	f := newFixture("1")
	r := NewRegistry(&fakeGateway{
		getComments: func(ctx context.Context, filmID string) ([]*models.Comment, error) {
			return []*models.Comment{}, nil
		},
	}, f.films, f.comments, f.filter, testLogger())

	c, err := r.Open(context.Background(), "1")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	r.Close()
	r.Close()

	if c.Viewing() {
		t.Error("Controller still viewing after registry close")
	}
}
