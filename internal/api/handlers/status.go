package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/filmotek/filmotek/internal/connectivity"
	"github.com/filmotek/filmotek/internal/models"
	"github.com/filmotek/filmotek/internal/storage"
	"github.com/filmotek/filmotek/internal/utils"
)

const statusCacheKey = "status"

// StatusHandler reports the catalog state: per-filter counts, the user
// rank, connectivity, and the size of the offline cache. The snapshot
// is cached briefly so the endpoint can be polled cheaply.
type StatusHandler struct {
	films    *models.FilmStore
	store    storage.Store
	oracle   connectivity.Oracle
	snapshot *gocache.Cache
	logger   *logrus.Logger
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(films *models.FilmStore, store storage.Store, oracle connectivity.Oracle, logger *logrus.Logger) *StatusHandler {
	return &StatusHandler{
		films:    films,
		store:    store,
		oracle:   oracle,
		snapshot: gocache.New(10*time.Second, time.Minute),
		logger:   logger,
	}
}

// StatusResponse represents the status response
type StatusResponse struct {
	TotalFilms    int            `json:"total_films"`
	Filters       map[string]int `json:"filters"`
	UserRank      string         `json:"user_rank"`
	TopRated      []string       `json:"top_rated"`
	MostCommented []string       `json:"most_commented"`
	Online        bool           `json:"online"`
	CachedFilms   int            `json:"cached_films"`
}

// ServeHTTP handles the status endpoint
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if cached, ok := h.snapshot.Get(statusCacheKey); ok {
		writeStatus(w, cached.(StatusResponse))
		return
	}

	items, err := h.store.GetItems()
	if err != nil {
		h.logger.WithError(err).Error("Failed to read cache")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	films := h.films.GetFilms()
	watched := utils.WatchedFilmsAmount(films)

	response := StatusResponse{
		TotalFilms: len(films),
		Filters: map[string]int{
			string(models.FilterAll):       len(films),
			string(models.FilterWatchlist): len(utils.FilterFilms(films, models.FilterWatchlist)),
			string(models.FilterHistory):   watched,
			string(models.FilterFavorites): len(utils.FilterFilms(films, models.FilterFavorites)),
		},
		UserRank:      utils.UserRank(watched),
		TopRated:      filmIDs(utils.TopRatedFilms(films)),
		MostCommented: filmIDs(utils.MostCommentedFilms(films)),
		Online:        h.oracle.IsOnline(),
		CachedFilms:   len(items),
	}

	h.snapshot.Set(statusCacheKey, response, gocache.DefaultExpiration)
	writeStatus(w, response)
}

func filmIDs(films []*models.Film) []string {
	ids := make([]string, 0, len(films))
	for _, film := range films {
		ids = append(ids, film.ID)
	}
	return ids
}

func writeStatus(w http.ResponseWriter, response StatusResponse) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
