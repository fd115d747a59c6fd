package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/lexabu/woman-owned.com/cache"
	"github.com/lexabu/woman-owned.com/config"
	"github.com/lexabu/woman-owned.com/directory"
	"github.com/rs/zerolog/log"
)

// DirectoryHandler serves read-only directory data to the page renderer
type DirectoryHandler struct {
	dir      *directory.Directory
	cache    *cache.Cache
	recorder Recorder
	baseURL  string
	now      func() time.Time
}

// NewDirectoryHandler creates a new directory handler. cacheClient and recorder may be nil.
func NewDirectoryHandler(dir *directory.Directory, cacheClient *cache.Cache, cfg config.Config, recorder Recorder) *DirectoryHandler {
	return &DirectoryHandler{
		dir:      dir,
		cache:    cacheClient,
		recorder: recorderOrNop(recorder),
		baseURL:  strings.TrimRight(cfg.Site.BaseURL, "/"),
		now:      time.Now,
	}
}

// serveCached writes build's result as JSON, reusing a cached rendering of
// the same request URI when there is one. Only 200 responses are cached.
func (h *DirectoryHandler) serveCached(w http.ResponseWriter, r *http.Request, build func() any) {
	key := r.URL.RequestURI()
	body, hit, err := h.cache.Remember(key, func() ([]byte, error) {
		b, err := json.Marshal(build())
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to encode directory response")
		SendJSONError(w, http.StatusInternalServerError, ErrInternal, "Failed to encode response")
		return
	}

	if h.cache.Enabled() {
		h.recorder.ObserveCache(hit)
		if hit {
			w.Header().Set("X-Cache", "HIT")
		} else {
			w.Header().Set("X-Cache", "MISS")
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("Failed to write directory response")
	}
}

// ListBusinesses handles GET /api/businesses, with optional ?q= search
func (h *DirectoryHandler) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	h.serveCached(w, r, func() any {
		if strings.TrimSpace(query) == "" {
			return h.dir.All()
		}
		return h.dir.Search(query)
	})
}

// GetBusiness handles GET /api/businesses/{slug}
func (h *DirectoryHandler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	business, ok := h.dir.FindBySlug(slug)
	if !ok {
		SendJSONError(w, http.StatusNotFound, ErrNotFound, "Business not found")
		return
	}
	h.serveCached(w, r, func() any { return business })
}

// Featured handles GET /api/featured, with optional ?city=
func (h *DirectoryHandler) Featured(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	h.serveCached(w, r, func() any {
		if city == "" {
			return h.dir.Featured()
		}
		return h.dir.FeaturedByCity(city)
	})
}

// ListCities handles GET /api/cities
func (h *DirectoryHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, func() any { return h.dir.Cities() })
}

// GetCity handles GET /api/cities/{city}
func (h *DirectoryHandler) GetCity(w http.ResponseWriter, r *http.Request) {
	city, ok := h.dir.CityBySlug(mux.Vars(r)["city"])
	if !ok {
		SendJSONError(w, http.StatusNotFound, ErrNotFound, "City not found")
		return
	}
	h.serveCached(w, r, func() any { return city })
}

// CityBusinesses handles GET /api/cities/{city}/businesses
func (h *DirectoryHandler) CityBusinesses(w http.ResponseWriter, r *http.Request) {
	city := mux.Vars(r)["city"]
	if !h.dir.CityExists(city) {
		SendJSONError(w, http.StatusNotFound, ErrNotFound, "City not found")
		return
	}
	h.serveCached(w, r, func() any { return h.dir.FilterByCity(city) })
}

// CityCategoryBusinesses handles GET /api/cities/{city}/categories/{category}
func (h *DirectoryHandler) CityCategoryBusinesses(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	city, category := vars["city"], vars["category"]

	if !h.dir.CityExists(city) {
		SendJSONError(w, http.StatusNotFound, ErrNotFound, "City not found")
		return
	}
	if !h.dir.CategoryExists(category) {
		SendJSONError(w, http.StatusNotFound, ErrNotFound, "Category not found")
		return
	}
	h.serveCached(w, r, func() any { return h.dir.FilterByCityAndCategory(city, category) })
}

// ListCategories handles GET /api/categories
func (h *DirectoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, func() any { return h.dir.CategoriesWithCounts() })
}

// CategoryBusinesses handles GET /api/categories/{category}/businesses.
// Undeclared slugs are not rejected; they fall back to substring matching.
func (h *DirectoryHandler) CategoryBusinesses(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	h.serveCached(w, r, func() any { return h.dir.FilterByCategory(category) })
}

// Stats handles GET /api/stats
func (h *DirectoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, func() any { return h.dir.Stats() })
}
