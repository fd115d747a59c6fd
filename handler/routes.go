package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes mounts every endpoint on r. formMiddleware wraps only the
// two POST form routes.
func RegisterRoutes(r *mux.Router, d *DirectoryHandler, f *FormHandler, s *SystemHandler, formMiddleware ...mux.MiddlewareFunc) {
	r.HandleFunc("/health", s.HealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/cache/metrics", s.CacheMetrics).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/businesses", d.ListBusinesses).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{slug}", d.GetBusiness).Methods(http.MethodGet)
	api.HandleFunc("/featured", d.Featured).Methods(http.MethodGet)
	api.HandleFunc("/cities", d.ListCities).Methods(http.MethodGet)
	api.HandleFunc("/cities/{city}", d.GetCity).Methods(http.MethodGet)
	api.HandleFunc("/cities/{city}/businesses", d.CityBusinesses).Methods(http.MethodGet)
	api.HandleFunc("/cities/{city}/categories/{category}", d.CityCategoryBusinesses).Methods(http.MethodGet)
	api.HandleFunc("/categories", d.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories/{category}/businesses", d.CategoryBusinesses).Methods(http.MethodGet)
	api.HandleFunc("/stats", d.Stats).Methods(http.MethodGet)

	formsRouter := api.NewRoute().Subrouter()
	formsRouter.Use(formMiddleware...)
	formsRouter.HandleFunc("/contact", f.Contact).Methods(http.MethodPost, http.MethodOptions)
	formsRouter.HandleFunc("/submit-business", f.SubmitBusiness).Methods(http.MethodPost, http.MethodOptions)

	r.HandleFunc("/sitemap.xml", d.Sitemap).Methods(http.MethodGet)
	r.HandleFunc("/qr/business/{slug}", d.BusinessQR).Methods(http.MethodGet)
}
