package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"
)

var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"low":     qrcode.Low,
	"medium":  qrcode.Medium,
	"high":    qrcode.High,
	"highest": qrcode.Highest,
}

// BusinessQR handles GET /qr/business/{slug} - a PNG QR code pointing at the
// business page, for printed flyers and shop windows.
func (h *DirectoryHandler) BusinessQR(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if _, ok := h.dir.FindBySlug(slug); !ok {
		SendJSONError(w, http.StatusNotFound, ErrNotFound, "Business not found")
		return
	}

	query := r.URL.Query()

	// Size defaults to 256, allowed range 128..1024
	size := 256
	if sizeStr := query.Get("size"); sizeStr != "" {
		parsedSize, err := strconv.Atoi(sizeStr)
		if err != nil {
			SendJSONError(w, http.StatusBadRequest, ErrInvalidParam, "Size must be a number")
			return
		}
		if parsedSize < 128 || parsedSize > 1024 {
			SendJSONError(w, http.StatusBadRequest, ErrInvalidParam, "Size must be between 128 and 1024")
			return
		}
		size = parsedSize
	}

	levelName := query.Get("level")
	if levelName == "" {
		levelName = "medium"
	}
	level, ok := recoveryLevels[levelName]
	if !ok {
		SendJSONError(w, http.StatusBadRequest, ErrInvalidParam, "Level must be: low, medium, high, or highest")
		return
	}

	pageURL := h.baseURL + "/business/" + slug
	png, err := qrcode.Encode(pageURL, level, size)
	if err != nil {
		log.Error().Err(err).Str("url", pageURL).Msg("Failed to generate QR code")
		SendJSONError(w, http.StatusInternalServerError, ErrInternal, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	if _, err := w.Write(png); err != nil {
		log.Error().Err(err).Msg("Failed to write QR code response")
		return
	}

	log.Debug().
		Str("slug", slug).
		Int("size", size).
		Str("level", levelName).
		Msg("QR code generated")
}
