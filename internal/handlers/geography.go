package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/skip2/go-qrcode"
)

// qrSize is the edge length of generated QR codes in pixels.
const qrSize = 256

// ListGeoPoints serves points filtered by type, paginated.
func (a *API) ListGeoPoints(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.catalog.GeoPoints(r.URL.Query().Get("type"), page))
}

// GetGeoPoint serves one point.
func (a *API) GetGeoPoint(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	p, err := a.catalog.GeoPoint(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GeoPointQR serves a PNG QR code linking to the point's page on the map,
// for printed signage along the river.
func (a *API) GeoPointQR(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	p, err := a.catalog.GeoPoint(id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	link := fmt.Sprintf("%s/map?point=%d", strings.TrimRight(a.publicURL, "/"), p.ID)
	png, err := qrcode.Encode(link, qrcode.Medium, qrSize)
	if err != nil {
		writeError(w, r, fmt.Errorf("encode qr for point %d: %w", p.ID, err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// MajorCities serves the largest cities by population.
func (a *API) MajorCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.catalog.MajorCities())
}

// Landmarks serves every landmark.
func (a *API) Landmarks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.catalog.Landmarks())
}

// SearchGeoPoints serves points whose name or description contains the
// {query} path segment.
func (a *API) SearchGeoPoints(w http.ResponseWriter, r *http.Request) {
	text, err := pathText(r, "query")
	if err != nil {
		badRequest(w, err)
		return
	}
	if err := validateSearch(text); err != nil {
		badRequest(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.catalog.SearchGeoPoints(text))
}
