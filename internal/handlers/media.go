package handlers

import "net/http"

// ListGallery serves images filtered by category and featured flag.
func (a *API) ListGallery(w http.ResponseWriter, r *http.Request) {
	featured, err := boolParam(r, "featured")
	if err != nil {
		badRequest(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.catalog.Gallery(r.URL.Query().Get("category"), featured))
}

// GetGalleryImage serves one image.
func (a *API) GetGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	img, err := a.catalog.GalleryImage(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, img)
}

// ListFacts serves facts filtered by category.
func (a *API) ListFacts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.catalog.Facts(r.URL.Query().Get("category")))
}

// RandomFact serves one fact picked at random.
func (a *API) RandomFact(w http.ResponseWriter, r *http.Request) {
	f, err := a.catalog.RandomFact()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}
