package controller

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"loam/internal/image"
	"loam/internal/models"
	"loam/internal/web/renderer"
)

// Misc provides miscellaneous handlers
type Misc struct {
	ImageRepo    *image.Repository
	Renderer     *renderer.Renderer
	RequireLogin func(http.Handler) http.Handler
}

// Register registers the misc routes, all login-only.
func (m *Misc) Register(mux *http.ServeMux) {
	mux.Handle("POST /_preview", m.RequireLogin(http.HandlerFunc(m.preview)))
	mux.Handle("POST /upload", m.RequireLogin(http.HandlerFunc(m.upload)))
}

func (m *Misc) preview(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Error reading request body", http.StatusInternalServerError)
		return
	}
	defer r.Body.Close()

	content, err := m.Renderer.Render(string(body))
	if err != nil {
		log.Error().Err(err).Msg("error rendering preview")
		http.Error(w, "Internal Server Error", 500)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(content))
}

func (m *Misc) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "The uploaded file is too big.", http.StatusBadRequest)
		return
	}

	articleID, err := strconv.ParseUint(r.PostFormValue("article_id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid article", http.StatusBadRequest)
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	storedName := uuid.NewString() + filepath.Ext(handler.Filename)

	dst, err := os.Create(filepath.Join("uploads", storedName))
	if err != nil {
		http.Error(w, "Error saving the file", http.StatusInternalServerError)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		http.Error(w, "Error writing the file", http.StatusInternalServerError)
		return
	}

	var sortOrder int
	if raw := r.PostFormValue("sort_order"); raw != "" {
		sortOrder, _ = strconv.Atoi(raw)
	}

	img := &models.ArticleImage{
		ArticleID:  uint(articleID),
		Sorted:     models.Sorted{SortOrder: sortOrder},
		Filename:   handler.Filename,
		StoredName: storedName,
		MimeType:   handler.Header.Get("Content-Type"),
		Size:       handler.Size,
	}
	if err := m.ImageRepo.Create(img); err != nil {
		log.Error().Err(err).Msg("error saving image to database")
		http.Error(w, "Error saving file metadata", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"url": %q}`, img.URL())
}
