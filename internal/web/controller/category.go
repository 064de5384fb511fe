package controller

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"loam/internal/article"
	"loam/internal/auth"
	"loam/internal/category"
	"loam/internal/models"
	"loam/internal/web/viewmodels"
)

// Category provides category handlers
type Category struct {
	CategoryRepo *category.Repository
	ArticleRepo  *article.Repository
	Templates    map[string]*template.Template
	RequireLogin func(http.Handler) http.Handler
}

// Register registers the category routes. Browsing is public; writing
// requires a login.
func (c *Category) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /categories/{slug}", c.view)
	mux.Handle("GET /categories/new", c.RequireLogin(http.HandlerFunc(c.new)))
	mux.Handle("POST /categories/new", c.RequireLogin(http.HandlerFunc(c.create)))
}

func (c *Category) view(w http.ResponseWriter, r *http.Request) {
	cat, err := c.CategoryRepo.FindBySlug(r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Error().Err(err).Msg("error loading category")
		http.Error(w, "Internal Server Error", 500)
		return
	}

	articles, err := c.ArticleRepo.LiveByCategory(cat.ID)
	if err != nil {
		log.Error().Err(err).Msg("error listing category articles")
		http.Error(w, "Internal Server Error", 500)
		return
	}

	user := auth.UserFromContext(r.Context())
	data := viewmodels.PageData{
		Title:       cat.Name,
		Category:    cat,
		Breadcrumb:  cat.Ancestry(),
		Articles:    articles,
		CurrentUser: user,
		IsLoggedIn:  user != nil,
	}
	c.render(w, "category.html", data)
}

func (c *Category) new(w http.ResponseWriter, r *http.Request) {
	// Only root categories are valid parents; the tree stops at two levels.
	roots, err := c.CategoryRepo.Roots()
	if err != nil {
		log.Error().Err(err).Msg("error listing categories")
		http.Error(w, "Internal Server Error", 500)
		return
	}

	user := auth.UserFromContext(r.Context())
	data := viewmodels.PageData{
		Title:       "New category",
		Categories:  roots,
		CurrentUser: user,
		IsLoggedIn:  user != nil,
	}
	c.render(w, "new_category.html", data)
}

func (c *Category) create(w http.ResponseWriter, r *http.Request) {
	name := r.PostFormValue("name")
	if name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	cat := &models.Category{Named: models.Named{Name: name}}

	if raw := r.PostFormValue("sort_order"); raw != "" {
		sortOrder, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid sort order", http.StatusBadRequest)
			return
		}
		cat.SortOrder = sortOrder
	}

	if raw := r.PostFormValue("parent_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			http.Error(w, "Invalid parent", http.StatusBadRequest)
			return
		}
		parentID := uint(id)
		cat.ParentID = &parentID
	}

	if err := c.CategoryRepo.Create(cat); err != nil {
		log.Error().Err(err).Msg("error creating category")
		http.Error(w, "Internal Server Error", 500)
		return
	}

	http.Redirect(w, r, "/categories/"+cat.Slug, http.StatusSeeOther)
}

func (c *Category) render(w http.ResponseWriter, page string, data viewmodels.PageData) {
	if err := c.Templates[page].ExecuteTemplate(w, "layout.html", data); err != nil {
		log.Error().Err(err).Str("template", page).Msg("error executing template")
		if w.Header().Get("Content-Type") == "" {
			http.Error(w, "Internal Server Error", 500)
		}
	}
}
