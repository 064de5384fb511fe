package controller

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"loam/internal/article"
	"loam/internal/auth"
	"loam/internal/category"
	"loam/internal/models"
	"loam/internal/web/renderer"
	"loam/internal/web/viewmodels"
)

// Article provides article handlers
type Article struct {
	ArticleRepo  *article.Repository
	CategoryRepo *category.Repository
	Renderer     *renderer.Renderer
	Templates    map[string]*template.Template
	RequireLogin func(http.Handler) http.Handler
}

// Register registers the article routes. Reading is public; writing
// requires a login.
func (a *Article) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", a.home)
	mux.HandleFunc("GET /articles/{slug}", a.view)
	mux.Handle("GET /articles/new", a.RequireLogin(http.HandlerFunc(a.new)))
	mux.Handle("POST /articles/new", a.RequireLogin(http.HandlerFunc(a.create)))
}

func (a *Article) home(w http.ResponseWriter, r *http.Request) {
	featured, err := a.ArticleRepo.FirstFeatured()
	if err != nil {
		log.Error().Err(err).Msg("error loading featured article")
		http.Error(w, "Internal Server Error", 500)
		return
	}

	articles, err := a.ArticleRepo.Live()
	if err != nil {
		log.Error().Err(err).Msg("error listing live articles")
		http.Error(w, "Internal Server Error", 500)
		return
	}

	categories, err := a.CategoryRepo.Roots()
	if err != nil {
		log.Error().Err(err).Msg("error listing categories")
		http.Error(w, "Internal Server Error", 500)
		return
	}

	user := auth.UserFromContext(r.Context())
	data := viewmodels.PageData{
		Title:           "Home",
		FeaturedArticle: featured,
		Articles:        articles,
		Categories:      categories,
		CurrentUser:     user,
		IsLoggedIn:      user != nil,
	}
	a.render(w, "index.html", data)
}

func (a *Article) view(w http.ResponseWriter, r *http.Request) {
	art, err := a.ArticleRepo.FindBySlug(r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Error().Err(err).Msg("error loading article")
		http.Error(w, "Internal Server Error", 500)
		return
	}

	content, err := a.Renderer.Render(art.Body)
	if err != nil {
		log.Error().Err(err).Msg("error rendering article body")
		http.Error(w, "Internal Server Error", 500)
		return
	}

	prev, err := a.ArticleRepo.PrevLive(art)
	if err != nil {
		log.Error().Err(err).Msg("error finding previous article")
		http.Error(w, "Internal Server Error", 500)
		return
	}
	next, err := a.ArticleRepo.NextLive(art)
	if err != nil {
		log.Error().Err(err).Msg("error finding next article")
		http.Error(w, "Internal Server Error", 500)
		return
	}

	var breadcrumb []*models.Category
	if art.Category != nil {
		breadcrumb = art.Category.Ancestry()
	}

	user := auth.UserFromContext(r.Context())
	data := viewmodels.PageData{
		Title:       art.Name,
		Article:     art,
		Content:     content,
		PrevArticle: prev,
		NextArticle: next,
		Breadcrumb:  breadcrumb,
		CurrentUser: user,
		IsLoggedIn:  user != nil,
	}
	a.render(w, "article.html", data)
}

func (a *Article) new(w http.ResponseWriter, r *http.Request) {
	categories, err := a.CategoryRepo.List()
	if err != nil {
		log.Error().Err(err).Msg("error listing categories")
		http.Error(w, "Internal Server Error", 500)
		return
	}

	user := auth.UserFromContext(r.Context())
	data := viewmodels.PageData{
		Title:       "New article",
		Categories:  categories,
		CurrentUser: user,
		IsLoggedIn:  user != nil,
	}
	a.render(w, "new_article.html", data)
}

func (a *Article) create(w http.ResponseWriter, r *http.Request) {
	name := r.PostFormValue("name")
	if name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	art := &models.Article{
		Named: models.Named{Name: name},
		Body:  r.PostFormValue("body"),
	}
	art.IsLive = r.PostFormValue("is_live") != ""
	art.IsFeatured = r.PostFormValue("is_featured") != ""

	if raw := r.PostFormValue("publication_date"); raw != "" {
		date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			http.Error(w, "Invalid publication date", http.StatusBadRequest)
			return
		}
		art.PublicationDate = date
	}

	if raw := r.PostFormValue("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			http.Error(w, "Invalid category", http.StatusBadRequest)
			return
		}
		categoryID := uint(id)
		art.CategoryID = &categoryID
	}

	if err := a.ArticleRepo.Create(art); err != nil {
		log.Error().Err(err).Msg("error creating article")
		http.Error(w, "Internal Server Error", 500)
		return
	}

	http.Redirect(w, r, "/articles/"+art.Slug, http.StatusSeeOther)
}

func (a *Article) render(w http.ResponseWriter, page string, data viewmodels.PageData) {
	if err := a.Templates[page].ExecuteTemplate(w, "layout.html", data); err != nil {
		log.Error().Err(err).Str("template", page).Msg("error executing template")
		if w.Header().Get("Content-Type") == "" {
			http.Error(w, "Internal Server Error", 500)
		}
	}
}
