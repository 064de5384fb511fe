package web

import (
	"html/template"
	"net/http"

	"gorm.io/gorm"

	"loam/internal/article"
	"loam/internal/auth"
	"loam/internal/category"
	"loam/internal/image"
	"loam/internal/web/renderer"
)

// Server holds the dependencies for the web server.
type Server struct {
	db           *gorm.DB
	templates    map[string]*template.Template
	authService  *auth.Service
	articleRepo  *article.Repository
	categoryRepo *category.Repository
	imageRepo    *image.Repository
	renderer     *renderer.Renderer
}

// NewServer creates a new server with the given dependencies.
func NewServer(db *gorm.DB, templates map[string]*template.Template) *Server {
	return &Server{
		db:           db,
		templates:    templates,
		authService:  auth.NewService(auth.NewRepository(db)),
		articleRepo:  article.NewRepository(db),
		categoryRepo: category.NewRepository(db),
		imageRepo:    image.NewRepository(db),
		renderer:     renderer.New("friendly"),
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.routes().ServeHTTP(w, r)
}
