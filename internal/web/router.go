package web

import (
	"net/http"

	"loam/internal/web/controller"
	"loam/internal/web/middleware"
)

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", StaticFileServer()))
	mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir("uploads"))))

	requireLogin := middleware.Auth(s.authService)

	authController := controller.Auth{AuthService: s.authService, Templates: s.templates}
	authController.Register(mux)

	articleController := controller.Article{
		ArticleRepo:  s.articleRepo,
		CategoryRepo: s.categoryRepo,
		Renderer:     s.renderer,
		Templates:    s.templates,
		RequireLogin: requireLogin,
	}
	articleController.Register(mux)

	categoryController := controller.Category{
		CategoryRepo: s.categoryRepo,
		ArticleRepo:  s.articleRepo,
		Templates:    s.templates,
		RequireLogin: requireLogin,
	}
	categoryController.Register(mux)

	miscController := controller.Misc{
		ImageRepo:    s.imageRepo,
		Renderer:     s.renderer,
		RequireLogin: requireLogin,
	}
	miscController.Register(mux)

	// WithUser wraps everything so public pages still render auth state.
	return middleware.Logging(middleware.WithUser(s.authService)(mux))
}
