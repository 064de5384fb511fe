package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

//go:embed templates
var templateFiles embed.FS

// StaticFileServer serves the embedded static assets.
func StaticFileServer() http.Handler {
	fsys, _ := fs.Sub(staticFiles, "static")
	return http.FileServer(http.FS(fsys))
}

// ParseTemplates builds the per-page template sets used by the
// controllers. Each page gets its own isolated set sharing the layout.
func ParseTemplates() (map[string]*template.Template, error) {
	pages := []string{
		"index.html",
		"article.html",
		"category.html",
		"new_article.html",
		"new_category.html",
		"login.html",
		"register.html",
	}

	templates := make(map[string]*template.Template)
	for _, page := range pages {
		t, err := template.ParseFS(templateFiles, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, err
		}
		templates[page] = t
	}
	return templates, nil
}
