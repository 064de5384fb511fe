package viewmodels

import (
	"html/template"

	"loam/internal/models"
)

// PageData is a unified struct holding all possible data for any page.
type PageData struct {
	Title string

	// Home and listings.
	FeaturedArticle *models.Article
	Articles        []models.Article

	// Single article view.
	Article     *models.Article
	Content     template.HTML
	PrevArticle *models.Article
	NextArticle *models.Article

	// Categories.
	Categories []models.Category // roots with children, for sidebars and dropdowns
	Category   *models.Category
	Breadcrumb []*models.Category

	// Auth state.
	CurrentUser *models.User
	IsLoggedIn  bool
}
