package models

import "gorm.io/gorm"

// Article represents a published piece of writing. The body is org-mode
// markup, rendered to HTML by the web layer.
type Article struct {
	ID uint `gorm:"primarykey"`
	Content
	Named
	Body       string `gorm:"type:text"`
	CategoryID *uint  `gorm:"index"`
	Category   *Category
	Images     []ArticleImage `gorm:"foreignKey:ArticleID"`
}

// BeforeSave chains the mixin hooks; both embedded mixins declare one, so
// promotion alone would be ambiguous.
func (a *Article) BeforeSave(tx *gorm.DB) error {
	if err := a.Content.BeforeSave(tx); err != nil {
		return err
	}
	return a.Named.BeforeSave(tx)
}

// OrderTerms declares the article ordering used by neighbor lookups:
// newest publication first, creation time as the inner sort.
func (a *Article) OrderTerms() []OrderTerm {
	return []OrderTerm{
		{Column: "publication_date", Desc: true, Value: a.PublicationDate},
		{Column: "created_at", Desc: true, Value: a.CreatedAt},
	}
}

// PrimaryImage returns the first of the loaded images, or nil when the
// article has none. Images load in manual sort order.
func (a *Article) PrimaryImage() *ArticleImage {
	if len(a.Images) == 0 {
		return nil
	}
	return &a.Images[0]
}

// ImageCount reports how many images are loaded on the article.
func (a *Article) ImageCount() int { return len(a.Images) }
