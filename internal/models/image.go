package models

import "time"

// ArticleImage is an uploaded image attached to an article. Images order
// by their manual sort key; the first one is the article's primary image.
type ArticleImage struct {
	ID        uint `gorm:"primarykey"`
	ArticleID uint `gorm:"index;not null"`
	Sorted
	Filename   string
	StoredName string `gorm:"uniqueIndex"`
	MimeType   string
	Size       int64
	CreatedAt  time.Time
}

// OrderTerms declares the image ordering used by neighbor lookups.
func (i *ArticleImage) OrderTerms() []OrderTerm {
	return []OrderTerm{
		{Column: "sort_order", Value: i.SortOrder},
	}
}

// URL returns the public path the image is served from. Value receiver so
// templates can call it on ranged slice elements.
func (i ArticleImage) URL() string { return "/uploads/" + i.StoredName }
