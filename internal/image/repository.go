package image

import (
	"fmt"

	"gorm.io/gorm"

	"loam/internal/models"
)

// Repository provides access to the article image storage.
type Repository struct {
	DB *gorm.DB
}

// NewRepository creates a new image repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create inserts a new image record.
func (r *Repository) Create(img *models.ArticleImage) error {
	if err := r.DB.Create(img).Error; err != nil {
		return fmt.Errorf("error creating image: %w", err)
	}
	return nil
}

// ForArticle lists an article's images in manual sort order.
func (r *Repository) ForArticle(articleID uint) ([]models.ArticleImage, error) {
	var images []models.ArticleImage
	err := r.DB.Where("article_id = ?", articleID).
		Order("sort_order ASC, id ASC").
		Find(&images).Error
	return images, err
}

// Primary returns an article's first image, or nil when it has none.
func (r *Repository) Primary(articleID uint) (*models.ArticleImage, error) {
	var img models.ArticleImage
	res := r.DB.Where("article_id = ?", articleID).
		Order("sort_order ASC, id ASC").
		Limit(1).
		Find(&img)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &img, nil
}

// Random returns one of an article's images at random, or nil when it has
// none.
func (r *Repository) Random(articleID uint) (*models.ArticleImage, error) {
	var img models.ArticleImage
	res := r.DB.Where("article_id = ?", articleID).
		Order("RANDOM()").
		Limit(1).
		Find(&img)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &img, nil
}

// Count reports how many images an article has.
func (r *Repository) Count(articleID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&models.ArticleImage{}).
		Where("article_id = ?", articleID).
		Count(&n).Error
	return n, err
}
