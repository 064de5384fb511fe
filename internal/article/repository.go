package article

import (
	"fmt"

	"gorm.io/gorm"

	"loam/internal/models"
)

// Repository provides access to the article storage.
type Repository struct {
	DB *gorm.DB
}

// NewRepository creates a new article repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ordered applies the article default ordering: newest publication first,
// creation time as the inner sort.
func ordered(db *gorm.DB) *gorm.DB {
	return db.Order("publication_date DESC, created_at DESC")
}

// imageOrder loads related images in manual sort order.
func imageOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC, id ASC")
}

// List returns every article, live or not, in default order.
func (r *Repository) List() ([]models.Article, error) {
	var articles []models.Article
	err := ordered(r.DB).Preload("Category").Find(&articles).Error
	return articles, err
}

// Live returns the publicly visible articles.
func (r *Repository) Live() ([]models.Article, error) {
	var articles []models.Article
	err := ordered(r.DB.Scopes(models.Live)).Preload("Category").Find(&articles).Error
	return articles, err
}

// Featured returns the promoted subset of live articles.
func (r *Repository) Featured() ([]models.Article, error) {
	var articles []models.Article
	err := ordered(r.DB.Scopes(models.Featured)).Preload("Category").Find(&articles).Error
	return articles, err
}

// FeaturedWithImages returns featured articles carrying at least one image,
// each article once.
func (r *Repository) FeaturedWithImages() ([]models.Article, error) {
	var articles []models.Article
	err := r.DB.Scopes(models.Featured).
		Joins("JOIN article_images ON article_images.article_id = articles.id").
		Distinct("articles.*").
		// Qualified: the join makes bare created_at ambiguous.
		Order("articles.publication_date DESC, articles.created_at DESC").
		Preload("Images", imageOrder).
		Find(&articles).Error
	return articles, err
}

// FirstFeatured returns the first featured article, falling back to the
// first live article when nothing is featured. Returns nil when there are
// no live articles at all.
func (r *Repository) FirstFeatured() (*models.Article, error) {
	var a models.Article
	res := ordered(r.DB.Scopes(models.Featured)).Preload("Images", imageOrder).Limit(1).Find(&a)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		return &a, nil
	}
	res = ordered(r.DB.Scopes(models.Live)).Preload("Images", imageOrder).Limit(1).Find(&a)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &a, nil
}

// LiveByCategory returns the live articles filed under a category.
func (r *Repository) LiveByCategory(categoryID uint) ([]models.Article, error) {
	var articles []models.Article
	err := ordered(r.DB.Scopes(models.Live)).
		Where("category_id = ?", categoryID).
		Find(&articles).Error
	return articles, err
}

// FindBySlug finds an article by its slug, with images and category chain
// loaded.
func (r *Repository) FindBySlug(slug string) (*models.Article, error) {
	var a models.Article
	err := r.DB.Preload("Images", imageOrder).
		Preload("Category.Parent").
		Where("slug = ?", slug).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new article.
func (r *Repository) Create(a *models.Article) error {
	if err := r.DB.Create(a).Error; err != nil {
		return fmt.Errorf("error creating article: %w", err)
	}
	return nil
}

// Save writes all fields of an existing article.
func (r *Repository) Save(a *models.Article) error {
	if err := r.DB.Save(a).Error; err != nil {
		return fmt.Errorf("error saving article: %w", err)
	}
	return nil
}

// Next returns the article after a in the default order, or nil at the end.
func (r *Repository) Next(a *models.Article) (*models.Article, error) {
	return r.neighbor(a, models.Next, nil)
}

// Prev returns the article before a in the default order, or nil at the
// start.
func (r *Repository) Prev(a *models.Article) (*models.Article, error) {
	return r.neighbor(a, models.Prev, nil)
}

// NextLive and PrevLive navigate only the live view.
func (r *Repository) NextLive(a *models.Article) (*models.Article, error) {
	return r.neighbor(a, models.Next, models.Live)
}

func (r *Repository) PrevLive(a *models.Article) (*models.Article, error) {
	return r.neighbor(a, models.Prev, models.Live)
}

// NextFeatured and PrevFeatured navigate only the featured view.
func (r *Repository) NextFeatured(a *models.Article) (*models.Article, error) {
	return r.neighbor(a, models.Next, models.Featured)
}

func (r *Repository) PrevFeatured(a *models.Article) (*models.Article, error) {
	return r.neighbor(a, models.Prev, models.Featured)
}

func (r *Repository) neighbor(a *models.Article, dir models.Direction, scope func(*gorm.DB) *gorm.DB) (*models.Article, error) {
	tx := r.DB.Model(&models.Article{})
	if scope != nil {
		tx = tx.Scopes(scope)
	}
	var out models.Article
	ok, err := models.Neighbor(tx, dir, a.OrderTerms(), a.ID, &out)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}
