package category

import (
	"fmt"

	"gorm.io/gorm"

	"loam/internal/models"
)

// Repository provides access to the category storage.
type Repository struct {
	DB *gorm.DB
}

// NewRepository creates a new category repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ordered applies the category default ordering: manual sort key, then
// name.
func ordered(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC, name ASC")
}

// List returns all categories with their parents loaded.
func (r *Repository) List() ([]models.Category, error) {
	var categories []models.Category
	err := ordered(r.DB).Preload("Parent").Find(&categories).Error
	return categories, err
}

// Roots returns the top-level categories with their children loaded in
// order. Only roots are valid parent choices for new categories.
func (r *Repository) Roots() ([]models.Category, error) {
	var categories []models.Category
	err := ordered(r.DB).
		Where("parent_id IS NULL").
		Preload("Children", ordered).
		Find(&categories).Error
	return categories, err
}

// FindBySlug finds a category by its slug, with parent and children loaded.
func (r *Repository) FindBySlug(slug string) (*models.Category, error) {
	var c models.Category
	err := r.DB.Preload("Parent").
		Preload("Children", ordered).
		Where("slug = ?", slug).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new category.
func (r *Repository) Create(c *models.Category) error {
	if err := r.DB.Create(c).Error; err != nil {
		return fmt.Errorf("error creating category: %w", err)
	}
	return nil
}

// Save writes all fields of an existing category. The model's save hook
// repairs invalid parent links on the way through.
func (r *Repository) Save(c *models.Category) error {
	if err := r.DB.Save(c).Error; err != nil {
		return fmt.Errorf("error saving category: %w", err)
	}
	return nil
}

// Hierarchy returns the ancestor chain of a category from its root down to
// the category itself, fetched from storage.
func (r *Repository) Hierarchy(c *models.Category) ([]models.Category, error) {
	chain := []models.Category{*c}
	node := c
	for node.ParentID != nil {
		var parent models.Category
		if err := r.DB.First(&parent, *node.ParentID).Error; err != nil {
			return nil, err
		}
		chain = append([]models.Category{parent}, chain...)
		node = &parent
	}
	return chain, nil
}

// Next returns the category after c in the default order, or nil at the
// end.
func (r *Repository) Next(c *models.Category) (*models.Category, error) {
	return r.neighbor(c, models.Next)
}

// Prev returns the category before c in the default order, or nil at the
// start.
func (r *Repository) Prev(c *models.Category) (*models.Category, error) {
	return r.neighbor(c, models.Prev)
}

func (r *Repository) neighbor(c *models.Category, dir models.Direction) (*models.Category, error) {
	var out models.Category
	ok, err := models.Neighbor(r.DB.Model(&models.Category{}), dir, c.OrderTerms(), c.ID, &out)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}
