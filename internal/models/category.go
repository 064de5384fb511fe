package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category is a two-level grouping for articles: top-level categories may
// have children, children may not.
type Category struct {
	ID uint `gorm:"primarykey"`
	Named
	Sorted
	Hierarchy
	Parent   *Category  `gorm:"foreignKey:ParentID"`
	Children []Category `gorm:"foreignKey:ParentID"`
}

// BeforeSave derives the slug and repairs invalid parent links: a category
// pointing at itself, or one that already has children, loses its parent.
// The invalid link is cleared rather than rejected so a demoted category
// silently becomes a root again.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	if err := c.Named.BeforeSave(tx); err != nil {
		return err
	}
	if c.ID == 0 || c.ParentID == nil {
		return nil
	}
	if *c.ParentID == c.ID {
		c.ParentID = nil
		c.Parent = nil
		return nil
	}
	var children int64
	err := tx.Session(&gorm.Session{NewDB: true}).
		Model(&Category{}).
		Where("parent_id = ?", c.ID).
		Count(&children).Error
	if err != nil {
		return err
	}
	if children > 0 {
		c.ParentID = nil
		c.Parent = nil
	}
	return nil
}

// OrderTerms declares the category ordering used by neighbor lookups:
// manual sort key first, name as the inner sort.
func (c *Category) OrderTerms() []OrderTerm {
	return []OrderTerm{
		{Column: "sort_order", Value: c.SortOrder},
		{Column: "name", Value: c.Name},
	}
}

// Ancestry returns the chain from the root category down to this one.
// Parent must be preloaded; with two levels the chain is at most root,
// self. Value receiver so templates can call it on ranged slice elements.
func (c Category) Ancestry() []*Category {
	if c.Parent != nil {
		return append(c.Parent.Ancestry(), &c)
	}
	return []*Category{&c}
}

// Breadcrumb renders the ancestry as "Parent > Child".
func (c Category) Breadcrumb() string {
	chain := c.Ancestry()
	names := make([]string, len(chain))
	for i, node := range chain {
		names[i] = node.Name
	}
	return strings.Join(names, " > ")
}
