package models

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Named gives a model a display name and a URL-safe slug derived from it.
// The slug is generated on first save and kept stable afterwards; clearing
// it forces a re-derive from the current name.
type Named struct {
	Name string `gorm:"size:100;not null"`
	Slug string `gorm:"size:100;index"`
}

// BeforeSave derives the slug from the name when it is unset.
func (n *Named) BeforeSave(tx *gorm.DB) error {
	if n.Slug == "" {
		n.Slug = slug.Make(n.Name)
	}
	return nil
}

func (n *Named) String() string { return n.Name }

// Sorted adds a manual ordering key. Records sort by this key and then by
// id. The Go zero value already satisfies the default-to-zero rule, so no
// save hook is needed.
type Sorted struct {
	SortOrder int `gorm:"index;default:0"`
}

// Hierarchy adds a self-referential parent link, restricted to two levels:
// a record that has children of its own keeps no parent. The concrete type
// owns the relation fields and the save-time repair, since both need the
// concrete table.
type Hierarchy struct {
	ParentID *uint `gorm:"index"`
}
