package models

import (
	"time"

	"gorm.io/gorm"
)

// Live narrows a query to records whose live flag is set and whose
// publication date is not in the future.
func Live(db *gorm.DB) *gorm.DB {
	return db.Where("is_live = ? AND publication_date <= ?", true, time.Now())
}

// Featured narrows a query to the promoted subset of live records.
func Featured(db *gorm.DB) *gorm.DB {
	return Live(db).Where("is_featured = ?", true)
}
