package models

// User represents an author of content.
type User struct {
	ID uint `gorm:"primarykey"`
	DateAudit
	Username    string `gorm:"uniqueIndex;not null"`
	DisplayName string `gorm:"not null"`
}
