package models

// Identity represents a user's authentication method.
type Identity struct {
	ID             uint   `gorm:"primarykey"`
	UserID         uint   `gorm:"index;not null"`
	Provider       string `gorm:"not null"`
	ProviderUserID string `gorm:"not null"`
	PasswordHash   *string
}
