package models

import (
	"time"

	"gorm.io/gorm"
)

// DateAudit records when a row was created and last written. Embed it in a
// model to get both timestamps maintained on every save. The creation
// timestamp is set once and never touched again.
type DateAudit struct {
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// BeforeSave stamps the audit fields.
func (d *DateAudit) BeforeSave(tx *gorm.DB) error {
	now := time.Now()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
	return nil
}

// CreationDateDisplay formats the creation timestamp for admin listings.
func (d *DateAudit) CreationDateDisplay() string {
	return d.CreatedAt.Format("2006-01-02 15:04:05")
}

// LastUpdatedDisplay formats the update timestamp for admin listings.
func (d *DateAudit) LastUpdatedDisplay() string {
	return d.UpdatedAt.Format("2006-01-02 15:04:05")
}

// Content marks a model as publishable. A record is visible on the site
// ("live") when its live flag is set and its publication date is not in the
// future; featured records are a promoted subset of live ones.
type Content struct {
	DateAudit
	PublicationDate time.Time `gorm:"index"`
	IsLive          bool      `gorm:"index"`
	IsFeatured      bool      `gorm:"index"`
}

// BeforeSave defaults the publication date to today. Models embedding
// Content alongside other mixins must chain this hook themselves.
func (c *Content) BeforeSave(tx *gorm.DB) error {
	if err := c.DateAudit.BeforeSave(tx); err != nil {
		return err
	}
	if c.PublicationDate.IsZero() {
		c.PublicationDate = time.Now()
	}
	// Day precision: midnight in the value's own location, so a record
	// published "today" is live immediately.
	y, m, day := c.PublicationDate.Date()
	c.PublicationDate = time.Date(y, m, day, 0, 0, 0, 0, c.PublicationDate.Location())
	return nil
}
