package models_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"loam/internal/database"
	"loam/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestDateAuditSetOnCreate(t *testing.T) {
	db := newTestDB(t)

	a := &models.Article{Named: models.Named{Name: "First post"}}
	require.NoError(t, db.Create(a).Error)

	require.False(t, a.CreatedAt.IsZero())
	require.False(t, a.UpdatedAt.IsZero())
	require.WithinDuration(t, time.Now(), a.CreatedAt, 5*time.Second)
}

func TestCreationTimestampImmutable(t *testing.T) {
	db := newTestDB(t)

	a := &models.Article{Named: models.Named{Name: "First post"}}
	require.NoError(t, db.Create(a).Error)
	created := a.CreatedAt
	updated := a.UpdatedAt

	time.Sleep(25 * time.Millisecond)
	a.Body = "edited"
	require.NoError(t, db.Save(a).Error)

	var reloaded models.Article
	require.NoError(t, db.First(&reloaded, a.ID).Error)
	require.True(t, reloaded.CreatedAt.Equal(created), "creation timestamp changed on resave")
	require.True(t, reloaded.UpdatedAt.After(updated), "update timestamp did not move on resave")
}

func TestPublicationDateDefaultsToToday(t *testing.T) {
	db := newTestDB(t)

	a := &models.Article{Named: models.Named{Name: "First post"}}
	require.NoError(t, db.Create(a).Error)

	y, m, d := time.Now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	require.True(t, a.PublicationDate.Equal(today), "got %v, want %v", a.PublicationDate, today)
}

func TestPublicationDateTruncatedToDay(t *testing.T) {
	db := newTestDB(t)

	a := &models.Article{
		Named:   models.Named{Name: "First post"},
		Content: models.Content{PublicationDate: time.Date(2024, 3, 15, 17, 45, 12, 0, time.UTC)},
	}
	require.NoError(t, db.Create(a).Error)

	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	require.True(t, a.PublicationDate.Equal(want), "got %v, want %v", a.PublicationDate, want)
}

func TestPublicationDateNeverNilAfterSave(t *testing.T) {
	db := newTestDB(t)

	a := &models.Article{Named: models.Named{Name: "First post"}}
	require.NoError(t, db.Create(a).Error)

	var reloaded models.Article
	require.NoError(t, db.First(&reloaded, a.ID).Error)
	require.False(t, reloaded.PublicationDate.IsZero())
}

func TestSlugDerivedFromName(t *testing.T) {
	db := newTestDB(t)

	a := &models.Article{Named: models.Named{Name: "Hello, World! A Go Story"}}
	require.NoError(t, db.Create(a).Error)

	require.Equal(t, "hello-world-a-go-story", a.Slug)
	require.Regexp(t, regexp.MustCompile(`^[a-z0-9-]+$`), a.Slug)
}

func TestSlugStableAcrossSaves(t *testing.T) {
	db := newTestDB(t)

	a := &models.Article{Named: models.Named{Name: "Hello World"}}
	require.NoError(t, db.Create(a).Error)
	slug := a.Slug

	a.Body = "edited"
	require.NoError(t, db.Save(a).Error)
	require.Equal(t, slug, a.Slug)

	// Clearing the slug forces a re-derive from the current name.
	a.Name = "Goodbye World"
	a.Slug = ""
	require.NoError(t, db.Save(a).Error)
	require.Equal(t, "goodbye-world", a.Slug)
}

func TestExplicitSlugKept(t *testing.T) {
	db := newTestDB(t)

	a := &models.Article{Named: models.Named{Name: "Hello World", Slug: "custom-slug"}}
	require.NoError(t, db.Create(a).Error)
	require.Equal(t, "custom-slug", a.Slug)
}

func TestSortOrderDefaultsToZero(t *testing.T) {
	db := newTestDB(t)

	a := &models.Article{Named: models.Named{Name: "Holder"}}
	require.NoError(t, db.Create(a).Error)

	img := &models.ArticleImage{ArticleID: a.ID, Filename: "a.png", StoredName: "a.png"}
	require.NoError(t, db.Create(img).Error)

	var reloaded models.ArticleImage
	require.NoError(t, db.First(&reloaded, img.ID).Error)
	require.Equal(t, 0, reloaded.SortOrder)
}
