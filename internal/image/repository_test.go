package image_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"loam/internal/database"
	"loam/internal/image"
	"loam/internal/models"
)

func newTestRepo(t *testing.T) (*image.Repository, *gorm.DB) {
	t.Helper()
	db, err := database.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return image.NewRepository(db), db
}

func seedArticle(t *testing.T, db *gorm.DB, name string) models.Article {
	t.Helper()
	a := models.Article{Named: models.Named{Name: name}}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func TestPrimaryFollowsSortOrder(t *testing.T) {
	repo, db := newTestRepo(t)
	a := seedArticle(t, db, "Holder")

	require.NoError(t, repo.Create(&models.ArticleImage{
		ArticleID: a.ID, Sorted: models.Sorted{SortOrder: 2}, Filename: "late.png", StoredName: "late.png",
	}))
	require.NoError(t, repo.Create(&models.ArticleImage{
		ArticleID: a.ID, Sorted: models.Sorted{SortOrder: 1}, Filename: "early.png", StoredName: "early.png",
	}))

	primary, err := repo.Primary(a.ID)
	require.NoError(t, err)
	require.NotNil(t, primary)
	require.Equal(t, "early.png", primary.Filename)

	images, err := repo.ForArticle(a.ID)
	require.NoError(t, err)
	require.Len(t, images, 2)
	require.Equal(t, "early.png", images[0].Filename)
}

func TestPrimaryAndRandomEmpty(t *testing.T) {
	repo, db := newTestRepo(t)
	a := seedArticle(t, db, "Bare")

	primary, err := repo.Primary(a.ID)
	require.NoError(t, err)
	require.Nil(t, primary)

	random, err := repo.Random(a.ID)
	require.NoError(t, err)
	require.Nil(t, random)
}

func TestRandomReturnsOwnImage(t *testing.T) {
	repo, db := newTestRepo(t)
	mine := seedArticle(t, db, "Mine")
	other := seedArticle(t, db, "Other")

	require.NoError(t, repo.Create(&models.ArticleImage{ArticleID: mine.ID, Filename: "a.png", StoredName: "a.png"}))
	require.NoError(t, repo.Create(&models.ArticleImage{ArticleID: mine.ID, Filename: "b.png", StoredName: "b.png"}))
	require.NoError(t, repo.Create(&models.ArticleImage{ArticleID: other.ID, Filename: "c.png", StoredName: "c.png"}))

	for range 5 {
		img, err := repo.Random(mine.ID)
		require.NoError(t, err)
		require.NotNil(t, img)
		require.Equal(t, mine.ID, img.ArticleID)
	}

	n, err := repo.Count(mine.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}
