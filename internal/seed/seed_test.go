package seed

import (
	"testing"

	"quill/internal/database"
	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestFactoryCreateUser(t *testing.T) {
	db := setupSeedDB(t)
	f := NewFactory(db)

	user, err := f.CreateUser()
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, user.Username)
	assert.NotEqual(t, DemoPassword, user.Password)
	assert.True(t, user.IsActive)

	// Overrides apply before the insert.
	named, err := f.CreateUser(func(u *models.User) {
		u.Username = "fixed-name"
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed-name", named.Username)
}

func TestSeederRun(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(5, 10))

	var userCount, postCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	assert.EqualValues(t, 5, userCount)
	assert.EqualValues(t, 10, postCount)

	// Every comment must point at a published post and nest at most one
	// level deep.
	var comments []models.Comment
	require.NoError(t, db.Preload("Post").Preload("Parent").Find(&comments).Error)
	for _, comment := range comments {
		assert.True(t, comment.Post.IsPublished())
		if comment.Parent != nil {
			assert.Nil(t, comment.Parent.ParentID)
		}
	}

	require.NoError(t, s.ClearAll())
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Zero(t, userCount)
}
