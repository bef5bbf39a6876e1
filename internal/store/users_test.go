package store_test

import (
	"fmt"
	"testing"

	"github.com/gameshelf-dev/gameshelf/internal/models"
	"github.com/gameshelf-dev/gameshelf/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStoreTest(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.Genre{},
		&models.Backlog{},
		&models.CompleteGame{},
	)
	require.NoError(t, err)

	return testDB
}

func TestDeleteUserRemovesCollections(t *testing.T) {
	testDB := setupStoreTest(t)

	user := models.User{Username: "test_user", PasswordHash: "irrelevant"}
	require.NoError(t, store.CreateUser(testDB, &user))

	_, err := store.CreateBacklog(testDB, user.ID)
	require.NoError(t, err)
	_, err = store.CreateCompleteGame(testDB, user.ID)
	require.NoError(t, err)

	require.NoError(t, store.DeleteUser(testDB, &user))

	var count int64
	require.NoError(t, testDB.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, testDB.Model(&models.Backlog{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, testDB.Model(&models.CompleteGame{}).Count(&count).Error)
	assert.Zero(t, count)
}

// A failing collection lookup must abort the deletion, not get mistaken for
// the user simply having no collection.
func TestDeleteUserLookupFailure(t *testing.T) {
	testDB := setupStoreTest(t)

	user := models.User{Username: "test_user", PasswordHash: "irrelevant"}
	require.NoError(t, store.CreateUser(testDB, &user))

	require.NoError(t, testDB.Migrator().DropTable(&models.Backlog{}))

	assert.Error(t, store.DeleteUser(testDB, &user))

	var count int64
	require.NoError(t, testDB.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
