package repository

import (
	"testing"

	"github.com/vpriyankaa/sales-admin-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%pen%", likePattern("  Pen "))
	assert.Equal(t, `%50\%\_off%`, likePattern("50%_off"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
}

func TestCustomerSearchMatchesNameOrPhone(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepo(db)
	for _, c := range []model.Customer{
		{Name: "Asha Traders", Phone: "9000000001"},
		{Name: "Bala Stores", Phone: "9000000002"},
		{Name: "100% Fresh", Phone: "8000000003"},
	} {
		require.NoError(t, repo.Create(db, &c))
	}

	byName, err := repo.FindAll("asha")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Asha Traders", byName[0].Name)

	byPhone, err := repo.FindAll("90000")
	require.NoError(t, err)
	assert.Len(t, byPhone, 2)

	literal, err := repo.FindAll("0%")
	require.NoError(t, err)
	require.Len(t, literal, 1)
	assert.Equal(t, "100% Fresh", literal[0].Name)
}

func TestFindByLogin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)
	user := &model.User{Email: "desk@example.com", Phone: "9222222222", FullName: "Desk", Password: "x", IsActive: true}
	require.NoError(t, repo.Create(user))

	byEmail, err := repo.FindByLogin("DESK@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byPhone, err := repo.FindByLogin(" 9222222222 ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byPhone.ID)

	_, err = repo.FindByLogin("9333333333")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.UpdatePassword(user.ID, "y"))
	assert.ErrorIs(t, repo.UpdatePassword(uuid.New(), "y"), gorm.ErrRecordNotFound)
}
