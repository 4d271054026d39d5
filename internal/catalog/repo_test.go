package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/motorhaus-io/motorhaus-backend/pkg/enums"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	for _, table := range []string{"vehicles", "accessories"} {
		ddl := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL,
  image TEXT,
  description TEXT NOT NULL DEFAULT '',
  created_at DATETIME,
  updated_at DATETIME
);`, table)
		require.NoError(t, db.Exec(ddl).Error)
	}
	memberships := `
CREATE TABLE IF NOT EXISTS memberships (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL,
  description TEXT,
  slug TEXT UNIQUE,
  image TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(memberships).Error)
	return db
}

func seedVehicle(t *testing.T, db *gorm.DB, name string, price string) uint {
	t.Helper()
	require.NoError(t, db.Exec(
		"INSERT INTO vehicles (name, price, description) VALUES (?, ?, '')", name, price,
	).Error)
	var id uint
	require.NoError(t, db.Raw("SELECT id FROM vehicles WHERE name = ?", name).Scan(&id).Error)
	return id
}

func TestFindSummaryReturnsIDNamePrice(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	id := seedVehicle(t, db, "Roadster S", "42999.99")

	summary, err := repo.FindSummary(ctx, enums.ProductKindVehicles, id)
	require.NoError(t, err)
	assert.Equal(t, id, summary.ID)
	assert.Equal(t, "Roadster S", summary.Name)
	assert.True(t, summary.Price.Equal(decimal.RequireFromString("42999.99")))
}

func TestFindSummaryMissingRowReturnsNotFound(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindSummary(context.Background(), enums.ProductKindVehicles, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindNamesByIDsSkipsMissingRows(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	id1 := seedVehicle(t, db, "Roadster S", "42999.99")
	id2 := seedVehicle(t, db, "Estate GT", "51250.00")

	names, err := repo.FindNamesByIDs(ctx, enums.ProductKindVehicles, []uint{id1, id2, 777})
	require.NoError(t, err)
	assert.Len(t, names, 2)
	assert.Equal(t, "Roadster S", names[id1])
	assert.Equal(t, "Estate GT", names[id2])
	_, ok := names[777]
	assert.False(t, ok)
}

func TestFindNamesByIDsEmptyInput(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	names, err := repo.FindNamesByIDs(context.Background(), enums.ProductKindAccessories, nil)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestCreateUpdateDeleteVehicle(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	image := "https://cdn.example.com/roadster.jpg"
	desc := "Two-seat roadster"
	created, err := repo.Create(ctx, enums.ProductKindVehicles, ProductInput{
		Name:        "Roadster S",
		Price:       decimal.RequireFromString("42999.99"),
		Image:       &image,
		Description: &desc,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Roadster S", created.Name)
	require.NotNil(t, created.Image)
	assert.Equal(t, image, *created.Image)

	updated, err := repo.Update(ctx, enums.ProductKindVehicles, created.ID, ProductInput{
		Name:  "Roadster S Mk2",
		Price: decimal.RequireFromString("44999.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Roadster S Mk2", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("44999.00")))

	require.NoError(t, repo.Delete(ctx, enums.ProductKindVehicles, created.ID))
	_, err = repo.FindByID(ctx, enums.ProductKindVehicles, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateMembershipKeepsSlug(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	slug := "gold-care"
	desc := "Annual service plan"
	created, err := repo.Create(ctx, enums.ProductKindMemberships, ProductInput{
		Name:        "Gold Care",
		Price:       decimal.RequireFromString("199.00"),
		Description: &desc,
		Slug:        &slug,
	})
	require.NoError(t, err)
	require.NotNil(t, created.Slug)
	assert.Equal(t, slug, *created.Slug)
	require.NotNil(t, created.Description)
	assert.Equal(t, desc, *created.Description)
}

func TestUpdateMissingRowReturnsNotFound(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	_, err := repo.Update(context.Background(), enums.ProductKindAccessories, 4040, ProductInput{
		Name:  "Roof Rack",
		Price: decimal.RequireFromString("120.00"),
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteMissingRowReturnsNotFound(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	err := repo.Delete(context.Background(), enums.ProductKindMemberships, 4040)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListOrdersByID(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedVehicle(t, db, "Estate GT", "51250.00")
	seedVehicle(t, db, "City EV", "27999.00")

	views, err := repo.List(ctx, enums.ProductKindVehicles)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Estate GT", views[0].Name)
	assert.Equal(t, "City EV", views[1].Name)
}
