package repo

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.ProductColor{}))
	return &GormRepo{DB: db}
}

func TestCreateProduct_InsertsParentAndColors(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	product := models.Product{
		Name:  "Velvet Matte Lipstick",
		Price: 12000,
		Colors: []models.ProductColor{
			{HexValue: "#B32134", ColorName: "ruby"},
		},
	}
	id, err := r.CreateProduct(ctx, &product)
	require.NoError(t, err)
	require.NotZero(t, id)

	var colors []models.ProductColor
	require.NoError(t, r.DB.Find(&colors, "product_id = ?", id).Error)
	require.Len(t, colors, 1)
	require.Equal(t, "ruby", colors[0].ColorName)
}

func TestCreateProduct_RollsBackOnColorFailure(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	// Occupy a color primary key so the second insert step collides.
	require.NoError(t, r.DB.Create(&models.ProductColor{ID: 7, ProductID: 999, HexValue: "#000000", ColorName: "black"}).Error)

	product := models.Product{
		Name:  "doomed",
		Price: 100,
		Colors: []models.ProductColor{
			{ID: 7, HexValue: "#FFFFFF", ColorName: "white"},
		},
	}
	_, err := r.CreateProduct(ctx, &product)
	require.Error(t, err)

	// The failed color step must take the parent row down with it.
	var count int64
	require.NoError(t, r.DB.Model(&models.Product{}).Count(&count).Error)
	require.Zero(t, count)
}
