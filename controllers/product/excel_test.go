package productController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Aayushsah6969/ShoeStore/models"
)

func setupExcelTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/products/export-excel", ExportProductsToExcel(db))
	r.POST("/api/products/import-excel", ImportProductsFromExcel(db))
	return db, r
}

func seedCatalog(t *testing.T, db *gorm.DB) []models.Product {
	t.Helper()
	sale := 80.0
	products := []models.Product{
		{
			Name: "Air Runner", Brand: "Nike", Category: "running",
			Price: 100, SalePrice: &sale, Stock: 5, Featured: true,
			Rating: 4.5, Reviews: 12,
			Sizes: []string{"42", "43"}, Colors: []string{"black"},
			Description: "Daily trainer",
		},
		{
			Name: "Court Classic", Brand: "Adidas", Category: "tennis",
			Price: 90, Stock: 3, Sizes: []string{"41"},
		},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}
	return products
}

func postSheet(t *testing.T, router *gin.Engine, file *xlsx.File) *httptest.ResponseRecorder {
	t.Helper()
	var sheetBuf bytes.Buffer
	require.NoError(t, file.Write(&sheetBuf))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "products.xlsx")
	require.NoError(t, err)
	_, err = part.Write(sheetBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/products/import-excel", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type importCounts struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

func TestExportImportRoundTrip(t *testing.T) {
	db, router := setupExcelTest(t)
	seeded := seedCatalog(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/products/export-excel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=products.xlsx", w.Header().Get("Content-Disposition"))

	exported, err := xlsx.OpenBinary(w.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, exported.Sheets, 1)
	sheet := exported.Sheets[0]
	require.Equal(t, len(seeded)+1, sheet.MaxRow)
	assert.Equal(t, "ID", sheet.Rows[0].Cells[0].String())
	assert.Equal(t, "Sizes", sheet.Rows[0].Cells[10].String())

	var firstRow *xlsx.Row
	for _, row := range sheet.Rows[1:] {
		if row.Cells[0].String() == fmt.Sprint(seeded[0].ID) {
			firstRow = row
		}
	}
	require.NotNil(t, firstRow)
	assert.Equal(t, "42,43", firstRow.Cells[10].String())

	// Edit one cell, feed the sheet back in. Every row carries an ID, so
	// the import must update in place and create nothing.
	firstRow.Cells[4].SetValue(120.0)
	w = postSheet(t, router, exported)
	require.Equal(t, http.StatusOK, w.Code)

	var counts importCounts
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &counts))
	assert.Equal(t, 0, counts.Created)
	assert.Equal(t, len(seeded), counts.Updated)
	assert.Equal(t, 0, counts.Skipped)

	var total int64
	require.NoError(t, db.Model(&models.Product{}).Count(&total).Error)
	assert.EqualValues(t, len(seeded), total)

	// The edited price landed, everything else survived the round trip.
	var first models.Product
	require.NoError(t, db.First(&first, seeded[0].ID).Error)
	assert.Equal(t, 120.0, first.Price)
	require.NotNil(t, first.SalePrice)
	assert.Equal(t, 80.0, *first.SalePrice)
	assert.Equal(t, []string{"42", "43"}, first.Sizes)
	assert.True(t, first.Featured)
	assert.Equal(t, "Daily trainer", first.Description)
}

func TestImportCreatesUpdatesAndSkips(t *testing.T) {
	db, router := setupExcelTest(t)
	seeded := seedCatalog(t, db)

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	require.NoError(t, err)
	header := sheet.AddRow()
	for _, h := range []string{
		"ID", "Name", "Brand", "Category", "Price", "SalePrice",
		"Stock", "Featured", "Rating", "Reviews",
		"Sizes", "Colors", "Images", "Description", "CreatedAt",
	} {
		header.AddCell().SetValue(h)
	}

	addRow := func(cells ...string) {
		row := sheet.AddRow()
		for _, c := range cells {
			row.AddCell().SetValue(c)
		}
	}

	// No ID: create. Known ID: update. Missing name and unknown ID: skip.
	addRow("", "Trail Blazer", "Salomon", "trail", "150", "135", "8", "true", "4.2", "3",
		"42, 43 ,44", "green,black", "", "Grippy outsole")
	addRow("1", "Air Runner v2", "Nike", "running", "110", "", "7", "false", "4.5", "12",
		"42,43", "black", "", "Daily trainer")
	addRow("", "", "NoName", "running", "50")
	addRow("9999", "Ghost", "Nobody", "road", "60")

	w := postSheet(t, router, file)
	require.Equal(t, http.StatusOK, w.Code)

	var counts importCounts
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &counts))
	assert.Equal(t, 1, counts.Created)
	assert.Equal(t, 1, counts.Updated)
	assert.Equal(t, 2, counts.Skipped)

	var created models.Product
	require.NoError(t, db.First(&created, "product_name = ?", "Trail Blazer").Error)
	assert.Equal(t, []string{"42", "43", "44"}, created.Sizes)
	assert.Equal(t, 8, created.Stock)
	require.NotNil(t, created.SalePrice)
	assert.Equal(t, 135.0, *created.SalePrice)
	assert.True(t, created.Featured)

	var updated models.Product
	require.NoError(t, db.First(&updated, seeded[0].ID).Error)
	assert.Equal(t, "Air Runner v2", updated.Name)
	assert.Nil(t, updated.SalePrice)
	assert.False(t, updated.Featured)
}

func TestImportRequiresFile(t *testing.T) {
	_, router := setupExcelTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/products/import-excel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
