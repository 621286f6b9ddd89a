package productController

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Aayushsah6969/ShoeStore/models"
)

// POST /api/products/import-excel
//
// Column layout matches the export: rows with an ID update the existing
// product, rows without one create a new product. Malformed rows are
// skipped, not fatal.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			brand := get(2)
			category := get(3)
			price, errPrice := strconv.ParseFloat(get(4), 64)
			salePriceStr := get(5)
			stock, _ := strconv.Atoi(get(6))
			featured := strings.EqualFold(get(7), "true")
			rating, _ := strconv.ParseFloat(get(8), 64)
			reviews, _ := strconv.Atoi(get(9))
			sizes := splitList(get(10))
			colors := splitList(get(11))
			images := splitList(get(12))
			description := get(13)

			if name == "" || category == "" || errPrice != nil {
				skippedCount++
				continue
			}

			var salePrice *float64
			if salePriceStr != "" {
				if sp, err := strconv.ParseFloat(salePriceStr, 64); err == nil {
					salePrice = &sp
				}
			}

			if idStr != "" {
				id, err := strconv.ParseUint(idStr, 10, 64)
				if err != nil {
					skippedCount++
					continue
				}
				var product models.Product
				if err := db.First(&product, id).Error; err != nil {
					skippedCount++
					continue
				}
				product.Name = name
				product.Brand = brand
				product.Category = category
				product.Price = price
				product.SalePrice = salePrice
				product.Stock = stock
				product.Featured = featured
				product.Rating = rating
				product.Reviews = reviews
				product.Sizes = sizes
				product.Colors = colors
				product.Images = images
				product.Description = description
				if err := db.Save(&product).Error; err != nil {
					skippedCount++
					continue
				}
				updatedCount++
				continue
			}

			product := models.Product{
				Name:        name,
				Brand:       brand,
				Category:    category,
				Price:       price,
				SalePrice:   salePrice,
				Stock:       stock,
				Featured:    featured,
				Rating:      rating,
				Reviews:     reviews,
				Sizes:       sizes,
				Colors:      colors,
				Images:      images,
				Description: description,
			}
			if err := db.Create(&product).Error; err != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
