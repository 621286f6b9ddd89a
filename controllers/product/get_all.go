package productController

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Aayushsah6969/ShoeStore/models"
)

// GET /api/products
//
// Optional query params mirror the storefront FilterState: search, category,
// brand, min_price, max_price, featured, sort_by. Size/color narrowing is
// done client-side against the product's available sets.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		category := c.Query("category")
		brand := c.Query("brand")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		featuredStr := c.Query("featured")
		sortBy := c.DefaultQuery("sort_by", "popularity")

		query := db.Model(&models.Product{})

		if search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where(
				"LOWER(product_name) LIKE ? OR LOWER(brand) LIKE ?",
				likePattern, likePattern,
			)
		}
		if category != "" {
			query = query.Where("category = ?", category)
		}
		if brand != "" {
			query = query.Where("brand = ?", brand)
		}
		if minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid min_price"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid max_price"})
				return
			}
			query = query.Where("price <= ?", mp)
		}
		if featuredStr != "" {
			query = query.Where("is_featured = ?", featuredStr == "true")
		}

		// Whitelisted order clauses only.
		switch sortBy {
		case "price-low":
			query = query.Order("price asc")
		case "price-high":
			query = query.Order("price desc")
		case "newest":
			query = query.Order("created_at desc")
		default: // popularity
			query = query.Order("rating desc")
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
