package productController

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Aayushsah6969/ShoeStore/models"
)

type UpdateProductInput struct {
	Name        *string   `json:"product_name"`
	Brand       *string   `json:"brand"`
	Category    *string   `json:"category"`
	Price       *float64  `json:"price"`
	SalePrice   *float64  `json:"sale_price"`
	Stock       *int      `json:"stock_quantity"`
	Images      *[]string `json:"product_images"`
	Sizes       *[]string `json:"available_sizes"`
	Colors      *[]string `json:"available_colors"`
	Featured    *bool     `json:"is_featured"`
	Description *string   `json:"description"`
}

// UpdateProduct updates an existing product by ID. All fields are optional;
// absent fields keep their current value.
// PUT /api/products/update/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product"})
			}
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Brand != nil {
			product.Brand = *input.Brand
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.SalePrice != nil {
			product.SalePrice = input.SalePrice
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}
		if input.Images != nil {
			product.Images = *input.Images
		}
		if input.Sizes != nil {
			product.Sizes = *input.Sizes
		}
		if input.Colors != nil {
			product.Colors = *input.Colors
		}
		if input.Featured != nil {
			product.Featured = *input.Featured
		}
		if input.Description != nil {
			product.Description = *input.Description
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
