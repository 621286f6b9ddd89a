package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Aayushsah6969/ShoeStore/models"
)

type CreateProductInput struct {
	Name        string   `json:"product_name" binding:"required"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category" binding:"required"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	SalePrice   *float64 `json:"sale_price"`
	Stock       int      `json:"stock_quantity" binding:"min=0"`
	Images      []string `json:"product_images"`
	Sizes       []string `json:"available_sizes"`
	Colors      []string `json:"available_colors"`
	Featured    bool     `json:"is_featured"`
	Description string   `json:"description"`
}

// POST /api/products/upload
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		if input.SalePrice != nil && *input.SalePrice >= input.Price {
			c.JSON(http.StatusBadRequest, gin.H{"message": "sale_price must be below price"})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Brand:       input.Brand,
			Category:    input.Category,
			Price:       input.Price,
			SalePrice:   input.SalePrice,
			Stock:       input.Stock,
			Images:      input.Images,
			Sizes:       input.Sizes,
			Colors:      input.Colors,
			Featured:    input.Featured,
			Description: input.Description,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
