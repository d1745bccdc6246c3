package catalogControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sayan01/groceri/models"
)

const manufactureDateLayout = "2006-01-02"

type ProductInput struct {
	Name            string `json:"name" binding:"required"`
	CategoryID      uint   `json:"category_id" binding:"required"`
	Quantity        int    `json:"quantity"`
	Price           string `json:"price" binding:"required"`
	ManufactureDate string `json:"manufacture_date" binding:"required"`
}

func validateProductInput(db *gorm.DB, input ProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, &models.ValidationError{Field: "name", Reason: "cannot be empty"}
	}
	if utf8.RuneCountInString(name) > 64 {
		return nil, &models.ValidationError{Field: "name", Reason: "cannot be greater than 64 characters"}
	}
	if input.Quantity < 0 {
		return nil, &models.ValidationError{Field: "quantity", Reason: "must be a non-negative integer"}
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		return nil, &models.ValidationError{Field: "price", Reason: "must be a number"}
	}
	if price.IsNegative() {
		return nil, &models.ValidationError{Field: "price", Reason: "cannot be negative"}
	}

	manufactureDate, err := time.Parse(manufactureDateLayout, input.ManufactureDate)
	if err != nil {
		return nil, &models.ValidationError{Field: "manufacture_date", Reason: "must be a valid YYYY-MM-DD date"}
	}

	var category models.Category
	if err := db.First(&category, input.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "category", ID: input.CategoryID}
		}
		return nil, err
	}

	return &models.Product{
		Name:            name,
		CategoryID:      input.CategoryID,
		Quantity:        input.Quantity,
		Price:           price,
		ManufactureDate: manufactureDate,
	}, nil
}

// CreateProduct validates and persists a new product.
func CreateProduct(db *gorm.DB, input ProductInput) (*models.Product, error) {
	product, err := validateProductInput(db, input)
	if err != nil {
		return nil, err
	}
	if err := db.Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct replaces an existing product's fields. Past orders keep the
// prices snapshotted at sale time, so edits here never affect history.
func UpdateProduct(db *gorm.DB, id uint, input ProductInput) (*models.Product, error) {
	var existing models.Product
	if err := db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "product", ID: id}
		}
		return nil, err
	}

	validated, err := validateProductInput(db, input)
	if err != nil {
		return nil, err
	}

	existing.Name = validated.Name
	existing.CategoryID = validated.CategoryID
	existing.Quantity = validated.Quantity
	existing.Price = validated.Price
	existing.ManufactureDate = validated.ManufactureDate
	if err := db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// DeleteProduct removes a product from the catalog.
func DeleteProduct(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &models.NotFoundError{Entity: "product", ID: id}
	}
	return nil
}

// GetProduct returns the product's current quantity and price in a single
// consistent read.
func GetProduct(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "product", ID: id}
		}
		return nil, err
	}
	return &product, nil
}

// ListProducts returns the whole catalog.
func ListProducts(db *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	if err := db.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// SearchProducts filters products by a case-insensitive name fragment.
func SearchProducts(db *gorm.DB, query string) ([]models.Product, error) {
	var products []models.Product
	err := db.Where("name ILIKE ?", "%"+query+"%").Order("id").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// -------- Handlers --------

// POST /admin/products
func CreateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		product, err := CreateProduct(db, input)
		if err != nil {
			respondCatalogError(c, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /admin/products/:id
func UpdateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		product, err := UpdateProduct(db, id, input)
		if err != nil {
			respondCatalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /admin/products/:id
func DeleteProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		if err := DeleteProduct(db, id); err != nil {
			respondCatalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

// GET /products/:id
func GetProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		product, err := GetProduct(db, id)
		if err != nil {
			respondCatalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /products?q=
func ListProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			products []models.Product
			err      error
		)
		if query := c.Query("q"); query != "" {
			products, err = SearchProducts(db, query)
		} else {
			products, err = ListProducts(db)
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
