package catalogControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sayan01/groceri/models"
)

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
}

func validateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &models.ValidationError{Field: "name", Reason: "cannot be empty"}
	}
	if utf8.RuneCountInString(name) > 64 {
		return &models.ValidationError{Field: "name", Reason: "cannot be greater than 64 characters"}
	}
	return nil
}

// CreateCategory validates and persists a new category.
func CreateCategory(db *gorm.DB, name string) (*models.Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	category := models.Category{Name: strings.TrimSpace(name)}
	if err := db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames an existing category.
func UpdateCategory(db *gorm.DB, id uint, name string) (*models.Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "category", ID: id}
		}
		return nil, err
	}
	category.Name = strings.TrimSpace(name)
	if err := db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category and its products in one transaction.
func DeleteCategory(db *gorm.DB, id uint) error {
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.NotFoundError{Entity: "category", ID: id}
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}

// GetCategory loads a category with its products.
func GetCategory(db *gorm.DB, id uint) (*models.Category, error) {
	var category models.Category
	if err := db.Preload("Products").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "category", ID: id}
		}
		return nil, err
	}
	return &category, nil
}

// ListCategories returns all categories without their products.
func ListCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// -------- Handlers --------

// POST /admin/categories
func CreateCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		category, err := CreateCategory(db, input.Name)
		if err != nil {
			respondCatalogError(c, err)
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// PUT /admin/categories/:id
func UpdateCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		category, err := UpdateCategory(db, id, input.Name)
		if err != nil {
			respondCatalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DELETE /admin/categories/:id
func DeleteCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}
		if err := DeleteCategory(db, id); err != nil {
			respondCatalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}

// GET /categories/:id
func GetCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}
		category, err := GetCategory(db, id)
		if err != nil {
			respondCatalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// GET /categories
func ListCategoriesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := ListCategories(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	return uint(id), err
}

func respondCatalogError(c *gin.Context, err error) {
	var (
		validationErr *models.ValidationError
		notFoundErr   *models.NotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Catalog operation failed"})
	}
}
