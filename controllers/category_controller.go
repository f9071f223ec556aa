package controllers

import (
	"net/http"

	"orchid-shop/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categoryService *services.CategoryService
}

func NewCategoryController(categoryService *services.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// GetCategories godoc
// @Summary Get all categories
// @Tags categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	categories, err := ctrl.categoryService.GetAllCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}

// GetCategoryByID godoc
// @Summary Get category by ID
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/categories/{id} [get]
func (ctrl *CategoryController) GetCategoryByID(c *gin.Context) {
	category, err := ctrl.categoryService.GetCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category retrieved", "data": category})
}

// GetCategoryByName godoc
// @Summary Get category by name
// @Tags categories
// @Produce json
// @Param name path string true "Category name"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/categories/name/{name} [get]
func (ctrl *CategoryController) GetCategoryByName(c *gin.Context) {
	category, err := ctrl.categoryService.GetCategoryByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category retrieved", "data": category})
}
