package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"orchid-shop/config"
	"orchid-shop/services"

	"github.com/gin-gonic/gin"
)

const orchidListCacheKey = "orchids_list_all"

type OrchidController struct {
	orchidService *services.OrchidService
}

func NewOrchidController(orchidService *services.OrchidService) *OrchidController {
	return &OrchidController{orchidService: orchidService}
}

// invalidateOrchidCache drops every cached orchid listing. Called after admin
// writes to the catalog.
func invalidateOrchidCache(ctx context.Context) {
	if config.RedisClient == nil {
		return
	}
	iter := config.RedisClient.Scan(ctx, 0, "orchids_list_*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
}

// GetOrchids godoc
// @Summary Get all orchids
// @Description Full catalog listing, served from cache when available
// @Tags orchids
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/orchids [get]
func (ctrl *OrchidController) GetOrchids(c *gin.Context) {
	ctx := c.Request.Context()

	if config.RedisClient != nil {
		if cached, err := config.RedisClient.Get(ctx, orchidListCacheKey).Result(); err == nil {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Orchids retrieved", "data": json.RawMessage(cached)})
			return
		}
	}

	orchids, err := ctrl.orchidService.GetAllOrchids(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve orchids"})
		return
	}

	if config.RedisClient != nil {
		if data, err := json.Marshal(orchids); err == nil {
			config.RedisClient.Set(ctx, orchidListCacheKey, string(data), 5*time.Minute)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Orchids retrieved", "data": orchids})
}

// GetOrchidByID godoc
// @Summary Get orchid by ID
// @Tags orchids
// @Produce json
// @Param id path string true "Orchid ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/orchids/{id} [get]
func (ctrl *OrchidController) GetOrchidByID(c *gin.Context) {
	orchid, err := ctrl.orchidService.GetOrchidByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Orchid not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Orchid retrieved", "data": orchid})
}

// SearchOrchids godoc
// @Summary Search orchids by name
// @Tags orchids
// @Produce json
// @Param name query string true "Name fragment (case-insensitive)"
// @Success 200 {object} models.Response
// @Router /api/orchids/search [get]
func (ctrl *OrchidController) SearchOrchids(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "name query parameter is required"})
		return
	}

	orchids, err := ctrl.orchidService.SearchOrchidsByName(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Orchids retrieved", "data": orchids})
}

// GetOrchidsByCategory godoc
// @Summary Get orchids in a category
// @Tags orchids
// @Produce json
// @Param categoryId path string true "Category ID"
// @Success 200 {object} models.Response
// @Router /api/orchids/category/{categoryId} [get]
func (ctrl *OrchidController) GetOrchidsByCategory(c *gin.Context) {
	orchids, err := ctrl.orchidService.GetOrchidsByCategory(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve orchids"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Orchids retrieved", "data": orchids})
}

// GetOrchidsByPriceRange godoc
// @Summary Get orchids within a price range
// @Tags orchids
// @Produce json
// @Param min query number true "Minimum price"
// @Param max query number true "Maximum price"
// @Success 200 {object} models.Response
// @Router /api/orchids/price-range [get]
func (ctrl *OrchidController) GetOrchidsByPriceRange(c *gin.Context) {
	minPrice, errMin := strconv.ParseFloat(c.Query("min"), 64)
	maxPrice, errMax := strconv.ParseFloat(c.Query("max"), 64)
	if errMin != nil || errMax != nil || minPrice < 0 || maxPrice < minPrice {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid price range"})
		return
	}

	orchids, err := ctrl.orchidService.GetOrchidsByPriceRange(c.Request.Context(), minPrice, maxPrice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve orchids"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Orchids retrieved", "data": orchids})
}

// GetOrchidsByNaturalType godoc
// @Summary Filter orchids by natural flag
// @Tags orchids
// @Produce json
// @Param natural query bool true "true for natural orchids"
// @Success 200 {object} models.Response
// @Router /api/orchids/natural [get]
func (ctrl *OrchidController) GetOrchidsByNaturalType(c *gin.Context) {
	isNatural, err := strconv.ParseBool(c.DefaultQuery("natural", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid natural flag"})
		return
	}

	orchids, err := ctrl.orchidService.GetOrchidsByNaturalType(c.Request.Context(), isNatural)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve orchids"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Orchids retrieved", "data": orchids})
}
