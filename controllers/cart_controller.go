package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"orchid-shop/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// currentAccountID reads the identity the auth middleware stored on the
// context.
func currentAccountID(c *gin.Context) (string, bool) {
	id, exists := c.Get("account_id")
	if !exists {
		return "", false
	}
	return id.(string), true
}

// GetCart godoc
// @Summary Get the caller's cart
// @Description Returns the current cart snapshot; 204 when the cart is empty
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Success 204 "empty cart"
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated"})
		return
	}

	cart := ctrl.cartService.GetCart(accountID)
	if len(cart.Items) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart retrieved", "data": cart})
}

// AddToCart godoc
// @Summary Add an orchid to the cart
// @Description Accumulates quantity onto an existing line or creates one from a catalog snapshot
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param orchidId query string true "Orchid ID"
// @Param quantity query int true "Quantity (must be positive)"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/add [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated"})
		return
	}

	orchidID := c.Query("orchidId")
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if orchidID == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "orchidId and quantity are required"})
		return
	}

	cart, err := ctrl.cartService.AddToCart(c.Request.Context(), accountID, orchidID, quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, services.ErrOrchidNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add to cart"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item added to cart", "data": cart})
}

// UpdateCartItem godoc
// @Summary Update a cart line's quantity
// @Description Overwrites the quantity; zero or less removes the line
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param orchidId query string true "Orchid ID"
// @Param quantity query int true "New quantity"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/update [put]
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated"})
		return
	}

	orchidID := c.Query("orchidId")
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if orchidID == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "orchidId and quantity are required"})
		return
	}

	cart, err := ctrl.cartService.UpdateCartItem(accountID, orchidID, quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartNotFound), errors.Is(err, services.ErrCartItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update cart"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart updated", "data": cart})
}

// RemoveFromCart godoc
// @Summary Remove a line from the cart
// @Description Idempotent; missing cart or line is not an error
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param orchidId path string true "Orchid ID"
// @Success 200 {object} models.Response
// @Router /api/cart/remove/{orchidId} [delete]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated"})
		return
	}

	cart := ctrl.cartService.RemoveFromCart(accountID, c.Param("orchidId"))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed from cart", "data": cart})
}

// ClearCart godoc
// @Summary Clear the caller's cart
// @Description Idempotent
// @Tags cart
// @Security BearerAuth
// @Success 204 "cart cleared"
// @Router /api/cart/clear [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated"})
		return
	}

	ctrl.cartService.ClearCart(accountID)
	c.Status(http.StatusNoContent)
}
