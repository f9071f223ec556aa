package controllers

import (
	"errors"
	"net/http"
	"time"

	"orchid-shop/models"
	"orchid-shop/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// CreateOrder godoc
// @Summary Place an order
// @Description Creates an order for the caller; prices are snapshotted server-side
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateOrderRequest true "Order Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated"})
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	order, err := ctrl.orderService.CreateOrder(c.Request.Context(), accountID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrchidNotFound),
			errors.Is(err, services.ErrInvalidQuantity),
			errors.Is(err, services.ErrEmptyOrder):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create order"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Order created", "data": order})
}

// GetMyOrders godoc
// @Summary Get the caller's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /api/orders/user [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated"})
		return
	}

	orders, err := ctrl.orderService.GetOrdersByAccount(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}

// GetOrdersByAccount godoc
// @Summary Get orders for an account
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param accountId path string true "Account ID"
// @Success 200 {object} models.Response
// @Router /api/orders/account/{accountId} [get]
func (ctrl *OrderController) GetOrdersByAccount(c *gin.Context) {
	orders, err := ctrl.orderService.GetOrdersByAccount(c.Request.Context(), c.Param("accountId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}

// GetOrdersByStatus godoc
// @Summary Get orders by status
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param status path string true "Order status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/orders/status/{status} [get]
func (ctrl *OrderController) GetOrdersByStatus(c *gin.Context) {
	orders, err := ctrl.orderService.GetOrdersByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidOrderStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}

// GetOrdersByDateRange godoc
// @Summary Get orders within a date range
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/orders/date-range [get]
func (ctrl *OrderController) GetOrdersByDateRange(c *gin.Context) {
	start, errStart := time.Parse("2006-01-02", c.Query("startDate"))
	end, errEnd := time.Parse("2006-01-02", c.Query("endDate"))
	if errStart != nil || errEnd != nil || end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date range"})
		return
	}

	// make the end date inclusive
	end = end.Add(24*time.Hour - time.Nanosecond)

	orders, err := ctrl.orderService.GetOrdersByDateRange(c.Request.Context(), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}

// UpdateOrderStatus godoc
// @Summary Update an order's status
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param status query string true "New status"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "status query parameter is required"})
		return
	}

	order, err := ctrl.orderService.UpdateOrderStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidOrderStatus):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated", "data": order})
}

// CalculateOrderTotal godoc
// @Summary Recompute an order's total
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/orders/{id}/total [get]
func (ctrl *OrderController) CalculateOrderTotal(c *gin.Context) {
	total, err := ctrl.orderService.CalculateOrderTotal(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order total calculated", "data": gin.H{"total": total}})
}
