package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"orchid-shop/libs"
	"orchid-shop/models"
	"orchid-shop/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	accountService  *services.AccountService
	categoryService *services.CategoryService
	orchidService   *services.OrchidService
	orderService    *services.OrderService
}

func NewAdminController(
	accountService *services.AccountService,
	categoryService *services.CategoryService,
	orchidService *services.OrchidService,
	orderService *services.OrderService,
) *AdminController {
	return &AdminController{
		accountService:  accountService,
		categoryService: categoryService,
		orchidService:   orchidService,
		orderService:    orderService,
	}
}

// GetDashboard godoc
// @Summary Dashboard counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /api/admin/dashboard [get]
func (ctrl *AdminController) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	orchids, err := ctrl.orchidService.CountOrchids(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve dashboard data"})
		return
	}
	orders, err := ctrl.orderService.CountOrders(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve dashboard data"})
		return
	}
	accounts, err := ctrl.accountService.CountAccounts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve dashboard data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Dashboard data retrieved",
		"data": gin.H{
			"total_orchids":  orchids,
			"total_orders":   orders,
			"total_accounts": accounts,
		},
	})
}

// ----- categories -----

func (ctrl *AdminController) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	category, err := ctrl.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Category created", "data": category})
}

func (ctrl *AdminController) UpdateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	category, err := ctrl.categoryService.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category updated", "data": category})
}

func (ctrl *AdminController) DeleteCategory(c *gin.Context) {
	if err := ctrl.categoryService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete category"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ----- orchids -----

func (ctrl *AdminController) CreateOrchid(c *gin.Context) {
	var req models.OrchidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	orchid, err := ctrl.orchidService.CreateOrchid(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create orchid"})
		return
	}

	invalidateOrchidCache(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Orchid created", "data": orchid})
}

func (ctrl *AdminController) UpdateOrchid(c *gin.Context) {
	var req models.OrchidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	orchid, err := ctrl.orchidService.UpdateOrchid(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrchidNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, services.ErrCategoryNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update orchid"})
		}
		return
	}

	invalidateOrchidCache(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Orchid updated", "data": orchid})
}

// UploadOrchidPhoto accepts a multipart image, pushes it to Cloudinary and
// stores the hosted URL on the orchid.
func (ctrl *AdminController) UploadOrchidPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "photo file is required"})
		return
	}

	if file.Size > 5*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "File too large (max 5MB)"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid file type"})
		return
	}

	localPath := filepath.Join(os.TempDir(), fmt.Sprintf("orchid_%d%s", time.Now().UnixNano(), ext))
	if err := c.SaveUploadedFile(file, localPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to store upload"})
		return
	}

	url, err := libs.UploadToCloudinary(localPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Upload failed", "error": err.Error()})
		return
	}

	orchid, err := ctrl.orchidService.UpdateOrchidPhoto(c.Request.Context(), c.Param("id"), url)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Orchid not found"})
		return
	}

	invalidateOrchidCache(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Photo uploaded", "data": orchid})
}

func (ctrl *AdminController) DeleteOrchid(c *gin.Context) {
	if err := ctrl.orchidService.DeleteOrchid(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete orchid"})
		return
	}

	invalidateOrchidCache(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// ----- orders -----

func (ctrl *AdminController) GetAllOrders(c *gin.Context) {
	orders, err := ctrl.orderService.GetAllOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}

func (ctrl *AdminController) GetOrderByID(c *gin.Context) {
	order, err := ctrl.orderService.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order retrieved", "data": order})
}

func (ctrl *AdminController) DeleteOrder(c *gin.Context) {
	if err := ctrl.orderService.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ----- accounts -----

func (ctrl *AdminController) GetAllAccounts(c *gin.Context) {
	accounts, err := ctrl.accountService.GetAllAccounts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve accounts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Accounts retrieved", "data": accounts})
}

func (ctrl *AdminController) GetAccountByID(c *gin.Context) {
	account, err := ctrl.accountService.GetAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Account not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account retrieved", "data": account})
}

func (ctrl *AdminController) CreateAccount(c *gin.Context) {
	var req models.AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password is required"})
		return
	}

	account, err := ctrl.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailExists), errors.Is(err, services.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create account"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Account created", "data": account})
}

func (ctrl *AdminController) UpdateAccount(c *gin.Context) {
	var req models.AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	account, err := ctrl.accountService.UpdateAccount(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, services.ErrEmailExists), errors.Is(err, services.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update account"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account updated", "data": account})
}

func (ctrl *AdminController) DeleteAccount(c *gin.Context) {
	if err := ctrl.accountService.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete account"})
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateAccountRole godoc
// @Summary Change an account's role
// @Description Applies the role hierarchy: SuperAdmins may assign anything, Admins may not touch SuperAdmins and may only assign Admin or User
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param accountId path string true "Account ID"
// @Param role query string true "New role name"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/admin/accounts/{accountId}/role [patch]
func (ctrl *AdminController) UpdateAccountRole(c *gin.Context) {
	roleValue, exists := c.Get("account_role")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated"})
		return
	}

	actingRole, err := models.ParseRole(roleValue.(string))
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Insufficient permission"})
		return
	}

	newRole, err := models.ParseRole(c.Query("role"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid role"})
		return
	}

	account, err := ctrl.accountService.AssignRole(c.Request.Context(), actingRole, c.Param("accountId"), newRole)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, services.ErrRoleNotAssignable):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update role"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Role updated", "data": account})
}

// GetRoles returns the enumerated roles.
func (ctrl *AdminController) GetRoles(c *gin.Context) {
	roles := make([]gin.H, 0, len(models.Roles))
	for _, r := range models.Roles {
		roles = append(roles, gin.H{"name": string(r)})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Roles retrieved", "data": roles})
}
