package routes

import (
	"context"

	"orchid-shop/controllers"
	"orchid-shop/middleware"
	"orchid-shop/models"
	"orchid-shop/repositories"
	"orchid-shop/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	accountRepo := repositories.NewAccountRepository()
	categoryRepo := repositories.NewCategoryRepository()
	orchidRepo := repositories.NewOrchidRepository()
	orderRepo := repositories.NewOrderRepository()

	mailer, err := models.NewEmailService()
	if err != nil {
		log.Warn().Err(err).Msg("email disabled")
		mailer = nil
	}

	accountService := services.NewAccountService(accountRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	orchidService := services.NewOrchidService(orchidRepo, categoryRepo)
	orderService := services.NewOrderService(orderRepo, orchidRepo, accountRepo, mailer)
	cartService := services.NewCartService(services.NewCartStore(), orchidRepo)

	authCtrl := controllers.NewAuthController(accountService)
	categoryCtrl := controllers.NewCategoryController(categoryService)
	orchidCtrl := controllers.NewOrchidController(orchidService)
	cartCtrl := controllers.NewCartController(cartService)
	orderCtrl := controllers.NewOrderController(orderService)
	adminCtrl := controllers.NewAdminController(accountService, categoryService, orchidService, orderService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")

	api.POST("/accounts/register", authCtrl.Register)
	api.POST("/accounts/login", authCtrl.Login)

	api.GET("/categories", categoryCtrl.GetCategories)
	api.GET("/categories/:id", categoryCtrl.GetCategoryByID)
	api.GET("/categories/name/:name", categoryCtrl.GetCategoryByName)

	api.GET("/orchids", orchidCtrl.GetOrchids)
	api.GET("/orchids/search", orchidCtrl.SearchOrchids)
	api.GET("/orchids/price-range", orchidCtrl.GetOrchidsByPriceRange)
	api.GET("/orchids/natural", orchidCtrl.GetOrchidsByNaturalType)
	api.GET("/orchids/category/:categoryId", orchidCtrl.GetOrchidsByCategory)
	api.GET("/orchids/:id", orchidCtrl.GetOrchidByID)

	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/accounts/logout", authCtrl.Logout)
		auth.GET("/accounts/profile", authCtrl.GetProfile)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/add", cartCtrl.AddToCart)
		auth.PUT("/cart/update", cartCtrl.UpdateCartItem)
		auth.DELETE("/cart/remove/:orchidId", cartCtrl.RemoveFromCart)
		auth.DELETE("/cart/clear", cartCtrl.ClearCart)

		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.GET("/orders/user", orderCtrl.GetMyOrders)
		auth.GET("/orders/account/:accountId", orderCtrl.GetOrdersByAccount)
		auth.GET("/orders/status/:status", orderCtrl.GetOrdersByStatus)
		auth.GET("/orders/date-range", orderCtrl.GetOrdersByDateRange)
		auth.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
		auth.GET("/orders/:id/total", orderCtrl.CalculateOrderTotal)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", adminCtrl.GetDashboard)

		admin.GET("/categories", categoryCtrl.GetCategories)
		admin.GET("/categories/:id", categoryCtrl.GetCategoryByID)
		admin.POST("/categories", adminCtrl.CreateCategory)
		admin.PUT("/categories/:id", adminCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", adminCtrl.DeleteCategory)

		admin.GET("/orchids", orchidCtrl.GetOrchids)
		admin.GET("/orchids/:id", orchidCtrl.GetOrchidByID)
		admin.POST("/orchids", adminCtrl.CreateOrchid)
		admin.PUT("/orchids/:id", adminCtrl.UpdateOrchid)
		admin.POST("/orchids/:id/photo", adminCtrl.UploadOrchidPhoto)
		admin.DELETE("/orchids/:id", adminCtrl.DeleteOrchid)

		admin.GET("/orders", adminCtrl.GetAllOrders)
		admin.GET("/orders/:id", adminCtrl.GetOrderByID)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
		admin.DELETE("/orders/:id", adminCtrl.DeleteOrder)

		admin.GET("/accounts", adminCtrl.GetAllAccounts)
		admin.GET("/accounts/:id", adminCtrl.GetAccountByID)
		admin.POST("/accounts", adminCtrl.CreateAccount)
		admin.PUT("/accounts/:id", adminCtrl.UpdateAccount)
		admin.DELETE("/accounts/:id", adminCtrl.DeleteAccount)
		admin.PATCH("/accounts/:accountId/role", adminCtrl.UpdateAccountRole)

		admin.GET("/roles", adminCtrl.GetRoles)
	}

	if err := accountService.EnsureDefaultAccounts(context.Background()); err != nil {
		log.Error().Err(err).Msg("failed to seed default accounts")
	}
}
