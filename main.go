package main

import (
	"orchid-shop/config"
	_ "orchid-shop/docs"
	"orchid-shop/middleware"
	"orchid-shop/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// @title Orchid Shop API
// @version 1.0
// @description REST API for the orchid shop: accounts, catalog, cart and orders.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.InitLogger()
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Info().Str("port", config.AppConfig.Port).Str("env", config.AppConfig.AppEnv).Msg("server starting")

	if err := router.Run(port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
